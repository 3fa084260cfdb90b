package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docnamer"
)

// Compile-time interface verification.
var _ docnamer.NameCache = (*CacheService)(nil)

// CacheService implements docnamer.NameCache using SQLite. Entries
// survive process restarts; they are keyed by a hash of the callable key
// and carry the full key alongside for inspection.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// hashKey computes the xxHash of a callable key and returns it as hex.
func hashKey(key string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(key))
	return hex.EncodeToString(b[:])
}

// Get returns the cached names for the key.
func (s *CacheService) Get(ctx context.Context, key string) ([]string, bool, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx, `
		SELECT names FROM parameter_names WHERE key_hash = ?
	`, hashKey(key)).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, docnamer.Errorf(docnamer.EINTERNAL, "query cached names: %v", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(encoded), &names); err != nil {
		return nil, false, docnamer.Errorf(docnamer.EINTERNAL, "decode cached names: %v", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, true, nil
}

// Put stores names for the key, replacing any previous entry.
func (s *CacheService) Put(ctx context.Context, key string, names []string) error {
	if names == nil {
		names = []string{}
	}
	encoded, err := json.Marshal(names)
	if err != nil {
		return docnamer.Errorf(docnamer.EINTERNAL, "encode names: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO parameter_names (key_hash, callable, names, cached_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key_hash) DO UPDATE SET names = excluded.names, cached_at = excluded.cached_at
	`, hashKey(key), key, string(encoded), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return docnamer.Errorf(docnamer.EINTERNAL, "store cached names: %v", err)
	}
	return nil
}
