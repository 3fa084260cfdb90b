package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/mock"
	docslog "github.com/fwojciec/docnamer/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLookup(t *testing.T) {
	t.Parallel()

	callable := &docnamer.Callable{
		Kind:           docnamer.KindMethod,
		DeclaringType:  "com.example.Foo",
		Name:           "process",
		ParameterTypes: []string{"int"},
	}

	t.Run("logs successful lookups and passes results through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Lookuper{
			ParameterNamesFn: func(ctx context.Context, c *docnamer.Callable, policy docnamer.MissingPolicy) ([]string, error) {
				return []string{"count"}, nil
			},
		}

		names, err := docslog.NewLoggingLookup(inner, logger).ParameterNames(context.Background(), callable, docnamer.PolicyRaise)
		require.NoError(t, err)
		assert.Equal(t, []string{"count"}, names)
		assert.Contains(t, buf.String(), "parameter name lookup")
		assert.Contains(t, buf.String(), "com.example.Foo#process(int)")
	})

	t.Run("logs failures with their error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Lookuper{
			ParameterNamesFn: func(ctx context.Context, c *docnamer.Callable, policy docnamer.MissingPolicy) ([]string, error) {
				return nil, docnamer.Errorf(docnamer.ENOTFOUND, "no page")
			},
		}

		_, err := docslog.NewLoggingLookup(inner, logger).ParameterNames(context.Background(), callable, docnamer.PolicyRaise)
		require.Error(t, err)
		assert.Contains(t, buf.String(), docnamer.ENOTFOUND)
	})
}
