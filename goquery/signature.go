package goquery

import (
	"strings"
	"unicode/utf8"
)

// param is one declared parameter: its normalized type text and its
// declared name. The name is empty when the generator omitted it.
type param struct {
	typ  string
	name string
}

// candidate is one declaration block found on a page.
type candidate struct {
	params      []param
	description string // HTML of the prose block, may be empty
}

func (c *candidate) types() []string {
	types := make([]string, len(c.params))
	for i, p := range c.params {
		types[i] = p.typ
	}
	return types
}

// parseParamList parses the text between a signature's parentheses into
// (type, name) pairs in declaration order. Parameters are separated by
// top-level commas; generic arguments contain commas of their own and must
// not split. Annotations and the final modifier are not part of the type.
func parseParamList(raw string) []param {
	raw = collapseSpace(raw)
	if raw == "" {
		return nil
	}
	var params []param
	for _, chunk := range splitTopLevel(raw, ',') {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		var kept []string
		for _, tok := range splitTopLevel(chunk, ' ') {
			tok = strings.TrimSpace(tok)
			if tok == "" || tok == "final" || strings.HasPrefix(tok, "@") {
				continue
			}
			kept = append(kept, tok)
		}
		switch len(kept) {
		case 0:
			// Nothing but modifiers; unparseable, record as nameless.
			params = append(params, param{})
		case 1:
			params = append(params, param{typ: normalizeType(kept[0])})
		default:
			params = append(params, param{
				typ:  normalizeType(strings.Join(kept[:len(kept)-1], " ")),
				name: kept[len(kept)-1],
			})
		}
	}
	return params
}

// normalizeType reduces a declared type to its unqualified, generics-erased
// spelling so the descriptor side and the markup side compare equal:
// "java.util.List<java.lang.String>" and "List<String>" both normalize to
// "List", "java.lang.String..." to "String[]". Mismatched normalization
// between the two sides is the main source of false negatives, so every
// comparison goes through this one function.
func normalizeType(s string) string {
	s = eraseGenerics(collapseSpace(s))
	s = strings.ReplaceAll(s, "...", "[]")
	s = strings.ReplaceAll(s, " ", "")
	base, suffix := s, ""
	if i := strings.IndexByte(s, '['); i >= 0 {
		base, suffix = s[:i], s[i:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[i+1:]
	}
	return base + suffix
}

// eraseGenerics drops every <...> region, at any nesting depth.
func eraseGenerics(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// collapseSpace normalizes non-breaking spaces and runs of whitespace,
// which Javadoc uses liberally inside signatures, to single spaces.
func collapseSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "​", "")
	return strings.Join(strings.Fields(s), " ")
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// <...>, (...) or [...].
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + utf8.RuneLen(r)
			}
		}
	}
	return append(parts, s[start:])
}

// parenContents returns the text between the signature's outermost
// parentheses.
func parenContents(s string) (string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", false
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], true
			}
		}
	}
	return "", false
}
