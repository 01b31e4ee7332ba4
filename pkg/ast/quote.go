package ast

import "strings"

// IsSafeUnquotedField reports whether name can be written as a bare
// identifier in query and path-header text: it must lex back as IDENT,
// which means it cannot be empty, must start with a letter or underscore,
// every character after must be a letter, digit, underscore or hyphen, and
// it must not be exactly "*" (a bare "*" always means the field wildcard,
// never the literal field name "*").
func IsSafeUnquotedField(name string) bool {
	if name == "" || name == "*" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			continue
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// QuoteField renders name the way a query or path header must to round-trip
// through the lexer: bare when safe, otherwise double-quoted with \ and "
// escaped.
func QuoteField(name string) string {
	if IsSafeUnquotedField(name) {
		return name
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range name {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
