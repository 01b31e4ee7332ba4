// Package diagnostic renders lexer and parser errors with source context
// and a caret pointing at the offending column, the way the CLI reports a
// bad query string to the user.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jsongrep/jsongrep/internal/lexer"
)

// SourceError is a single error anchored to a position within a query
// string, with enough context to render a source line and caret.
type SourceError struct {
	Message string
	Source  string
	Pos     lexer.Position
}

// New builds a SourceError for message at pos within source.
func New(pos lexer.Position, message, source string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source}
}

func (e *SourceError) Error() string { return e.Format(false) }

// Format renders a header line carrying the position and the message, then
// the query line and a caret at e.Pos.Column. When useColor is true the
// caret is highlighted with fatih/color; callers should pass the result of
// an isatty check, not hardcode true.
func (e *SourceError) Format(useColor bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "error at line %d, column %d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)

	line := sourceLine(e.Source, e.Pos.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	sb.WriteString("  ")
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat(" ", e.Pos.Column-1))

	caret := "^"
	if useColor {
		caret = color.New(color.FgRed, color.Bold).Sprint(caret)
	}
	sb.WriteString(caret)

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
