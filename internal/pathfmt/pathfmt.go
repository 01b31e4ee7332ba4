// Package pathfmt renders a matched path as the header line printed above
// each match, per spec.md §6: steps joined by ".", fields quoted only when
// unsafe bare, indices rendered as "[i]".
package pathfmt

import (
	"strconv"
	"strings"

	"github.com/jsongrep/jsongrep/internal/automaton"
	"github.com/jsongrep/jsongrep/pkg/ast"
)

// Format renders path the way a match header does. The root path (no steps)
// renders as the empty string.
func Format(path []automaton.Step) string {
	if len(path) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, step := range path {
		if i > 0 {
			sb.WriteByte('.')
		}
		if step.Kind == automaton.StepIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.FormatUint(uint64(step.Index), 10))
			sb.WriteByte(']')
			continue
		}
		sb.WriteString(ast.QuoteField(step.Field))
	}
	return sb.String()
}

// Header renders the full header line, including the trailing colon, for
// path. Per spec.md §6, an empty path (the query is Empty) produces no
// header line at all, so callers should skip printing one when this
// returns false.
func Header(path []automaton.Step) (line string, ok bool) {
	if len(path) == 0 {
		return "", false
	}
	return Format(path) + ":", true
}
