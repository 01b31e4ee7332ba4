package pathfmt

import (
	"testing"

	"github.com/jsongrep/jsongrep/internal/automaton"
)

func TestFormat_EmptyPath(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestFormat_FieldsJoinedByDot(t *testing.T) {
	path := []automaton.Step{automaton.FieldStep("users"), automaton.FieldStep("name")}
	if got := Format(path); got != "users.name" {
		t.Fatalf("got %q", got)
	}
}

func TestFormat_IndexJoinedByDot(t *testing.T) {
	path := []automaton.Step{automaton.FieldStep("users"), automaton.IndexStep(0), automaton.FieldStep("name")}
	if got := Format(path); got != "users.[0].name" {
		t.Fatalf("got %q", got)
	}
}

func TestFormat_ConsecutiveIndices(t *testing.T) {
	path := []automaton.Step{automaton.IndexStep(0), automaton.IndexStep(1)}
	if got := Format(path); got != "[0].[1]" {
		t.Fatalf("got %q", got)
	}
}

func TestFormat_QuotesUnsafeFields(t *testing.T) {
	path := []automaton.Step{automaton.FieldStep("/endpoint"), automaton.FieldStep("x")}
	if got := Format(path); got != `"/endpoint".x` {
		t.Fatalf("got %q", got)
	}
}

func TestFormat_LiteralAsteriskFieldQuoted(t *testing.T) {
	path := []automaton.Step{automaton.FieldStep("*")}
	if got := Format(path); got != `"*"` {
		t.Fatalf("got %q, want literal field name \"*\" quoted", got)
	}
}

func TestHeader_EmptyPathSuppressesLine(t *testing.T) {
	_, ok := Header(nil)
	if ok {
		t.Fatalf("expected no header line for the root path")
	}
}

func TestHeader_TrailingColon(t *testing.T) {
	line, ok := Header([]automaton.Step{automaton.FieldStep("a")})
	if !ok {
		t.Fatalf("expected a header line")
	}
	if line != "a:" {
		t.Fatalf("got %q", line)
	}
}
