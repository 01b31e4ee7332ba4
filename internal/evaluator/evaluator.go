// Package evaluator walks a parsed JSON document while simulating a
// compiled DFA, emitting one Match per (path, value) pair the automaton
// accepts.
package evaluator

import (
	"github.com/jsongrep/jsongrep/internal/automaton"
	"github.com/jsongrep/jsongrep/internal/jsonvalue"
)

// Match pairs a path from the document root with the value found there.
type Match struct {
	Path  []automaton.Step
	Value *jsonvalue.Value
}

// Options tunes the evaluator without changing match semantics.
type Options struct {
	// MaxDepth caps recursion: descent stops once depth reaches MaxDepth
	// (matches already found at or above that depth are still emitted). 0
	// means unbounded. This bounds recursion depth, not the set of steps
	// the grammar can express.
	MaxDepth int
}

// Evaluate walks root depth-first, advancing state through dfa on every
// object or array edge, and returns every match in pre-order traversal
// order. A match is emitted before its children are visited, so for a
// query that can accept at multiple nesting levels along one path, the
// enclosing value is reported first.
func Evaluate(dfa *automaton.DFA, root *jsonvalue.Value) []Match {
	return EvaluateWithOptions(dfa, root, Options{})
}

// EvaluateWithOptions is Evaluate with a depth cap; see Options.
func EvaluateWithOptions(dfa *automaton.DFA, root *jsonvalue.Value, opts Options) []Match {
	var matches []Match
	walk(dfa, root, dfa.Start(), nil, 0, opts, &matches)
	return matches
}

func walk(dfa *automaton.DFA, node *jsonvalue.Value, state int, path []automaton.Step, depth int, opts Options, matches *[]Match) {
	if dfa.IsAccepting(state) {
		*matches = append(*matches, Match{Path: path, Value: node})
	}

	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return
	}

	switch node.Kind() {
	case jsonvalue.KindObject:
		for _, entry := range node.ObjectEntries() {
			step := automaton.FieldStep(entry.Key)
			next := dfa.Step(state, step)
			if dfa.IsDead(next) {
				continue
			}
			walk(dfa, entry.Value, next, appendStep(path, step), depth+1, opts, matches)
		}
	case jsonvalue.KindArray:
		for i, elem := range node.ArrayElements() {
			step := automaton.IndexStep(uint32(i))
			next := dfa.Step(state, step)
			if dfa.IsDead(next) {
				continue
			}
			walk(dfa, elem, next, appendStep(path, step), depth+1, opts, matches)
		}
	}
}

// appendStep returns a fresh slice with step appended. A plain append(path,
// step) would risk sibling recursive calls silently sharing (and
// corrupting) the same backing array whenever cap(path) has room; allocating
// here keeps every call's path independent.
func appendStep(path []automaton.Step, step automaton.Step) []automaton.Step {
	next := make([]automaton.Step, len(path)+1)
	copy(next, path)
	next[len(path)] = step
	return next
}
