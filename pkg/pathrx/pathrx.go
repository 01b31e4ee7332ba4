// Package pathrx is the library-level facade over the path-regex engine:
// compile a query once, then evaluate it against any number of JSON
// documents.
package pathrx

import (
	"github.com/jsongrep/jsongrep/internal/automaton"
	"github.com/jsongrep/jsongrep/internal/evaluator"
	"github.com/jsongrep/jsongrep/internal/jsonvalue"
	"github.com/jsongrep/jsongrep/internal/parser"
	"github.com/jsongrep/jsongrep/pkg/ast"
)

// Match is one (path, value) pair produced by evaluating a Program against
// a document.
type Match = evaluator.Match

// Step re-exports the automaton's step type so callers never need to import
// an internal package to read a Match's Path.
type Step = automaton.Step

// Value is the JSON value type a Program evaluates against.
type Value = jsonvalue.Value

// ParseJSON parses data as a single JSON document.
func ParseJSON(data []byte) (*Value, error) {
	return jsonvalue.Parse(data)
}

// Engine compiles query strings into Programs. It holds no state of its
// own; New exists so the facade reads like other engines in this
// ecosystem's client code (engine := pathrx.New(); engine.Compile(...)).
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// Compile parses query and builds a Program ready for repeated evaluation.
func (e *Engine) Compile(query string) (*Program, error) {
	return Compile(query)
}

// CompileFixedString builds a Program that searches for a literal field
// name at any depth, per the fixed-string convenience described in
// spec.md §4.6: it is sugar over CompileQuery, not a separate evaluation
// path.
func (e *Engine) CompileFixedString(name string) *Program {
	return CompileQuery(FixedString(name))
}

// Program is a compiled query ready to evaluate against any number of JSON
// documents. A Program's DFA is read-only except for a lazily memoised
// transition cache; do not share one Program across goroutines without
// external synchronisation.
type Program struct {
	query *ast.Query
	nfa   *automaton.NFA
	dfa   *automaton.DFA
}

// Compile parses query and compiles it to a Program.
func Compile(query string) (*Program, error) {
	q, err := parser.Parse(query)
	if err != nil {
		return nil, err
	}
	return CompileQuery(q), nil
}

// MustCompile is Compile, panicking on error. Intended for package-level
// Program variables built from constant query strings.
func MustCompile(query string) *Program {
	p, err := Compile(query)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileQuery compiles an already-parsed AST, bypassing the parser. Useful
// for programmatic callers building queries with pkg/ast.Builder.
func CompileQuery(q *ast.Query) *Program {
	nfa := automaton.Compile(q)
	return &Program{query: q, nfa: nfa, dfa: automaton.NewDFA(nfa)}
}

// Query returns the AST this Program was compiled from.
func (p *Program) Query() *ast.Query { return p.query }

// NFAStates returns the number of states in the Thompson construction built
// for this Program, for diagnostics (e.g. the CLI's --stats flag).
func (p *Program) NFAStates() int { return p.nfa.NumStates() }

// DFAStates returns the number of DFA states materialised so far by subset
// construction. Since the DFA is built lazily, this grows as Eval explores
// more of the state space and only reflects states visited up to the call.
func (p *Program) DFAStates() int { return p.dfa.NumStates() }

// Eval walks doc and returns every match in depth-first pre-order.
func (p *Program) Eval(doc *Value) []Match {
	return evaluator.Evaluate(p.dfa, doc)
}

// EvalWithMaxDepth is Eval with a recursion-depth cap; see evaluator.Options.
func (p *Program) EvalWithMaxDepth(doc *Value, maxDepth int) []Match {
	return evaluator.EvaluateWithOptions(p.dfa, doc, evaluator.Options{MaxDepth: maxDepth})
}

// FixedString synthesises the query tree for literal-field search at any
// depth: Star(Alt(FieldWildcard, IndexWildcard)).Field(name), per
// spec.md §4.6.
func FixedString(name string) *ast.Query {
	anyStep := ast.NewAlt(ast.NewFieldWildcard(), ast.NewIndexWildcard())
	return ast.NewSeq(ast.NewStar(anyStep), ast.NewField(name))
}

// MustParse parses query, panicking on error. Intended for package-level
// Query variables built from constant query strings.
func MustParse(query string) *ast.Query {
	q, err := parser.Parse(query)
	if err != nil {
		panic(err)
	}
	return q
}
