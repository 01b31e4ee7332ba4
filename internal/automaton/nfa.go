package automaton

import "github.com/jsongrep/jsongrep/pkg/ast"

// nfaEdge is one outgoing transition of an NFA state: either epsilon
// (pattern == nil) or labeled with a StepPattern.
type nfaEdge struct {
	target  int
	pattern *StepPattern
}

// NFA is a Thompson-construction automaton over the step alphabet: a flat
// pool of states referenced by index, a single initial state, and a single
// accepting state (sub-automata are joined with epsilon edges so the whole
// tree reduces to one accept state, which is what lets the DFA builder use
// a simple "does this subset contain the accept state" acceptance test).
type NFA struct {
	edges  [][]nfaEdge
	start  int
	accept int
}

// NumStates returns how many states the automaton has, for diagnostics
// (e.g. the CLI's --stats flag).
func (n *NFA) NumStates() int { return len(n.edges) }

// Start returns the initial state.
func (n *NFA) Start() int { return n.start }

// IsAccepting reports whether state is the automaton's single accept state.
func (n *NFA) IsAccepting(state int) bool { return state == n.accept }

// Edges returns the outgoing transitions of state.
func (n *NFA) Edges(state int) []nfaEdge { return n.edges[state] }

// EpsilonClosure returns the set of states reachable from states via zero
// or more epsilon edges, including the states themselves, as a sorted
// slice of unique state ids.
func (n *NFA) EpsilonClosure(states []int) []int {
	seen := make(map[int]bool, len(states))
	var stack, result []int
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
			result = append(result, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.edges[s] {
			if e.pattern != nil {
				continue
			}
			if !seen[e.target] {
				seen[e.target] = true
				stack = append(stack, e.target)
				result = append(result, e.target)
			}
		}
	}
	return result
}

// builder accumulates states and edges during Thompson construction.
type builder struct {
	edges [][]nfaEdge
}

func (b *builder) newState() int {
	b.edges = append(b.edges, nil)
	return len(b.edges) - 1
}

func (b *builder) addEpsilon(from, to int) {
	b.edges[from] = append(b.edges[from], nfaEdge{target: to})
}

func (b *builder) addPattern(from, to int, p StepPattern) {
	pc := p
	b.edges[from] = append(b.edges[from], nfaEdge{target: to, pattern: &pc})
}

// fragment is a sub-automaton with one entry and one exit state, the
// textbook Thompson representation that composition (Seq, Alt, Star, Opt)
// wires together with epsilon edges.
type fragment struct {
	start, accept int
}

// Compile builds the NFA for q using Thompson construction. Slice(s, e)
// expands to a fork of (e-s+1) parallel Index literal transitions before
// construction, per §4.4.
func Compile(q *ast.Query) *NFA {
	b := &builder{}
	frag := compileNode(b, q)
	return &NFA{edges: b.edges, start: frag.start, accept: frag.accept}
}

func compileNode(b *builder, q *ast.Query) fragment {
	switch q.Kind() {
	case ast.Empty:
		s := b.newState()
		return fragment{start: s, accept: s}

	case ast.Field:
		start := b.newState()
		accept := b.newState()
		b.addPattern(start, accept, FieldLit(q.FieldName()))
		return fragment{start: start, accept: accept}

	case ast.Index:
		start := b.newState()
		accept := b.newState()
		b.addPattern(start, accept, IndexLit(q.IndexValue()))
		return fragment{start: start, accept: accept}

	case ast.Slice:
		lo, hi := q.SliceBounds()
		start := b.newState()
		accept := b.newState()
		for i := lo; ; i++ {
			b.addPattern(start, accept, IndexLit(i))
			if i == hi {
				break
			}
		}
		return fragment{start: start, accept: accept}

	case ast.FieldWildcard:
		start := b.newState()
		accept := b.newState()
		b.addPattern(start, accept, AnyField())
		return fragment{start: start, accept: accept}

	case ast.IndexWildcard:
		start := b.newState()
		accept := b.newState()
		b.addPattern(start, accept, AnyIndex())
		return fragment{start: start, accept: accept}

	case ast.Seq:
		left := compileNode(b, q.Left())
		right := compileNode(b, q.Right())
		b.addEpsilon(left.accept, right.start)
		return fragment{start: left.start, accept: right.accept}

	case ast.Alt:
		left := compileNode(b, q.Left())
		right := compileNode(b, q.Right())
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, left.start)
		b.addEpsilon(start, right.start)
		b.addEpsilon(left.accept, accept)
		b.addEpsilon(right.accept, accept)
		return fragment{start: start, accept: accept}

	case ast.Star:
		inner := compileNode(b, q.Left())
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(start, accept)
		b.addEpsilon(inner.accept, inner.start)
		b.addEpsilon(inner.accept, accept)
		return fragment{start: start, accept: accept}

	case ast.Opt:
		inner := compileNode(b, q.Left())
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(start, accept)
		b.addEpsilon(inner.accept, accept)
		return fragment{start: start, accept: accept}

	default:
		s := b.newState()
		return fragment{start: s, accept: s}
	}
}
