package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// DeadState is the distinguished, non-accepting DFA state every dead
// transition collapses to. It loops to itself on every step, and the
// evaluator prunes descent as soon as it lands here.
const DeadState = 0

// DFA is a subset-construction automaton over the (infinite) alphabet of
// concrete Steps. Because the alphabet cannot be enumerated up front, the
// transition table is built lazily: a state's outgoing edge for a given
// concrete step is computed (and memoised) only the first time it is asked
// for. States are non-empty canonicalised subsets of NFA states, identified
// by a sorted-membership key so that subset construction is deterministic
// regardless of traversal order.
type DFA struct {
	nfa *NFA

	stateSets  [][]int        // dfa state id -> sorted NFA state ids
	setIndex   map[string]int // sorted-set key -> dfa state id
	accepting  []bool         // dfa state id -> does the set contain the NFA accept state
	trans      []map[Step]int // dfa state id -> memoised concrete-step transitions
	startState int
}

// NewDFA wraps nfa for lazy subset construction. The dead state (id 0) and
// the start state (the epsilon-closure of the NFA's initial state, id 1
// unless it collapses into the dead state) are materialised immediately;
// everything else is built on demand by Step.
func NewDFA(nfa *NFA) *DFA {
	d := &DFA{nfa: nfa, setIndex: make(map[string]int)}
	d.addState(nil) // DeadState: empty set, never accepting
	closure := nfa.EpsilonClosure([]int{nfa.Start()})
	d.startState = d.internState(closure)
	return d
}

// Start returns the DFA's initial state.
func (d *DFA) Start() int { return d.startState }

// IsAccepting reports whether state corresponds to a subset containing the
// NFA's accept state.
func (d *DFA) IsAccepting(state int) bool { return d.accepting[state] }

// IsDead reports whether state is the distinguished dead state.
func (d *DFA) IsDead(state int) bool { return state == DeadState }

// NumStates returns how many DFA states have been materialised so far
// (including the dead state), for diagnostics.
func (d *DFA) NumStates() int { return len(d.stateSets) }

func (d *DFA) addState(nfaStates []int) int {
	id := len(d.stateSets)
	sorted := append([]int(nil), nfaStates...)
	sort.Ints(sorted)
	d.stateSets = append(d.stateSets, sorted)
	d.accepting = append(d.accepting, containsAccept(sorted, d.nfa))
	d.trans = append(d.trans, nil)
	d.setIndex[setKey(sorted)] = id
	return id
}

func containsAccept(sorted []int, nfa *NFA) bool {
	for _, s := range sorted {
		if nfa.IsAccepting(s) {
			return true
		}
	}
	return false
}

func setKey(sorted []int) string {
	var sb strings.Builder
	for i, s := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(s))
	}
	return sb.String()
}

// internState returns the DFA state id for the canonical form of nfaStates,
// creating it if this exact subset has not been seen before. An empty
// subset always maps to DeadState.
func (d *DFA) internState(nfaStates []int) int {
	if len(nfaStates) == 0 {
		return DeadState
	}
	sorted := append([]int(nil), nfaStates...)
	sort.Ints(sorted)
	key := setKey(sorted)
	if id, ok := d.setIndex[key]; ok {
		return id
	}
	return d.addState(sorted)
}

// Step computes (and memoises) the transition from state under the
// concrete step s: the union, over every NFA state in state's subset, of
// the epsilon-closure of every target whose StepPattern matches s. Dead in,
// dead out: DeadState always loops to itself.
func (d *DFA) Step(state int, s Step) int {
	if state == DeadState {
		return DeadState
	}
	if d.trans[state] == nil {
		d.trans[state] = make(map[Step]int)
	}
	if next, ok := d.trans[state][s]; ok {
		return next
	}

	var reach []int
	for _, nfaState := range d.stateSets[state] {
		for _, e := range d.nfa.Edges(nfaState) {
			if e.pattern == nil {
				continue
			}
			if e.pattern.Matches(s) {
				reach = append(reach, e.target)
			}
		}
	}
	closure := d.nfa.EpsilonClosure(reach)
	next := d.internState(closure)
	d.trans[state][s] = next
	return next
}
