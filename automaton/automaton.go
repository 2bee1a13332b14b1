package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// State identifies a state of an automaton.
type State string

func (s State) String() string {
	return string(s)
}

// StateSet is a sorted set of states without duplicates.
type StateSet []State

func newStateSet(states ...State) StateSet {
	m := make(map[State]struct{}, len(states))
	for _, s := range states {
		m[s] = struct{}{}
	}
	return sortStates(m)
}

func (s StateSet) Contains(state State) bool {
	i := sort.Search(len(s), func(i int) bool {
		return s[i] >= state
	})
	return i < len(s) && s[i] == state
}

func (s StateSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{")
	for i, state := range s {
		if i > 0 {
			fmt.Fprintf(&b, ", ")
		}
		fmt.Fprintf(&b, "%v", state)
	}
	fmt.Fprintf(&b, "}")
	return b.String()
}

// Transition is an edge from a state to another state labeled with a symbol.
type Transition struct {
	From   State
	Symbol rune
	To     State
}

type transitionKey struct {
	from   State
	symbol rune
}

// Automaton is a finite automaton that may be nondeterministic. An automaton is immutable once created,
// so it is safe to call its methods from multiple goroutines.
type Automaton struct {
	states      map[State]struct{}
	alphabet    map[rune]struct{}
	transitions map[transitionKey][]State
	start       State
	accepting   map[State]struct{}
}

// New returns an automaton made of the 5-tuple. Transitions sharing a source state and a symbol are merged
// into one nondeterministic transition, keeping the order in which their destinations first appear.
// A symbol outside the alphabet is allowed in transitions.
func New(states []State, alphabet []rune, transitions []*Transition, start State, accepting []State) (*Automaton, error) {
	if len(states) == 0 {
		return nil, ErrNoState
	}

	a := &Automaton{
		states:      map[State]struct{}{},
		alphabet:    map[rune]struct{}{},
		transitions: map[transitionKey][]State{},
		start:       start,
		accepting:   map[State]struct{}{},
	}
	for _, s := range states {
		if s == "" {
			return nil, ErrEmptyStateName
		}
		if _, ok := a.states[s]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateState, s)
		}
		a.states[s] = struct{}{}
	}
	for _, sym := range alphabet {
		if _, ok := a.alphabet[sym]; ok {
			return nil, fmt.Errorf("%w: %c", ErrDuplicateSymbol, sym)
		}
		a.alphabet[sym] = struct{}{}
	}
	if !a.hasState(start) {
		return nil, fmt.Errorf("%w: start state %v", ErrUndefinedState, start)
	}
	for _, s := range accepting {
		if !a.hasState(s) {
			return nil, fmt.Errorf("%w: accepting state %v", ErrUndefinedState, s)
		}
		a.accepting[s] = struct{}{}
	}
	for _, t := range transitions {
		if !a.hasState(t.From) {
			return nil, fmt.Errorf("%w: source state %v of a transition on '%c'", ErrUndefinedState, t.From, t.Symbol)
		}
		if !a.hasState(t.To) {
			return nil, fmt.Errorf("%w: destination state %v of a transition on '%c'", ErrUndefinedState, t.To, t.Symbol)
		}
		k := transitionKey{
			from:   t.From,
			symbol: t.Symbol,
		}
		dup := false
		for _, to := range a.transitions[k] {
			if to == t.To {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		a.transitions[k] = append(a.transitions[k], t.To)
	}

	return a, nil
}

func (a *Automaton) hasState(s State) bool {
	_, ok := a.states[s]
	return ok
}

// Accepts reports whether the automaton accepts the input. It tracks every state reachable after each
// symbol at once, so its cost is linear in the length of the input. A symbol having no transition,
// including a symbol outside the alphabet, empties the set of live states and the input is rejected.
func (a *Automaton) Accepts(input string) bool {
	current := []State{a.start}
	for _, sym := range input {
		current = a.step(current, sym)
		if len(current) == 0 {
			return false
		}
	}
	return a.anyAccepting(current)
}

// Trace returns the set of live states before reading the input and after reading each symbol.
// When the set becomes empty, Trace stops there, and the last element is the empty set.
func (a *Automaton) Trace(input string) []StateSet {
	current := []State{a.start}
	trace := []StateSet{
		newStateSet(current...),
	}
	for _, sym := range input {
		current = a.step(current, sym)
		trace = append(trace, newStateSet(current...))
		if len(current) == 0 {
			break
		}
	}
	return trace
}

func (a *Automaton) step(current []State, sym rune) []State {
	var next []State
	seen := map[State]struct{}{}
	for _, s := range current {
		for _, to := range a.transitions[transitionKey{from: s, symbol: sym}] {
			if _, ok := seen[to]; ok {
				continue
			}
			seen[to] = struct{}{}
			next = append(next, to)
		}
	}
	return next
}

func (a *Automaton) anyAccepting(states []State) bool {
	for _, s := range states {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

func (a *Automaton) IsAccepting(s State) bool {
	_, ok := a.accepting[s]
	return ok
}

func (a *Automaton) Start() State {
	return a.start
}

func (a *Automaton) States() []State {
	return sortStates(a.states)
}

func (a *Automaton) Accepting() []State {
	return sortStates(a.accepting)
}

func (a *Automaton) Alphabet() []rune {
	syms := make([]rune, 0, len(a.alphabet))
	for sym := range a.alphabet {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// Transitions returns all edges ordered by source state and symbol. Edges sharing a source state and
// a symbol keep the order of their destinations.
func (a *Automaton) Transitions() []*Transition {
	keys := make([]transitionKey, 0, len(a.transitions))
	for k := range a.transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].symbol < keys[j].symbol
	})

	var ts []*Transition
	for _, k := range keys {
		for _, to := range a.transitions[k] {
			ts = append(ts, &Transition{
				From:   k.from,
				Symbol: k.symbol,
				To:     to,
			})
		}
	}
	return ts
}

// Next returns the destinations of the transition from a state on a symbol.
func (a *Automaton) Next(from State, sym rune) []State {
	tos := a.transitions[transitionKey{from: from, symbol: sym}]
	if len(tos) == 0 {
		return nil
	}
	next := make([]State, len(tos))
	copy(next, tos)
	return next
}

func sortStates(m map[State]struct{}) StateSet {
	states := make(StateSet, 0, len(m))
	for s := range m {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i] < states[j]
	})
	return states
}
