package grammar

import "github.com/nihei9/regular/automaton"

// SinkState is the accepting state that terminal-only rules lead to. Non-terminals are single characters,
// so this name never collides with the state of a non-terminal.
const SinkState = automaton.State("$final")

// ToAutomaton converts a right-regular grammar into a nondeterministic finite automaton accepting the same
// language. Every non-terminal becomes a state; a rule A → aB becomes a transition from A to B on a, and
// a rule A → a becomes a transition from A to SinkState on a. SinkState is the only accepting state.
//
// ToAutomaton fails with ErrMalformedRule when an alternative is not right-regular.
func (g *Grammar) ToAutomaton() (*automaton.Automaton, error) {
	nonTerminals := g.nonTerminals.sorted()

	states := make([]automaton.State, 0, len(nonTerminals)+1)
	for _, nt := range nonTerminals {
		states = append(states, symbolToState(nt))
	}
	states = append(states, SinkState)

	var ts []*automaton.Transition
	for _, nt := range nonTerminals {
		rules, err := g.Rules(nt)
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			to := SinkState
			if r.Kind == RuleKindTerminalNonTerminal {
				to = symbolToState(r.Next)
			}
			ts = append(ts, &automaton.Transition{
				From:   symbolToState(nt),
				Symbol: r.Terminal,
				To:     to,
			})
		}
	}

	return automaton.New(states, g.terminals.sorted(), ts, symbolToState(g.start), []automaton.State{SinkState})
}

func symbolToState(sym rune) automaton.State {
	return automaton.State(string(sym))
}
