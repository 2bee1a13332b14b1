package automaton

import (
	"fmt"
	"unicode/utf8"

	"github.com/nihei9/regular/spec"
)

// Encode converts an automaton into its portable form and signs it with a digest.
func Encode(name string, a *Automaton) (*spec.CompiledAutomaton, error) {
	c := &spec.CompiledAutomaton{
		Name:        name,
		States:      statesToStrings(a.States()),
		Alphabet:    []string{},
		Transitions: []*spec.TransitionEntry{},
		Start:       a.start.String(),
		Accepting:   statesToStrings(a.Accepting()),
	}
	for _, sym := range a.Alphabet() {
		c.Alphabet = append(c.Alphabet, string(sym))
	}

	var entry *spec.TransitionEntry
	for _, t := range a.Transitions() {
		if entry == nil || entry.From != t.From.String() || entry.Symbol != string(t.Symbol) {
			entry = &spec.TransitionEntry{
				From:   t.From.String(),
				Symbol: string(t.Symbol),
			}
			c.Transitions = append(c.Transitions, entry)
		}
		entry.To = append(entry.To, t.To.String())
	}

	digest, err := c.ComputeDigest()
	if err != nil {
		return nil, err
	}
	c.Digest = digest

	return c, nil
}

// Decode rebuilds an automaton from its portable form. When the portable form has a digest, Decode
// verifies it first and fails with ErrDigestMismatch if it doesn't match the content. A portable form
// without a digest, for instance one written by hand, is not verified.
func Decode(c *spec.CompiledAutomaton) (*Automaton, error) {
	if c.Digest != "" {
		digest, err := c.ComputeDigest()
		if err != nil {
			return nil, err
		}
		if digest != c.Digest {
			return nil, ErrDigestMismatch
		}
	}

	states := make([]State, len(c.States))
	for i, s := range c.States {
		states[i] = State(s)
	}
	var alphabet []rune
	for _, s := range c.Alphabet {
		sym, err := decodeSymbol(s)
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, sym)
	}
	var ts []*Transition
	for _, e := range c.Transitions {
		sym, err := decodeSymbol(e.Symbol)
		if err != nil {
			return nil, err
		}
		if len(e.To) == 0 {
			return nil, fmt.Errorf("%w: from %v on '%c'", ErrNoTransitionDest, e.From, sym)
		}
		for _, to := range e.To {
			ts = append(ts, &Transition{
				From:   State(e.From),
				Symbol: sym,
				To:     State(to),
			})
		}
	}
	accepting := make([]State, len(c.Accepting))
	for i, s := range c.Accepting {
		accepting[i] = State(s)
	}

	return New(states, alphabet, ts, State(c.Start), accepting)
}

func decodeSymbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	sym, _ := utf8.DecodeRuneInString(s)
	return sym, nil
}

func statesToStrings(states []State) []string {
	ss := make([]string, len(states))
	for i, s := range states {
		ss[i] = s.String()
	}
	return ss
}
