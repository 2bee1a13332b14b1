package grammar

import "fmt"

type RuleKind int

const (
	// RuleKindTerminal is a rule of the form A → a.
	RuleKindTerminal = RuleKind(1)

	// RuleKindTerminalNonTerminal is a rule of the form A → aB.
	RuleKindTerminalNonTerminal = RuleKind(2)
)

func (k RuleKind) String() string {
	switch k {
	case RuleKindTerminal:
		return "terminal"
	case RuleKindTerminalNonTerminal:
		return "terminal non-terminal"
	}
	return fmt.Sprintf("<invalid rule kind %d>", int(k))
}

// Rule is an alternative of a right-regular grammar. Next is zero when Kind is RuleKindTerminal.
type Rule struct {
	Kind     RuleKind
	Terminal rune
	Next     rune
}

// classifyRule decides the shape of an alternative of a non-terminal. It fails with ErrMalformedRule unless
// the alternative is a terminal optionally followed by a non-terminal.
func (g *Grammar) classifyRule(lhs rune, alt string) (*Rule, error) {
	syms := []rune(alt)
	switch {
	case len(syms) == 1 && g.terminals.contains(syms[0]):
		return &Rule{
			Kind:     RuleKindTerminal,
			Terminal: syms[0],
		}, nil
	case len(syms) == 2 && g.terminals.contains(syms[0]) && g.nonTerminals.contains(syms[1]):
		return &Rule{
			Kind:     RuleKindTerminalNonTerminal,
			Terminal: syms[0],
			Next:     syms[1],
		}, nil
	}
	return nil, fmt.Errorf("%w: %c → %q", ErrMalformedRule, lhs, alt)
}

// Rules returns the alternatives of a non-terminal as rules of a right-regular grammar.
func (g *Grammar) Rules(nonTerminal rune) ([]*Rule, error) {
	var rules []*Rule
	for _, alt := range g.productions[nonTerminal] {
		r, err := g.classifyRule(nonTerminal, alt)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
