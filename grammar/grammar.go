package grammar

import (
	"fmt"
	"strings"
)

// Grammar is a grammar made of non-terminals, terminals, productions, and a start symbol. Every symbol is
// a single character. A Grammar is immutable once created.
type Grammar struct {
	name         string
	nonTerminals symbolSet
	terminals    symbolSet
	productions  map[rune][]string
	start        rune
}

// NewGrammar returns a grammar after checking that the terminals and the non-terminals are disjoint, that
// the start symbol is a non-terminal, and that productions use only known symbols.
//
// A non-terminal may lack productions. NewGrammar accepts such a grammar, and Generate fails with
// ErrNoProduction when a derivation reaches that non-terminal.
func NewGrammar(nonTerminals, terminals []rune, productions map[rune][]string, start rune) (*Grammar, error) {
	g := &Grammar{
		nonTerminals: newSymbolSet(nonTerminals...),
		terminals:    newSymbolSet(terminals...),
		productions:  map[rune][]string{},
		start:        start,
	}
	for _, sym := range g.terminals.sorted() {
		if g.nonTerminals.contains(sym) {
			return nil, fmt.Errorf("%w: %c", ErrOverlappingSymbols, sym)
		}
	}
	if !g.nonTerminals.contains(start) {
		return nil, fmt.Errorf("%w: %c", ErrUndefinedStart, start)
	}
	for lhs, alts := range productions {
		if !g.nonTerminals.contains(lhs) {
			return nil, fmt.Errorf("%w: %c", ErrUnknownLHS, lhs)
		}
		for _, alt := range alts {
			for _, sym := range alt {
				if !g.IsNonTerminal(sym) && !g.IsTerminal(sym) {
					return nil, fmt.Errorf("%w: '%c' in %c → %v", ErrUndefinedSymbol, sym, lhs, alt)
				}
			}
		}
		g.productions[lhs] = append([]string{}, alts...)
	}

	return g, nil
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Start() rune {
	return g.start
}

// NonTerminals returns the non-terminals in ascending order.
func (g *Grammar) NonTerminals() []rune {
	return g.nonTerminals.sorted()
}

// Terminals returns the terminals in ascending order.
func (g *Grammar) Terminals() []rune {
	return g.terminals.sorted()
}

func (g *Grammar) IsNonTerminal(sym rune) bool {
	return g.nonTerminals.contains(sym)
}

func (g *Grammar) IsTerminal(sym rune) bool {
	return g.terminals.contains(sym)
}

// Alternatives returns the replacements of a non-terminal in the order they were defined.
func (g *Grammar) Alternatives(nonTerminal rune) []string {
	alts := g.productions[nonTerminal]
	if len(alts) == 0 {
		return nil
	}
	return append([]string{}, alts...)
}

// IsTerminalString reports whether a string contains no non-terminals.
func (g *Grammar) IsTerminalString(s string) bool {
	for _, sym := range s {
		if g.nonTerminals.contains(sym) {
			return false
		}
	}
	return true
}

// String returns the grammar in the grammar description language.
func (g *Grammar) String() string {
	var b strings.Builder
	if g.name != "" {
		fmt.Fprintf(&b, "#name %v;\n", g.name)
	}
	fmt.Fprintf(&b, "#start %c;\n", g.start)
	for _, nt := range g.nonTerminals.sorted() {
		alts := g.Alternatives(nt)
		if len(alts) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%c: %v", nt, alts[0])
		for _, alt := range alts[1:] {
			fmt.Fprintf(&b, " | %v", alt)
		}
		fmt.Fprintf(&b, ";\n")
	}
	return b.String()
}
