package grammar

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewGrammar(t *testing.T) {
	tests := []struct {
		caption      string
		nonTerminals []rune
		terminals    []rune
		productions  map[rune][]string
		start        rune
		err          error
	}{
		{
			caption:      "a well-formed grammar",
			nonTerminals: []rune{'S', 'A'},
			terminals:    []rune{'a', 'b'},
			productions: map[rune][]string{
				'S': {"aA"},
				'A': {"b"},
			},
			start: 'S',
		},
		{
			caption:      "a non-terminal may lack productions",
			nonTerminals: []rune{'S', 'A'},
			terminals:    []rune{'a'},
			productions: map[rune][]string{
				'S': {"aA"},
			},
			start: 'S',
		},
		{
			caption:      "the start symbol must be a non-terminal",
			nonTerminals: []rune{'S'},
			terminals:    []rune{'a'},
			productions: map[rune][]string{
				'S': {"a"},
			},
			start: 'a',
			err:   ErrUndefinedStart,
		},
		{
			caption:      "terminals and non-terminals must be disjoint",
			nonTerminals: []rune{'S', 'a'},
			terminals:    []rune{'a'},
			productions: map[rune][]string{
				'S': {"a"},
			},
			start: 'S',
			err:   ErrOverlappingSymbols,
		},
		{
			caption:      "a production cannot use an unknown symbol",
			nonTerminals: []rune{'S'},
			terminals:    []rune{'a'},
			productions: map[rune][]string{
				'S': {"ax"},
			},
			start: 'S',
			err:   ErrUndefinedSymbol,
		},
		{
			caption:      "the left-hand side of a production must be a non-terminal",
			nonTerminals: []rune{'S'},
			terminals:    []rune{'a'},
			productions: map[rune][]string{
				'S': {"a"},
				'a': {"a"},
			},
			start: 'S',
			err:   ErrUnknownLHS,
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.caption), func(t *testing.T) {
			g, err := NewGrammar(tt.nonTerminals, tt.terminals, tt.productions, tt.start)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.err, err)
				}
				if g != nil {
					t.Fatalf("a grammar must be nil when an error occurred")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Start() != tt.start {
				t.Fatalf("unexpected start symbol; want: %c, got: %c", tt.start, g.Start())
			}
		})
	}
}

func TestGrammar_isImmutable(t *testing.T) {
	prods := map[rune][]string{
		'S': {"aS", "a"},
	}
	g, err := NewGrammar([]rune{'S'}, []rune{'a'}, prods, 'S')
	if err != nil {
		t.Fatal(err)
	}

	prods['S'][0] = "b"
	alts := g.Alternatives('S')
	if alts[0] != "aS" {
		t.Fatalf("a grammar must not share productions with its caller; got: %v", alts)
	}

	alts[1] = "c"
	if g.Alternatives('S')[1] != "a" {
		t.Fatalf("Alternatives must return a copy; got: %v", g.Alternatives('S'))
	}
}

func TestGrammar_accessors(t *testing.T) {
	g := newVariant7Grammar(t)

	if string(g.NonTerminals()) != "DEFLS" {
		t.Errorf("unexpected non-terminals: %v", string(g.NonTerminals()))
	}
	if string(g.Terminals()) != "abcd" {
		t.Errorf("unexpected terminals: %v", string(g.Terminals()))
	}
	if !g.IsNonTerminal('L') || g.IsNonTerminal('a') {
		t.Errorf("IsNonTerminal returned an unexpected result")
	}
	if !g.IsTerminal('a') || g.IsTerminal('L') {
		t.Errorf("IsTerminal returned an unexpected result")
	}
	if g.Alternatives('x') != nil {
		t.Errorf("a symbol without productions must have no alternatives")
	}
	if !g.IsTerminalString("abdc") || g.IsTerminalString("abdL") || !g.IsTerminalString("") {
		t.Errorf("IsTerminalString returned an unexpected result")
	}
}

func TestGrammar_String(t *testing.T) {
	g := newVariant7Grammar(t)
	expected := `#start S;
D: bE;
E: cF | dL;
F: dD;
L: aL | bL | c;
S: aD;
`
	if g.String() != expected {
		t.Fatalf("unexpected description; want:\n%v\ngot:\n%v", expected, g.String())
	}
}

func TestGrammar_String_skipsNonTerminalsWithoutProductions(t *testing.T) {
	g, err := NewGrammar([]rune("SA"), []rune("a"), map[rune][]string{
		'S': {"aA", "a"},
	}, 'S')
	if err != nil {
		t.Fatal(err)
	}
	expected := "#start S;\nS: aA | a;\n"
	if g.String() != expected {
		t.Fatalf("unexpected description; want:\n%v\ngot:\n%v", expected, g.String())
	}
}
