package grammar

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	verr "github.com/nihei9/regular/error"
	"github.com/nihei9/regular/spec"
)

func buildGrammar(t *testing.T, src string) (*Grammar, error) {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a grammar description: %v", err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

func TestGrammarBuilder_Build(t *testing.T) {
	src := `
#name variant7;
#start S;

// S is the start symbol.
S: aD;
D: bE;
E: cF | dL;
F: dD;
L: aL | bL;
L: c;
`
	g, err := buildGrammar(t, src)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != "variant7" {
		t.Errorf("unexpected name: %v", g.Name())
	}
	if g.Start() != 'S' {
		t.Errorf("unexpected start symbol: %c", g.Start())
	}
	if string(g.NonTerminals()) != "DEFLS" {
		t.Errorf("unexpected non-terminals: %v", string(g.NonTerminals()))
	}
	if string(g.Terminals()) != "abcd" {
		t.Errorf("unexpected terminals: %v", string(g.Terminals()))
	}
	alts := g.Alternatives('L')
	if strings.Join(alts, ",") != "aL,bL,c" {
		t.Errorf("productions of the same non-terminal must be merged in order; got: %v", alts)
	}

	fa, err := g.ToAutomaton()
	if err != nil {
		t.Fatal(err)
	}
	if !fa.Accepts("abdc") || fa.Accepts("abcc") {
		t.Errorf("the automaton built from the description is wrong")
	}
}

func TestGrammarBuilder_Build_defaultStart(t *testing.T) {
	g, err := buildGrammar(t, `
A: aB;
B: b;
`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != 'A' {
		t.Fatalf("the first production must be the start symbol; got: %c", g.Start())
	}
	if g.Name() != "" {
		t.Fatalf("unexpected name: %v", g.Name())
	}
}

func TestGrammarBuilder_Build_roundTrip(t *testing.T) {
	g := newVariant7Grammar(t)
	h, err := buildGrammar(t, g.String())
	if err != nil {
		t.Fatal(err)
	}
	if h.String() != g.String() {
		t.Fatalf("unexpected grammar; want:\n%v\ngot:\n%v", g, h)
	}
}

func TestGrammarBuilder_Build_errors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
	}{
		{
			caption: "a non-terminal must be one character",
			src:     `SS: a;`,
			cause:   semErrMultiCharLHS,
		},
		{
			caption: "the start symbol must be a non-terminal",
			src: `
#start a;
S: a;
`,
			cause: ErrUndefinedStart,
		},
		{
			caption: "the start directive takes one non-terminal",
			src: `
#start S A;
S: aA;
A: a;
`,
			cause: semErrDirInvalidParam,
		},
		{
			caption: "the name directive takes one parameter",
			src: `
#name a b;
S: a;
`,
			cause: semErrDirInvalidParam,
		},
		{
			caption: "an unknown directive",
			src: `
#foo bar;
S: a;
`,
			cause: semErrDirInvalidName,
		},
		{
			caption: "a directive cannot appear twice",
			src: `
#name a;
#name b;
S: a;
`,
			cause: semErrDuplicateDirective,
		},
		{
			caption: "duplicate alternatives",
			src: `
S: a | bS;
S: a;
`,
			cause: semErrDuplicateProduction,
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.caption), func(t *testing.T) {
			g, err := buildGrammar(t, tt.src)
			if g != nil {
				t.Fatalf("a grammar must be nil when an error occurred")
			}
			var specErrs verr.SpecErrors
			if !errors.As(err, &specErrs) {
				t.Fatalf("unexpected error type; want: %T, got: %T (%v)", specErrs, err, err)
			}
			if len(specErrs) != 1 {
				t.Fatalf("unexpected error count; want: 1, got: %v (%v)", len(specErrs), err)
			}
			if specErrs[0].Cause != tt.cause {
				t.Fatalf("unexpected error; want: %v, got: %v", tt.cause, specErrs[0].Cause)
			}
			if specErrs[0].Row == 0 {
				t.Fatalf("an error must have a position")
			}
		})
	}
}
