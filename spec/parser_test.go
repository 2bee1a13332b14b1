package spec

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	verr "github.com/nihei9/regular/error"
)

func TestParse(t *testing.T) {
	production := func(lhs string, alts ...string) *ProductionNode {
		prod := &ProductionNode{
			LHS: lhs,
		}
		for _, alt := range alts {
			prod.RHS = append(prod.RHS, &AlternativeNode{
				Symbols: alt,
			})
		}
		return prod
	}
	directive := func(name string, params ...string) *DirectiveNode {
		dir := &DirectiveNode{
			Name: name,
		}
		for _, param := range params {
			dir.Parameters = append(dir.Parameters, &ParameterNode{
				Text: param,
			})
		}
		return dir
	}

	tests := []struct {
		caption string
		src     string
		ast     *RootNode
	}{
		{
			caption: "single production is a valid grammar",
			src:     `S: a;`,
			ast: &RootNode{
				Productions: []*ProductionNode{
					production("S", "a"),
				},
			},
		},
		{
			caption: "multiple productions and directives are a valid grammar",
			src: `
#name variant7;
#start S;

S: aD;
D: bE;
E: cF | dL;
F: dD;
L: aL | bL | c;
`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					directive("name", "variant7"),
					directive("start", "S"),
				},
				Productions: []*ProductionNode{
					production("S", "aD"),
					production("D", "bE"),
					production("E", "cF", "dL"),
					production("F", "dD"),
					production("L", "aL", "bL", "c"),
				},
			},
		},
		{
			caption: "symbols separated by white spaces make one alternative",
			src:     `S: a S | b;`,
			ast: &RootNode{
				Productions: []*ProductionNode{
					production("S", "aS", "b"),
				},
			},
		},
		{
			caption: "an alternative can be empty",
			src:     `S: a | ;`,
			ast: &RootNode{
				Productions: []*ProductionNode{
					production("S", "a", ""),
				},
			},
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.caption), func(t *testing.T) {
			ast, err := Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			testRootNode(t, ast, tt.ast)
		})
	}
}

func TestParse_positions(t *testing.T) {
	ast, err := Parse(strings.NewReader("#start S;\nS: aS\n | b;\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ast.Directives[0].Pos != newPosition(1, 1) {
		t.Errorf("unexpected position of a directive: %+v", ast.Directives[0].Pos)
	}
	if ast.Directives[0].Parameters[0].Pos != newPosition(1, 8) {
		t.Errorf("unexpected position of a parameter: %+v", ast.Directives[0].Parameters[0].Pos)
	}
	prod := ast.Productions[0]
	if prod.Pos != newPosition(2, 1) {
		t.Errorf("unexpected position of a production: %+v", prod.Pos)
	}
	if prod.RHS[0].Pos != newPosition(2, 4) {
		t.Errorf("unexpected position of an alternative: %+v", prod.RHS[0].Pos)
	}
	if prod.RHS[1].Pos != newPosition(3, 4) {
		t.Errorf("unexpected position of an alternative: %+v", prod.RHS[1].Pos)
	}
}

func TestParse_syntaxErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		causes  []*SyntaxError
	}{
		{
			caption: "a grammar needs at least one production",
			src:     `// nothing`,
			causes:  []*SyntaxError{synErrNoProduction},
		},
		{
			caption: "a production needs a colon",
			src:     `S a;`,
			causes:  []*SyntaxError{synErrNoColon},
		},
		{
			caption: "a production needs a name",
			src:     `: a;`,
			causes:  []*SyntaxError{synErrNoProductionName},
		},
		{
			caption: "a production needs a semicolon",
			src:     `S: a`,
			causes:  []*SyntaxError{synErrNoSemicolon},
		},
		{
			caption: "a directive needs a name",
			src:     `#; S: a;`,
			causes:  []*SyntaxError{synErrNoDirectiveName},
		},
		{
			caption: "a directive needs a semicolon",
			src:     `#start S`,
			causes:  []*SyntaxError{synErrDirNoSemicolon},
		},
		{
			caption: "a directive cannot contain punctuation",
			src:     `#start S | A; S: a;`,
			causes:  []*SyntaxError{synErrUnexpectedDirective},
		},
		{
			caption: "an invalid token",
			src:     `S: a/b;`,
			causes:  []*SyntaxError{synErrInvalidToken},
		},
		{
			caption: "the parser reports every broken production",
			src: `
S a;
A: a;
B b;
C: c;
`,
			causes: []*SyntaxError{synErrNoColon, synErrNoColon},
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.caption), func(t *testing.T) {
			ast, err := Parse(strings.NewReader(tt.src))
			if ast != nil {
				t.Fatalf("an AST must be nil when an error occurred")
			}
			var specErrs verr.SpecErrors
			if !errors.As(err, &specErrs) {
				t.Fatalf("unexpected error type; want: %T, got: %T (%v)", specErrs, err, err)
			}
			if len(specErrs) != len(tt.causes) {
				t.Fatalf("unexpected error count; want: %v, got: %v (%v)", len(tt.causes), len(specErrs), err)
			}
			for i, cause := range tt.causes {
				if specErrs[i].Cause != cause {
					t.Errorf("unexpected error; want: %v, got: %v", cause, specErrs[i].Cause)
				}
			}
		})
	}
}

func testRootNode(t *testing.T, root, expected *RootNode) {
	t.Helper()
	if len(root.Directives) != len(expected.Directives) {
		t.Fatalf("unexpected directive count; want: %v, got: %v", len(expected.Directives), len(root.Directives))
	}
	for i, dir := range root.Directives {
		e := expected.Directives[i]
		if dir.Name != e.Name || len(dir.Parameters) != len(e.Parameters) {
			t.Fatalf("unexpected directive; want: %+v, got: %+v", e, dir)
		}
		for j, param := range dir.Parameters {
			if param.Text != e.Parameters[j].Text {
				t.Fatalf("unexpected parameter; want: %v, got: %v", e.Parameters[j].Text, param.Text)
			}
		}
	}
	if len(root.Productions) != len(expected.Productions) {
		t.Fatalf("unexpected production count; want: %v, got: %v", len(expected.Productions), len(root.Productions))
	}
	for i, prod := range root.Productions {
		e := expected.Productions[i]
		if prod.LHS != e.LHS || len(prod.RHS) != len(e.RHS) {
			t.Fatalf("unexpected production; want: %v (%v alternatives), got: %v (%v alternatives)", e.LHS, len(e.RHS), prod.LHS, len(prod.RHS))
		}
		for j, alt := range prod.RHS {
			if alt.Symbols != e.RHS[j].Symbols {
				t.Fatalf("unexpected alternative of %v; want: %q, got: %q", prod.LHS, e.RHS[j].Symbols, alt.Symbols)
			}
		}
	}
}
