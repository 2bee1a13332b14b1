package grammar

import (
	"fmt"
	"unicode/utf8"

	verr "github.com/nihei9/regular/error"
	"github.com/nihei9/regular/spec"
)

// GrammarBuilder builds a grammar from a grammar description. The left-hand sides of productions are the
// non-terminals, and every other symbol appearing in alternatives is a terminal.
type GrammarBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	name, startDir := b.readDirectives()

	var nonTerminals []rune
	prods := map[rune][]string{}
	for _, prod := range b.AST.Productions {
		if utf8.RuneCountInString(prod.LHS) != 1 {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrMultiCharLHS,
				Detail: prod.LHS,
				Row:    prod.Pos.Row,
				Col:    prod.Pos.Col,
			})
			continue
		}
		lhs, _ := utf8.DecodeRuneInString(prod.LHS)
		if _, ok := prods[lhs]; !ok {
			nonTerminals = append(nonTerminals, lhs)
			prods[lhs] = []string{}
		}
		for _, alt := range prod.RHS {
			dup := false
			for _, a := range prods[lhs] {
				if a == alt.Symbols {
					dup = true
					break
				}
			}
			if dup {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateProduction,
					Detail: fmt.Sprintf("%c → %v", lhs, alt.Symbols),
					Row:    alt.Pos.Row,
					Col:    alt.Pos.Col,
				})
				continue
			}
			prods[lhs] = append(prods[lhs], alt.Symbols)
		}
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	if len(nonTerminals) == 0 {
		return nil, verr.SpecErrors{
			{
				Cause: semErrNoProduction,
			},
		}
	}

	isNonTerminal := newSymbolSet(nonTerminals...)
	terms := newSymbolSet()
	for _, lhs := range nonTerminals {
		for _, alt := range prods[lhs] {
			for _, sym := range alt {
				if isNonTerminal.contains(sym) {
					continue
				}
				terms[sym] = struct{}{}
			}
		}
	}

	start := nonTerminals[0]
	if startDir != nil {
		param := startDir.Parameters[0]
		sym, _ := utf8.DecodeRuneInString(param.Text)
		if !isNonTerminal.contains(sym) {
			return nil, verr.SpecErrors{
				{
					Cause:  ErrUndefinedStart,
					Detail: param.Text,
					Row:    param.Pos.Row,
					Col:    param.Pos.Col,
				},
			}
		}
		start = sym
	}

	g, err := NewGrammar(nonTerminals, terms.sorted(), prods, start)
	if err != nil {
		return nil, err
	}
	g.name = name

	return g, nil
}

func (b *GrammarBuilder) readDirectives() (string, *spec.DirectiveNode) {
	var name string
	var start *spec.DirectiveNode
	seen := map[string]struct{}{}
	for _, dir := range b.AST.Directives {
		if _, ok := seen[dir.Name]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateDirective,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
			continue
		}
		seen[dir.Name] = struct{}{}

		switch dir.Name {
		case "name":
			if len(dir.Parameters) != 1 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'name' takes just one parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			name = dir.Parameters[0].Text
		case "start":
			if len(dir.Parameters) != 1 || utf8.RuneCountInString(dir.Parameters[0].Text) != 1 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'start' takes just one non-terminal",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			start = dir
		default:
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDirInvalidName,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
		}
	}
	return name, start
}
