package spec

import (
	"io"

	verr "github.com/nihei9/regular/error"
)

type RootNode struct {
	Directives  []*DirectiveNode
	Productions []*ProductionNode
}

type DirectiveNode struct {
	Name       string
	Parameters []*ParameterNode
	Pos        Position
}

type ParameterNode struct {
	Text string
	Pos  Position
}

type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

// AlternativeNode is one replacement of a production. Every character of Symbols is a grammar symbol.
type AlternativeNode struct {
	Symbols string
	Pos     Position
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func raiseSyntaxErrorWithDetail(pos Position, synErr *SyntaxError, detail string) {
	panic(&verr.SpecError{
		Cause:  synErr,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

// Parse parses a grammar description. When the description contains syntax errors, Parse returns all of
// them as verr.SpecErrors; after an error, parsing resumes at the next semicolon.
func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
	errs      verr.SpecErrors
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()

	root = p.parseRoot()
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return root, nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for !p.atEOF() {
		dir, prod := p.parseStatement()
		if dir != nil {
			root.Directives = append(root.Directives, dir)
		}
		if prod != nil {
			root.Productions = append(root.Productions, prod)
		}
	}
	if len(root.Productions) == 0 && len(p.errs) == 0 {
		p.errs = append(p.errs, &verr.SpecError{
			Cause: synErrNoProduction,
		})
	}
	return root
}

func (p *parser) parseStatement() (dir *DirectiveNode, prod *ProductionNode) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		specErr, ok := v.(*verr.SpecError)
		if !ok {
			panic(v)
		}
		p.errs = append(p.errs, specErr)
		p.skipOverTo(tokenKindSemicolon)
		dir = nil
		prod = nil
	}()

	if p.consume(tokenKindDirectiveMarker) {
		return p.parseDirective(), nil
	}
	return nil, p.parseProduction()
}

func (p *parser) parseDirective() *DirectiveNode {
	pos := p.lastTok.pos
	if !p.consume(tokenKindSymbols) {
		raiseSyntaxError(p.peekedPos(), synErrNoDirectiveName)
	}
	dir := &DirectiveNode{
		Name: p.lastTok.text,
		Pos:  pos,
	}
	for p.consume(tokenKindSymbols) {
		dir.Parameters = append(dir.Parameters, &ParameterNode{
			Text: p.lastTok.text,
			Pos:  p.lastTok.pos,
		})
	}
	if !p.consume(tokenKindSemicolon) {
		if p.peekedTok != nil && p.peekedTok.kind != tokenKindEOF {
			raiseSyntaxErrorWithDetail(p.peekedPos(), synErrUnexpectedDirective, string(p.peekedTok.kind))
		}
		raiseSyntaxError(p.peekedPos(), synErrDirNoSemicolon)
	}
	return dir
}

func (p *parser) parseProduction() *ProductionNode {
	if !p.consume(tokenKindSymbols) {
		raiseSyntaxError(p.peekedPos(), synErrNoProductionName)
	}
	lhs := p.lastTok.text
	pos := p.lastTok.pos
	if !p.consume(tokenKindColon) {
		raiseSyntaxError(p.peekedPos(), synErrNoColon)
	}
	alt := p.parseAlternative()
	rhs := []*AlternativeNode{alt}
	for {
		if !p.consume(tokenKindOr) {
			break
		}
		alt := p.parseAlternative()
		rhs = append(rhs, alt)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(p.peekedPos(), synErrNoSemicolon)
	}
	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Pos: pos,
	}
}

// parseAlternative accepts symbols separated by white spaces, so `a D` and `aD` are the same alternative.
// An alternative without any symbols is the empty string.
func (p *parser) parseAlternative() *AlternativeNode {
	alt := &AlternativeNode{
		Pos: p.peekedPos(),
	}
	for p.consume(tokenKindSymbols) {
		alt.Symbols += p.lastTok.text
	}
	return alt
}

func (p *parser) skipOverTo(kind tokenKind) {
	for {
		tok := p.peekedTok
		p.peekedTok = nil
		if tok == nil {
			var err error
			tok, err = p.lex.next()
			if err != nil {
				panic(err)
			}
		}
		if tok.kind == kind {
			return
		}
		if tok.kind == tokenKindEOF {
			p.peekedTok = tok
			return
		}
	}
}

func (p *parser) atEOF() bool {
	if p.peekedTok == nil {
		p.peek()
	}
	return p.peekedTok.kind == tokenKindEOF
}

func (p *parser) peekedPos() Position {
	if p.peekedTok == nil {
		p.peek()
	}
	return p.peekedTok.pos
}

func (p *parser) peek() {
	tok, err := p.lex.next()
	if err != nil {
		panic(err)
	}
	p.peekedTok = tok
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxErrorWithDetail(tok.pos, synErrInvalidToken, tok.text)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}
