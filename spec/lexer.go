package spec

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindSymbols         = tokenKind("symbols")
	tokenKindColon           = tokenKind(":")
	tokenKindOr              = tokenKind("|")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindDirectiveMarker = tokenKind("#")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newSymbolsToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindSymbols,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// lexEntries describes the tokens of a grammar description. A run of symbols stops at white spaces,
// newlines, and the punctuation of the description language.
var lexEntries = []*mlspec.LexEntry{
	{
		Kind:    mlspec.LexKindName("white_space"),
		Pattern: mlspec.LexPattern(`[\u{0009}\u{0020}]+`),
	},
	{
		Kind:    mlspec.LexKindName("newline"),
		Pattern: mlspec.LexPattern(`[\u{000A}\u{000D}]+`),
	},
	{
		Kind:    mlspec.LexKindName("line_comment"),
		Pattern: mlspec.LexPattern(`//[^\u{000A}\u{000D}]*`),
	},
	{
		Kind:    mlspec.LexKindName("directive_marker"),
		Pattern: mlspec.LexPattern(mlspec.EscapePattern("#")),
	},
	{
		Kind:    mlspec.LexKindName("colon"),
		Pattern: mlspec.LexPattern(mlspec.EscapePattern(":")),
	},
	{
		Kind:    mlspec.LexKindName("or"),
		Pattern: mlspec.LexPattern(mlspec.EscapePattern("|")),
	},
	{
		Kind:    mlspec.LexKindName("semicolon"),
		Pattern: mlspec.LexPattern(mlspec.EscapePattern(";")),
	},
	{
		Kind:    mlspec.LexKindName("symbols"),
		Pattern: mlspec.LexPattern(`[^\u{0009}\u{0020}\u{000A}\u{000D}#:|;/]+`),
	},
}

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		s, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{
			Name:    "grammar",
			Entries: lexEntries,
		}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				fmt.Fprintf(&b, "%v: %v", cErrs[0].Kind, cErrs[0].Cause)
				for _, cErr := range cErrs[1:] {
					fmt.Fprintf(&b, "\n%v: %v", cErr.Kind, cErr.Cause)
				}
				lexSpecErr = fmt.Errorf("cannot compile the lexical specification: %v", b.String())
				return
			}
			lexSpecErr = err
			return
		}
		lexSpec = s
	})
	return lexSpec, lexSpecErr
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	var kindName string
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), pos), nil
		}
		if tok.EOF {
			return newEOFToken(pos), nil
		}
		kindName = l.s.KindNames[tok.KindID].String()
		switch kindName {
		case "white_space", "newline", "line_comment":
			continue
		}

		break
	}

	pos := newPosition(tok.Row+1, tok.Col+1)
	switch kindName {
	case "symbols":
		return newSymbolsToken(string(tok.Lexeme), pos), nil
	case "directive_marker":
		return newSymbolToken(tokenKindDirectiveMarker, pos), nil
	case "colon":
		return newSymbolToken(tokenKindColon, pos), nil
	case "or":
		return newSymbolToken(tokenKindOr, pos), nil
	case "semicolon":
		return newSymbolToken(tokenKindSemicolon, pos), nil
	default:
		return newInvalidToken(string(tok.Lexeme), pos), nil
	}
}
