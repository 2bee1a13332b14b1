package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/regular/automaton"
	verr "github.com/nihei9/regular/error"
	"github.com/nihei9/regular/grammar"
	"github.com/nihei9/regular/spec"
)

// readGrammar reads a grammar description from a file, or from stdin when the path is empty.
func readGrammar(path string) (*grammar.Grammar, error) {
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	g, err := buildGrammar(src)
	if err != nil {
		var specErrs verr.SpecErrors
		if errors.As(err, &specErrs) {
			for _, e := range specErrs {
				e.FilePath = path
				e.SourceName = path
				if path == "" {
					e.SourceName = "stdin"
				}
			}
		}
		return nil, err
	}
	return g, nil
}

func buildGrammar(src io.Reader) (*grammar.Grammar, error) {
	ast, err := spec.Parse(src)
	if err != nil {
		return nil, err
	}
	b := grammar.GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

// readAutomaton reads a compiled automaton when the path has the .json extension. Otherwise, it reads
// a grammar description and converts it.
func readAutomaton(path string) (*automaton.Automaton, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readCompiledAutomaton(path)
	}

	g, err := readGrammar(path)
	if err != nil {
		return nil, err
	}
	fa, err := g.ToAutomaton()
	if err != nil {
		return nil, fmt.Errorf("Cannot convert the grammar into an automaton: %w", err)
	}
	return fa, nil
}

func readCompiledAutomaton(path string) (*automaton.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the compiled automaton %s: %w", path, err)
	}
	c := &spec.CompiledAutomaton{}
	err = json.Unmarshal(data, c)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the compiled automaton %s: %w", path, err)
	}
	fa, err := automaton.Decode(c)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the compiled automaton %s: %w", path, err)
	}
	return fa, nil
}
