package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/regular/automaton"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [grammar file path]",
		Short:   "Convert a grammar into a finite automaton",
		Example: `  regular compile grammar.rg -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	defer reportPanic(&retErr)

	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}

	g, err := readGrammar(grmPath)
	if err != nil {
		return err
	}
	fa, err := g.ToAutomaton()
	if err != nil {
		return fmt.Errorf("Cannot convert the grammar into an automaton: %w", err)
	}

	name := g.Name()
	if name == "" {
		name = "stdin"
		if grmPath != "" {
			name = strings.TrimSuffix(filepath.Base(grmPath), filepath.Ext(grmPath))
		}
	}
	c, err := automaton.Encode(name, fa)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *compileFlags.output != "" {
		f, err := os.OpenFile(*compileFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot write an output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))

	return nil
}
