package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/nihei9/regular/grammar"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	count     *int
	seed      *int64
	maxRounds *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate <grammar file path>",
		Short:   "Generate random strings from a grammar",
		Example: `  regular generate grammar.rg -n 10 --seed 1`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.count = cmd.Flags().IntP("count", "n", 5, "number of strings to generate")
	generateFlags.seed = cmd.Flags().Int64("seed", 0, "seed of the random number generator (default current time)")
	generateFlags.maxRounds = cmd.Flags().Int("max-rounds", grammar.DefaultMaxRounds, "maximum number of rewriting rounds per string")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) (retErr error) {
	defer reportPanic(&retErr)

	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	seed := *generateFlags.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return writeStrings(os.Stdout, g, rng, *generateFlags.count, *generateFlags.maxRounds)
}

// writeStrings writes count strings derived from g, one per line. Partial derivations are marked.
func writeStrings(w io.Writer, g *grammar.Grammar, rng *rand.Rand, count, maxRounds int) error {
	partial := color.New(color.FgYellow).SprintFunc()
	for i := 0; i < count; i++ {
		s, err := g.Generate(rng, grammar.MaxRounds(maxRounds))
		if err != nil {
			return fmt.Errorf("Cannot generate a string: %w", err)
		}
		if !g.IsTerminalString(s) {
			fmt.Fprintf(w, "%v %v\n", s, partial("(partial; the round limit was reached)"))
			continue
		}
		fmt.Fprintln(w, s)
	}
	return nil
}
