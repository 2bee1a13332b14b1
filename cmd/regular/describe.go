package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/regular/automaton"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar file path>|<compiled automaton path>",
		Short:   "Print a finite automaton in readable format",
		Example: `  regular describe grammar.rg`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) (retErr error) {
	defer reportPanic(&retErr)

	fa, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	writeDescription(os.Stdout, fa)

	return nil
}

func writeDescription(w io.Writer, fa *automaton.Automaton) {
	fmt.Fprintf(w, "# States\n\n")
	for _, s := range fa.States() {
		var marks string
		if s == fa.Start() {
			marks += " (start)"
		}
		if fa.IsAccepting(s) {
			marks += " (accepting)"
		}
		fmt.Fprintf(w, "%v%v\n", s, marks)
	}

	fmt.Fprintf(w, "\n# Alphabet\n\n")
	for _, sym := range fa.Alphabet() {
		fmt.Fprintf(w, "%c\n", sym)
	}

	fmt.Fprintf(w, "\n# Transitions\n\n")
	for _, t := range fa.Transitions() {
		fmt.Fprintf(w, "%v --%c--> %v\n", t.From, t.Symbol, t.To)
	}

	unreachable := fa.Unreachable()
	if len(unreachable) > 0 {
		fmt.Fprintf(w, "\n# Unreachable States\n\n")
		for _, s := range unreachable {
			fmt.Fprintf(w, "%v\n", s)
		}
	}
}
