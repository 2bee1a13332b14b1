package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nihei9/regular/automaton"
	"github.com/spf13/cobra"
)

var acceptFlags = struct {
	trace *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "accept <grammar file path>|<compiled automaton path> [strings...]",
		Short: "Tell whether strings belong to the language",
		Long: `accept tells whether strings belong to the language.
When no strings are given, accept reads one string per line from stdin until EOF or a line saying exit or q.`,
		Example: `  regular accept grammar.rg abdc abcc
  regular accept grammar.json < strings.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAccept,
	}
	acceptFlags.trace = cmd.Flags().Bool("trace", false, "print the set of live states after each symbol")
	rootCmd.AddCommand(cmd)
}

func runAccept(cmd *cobra.Command, args []string) (retErr error) {
	defer reportPanic(&retErr)

	fa, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	if len(args) > 1 {
		for _, s := range args[1:] {
			printVerdict(os.Stdout, fa, s)
		}
		return nil
	}

	return acceptLines(os.Stdin, os.Stdout, fa)
}

// acceptLines prints a verdict for each line of r until EOF or a line saying exit or q.
func acceptLines(r io.Reader, w io.Writer, fa *automaton.Automaton) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		input := strings.TrimSpace(s.Text())
		switch strings.ToLower(input) {
		case "exit", "q":
			return nil
		}
		printVerdict(w, fa, input)
	}
	return s.Err()
}

func printVerdict(w io.Writer, fa *automaton.Automaton, input string) {
	if *acceptFlags.trace {
		syms := []rune(input)
		for i, set := range fa.Trace(input) {
			if i == 0 {
				fmt.Fprintf(w, "  %v\n", set)
				continue
			}
			fmt.Fprintf(w, "  %q -> %v\n", syms[i-1], set)
		}
	}

	if fa.Accepts(input) {
		fmt.Fprintf(w, "%v The string '%v' belongs to the language.\n", color.New(color.FgGreen, color.Bold).Sprint("SUCCESS!"), input)
		return
	}
	fmt.Fprintf(w, "%v The string '%v' is NOT in the language.\n", color.New(color.FgRed, color.Bold).Sprint("REJECTED!"), input)
}
