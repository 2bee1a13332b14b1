package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	noColor *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "regular",
	Short: "Derive strings from a regular grammar and test them with a finite automaton",
	Long: `regular provides the following features:
- Generates random strings from a right-regular grammar.
- Converts the grammar into a finite automaton and saves it in a portable format.
- Tells whether strings belong to the language of the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *rootFlags.noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootFlags.noColor = rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func Execute() error {
	return rootCmd.Execute()
}

// reportPanic turns a panic into an error and prints it with a stack trace. Call it with defer.
func reportPanic(retErr *error) {
	v := recover()
	if v == nil {
		return
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("an unexpected error occurred: %v", v)
	}
	fmt.Fprintf(os.Stderr, "%v:\n%v", err, string(debug.Stack()))
	*retErr = err
}
