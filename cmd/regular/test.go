package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nihei9/regular/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <grammar file path>|<compiled automaton path> <test file path>|<test directory path>",
		Short:   "Test a grammar",
		Example: `  regular test grammar.rg test`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fa, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	var cs []*tester.TestCaseWithMetadata
	{
		cs = tester.ListTestCases(args[1])
		errOccurred := false
		for _, c := range cs {
			if c.Error != nil {
				fmt.Fprintf(os.Stderr, "Failed to read a test case or a directory: %v\n%v\n", c.FilePath, c.Error)
				errOccurred = true
			}
		}
		if errOccurred {
			return errors.New("Cannot run test")
		}
	}

	t := &tester.Tester{
		Automaton: fa,
		Cases:     cs,
	}
	rs := t.Run()
	failed := color.New(color.FgRed).SprintFunc()
	testFailed := false
	for _, r := range rs {
		if r.Error != nil {
			fmt.Fprintln(os.Stdout, failed(r))
			testFailed = true
			continue
		}
		fmt.Fprintln(os.Stdout, r)
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}
