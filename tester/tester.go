package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/regular/automaton"
)

type TestResult struct {
	TestCasePath string
	Line         int
	Input        string
	Error        error
}

func (r *TestResult) String() string {
	loc := r.TestCasePath
	if r.Line > 0 {
		loc = fmt.Sprintf("%v:%v", r.TestCasePath, r.Line)
	}
	if r.Error != nil {
		const indent1 = "    "

		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", loc, indent1, strings.Join(msgLines, "\n"+indent1))
	}
	return fmt.Sprintf("Passed %v", loc)
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads the test cases in a file, or in every file under a directory recursively. A file that
// cannot be read yields one entry with Error set.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		cs, err := parseTestFile(testPath)
		if err != nil {
			return []*TestCaseWithMetadata{
				{
					FilePath: testPath,
					Error:    err,
				},
			}
		}
		var cases []*TestCaseWithMetadata
		for _, c := range cs {
			cases = append(cases, &TestCaseWithMetadata{
				TestCase: c,
				FilePath: testPath,
			})
		}
		return cases
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestFile(testPath string) ([]*TestCase, error) {
	f, err := os.Open(testPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCases(f)
}

type Tester struct {
	Automaton *automaton.Automaton
	Cases     []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Automaton, c))
	}
	return rs
}

func runTest(a *automaton.Automaton, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	accepted := a.Accepts(c.TestCase.Input)
	if accepted != c.TestCase.Accepted {
		return &TestResult{
			TestCasePath: c.FilePath,
			Line:         c.TestCase.Line,
			Input:        c.TestCase.Input,
			Error:        fmt.Errorf("%q was %v, but it was expected to be %v", c.TestCase.Input, verdict(accepted), verdict(c.TestCase.Accepted)),
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
		Line:         c.TestCase.Line,
		Input:        c.TestCase.Input,
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
