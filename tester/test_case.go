package tester

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TestCase expects the automaton to accept or reject an input.
//
// In a test file, each line is a test case such as `accept abdc` or `reject abcc`. The input is the rest of
// the line without surrounding white spaces, or a Go string literal when it starts with a double quote.
// `accept` alone means the empty string. Blank lines and lines starting with // are ignored.
type TestCase struct {
	Line     int
	Input    string
	Accepted bool
}

func ParseTestCases(src io.Reader) ([]*TestCase, error) {
	var cs []*TestCase
	s := bufio.NewScanner(src)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		c, err := parseTestCase(line)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", row, err)
		}
		c.Line = row
		cs = append(cs, c)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cs, nil
}

func parseTestCase(line string) (*TestCase, error) {
	verdict, input := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		verdict, input = line[:i], strings.TrimSpace(line[i+1:])
	}

	c := &TestCase{}
	switch verdict {
	case "accept":
		c.Accepted = true
	case "reject":
		c.Accepted = false
	default:
		return nil, fmt.Errorf("a test case must start with accept or reject: %v", line)
	}

	if strings.HasPrefix(input, `"`) {
		s, err := strconv.Unquote(input)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal: %v", input)
		}
		input = s
	}
	c.Input = input

	return c, nil
}
