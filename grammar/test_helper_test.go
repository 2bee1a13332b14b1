package grammar

import "testing"

// newVariant7Grammar returns the grammar S → aD, D → bE, E → cF | dL, F → dD, L → aL | bL | c.
func newVariant7Grammar(t *testing.T) *Grammar {
	t.Helper()

	g, err := NewGrammar(
		[]rune{'S', 'D', 'E', 'F', 'L'},
		[]rune{'a', 'b', 'c', 'd'},
		map[rune][]string{
			'S': {"aD"},
			'D': {"bE"},
			'E': {"cF", "dL"},
			'F': {"dD"},
			'L': {"aL", "bL", "c"},
		},
		'S',
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
