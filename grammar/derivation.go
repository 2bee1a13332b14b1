package grammar

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// DefaultMaxRounds is the number of rewriting rounds Generate performs at most. A production such as
// L → aL can be rewritten forever, so a derivation stops after this many rounds even if non-terminals
// remain.
const DefaultMaxRounds = 20

type GenerateOption func(config *generateConfig)

type generateConfig struct {
	maxRounds int
}

// MaxRounds overrides DefaultMaxRounds. A negative value is treated as zero.
func MaxRounds(n int) GenerateOption {
	return func(config *generateConfig) {
		if n < 0 {
			n = 0
		}
		config.maxRounds = n
	}
}

// Generate derives a string from the start symbol. Each round rewrites every non-terminal of the current
// string at once with one of its alternatives chosen uniformly at random.
//
// When the round limit is reached first, Generate returns the partially rewritten string as it is, so the
// result may contain non-terminals. Use IsTerminalString to tell such a result apart.
// When rng is nil, Generate uses a generator seeded with the current time.
func (g *Grammar) Generate(rng *rand.Rand, opts ...GenerateOption) (string, error) {
	config := &generateConfig{
		maxRounds: DefaultMaxRounds,
	}
	for _, opt := range opts {
		opt(config)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	current := string(g.start)
	for round := 0; round < config.maxRounds; round++ {
		if g.IsTerminalString(current) {
			break
		}

		var b strings.Builder
		for _, sym := range current {
			if !g.nonTerminals.contains(sym) {
				b.WriteRune(sym)
				continue
			}
			alts := g.productions[sym]
			if len(alts) == 0 {
				return "", fmt.Errorf("%w: %c", ErrNoProduction, sym)
			}
			b.WriteString(alts[rng.Intn(len(alts))])
		}
		current = b.String()
	}

	return current, nil
}
