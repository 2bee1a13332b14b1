package spec

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"
)

// CompiledAutomaton is the portable form of a finite automaton. Each element of Alphabet and each Symbol
// of a transition is a string consisting of exactly one character.
type CompiledAutomaton struct {
	Name        string             `json:"name"`
	States      []string           `json:"states"`
	Alphabet    []string           `json:"alphabet"`
	Transitions []*TransitionEntry `json:"transitions"`
	Start       string             `json:"start"`
	Accepting   []string           `json:"accepting"`
	Digest      string             `json:"digest,omitempty"`
}

type TransitionEntry struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	To     []string `json:"to"`
}

// ComputeDigest returns the BLAKE3 hash of the automaton in hexadecimal. The Digest field itself is
// excluded from the hash.
func (a *CompiledAutomaton) ComputeDigest() (string, error) {
	c := *a
	c.Digest = ""
	b, err := json.Marshal(&c)
	if err != nil {
		return "", err
	}
	h := blake3.New()
	_, err = h.Write(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
