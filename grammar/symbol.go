package grammar

import "sort"

type symbolSet map[rune]struct{}

func newSymbolSet(syms ...rune) symbolSet {
	s := symbolSet{}
	for _, sym := range syms {
		s[sym] = struct{}{}
	}
	return s
}

func (s symbolSet) contains(sym rune) bool {
	_, ok := s[sym]
	return ok
}

func (s symbolSet) sorted() []rune {
	syms := make([]rune, 0, len(s))
	for sym := range s {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
