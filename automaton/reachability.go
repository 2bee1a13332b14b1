package automaton

import "github.com/edwingeng/deque"

// Reachable returns the states reachable from the start state, the start state included.
func (a *Automaton) Reachable() []State {
	succs := map[State][]State{}
	for k, tos := range a.transitions {
		succs[k.from] = append(succs[k.from], tos...)
	}

	visited := map[State]struct{}{
		a.start: {},
	}
	states := deque.NewDeque()
	states.PushBack(a.start)
	for states.Len() != 0 {
		s := states.Front().(State)
		states.PopFront()

		for _, to := range succs[s] {
			if _, ok := visited[to]; ok {
				continue
			}
			visited[to] = struct{}{}
			states.PushBack(to)
		}
	}

	return sortStates(visited)
}

// Unreachable returns the states that no input can lead to.
func (a *Automaton) Unreachable() []State {
	reachable := StateSet(a.Reachable())
	var states []State
	for _, s := range a.States() {
		if reachable.Contains(s) {
			continue
		}
		states = append(states, s)
	}
	return states
}
