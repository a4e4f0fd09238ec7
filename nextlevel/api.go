package nextlevel

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dagspan/dagspan/automaton"
)

// Empty returns an already-exhausted Enumerator: Next always reports done.
// Used to give a driver a well-defined zero state before its first frontier
// is known.
func Empty() *Enumerator {
	return &Enumerator{done: true, almostDone: true}
}

// Explore starts a backward exploration from gamma: the set of markers
// reachable by any reverse assignation path from gamma, in first-encountered
// BFS order, and the backtracking stack seeded with the empty (Sp, Sm) pair.
func Explore(aut *automaton.Automaton, gamma []automaton.State) (*Enumerator, error) {
	if len(gamma) == 0 {
		return nil, ErrEmptyFrontier
	}

	expected := expectedMarkers(aut, gamma)

	e := &Enumerator{
		aut:      aut,
		gamma:    append([]automaton.State{}, gamma...),
		expected: expected,
	}
	if len(expected) >= 2 {
		e.stack = []frame{{
			sp: bitset.New(uint(aut.NumMarkers())),
			sm: bitset.New(uint(aut.NumMarkers())),
		}}
	}
	return e, nil
}

// expectedMarkers collects, via BFS over the reverse assignation adjacency
// from gamma, the distinct markers reachable backward, in first-seen order.
func expectedMarkers(aut *automaton.Automaton, gamma []automaton.State) []automaton.Marker {
	seenState := make(map[automaton.State]struct{}, len(gamma))
	seenMarker := make(map[int]struct{})
	var expected []automaton.Marker

	queue := append([]automaton.State{}, gamma...)
	for _, s := range gamma {
		seenState[s] = struct{}{}
	}
	for len(queue) > 0 {
		source := queue[0]
		queue = queue[1:]
		for _, e := range aut.RevMarkerEdges(source) {
			if _, ok := seenMarker[e.Marker.ID]; !ok {
				seenMarker[e.Marker.ID] = struct{}{}
				expected = append(expected, e.Marker)
			}
			if _, ok := seenState[e.From]; !ok {
				seenState[e.From] = struct{}{}
				queue = append(queue, e.From)
			}
		}
	}
	return expected
}

// Next returns the next Step, or ok == false when the enumerator is
// exhausted.
func (e *Enumerator) Next() (Step, bool) {
	if e.done {
		return Step{}, false
	}

	if e.almostDone {
		marker := e.expected[0]
		gamma2 := e.oneMarkerPredecessors()
		e.done = true
		return Step{Markers: []automaton.Marker{marker}, Frontier: gamma2}, true
	}

	if len(e.expected) <= 1 {
		e.almostDone = true
		if len(e.expected) == 0 {
			e.done = true
		}
		return Step{Markers: nil, Frontier: append([]automaton.State{}, e.gamma...)}, true
	}

	for len(e.stack) > 0 {
		f := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		gamma2 := e.follow(f.sp, f.sm)
		if len(gamma2) == 0 {
			continue
		}

		sp, sm, markers := f.sp, f.sm, f.markers
		recompute := false
		for sp.Count()+sm.Count() < uint(len(e.expected)) {
			depth := int(sp.Count() + sm.Count())
			next := e.expected[depth]
			sm.Set(uint(next.ID))
			candidate := e.follow(sp, sm)

			if len(candidate) > 0 {
				newSp := sp.Clone()
				newSp.Set(uint(next.ID))
				newSm := sm.Clone()
				newSm.Clear(uint(next.ID))
				newMarkers := append(append([]automaton.Marker{}, markers...), next)
				e.stack = append(e.stack, frame{sp: newSp, sm: newSm, markers: newMarkers})
				gamma2 = candidate
				recompute = false
			} else {
				sm.Clear(uint(next.ID))
				sp.Set(uint(next.ID))
				markers = append(markers, next)
				recompute = true
			}
		}
		if recompute {
			gamma2 = e.follow(sp, sm)
		}

		return Step{Markers: markers, Frontier: gamma2}, true
	}

	e.done = true
	return Step{}, false
}

// oneMarkerPredecessors returns every state reached by any reverse
// assignation edge from gamma; valid only when exactly one marker is
// reachable backward, so every such edge necessarily carries that marker.
func (e *Enumerator) oneMarkerPredecessors() []automaton.State {
	seen := map[automaton.State]struct{}{}
	var out []automaton.State
	for _, s := range e.gamma {
		for _, edge := range e.aut.RevMarkerEdges(s) {
			if _, ok := seen[edge.From]; !ok {
				seen[edge.From] = struct{}{}
				out = append(out, edge.From)
			}
		}
	}
	return out
}

// follow performs the reverse search described by follow(gamma, Sp, Sm): it
// walks backward through marker edges not in sm, counting edges in sp, and
// returns every state reached with an sp-edge count equal to sp.Count().
func (e *Enumerator) follow(sp, sm *bitset.BitSet) []automaton.State {
	numStates := e.aut.NumStates()
	pathSet := make([]int, numStates)
	for i := range pathSet {
		pathSet[i] = -1
	}

	type item struct {
		source    automaton.State
		numLabels int
	}
	stack := make([]item, 0, len(e.gamma))
	for _, s := range e.gamma {
		stack = append(stack, item{source: s, numLabels: 0})
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pathSet[it.source] >= it.numLabels {
			continue
		}
		pathSet[it.source] = it.numLabels

		for _, edge := range e.aut.RevMarkerEdges(it.source) {
			label := edge.Marker.ID
			target := edge.From
			if sm.Test(uint(label)) || pathSet[target] > it.numLabels {
				continue
			}
			if sp.Test(uint(label)) {
				stack = append(stack, item{source: target, numLabels: it.numLabels + 1})
			} else if pathSet[target] < it.numLabels {
				stack = append(stack, item{source: target, numLabels: it.numLabels})
			}
		}
	}

	expected := int(sp.Count())
	var out []automaton.State
	for v, n := range pathSet {
		if n == expected {
			out = append(out, automaton.State(v))
		}
	}
	return out
}
