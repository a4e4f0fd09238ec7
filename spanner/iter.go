package spanner

import (
	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/jumpindex"
	"github.com/dagspan/dagspan/mapping"
	"github.com/dagspan/dagspan/nextlevel"
)

// stackFrame is one pending (level, frontier, partial mapping) triple: the
// enumeration resumes a level-L next-level exploration over frontier once
// the current one is exhausted.
type stackFrame struct {
	level    int
	frontier []automaton.State
	events   []mapping.Event
}

// Iterator walks a preprocessed Spanner's index backward from its last
// level to its first, yielding one mapping.Mapping per accepting path. An
// Iterator is single-use and not safe for concurrent use, but multiple
// Iterators may coexist over the same Spanner.
type Iterator struct {
	sp  *Spanner
	idx *jumpindex.Index

	stack      []stackFrame
	curLevel   int
	curEvents  []mapping.Event
	curEnum    *nextlevel.Enumerator
	exhausted  bool
}

// newIterator seeds the stack with the last level's states that are both
// reachable and declared accepting by the automaton, or leaves the
// iterator exhausted if the index is disconnected or no such state exists.
func newIterator(s *Spanner) *Iterator {
	it := &Iterator{sp: s, idx: s.idx, curEnum: nextlevel.Empty()}

	if s.idx.Disconnected() {
		it.exhausted = true
		return it
	}

	last := s.idx.LastLevel()
	finalSet := make(map[automaton.State]struct{})
	for _, f := range s.aut.Finals() {
		finalSet[f] = struct{}{}
	}

	var seed []automaton.State
	for _, q := range s.idx.LevelStates(last) {
		if _, ok := finalSet[q]; ok {
			seed = append(seed, q)
		}
	}

	if len(seed) == 0 {
		it.exhausted = true
		return it
	}
	it.stack = []stackFrame{{level: last, frontier: seed}}
	return it
}

// Next returns the next Mapping, or ok == false when every accepting path
// has been produced.
func (it *Iterator) Next() (*mapping.Mapping, bool, error) {
	if it.exhausted {
		return nil, false, nil
	}

	for {
		for {
			step, ok := it.curEnum.Next()
			if !ok {
				break
			}
			if len(step.Frontier) == 0 {
				continue
			}

			events := append(append([]mapping.Event{}, it.curEvents...), it.eventsFor(step.Markers)...)

			if it.curLevel == 0 {
				if !containsState(step.Frontier, it.sp.aut.Initial()) {
					continue
				}
				return mapping.FromEvents(it.sp.text, events), true, nil
			}

			jumpLevel, jumpFrontier, err := it.idx.Jump(it.curLevel, step.Frontier)
			if err != nil {
				it.exhausted = true
				return nil, false, err
			}

			frontier := step.Frontier
			if jumpLevel != it.curLevel {
				frontier = jumpFrontier
			}
			it.stack = append(it.stack, stackFrame{level: jumpLevel, frontier: frontier, events: events})
		}

		if len(it.stack) == 0 {
			it.exhausted = true
			return nil, false, nil
		}

		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		it.curLevel = top.level
		it.curEvents = top.events

		enum, err := nextlevel.Explore(it.sp.aut, top.frontier)
		if err != nil {
			it.exhausted = true
			return nil, false, err
		}
		it.curEnum = enum
	}
}

// eventsFor stamps each fired marker with the byte offset of curLevel.
func (it *Iterator) eventsFor(markers []automaton.Marker) []mapping.Event {
	if len(markers) == 0 {
		return nil
	}
	pos := it.idx.ByteOffset(it.curLevel)
	out := make([]mapping.Event, len(markers))
	for i, m := range markers {
		out[i] = mapping.Event{Marker: m, Pos: pos}
	}
	return out
}

func containsState(states []automaton.State, target automaton.State) bool {
	for _, s := range states {
		if s == target {
			return true
		}
	}
	return false
}
