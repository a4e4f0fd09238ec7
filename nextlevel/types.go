package nextlevel

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dagspan/dagspan/automaton"
)

// Step is one (requiredMarkers, frontier) pair yielded by an Enumerator: a
// set of markers that must fire at the current level, and the set of states
// at the same level from which the frontier is reached using exactly that
// marker set.
type Step struct {
	Markers  []automaton.Marker
	Frontier []automaton.State
}

// frame is one entry of the backtracking stack: the required (Sp) and
// forbidden (Sm) marker-id sets explored so far, plus the ordered list of
// markers committed to Sp.
type frame struct {
	sp, sm  *bitset.BitSet
	markers []automaton.Marker
}

// Enumerator is a finite, lazy, single-use sequence of Steps over one
// frontier. Restart requires a fresh call to Explore.
type Enumerator struct {
	aut    *automaton.Automaton
	gamma  []automaton.State
	expected []automaton.Marker

	stack      []frame
	done       bool
	almostDone bool
}
