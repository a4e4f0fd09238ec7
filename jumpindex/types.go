package jumpindex

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/bitmatrix"
	"github.com/dagspan/dagspan/levelset"
)

// TrimmingStrategy selects how aggressively the indexed DAG is pruned before
// its jump tables are finalized.
type TrimmingStrategy int

const (
	// NoTrimming keeps every vertex the forward pass discovers.
	NoTrimming TrimmingStrategy = iota
	// PartialTrimming runs the backward sweep but not the final-state
	// restriction: a level vertex survives if it has a surviving successor,
	// regardless of whether the last level can close to an accepting state.
	PartialTrimming
	// FullTrimming additionally restricts the last level to vertices that
	// can close to an accepting state (considering the assignation closure)
	// before running the backward sweep.
	FullTrimming
)

// UnboundedJumpDistance disables the reach-matrix materialization cap: every
// reach entry is precomputed and cached regardless of hop distance.
const UnboundedJumpDistance = 0

// Index is the built, immutable jump index over one variable automaton and
// one text. Construct with New, then Build.
type Index struct {
	aut          *automaton.Automaton
	text         []rune
	byteOffset   []int // byteOffset[i] = byte offset of the i-th rune, len = len(text)+1
	jumpDistance int

	built        bool
	disconnected bool
	lastLevel    int

	ls  *levelset.LevelSet
	nj  []*bitset.BitSet       // nj[level], within-level indexed
	jl  [][]int                // jl[level][withinLevelIdx]
	rlevel [][]int             // rlevel[level], sorted ascending, distinct sublevels
	reach  [][]*bitmatrix.Matrix // reach[level][k], shape |V[level]| x |V[rlevel[level][k]]|; nil if beyond the materialization cap

	// oneStep[level] is the jumpable-edge matrix from level to level-1:
	// shape |V[level]| x |V[level-1]|. Always materialized (level 0 has none);
	// used both to assemble reach[level] and to decompose a jump whose reach
	// entry is not materialized.
	oneStep []*bitmatrix.Matrix
}

// New returns an unbuilt Index over aut and text. jumpDistance caps reach
// matrix materialization in hops; UnboundedJumpDistance (0) materializes
// every reach entry.
func New(aut *automaton.Automaton, text []rune, jumpDistance int) *Index {
	offsets := make([]int, len(text)+1)
	off := 0
	for i, r := range text {
		offsets[i] = off
		off += runeLen(r)
	}
	offsets[len(text)] = off
	return &Index{
		aut:          aut,
		text:         text,
		byteOffset:   offsets,
		jumpDistance: jumpDistance,
	}
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
