package jumpindex

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dagspan/dagspan/automaton"
)

// Disconnected reports whether construction discovered an empty level,
// meaning the automaton and text share no accepting run.
func (idx *Index) Disconnected() bool {
	return idx.disconnected
}

// NumLevels returns the number of levels built (len(text)+1 when connected,
// fewer when disconnected mid-construction).
func (idx *Index) NumLevels() int {
	return idx.lastLevel + 1
}

// LastLevel returns the highest level index built.
func (idx *Index) LastLevel() int {
	return idx.lastLevel
}

// ByteOffset returns the byte offset into the original text that level
// corresponds to.
func (idx *Index) ByteOffset(level int) int {
	return idx.byteOffset[level]
}

// Automaton returns the automaton this index was built over.
func (idx *Index) Automaton() *automaton.Automaton {
	return idx.aut
}

// LevelStates returns the states registered at level, in first-seen order.
func (idx *Index) LevelStates(level int) []automaton.State {
	return idx.ls.GetLevel(level)
}

// VertexIndex returns the within-level index of s at level.
func (idx *Index) VertexIndex(level int, s automaton.State) (int, bool) {
	return idx.ls.GetVertexIndex(level, s)
}

// IsNonJumpable reports whether s at level was reached via an assignation
// edge within the level (as opposed to a character step from level-1).
func (idx *Index) IsNonJumpable(level int, s automaton.State) bool {
	i, ok := idx.ls.GetVertexIndex(level, s)
	if !ok {
		return false
	}
	return idx.nj[level].Test(uint(i))
}

// Jump answers the jump(level, frontier) query: it returns the closest
// ancestor level that could carry a capture event reachable from frontier,
// and the frontier seen at that level. If jumpLevel == level the caller
// should read markers at the given level directly; the returned frontier is
// nil in that case.
func (idx *Index) Jump(level int, frontier []automaton.State) (jumpLevel int, outFrontier []automaton.State, err error) {
	if !idx.built {
		return 0, nil, ErrNotBuilt
	}
	if idx.disconnected {
		return 0, nil, ErrDisconnected
	}
	if level < 0 || level > idx.lastLevel {
		return 0, nil, ErrLevelOutOfRange
	}
	if len(frontier) == 0 {
		return 0, nil, ErrEmptyFrontier
	}

	levelStates := idx.ls.GetLevel(level)
	v := bitset.New(uint(len(levelStates)))
	jStar := 0
	for _, q := range frontier {
		i, ok := idx.ls.GetVertexIndex(level, q)
		if !ok {
			continue
		}
		v.Set(uint(i))
		if idx.jl[level][i] > jStar {
			jStar = idx.jl[level][i]
		}
	}

	if jStar == level {
		return level, nil, nil
	}

	resultVec, err := idx.reachVector(level, jStar, v)
	if err != nil {
		return 0, nil, err
	}

	targetStates := idx.ls.GetLevel(jStar)
	out := make([]automaton.State, 0, resultVec.Count())
	for i, ok := resultVec.NextSet(0); ok; i, ok = resultVec.NextSet(i + 1) {
		out = append(out, targetStates[i])
	}
	return jStar, out, nil
}

// reachVector computes the image of v (indexed over V[fromLevel]) under the
// jumpable-edge relation into V[targetLevel]. It prefers a materialized
// reach matrix; when the hop distance exceeds the materialization cap it
// decomposes into one-level steps using the always-materialized oneStep
// matrices.
func (idx *Index) reachVector(fromLevel, targetLevel int, v *bitset.BitSet) (*bitset.BitSet, error) {
	if fromLevel == targetLevel {
		return v, nil
	}
	if k := indexInSorted(idx.rlevel[fromLevel], targetLevel); k >= 0 && idx.reach[fromLevel][k] != nil {
		return idx.reach[fromLevel][k].ColMul(v)
	}
	prev, err := idx.oneStep[fromLevel].ColMul(v)
	if err != nil {
		return nil, err
	}
	return idx.reachVector(fromLevel-1, targetLevel, prev)
}

// Stats summarizes the memory footprint of an Index, for diagnostics.
type Stats struct {
	Levels         int
	Vertices       int
	ReachBits      int
	MaterializedReach int
}

// MemoryUsage reports level/vertex counts and the total bits held across all
// materialized reach matrices. Diagnostic only; never affects enumeration.
func (idx *Index) MemoryUsage() Stats {
	s := Stats{Levels: idx.NumLevels()}
	for l := 0; l <= idx.lastLevel; l++ {
		s.Vertices += len(idx.ls.GetLevel(l))
	}
	for _, row := range idx.reach {
		for _, m := range row {
			if m == nil {
				continue
			}
			s.MaterializedReach++
			s.ReachBits += m.Rows() * m.Cols()
		}
	}
	return s
}
