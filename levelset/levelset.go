package levelset

import "github.com/dagspan/dagspan/automaton"

// LevelSet is an ordered, per-level registry of automaton states. V[level]
// is the ordered list of states registered at level; idx[level][state] is
// its position in that list.
//
// Complexity: Register/GetVertexIndex are O(1) amortized; GetLevel is O(1).
type LevelSet struct {
	levels [][]automaton.State
	index  []map[automaton.State]int
}

// New returns an empty LevelSet with no levels.
func New() *LevelSet {
	return &LevelSet{}
}

// AddLevel appends a new, empty level and returns its index.
//
// Complexity: O(1) amortized.
func (ls *LevelSet) AddLevel() int {
	ls.levels = append(ls.levels, nil)
	ls.index = append(ls.index, make(map[automaton.State]int))
	return len(ls.levels) - 1
}

// Register inserts s into level if not already present. Idempotent: later
// calls for an already-registered state are no-ops and do not change its
// index. Returns the (possibly pre-existing) index of s within level.
//
// Complexity: O(1) amortized.
func (ls *LevelSet) Register(level int, s automaton.State) int {
	if idx, ok := ls.index[level][s]; ok {
		return idx
	}
	idx := len(ls.levels[level])
	ls.levels[level] = append(ls.levels[level], s)
	ls.index[level][s] = idx
	return idx
}

// GetLevel returns the ordered states registered at level. The returned
// slice must not be mutated by the caller.
func (ls *LevelSet) GetLevel(level int) []automaton.State {
	return ls.levels[level]
}

// GetVertexIndex returns the within-level index of s at level, or false if s
// was never registered there.
func (ls *LevelSet) GetVertexIndex(level int, s automaton.State) (int, bool) {
	idx, ok := ls.index[level][s]
	return idx, ok
}

// HasLevel reports whether level has been created (via AddLevel) and is
// non-empty. An empty level signals a disconnected index (see jumpindex).
func (ls *LevelSet) HasLevel(level int) bool {
	return level >= 0 && level < len(ls.levels) && len(ls.levels[level]) > 0
}

// NumLevels returns the number of levels created so far, including any that
// are currently empty.
func (ls *LevelSet) NumLevels() int {
	return len(ls.levels)
}
