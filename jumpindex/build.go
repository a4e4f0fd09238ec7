package jumpindex

import (
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/bitmatrix"
	"github.com/dagspan/dagspan/levelset"
)

// BuildTimes records wall-clock time spent in each construction phase.
// Trim and Reindex are zero when strategy is NoTrimming (no separate passes
// ran).
type BuildTimes struct {
	Construction time.Duration
	Trim         time.Duration
	Reindex      time.Duration
}

// aliveFunc reports whether state s survives trimming at level. A nil
// aliveFunc means every state discovered by the raw forward step survives.
type aliveFunc func(level int, s automaton.State) bool

// built accumulates the outcome of one forward pass, independent of the
// receiver so that an initial, unrestricted pass can be discarded (or used
// only to drive trimming) without disturbing a prior committed Index.
type built struct {
	ls        *levelset.LevelSet
	nj        []*bitset.BitSet
	jl        [][]int
	rlevel    [][]int
	reach     [][]*bitmatrix.Matrix
	oneStep   []*bitmatrix.Matrix
	lastLevel int
	disconnected bool
}

// Build runs the construction phase: an initial forward pass, an optional
// trimming sweep, and (when trimming ran and the index survived) a final
// forward pass ("reindex") that recomputes jl, rlevel, and reach over the
// trimmed level populations. Returns ErrAlreadyBuilt if called twice.
func (idx *Index) Build(strategy TrimmingStrategy) (BuildTimes, error) {
	if idx.built {
		return BuildTimes{}, ErrAlreadyBuilt
	}

	start := time.Now()
	raw := idx.forwardPass(nil)
	times := BuildTimes{Construction: time.Since(start)}

	if strategy == NoTrimming || raw.disconnected {
		idx.commit(raw)
		return times, nil
	}

	start = time.Now()
	alive := idx.computeAlive(raw, strategy)
	times.Trim = time.Since(start)
	if alive == nil {
		idx.disconnected = true
		idx.lastLevel = raw.lastLevel
		idx.built = true
		return times, nil
	}

	start = time.Now()
	final := idx.forwardPass(func(level int, s automaton.State) bool {
		_, ok := alive[level][s]
		return ok
	})
	times.Reindex = time.Since(start)
	idx.commit(final)
	return times, nil
}

func (idx *Index) commit(b *built) {
	idx.ls = b.ls
	idx.nj = b.nj
	idx.jl = b.jl
	idx.rlevel = b.rlevel
	idx.reach = b.reach
	idx.oneStep = b.oneStep
	idx.lastLevel = b.lastLevel
	idx.disconnected = b.disconnected
	idx.built = true
}

// forwardPass registers levels one character at a time, extends each level
// through the assignation closure, and maintains jl/NJ/rlevel/reach as it
// goes. When alive is non-nil it restricts registration to states alive
// reports true for, implementing the "reindex" pass after trimming.
func (idx *Index) forwardPass(alive aliveFunc) *built {
	b := &built{ls: levelset.New()}
	b.ls.AddLevel()

	q0 := idx.aut.Initial()
	if alive == nil || alive(0, q0) {
		b.ls.Register(0, q0)
	}

	njSet0 := map[automaton.State]struct{}{}
	for _, q := range append([]automaton.State{}, b.ls.GetLevel(0)...) {
		for _, q2 := range idx.aut.AssignationClosure(q) {
			if _, already := b.ls.GetVertexIndex(0, q2); already {
				continue
			}
			if alive != nil && !alive(0, q2) {
				continue
			}
			b.ls.Register(0, q2)
			njSet0[q2] = struct{}{}
		}
	}

	level0 := b.ls.GetLevel(0)
	if len(level0) == 0 {
		b.disconnected = true
		b.lastLevel = -1
		return b
	}

	jl0 := make([]int, len(level0))
	nj0 := bitset.New(uint(len(level0)))
	for i, q := range level0 {
		if _, ok := njSet0[q]; ok {
			nj0.Set(uint(i))
		}
	}
	b.jl = append(b.jl, jl0)
	b.nj = append(b.nj, nj0)
	b.rlevel = append(b.rlevel, []int{})
	b.reach = append(b.reach, []*bitmatrix.Matrix{})
	b.oneStep = append(b.oneStep, nil)
	b.lastLevel = 0

	for i, c := range idx.text {
		level := i + 1
		b.ls.AddLevel()
		prevLevel := b.ls.GetLevel(level - 1)
		charAdj := idx.aut.CharAdjForChar(c)

		jlAcc := map[automaton.State]int{}
		for _, p := range prevLevel {
			pIdx, _ := b.ls.GetVertexIndex(level-1, p)
			var contrib int
			if b.nj[level-1].Test(uint(pIdx)) {
				contrib = level - 1
			} else {
				contrib = b.jl[level-1][pIdx]
			}
			for _, q := range charAdj[p] {
				if alive != nil && !alive(level, q) {
					continue
				}
				b.ls.Register(level, q)
				if cur, ok := jlAcc[q]; !ok || contrib > cur {
					jlAcc[q] = contrib
				}
			}
		}

		if len(b.ls.GetLevel(level)) == 0 {
			b.disconnected = true
			b.lastLevel = level - 1
			return b
		}

		njSetL := map[automaton.State]struct{}{}
		for _, q := range append([]automaton.State{}, b.ls.GetLevel(level)...) {
			for _, q2 := range idx.aut.AssignationClosure(q) {
				if _, already := b.ls.GetVertexIndex(level, q2); already {
					continue
				}
				if alive != nil && !alive(level, q2) {
					continue
				}
				b.ls.Register(level, q2)
				njSetL[q2] = struct{}{}
				jlAcc[q2] = level
			}
		}

		levelStates := b.ls.GetLevel(level)
		jlL := make([]int, len(levelStates))
		njL := bitset.New(uint(len(levelStates)))
		for i2, q := range levelStates {
			jlL[i2] = jlAcc[q]
			if _, ok := njSetL[q]; ok {
				njL.Set(uint(i2))
			}
		}
		b.jl = append(b.jl, jlL)
		b.nj = append(b.nj, njL)

		oneStep, _ := bitmatrix.New(len(levelStates), len(prevLevel))
		for _, p := range prevLevel {
			pIdx, _ := b.ls.GetVertexIndex(level-1, p)
			for _, r := range charAdj[p] {
				for _, r2 := range idx.aut.AssignationClosure(r) {
					if qIdx, ok := b.ls.GetVertexIndex(level, r2); ok {
						oneStep.Set(qIdx, pIdx, true)
					}
				}
			}
		}
		b.oneStep = append(b.oneStep, oneStep)

		rlevelL := distinctSorted(jlL)
		b.rlevel = append(b.rlevel, rlevelL)

		reachL := make([]*bitmatrix.Matrix, len(rlevelL))
		for k, sub := range rlevelL {
			switch {
			case sub == level-1:
				reachL[k] = oneStep
			case idx.jumpDistance != UnboundedJumpDistance && level-sub > idx.jumpDistance:
				reachL[k] = nil
			default:
				kPrev := indexInSorted(b.rlevel[level-1], sub)
				if kPrev < 0 || b.reach[level-1][kPrev] == nil {
					reachL[k] = nil
					continue
				}
				prod, err := oneStep.Mul(b.reach[level-1][kPrev])
				if err != nil {
					reachL[k] = nil
					continue
				}
				reachL[k] = prod
			}
		}
		b.reach = append(b.reach, reachL)
		b.lastLevel = level

		_ = i
	}

	return b
}

// computeAlive runs the trimming policy over the raw forward pass, returning
// per-level alive sets, or nil if any level becomes empty (the index would
// be disconnected after trimming).
func (idx *Index) computeAlive(raw *built, strategy TrimmingStrategy) []map[automaton.State]struct{} {
	n := raw.lastLevel
	alive := make([]map[automaton.State]struct{}, n+1)

	lastStates := raw.ls.GetLevel(n)
	aliveLast := map[automaton.State]struct{}{}
	if strategy == FullTrimming {
		finalSet := map[automaton.State]struct{}{}
		for _, f := range idx.aut.Finals() {
			finalSet[f] = struct{}{}
		}
		for _, q := range lastStates {
			for _, q2 := range idx.aut.AssignationClosure(q) {
				if _, ok := finalSet[q2]; ok {
					aliveLast[q] = struct{}{}
					break
				}
			}
		}
	} else {
		for _, q := range lastStates {
			aliveLast[q] = struct{}{}
		}
	}
	if len(aliveLast) == 0 {
		return nil
	}
	alive[n] = aliveLast

	for l := n - 1; l >= 0; l-- {
		cur := map[automaton.State]struct{}{}
		c := idx.text[l]
		charAdj := idx.aut.CharAdjForChar(c)
		next := alive[l+1]
		for _, p := range raw.ls.GetLevel(l) {
			reached := false
			for _, r := range charAdj[p] {
				for _, r2 := range idx.aut.AssignationClosure(r) {
					if _, ok := next[r2]; ok {
						reached = true
						break
					}
				}
				if reached {
					break
				}
			}
			if reached {
				cur[p] = struct{}{}
			}
		}
		// A vertex whose assignation closure reaches a surviving vertex of
		// the same level survives too: its marker edges lead there.
		for _, p := range raw.ls.GetLevel(l) {
			for _, p2 := range idx.aut.AssignationClosure(p) {
				if _, ok := cur[p2]; ok {
					cur[p] = struct{}{}
					break
				}
			}
		}
		if len(cur) == 0 {
			return nil
		}
		alive[l] = cur
	}
	return alive
}
