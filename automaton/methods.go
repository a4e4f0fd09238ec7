package automaton

// AdjList is a forward or reverse adjacency list indexed by state: entry i
// holds the states reachable (or reaching) state i.
type AdjList [][]State

// Compile derives the reverse marker adjacency and the assignation closure
// from the edges added so far, and freezes the automaton against further
// mutation. Returns ErrNoInitialState if SetInitial was never called.
//
// Complexity: O(|Q|*(|Q|+|markerAdj|)) for the closure, O(|markerAdj|) for
// the reverse adjacency.
func (a *Automaton) Compile() error {
	if a.compiled {
		return ErrAlreadyCompiled
	}
	if !a.hasInit {
		return ErrNoInitialState
	}

	a.revMarkerAdj = make([][]markerEdge, a.numStates)
	for from, edges := range a.markerAdj {
		for _, e := range edges {
			a.revMarkerAdj[e.to] = append(a.revMarkerAdj[e.to], markerEdge{to: State(from), marker: e.marker})
		}
	}

	a.closure = make([][]State, a.numStates)
	for s := 0; s < a.numStates; s++ {
		a.closure[s] = a.bfsClosure(State(s))
	}

	a.charCache = make(map[rune][][]State)
	a.revCharCache = make(map[rune][][]State)
	a.compiled = true
	return nil
}

// bfsClosure computes the reflexive-transitive closure of marker edges from
// start: every state reachable from start by following zero or more marker
// edges, start itself included.
func (a *Automaton) bfsClosure(start State) []State {
	visited := make(map[State]struct{}, 4)
	visited[start] = struct{}{}
	order := []State{start}
	queue := []State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range a.markerAdj[s] {
			if _, ok := visited[e.to]; ok {
				continue
			}
			visited[e.to] = struct{}{}
			order = append(order, e.to)
			queue = append(queue, e.to)
		}
	}
	return order
}

// Initial returns the automaton's initial state. Panics (contract violation)
// if called before Compile.
func (a *Automaton) Initial() State {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	return a.initial
}

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s State) bool {
	_, ok := a.finals[s]
	return ok
}

// Finals returns the accepting states in ascending order.
func (a *Automaton) Finals() []State {
	out := make([]State, 0, len(a.finals))
	for s := range a.finals {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// NumMarkers returns |M|, the number of distinct markers registered via
// AddMarkerEdge (the largest marker ID seen, plus one).
func (a *Automaton) NumMarkers() int {
	return a.numMarker
}

// MarkerAdjForward returns the labels of the raw (non-closed) marker edges
// leaving s; MarkerTargets also reports their targets. Panics if called
// before Compile.
func (a *Automaton) MarkerAdjForward(s State) []Marker {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	out := make([]Marker, 0, len(a.markerAdj[s]))
	for _, e := range a.markerAdj[s] {
		out = append(out, e.marker)
	}
	return out
}

// MarkerTargets returns the raw marker-edge targets leaving s, paired with
// the marker labeling each edge. Used by the jump index to saturate levels.
func (a *Automaton) MarkerTargets(s State) []MarkerTarget {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	out := make([]MarkerTarget, 0, len(a.markerAdj[s]))
	for _, e := range a.markerAdj[s] {
		out = append(out, MarkerTarget{Marker: e.marker, To: e.to})
	}
	return out
}

// RevMarkerEdges returns the raw reverse marker edges arriving at s: each
// entry names the marker and the predecessor state it came from. Used by the
// next-level enumerator's backward search.
func (a *Automaton) RevMarkerEdges(s State) []MarkerSource {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	edges := a.revMarkerAdj[s]
	out := make([]MarkerSource, 0, len(edges))
	for _, e := range edges {
		out = append(out, MarkerSource{Marker: e.marker, From: e.to})
	}
	return out
}

// AssignationClosure returns the reflexive-transitive closure of marker
// edges from s: every state reachable from s via zero or more marker edges,
// s included. Panics if called before Compile.
func (a *Automaton) AssignationClosure(s State) []State {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	return a.closure[s]
}

// CharAdjForChar returns the forward character adjacency for rune c: entry i
// lists the states reachable from state i by a character edge whose
// predicate matches c. Results are cached per rune since texts commonly
// repeat characters.
func (a *Automaton) CharAdjForChar(c rune) AdjList {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	if cached, ok := a.charCache[c]; ok {
		return cached
	}
	adj := make(AdjList, a.numStates)
	for s, edges := range a.charAdj {
		for _, e := range edges {
			if e.pred(c) {
				adj[s] = append(adj[s], e.to)
			}
		}
	}
	a.charCache[c] = adj
	return adj
}

// RevCharAdjForChar returns the reverse character adjacency for rune c:
// entry i lists the states that reach state i by a character edge matching
// c. Cached per rune alongside CharAdjForChar.
func (a *Automaton) RevCharAdjForChar(c rune) AdjList {
	if !a.compiled {
		panic(ErrNotCompiled)
	}
	if cached, ok := a.revCharCache[c]; ok {
		return cached
	}
	fwd := a.CharAdjForChar(c)
	rev := make(AdjList, a.numStates)
	for s, targets := range fwd {
		for _, t := range targets {
			rev[t] = append(rev[t], State(s))
		}
	}
	a.revCharCache[c] = rev
	return rev
}
