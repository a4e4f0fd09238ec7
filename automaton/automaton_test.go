package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagspan/dagspan/automaton"
)

// buildABC builds a tiny 4-state automaton for "a(?P<x>b+)c":
// 0 --a--> 1 --openX--> 1 --b--> 1 --closeX--> 2 --c--> 3 (final)
func buildABC(t *testing.T) *automaton.Automaton {
	t.Helper()
	a := automaton.New(4)
	require.NoError(t, a.SetInitial(0))
	require.NoError(t, a.AddFinal(3))

	openX := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Open}
	closeX := automaton.Marker{ID: 1, Variable: "x", Side: automaton.Close}

	require.NoError(t, a.AddCharEdge(0, 1, func(c rune) bool { return c == 'a' }))
	require.NoError(t, a.AddMarkerEdge(1, 1, openX))
	require.NoError(t, a.AddCharEdge(1, 1, func(c rune) bool { return c == 'b' }))
	require.NoError(t, a.AddMarkerEdge(1, 2, closeX))
	require.NoError(t, a.AddCharEdge(2, 3, func(c rune) bool { return c == 'c' }))

	require.NoError(t, a.Compile())
	return a
}

func TestCompileDerivesReverseAdjacency(t *testing.T) {
	a := buildABC(t)

	fwd := a.MarkerTargets(1)
	require.Len(t, fwd, 2)

	rev := a.RevMarkerEdges(2)
	require.Len(t, rev, 1)
	require.Equal(t, automaton.State(1), rev[0].From)
	require.Equal(t, "x", rev[0].Marker.Variable)
}

func TestAssignationClosureIsReflexiveAndTransitive(t *testing.T) {
	a := automaton.New(3)
	require.NoError(t, a.SetInitial(0))
	require.NoError(t, a.AddFinal(2))
	m0 := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Open}
	m1 := automaton.Marker{ID: 1, Variable: "y", Side: automaton.Open}
	require.NoError(t, a.AddMarkerEdge(0, 1, m0))
	require.NoError(t, a.AddMarkerEdge(1, 2, m1))
	require.NoError(t, a.Compile())

	closure := a.AssignationClosure(0)
	require.ElementsMatch(t, []automaton.State{0, 1, 2}, closure)

	// A state with no outgoing marker edges only reaches itself.
	require.ElementsMatch(t, []automaton.State{2}, a.AssignationClosure(2))
}

func TestCharAdjCachesPerRune(t *testing.T) {
	a := buildABC(t)

	adjA := a.CharAdjForChar('a')
	require.Equal(t, []automaton.State{1}, adjA[0])
	require.Empty(t, adjA[1])

	revB := a.RevCharAdjForChar('b')
	require.Equal(t, []automaton.State{1}, revB[1])
}

func TestCompileRejectsMissingInitial(t *testing.T) {
	a := automaton.New(1)
	require.ErrorIs(t, a.Compile(), automaton.ErrNoInitialState)
}

func TestMutationAfterCompileRejected(t *testing.T) {
	a := buildABC(t)
	require.ErrorIs(t, a.AddFinal(0), automaton.ErrAlreadyCompiled)
	require.ErrorIs(t, a.SetInitial(0), automaton.ErrAlreadyCompiled)
}
