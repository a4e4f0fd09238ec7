package nextlevel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/nextlevel"
)

func TestExploreRejectsEmptyFrontier(t *testing.T) {
	a := automaton.New(1)
	require.NoError(t, a.SetInitial(0))
	require.NoError(t, a.Compile())

	_, err := nextlevel.Explore(a, nil)
	require.ErrorIs(t, err, nextlevel.ErrEmptyFrontier)
}

func TestNoExpectedMarkersEmitsOnce(t *testing.T) {
	a := automaton.New(2)
	require.NoError(t, a.SetInitial(0))
	require.NoError(t, a.Compile())

	e, err := nextlevel.Explore(a, []automaton.State{0})
	require.NoError(t, err)

	step, ok := e.Next()
	require.True(t, ok)
	require.Empty(t, step.Markers)
	require.Equal(t, []automaton.State{0}, step.Frontier)

	_, ok = e.Next()
	require.False(t, ok)
}

func TestOneExpectedMarkerEmitsTwoSteps(t *testing.T) {
	a := automaton.New(2)
	require.NoError(t, a.SetInitial(0))
	m0 := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Close}
	require.NoError(t, a.AddMarkerEdge(1, 0, m0))
	require.NoError(t, a.Compile())

	e, err := nextlevel.Explore(a, []automaton.State{0})
	require.NoError(t, err)

	step1, ok := e.Next()
	require.True(t, ok)
	require.Empty(t, step1.Markers)
	require.Equal(t, []automaton.State{0}, step1.Frontier)

	step2, ok := e.Next()
	require.True(t, ok)
	require.Equal(t, []automaton.Marker{m0}, step2.Markers)
	require.Equal(t, []automaton.State{1}, step2.Frontier)

	_, ok = e.Next()
	require.False(t, ok)
}

// buildTwoMarkerFork builds a 3-state automaton where state 0 is reached by
// two independent marker edges: 1--m0-->0 and 2--m1-->0.
func buildTwoMarkerFork(t *testing.T) (*automaton.Automaton, automaton.Marker, automaton.Marker) {
	t.Helper()
	a := automaton.New(3)
	require.NoError(t, a.SetInitial(0))
	m0 := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Close}
	m1 := automaton.Marker{ID: 1, Variable: "y", Side: automaton.Close}
	require.NoError(t, a.AddMarkerEdge(1, 0, m0))
	require.NoError(t, a.AddMarkerEdge(2, 0, m1))
	require.NoError(t, a.Compile())
	return a, m0, m1
}

func TestTwoExpectedMarkersBacktracks(t *testing.T) {
	a, m0, m1 := buildTwoMarkerFork(t)

	e, err := nextlevel.Explore(a, []automaton.State{0})
	require.NoError(t, err)

	var steps []nextlevel.Step
	for {
		step, ok := e.Next()
		if !ok {
			break
		}
		steps = append(steps, step)
	}

	require.Len(t, steps, 3)

	require.Empty(t, steps[0].Markers)
	require.Equal(t, []automaton.State{0}, steps[0].Frontier)

	require.Equal(t, []automaton.Marker{m1}, steps[1].Markers)
	require.Equal(t, []automaton.State{2}, steps[1].Frontier)

	require.Equal(t, []automaton.Marker{m0}, steps[2].Markers)
	require.Equal(t, []automaton.State{1}, steps[2].Frontier)
}
