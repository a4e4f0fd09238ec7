package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/mapping"
)

func TestFromEventsSimpleSpan(t *testing.T) {
	text := "abbbc"
	openX := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Open}
	closeX := automaton.Marker{ID: 1, Variable: "x", Side: automaton.Close}

	m := mapping.FromEvents(text, []mapping.Event{
		{Marker: closeX, Pos: 4},
		{Marker: openX, Pos: 1},
	})

	span, ok := m.Span("x")
	require.True(t, ok)
	require.Equal(t, mapping.Span{Start: 1, End: 4}, span)

	sub, ok := m.Substring("x")
	require.True(t, ok)
	require.Equal(t, "bbb", sub)
}

func TestFromEventsLastBindingWins(t *testing.T) {
	text := "ab"
	open := automaton.Marker{ID: 0, Variable: "g", Side: automaton.Open}
	closeM := automaton.Marker{ID: 1, Variable: "g", Side: automaton.Close}

	m := mapping.FromEvents(text, []mapping.Event{
		{Marker: open, Pos: 0},
		{Marker: closeM, Pos: 1},
		{Marker: open, Pos: 1},
		{Marker: closeM, Pos: 2},
	})

	span, ok := m.Span("g")
	require.True(t, ok)
	require.Equal(t, mapping.Span{Start: 1, End: 2}, span)
}

func TestFromEventsZeroWidthCaptureAtSamePosition(t *testing.T) {
	text := "y"
	openX := automaton.Marker{ID: 0, Variable: "x", Side: automaton.Open}
	closeX := automaton.Marker{ID: 1, Variable: "x", Side: automaton.Close}

	// Events arrive in the order the iterator actually produces them for a
	// zero-width group: the Close marker is discovered one hop closer to
	// the frontier than the matching Open, so it appears first in the
	// unsorted slice even though both fire at the same position.
	m := mapping.FromEvents(text, []mapping.Event{
		{Marker: closeX, Pos: 0},
		{Marker: openX, Pos: 0},
	})

	span, ok := m.Span("x")
	require.True(t, ok)
	require.Equal(t, mapping.Span{Start: 0, End: 0}, span)

	sub, ok := m.Substring("x")
	require.True(t, ok)
	require.Equal(t, "", sub)
}

func TestUnboundVariable(t *testing.T) {
	m := mapping.FromEvents("x", nil)
	_, ok := m.Span("missing")
	require.False(t, ok)
	_, ok = m.Substring("missing")
	require.False(t, ok)
	require.Empty(t, m.Variables())
}
