package mapping

import (
	"sort"

	"github.com/dagspan/dagspan/automaton"
)

// FromEvents builds a Mapping for text from an unordered slice of marker
// events. Events are sorted by position (Close before Open at equal
// positions, so a Close/Open pair at a loop boundary closes the previous
// binding before the next one opens), then replayed in order maintaining a
// per-variable stack of open positions; each Close pops the most recent
// unmatched Open and records the resulting span, so a variable bound more
// than once in a single run (e.g. a capture group inside a repetition) ends
// up with its last completed span, matching how repeated-group captures are
// conventionally reported.
//
// A Close with no pending Open for its variable is held back: if an Open of
// the same variable follows at the same position, the pair is recorded as a
// zero-width span. Otherwise the Close is ignored: it cannot arise from a
// well-formed automaton, where every Close edge is only reachable after its
// matching Open.
//
// Complexity: O(n log n) in len(events).
func FromEvents(text string, events []Event) *Mapping {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos != sorted[j].Pos {
			return sorted[i].Pos < sorted[j].Pos
		}
		return sorted[i].Marker.Side == automaton.Close && sorted[j].Marker.Side == automaton.Open
	})

	open := make(map[string][]int)
	spans := make(map[string]Span)
	unmatched := make(map[string]int) // position of a Close seen with no pending Open
	for _, e := range sorted {
		switch e.Marker.Side {
		case automaton.Open:
			if p, ok := unmatched[e.Marker.Variable]; ok && p == e.Pos {
				delete(unmatched, e.Marker.Variable)
				spans[e.Marker.Variable] = Span{Start: e.Pos, End: e.Pos}
				continue
			}
			open[e.Marker.Variable] = append(open[e.Marker.Variable], e.Pos)
		case automaton.Close:
			stack := open[e.Marker.Variable]
			if len(stack) == 0 {
				unmatched[e.Marker.Variable] = e.Pos
				continue
			}
			start := stack[len(stack)-1]
			open[e.Marker.Variable] = stack[:len(stack)-1]
			spans[e.Marker.Variable] = Span{Start: start, End: e.Pos}
		}
	}

	return &Mapping{Text: text, spans: spans}
}

// Span returns the byte-offset span bound to variable, and whether it was
// bound at all in this mapping.
func (m *Mapping) Span(variable string) (Span, bool) {
	s, ok := m.spans[variable]
	return s, ok
}

// Substring returns the slice of Text covered by variable's span.
func (m *Mapping) Substring(variable string) (string, bool) {
	s, ok := m.spans[variable]
	if !ok {
		return "", false
	}
	return m.Text[s.Start:s.End], true
}

// Variables returns the names of every variable bound in this mapping, in
// lexicographic order.
func (m *Mapping) Variables() []string {
	out := make([]string, 0, len(m.spans))
	for v := range m.spans {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
