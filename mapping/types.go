package mapping

import "github.com/dagspan/dagspan/automaton"

// Span is a half-open byte-offset range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Event is a single assignation observed during an accepting run: marker m
// fired at byte offset pos.
type Event struct {
	Marker automaton.Marker
	Pos    int
}

// Mapping assigns each named capture variable a Span into Text. It is the
// per-match result of enumeration: one Mapping corresponds to one accepting
// run of the automaton.
type Mapping struct {
	Text  string
	spans map[string]Span
}
