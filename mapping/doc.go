// Package mapping holds the output type of the enumeration engine: a
// Mapping assigns each named capture variable a byte-offset span into the
// text it was matched against, plus a convenience substring accessor.
//
// A Mapping is built once, from the ordered stream of (marker, position)
// events a completed run of the automaton produced, and is immutable
// thereafter. Building the span set is a pure function of those events and
// the text; no regex or automaton state is consulted.
package mapping
