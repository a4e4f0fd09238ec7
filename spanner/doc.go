// Package spanner is the public entry point: it wires an automaton and a
// text together, builds a jumpindex.Index over them, and exposes a lazy,
// restartable enumeration of every distinct mapping.Mapping the automaton
// admits over the text.
//
// A Spanner goes through two phases: Preprocess builds the jump index once
// (construction, optional trimming, optional reindex); Iter then returns a
// fresh Iterator walking the index's product-DAG backward from its final
// level to its initial one, yielding one Mapping per accepting path.
//
// Complexity: Preprocess is the cost documented in package jumpindex. Each
// Iterator.Next call runs in time proportional to the work needed to reach
// the next accepting path; amortized across a full enumeration this meets
// the constant-delay bound described for package nextlevel and jumpindex.
package spanner
