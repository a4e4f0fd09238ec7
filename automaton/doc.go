// Package automaton defines the variable automaton consumed by the core
// enumeration engine: a nondeterministic finite automaton over a dense set of
// states, with two kinds of edges — character edges (predicates that consume
// one input symbol) and marker edges (assignation edges that open or close a
// named capture variable without consuming input).
//
// Construction is imperative (New, SetInitial, AddFinal, AddCharEdge,
// AddMarkerEdge) followed by a single Compile call that derives reverse
// adjacency and the assignation closure used by the jump index. Automata
// reject further edits after Compile; the per-rune character adjacency is
// still filled in lazily on first query, so CharAdjForChar and
// RevCharAdjForChar are not safe for concurrent use.
//
// Building a regex into an Automaton (surface syntax parsing, Glushkov
// construction) is outside this package's scope; callers are expected to
// arrive with a compiled Automaton already in hand.
package automaton
