// Package dagspan enumerates, with constant delay, every distinct variable
// mapping of a regular spanner over a text: given a variable automaton (named
// capture groups compiled to an NFA with marker edges) and a text, it builds
// an indexed product DAG once and then yields each accepting mapping in O(1)
// amortized time per result, independent of text length.
//
// Preprocessing is polynomial in |automaton| * |text|; enumeration is a lazy,
// restartable walk over a hierarchical jump index that skips spans of the DAG
// with no capture events.
//
// Subpackages:
//
//	automaton/  — variable-automaton data model (states, character and marker edges)
//	mapping/    — variable-to-span assignments and substring extraction
//	bitmatrix/  — dense boolean matrices for reachability between DAG levels
//	levelset/   — per-level vertex registries with stable indices
//	jumpindex/  — the layered DAG, its jump tables, and trimming passes
//	nextlevel/  — per-level enumeration of feasible marker subsets
//	spanner/    — the driver tying preprocessing and enumeration together
//
// The regular-expression surface syntax, its Glushkov compilation to an
// automaton, and any CLI/benchmark harness are external collaborators; this
// module only consumes an already-compiled automaton.
package dagspan
