// Package jumpindex builds and queries the indexed DAG of the product
// between a variable automaton and a text: one layer (LevelSet) per
// character of text, linked by "jumpable" edges (a character step followed
// by the assignation closure) and, within a level, by "non-jumpable"
// (marker/assignation) edges.
//
// On top of the layered DAG it maintains the hierarchical jump tables (jl,
// rlevel, reach) described in the design: for any level and frontier, Jump
// answers "what is the closest ancestor level that could carry a capture
// event, and what frontier does the backward search see there" in time
// roughly proportional to the frontier's popcount rather than the distance
// jumped.
//
// Construction is two forward passes around an optional backward trimming
// sweep: build, trim, reindex. Once built, an Index is immutable and safe
// to query concurrently from any number of independent walks.
package jumpindex
