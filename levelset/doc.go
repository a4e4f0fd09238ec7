// Package levelset implements the per-level vertex registry used by the
// jump index: for each level of the product DAG, an ordered list of the
// automaton states that appear at that level, plus a sparse inverse index
// mapping a state back to its position within the level.
//
// Registration is idempotent and preserves first-seen order, so within-level
// indices stay stable across repeated Register calls — the same invariant
// core.Graph's adjacency registries maintain for vertex IDs.
package levelset
