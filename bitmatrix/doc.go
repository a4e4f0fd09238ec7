// Package bitmatrix provides a dense boolean matrix used by the jump index
// to represent reachability between non-adjacent DAG levels ("reach"
// matrices) and the one-step jumpable adjacency between consecutive levels.
//
// Rows are stored as github.com/bits-and-blooms/bitset bit-vectors, giving
// ColMul (vector-times-matrix) and Mul (matrix product) word-parallel
// implementations instead of a per-cell double loop.
package bitmatrix
