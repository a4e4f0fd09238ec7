// Package nextlevel implements the backtracking enumerator that, given a
// frontier at one level of the indexed DAG, yields every distinct
// (requiredMarkers, frontier) pair reachable by a backward walk that uses
// exactly the required markers and none of the forbidden ones.
//
// The search space is the set of markers reachable backward from the
// frontier at all (expected_markers); the enumerator explores its 2^n
// required/forbidden assignments via a depth-first backtracking search
// (Sp/Sm), pruning branches whose backward reachability set is empty.
package nextlevel
