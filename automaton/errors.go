package automaton

import "errors"

// Sentinel errors for automaton construction and compilation.
var (
	// ErrInvalidState indicates a state index outside 0..NumStates.
	ErrInvalidState = errors.New("automaton: state index out of range")

	// ErrNoInitialState indicates Compile was called before SetInitial.
	ErrNoInitialState = errors.New("automaton: no initial state set")

	// ErrAlreadyCompiled indicates a mutating call after Compile.
	ErrAlreadyCompiled = errors.New("automaton: automaton already compiled")

	// ErrNotCompiled indicates a query accessor was called before Compile.
	ErrNotCompiled = errors.New("automaton: automaton not compiled")

	// ErrNilPredicate indicates AddCharEdge was given a nil predicate.
	ErrNilPredicate = errors.New("automaton: nil character predicate")
)
