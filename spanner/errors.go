package spanner

import "errors"

var (
	// ErrNotPreprocessed is returned by Iter or MemoryUsage when called
	// before Preprocess.
	ErrNotPreprocessed = errors.New("spanner: not preprocessed")

	// ErrAlreadyPreprocessed is returned by Preprocess when called twice on
	// the same Spanner.
	ErrAlreadyPreprocessed = errors.New("spanner: already preprocessed")
)
