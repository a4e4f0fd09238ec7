package jumpindex

import "errors"

var (
	// ErrNotBuilt is returned by query methods called before Build.
	ErrNotBuilt = errors.New("jumpindex: index not built")
	// ErrAlreadyBuilt is returned by Build if called twice on the same Index.
	ErrAlreadyBuilt = errors.New("jumpindex: already built")
	// ErrEmptyFrontier is returned by Jump when given an empty frontier; the
	// construction guarantees jump is only ever called with a non-empty one.
	ErrEmptyFrontier = errors.New("jumpindex: jump called with empty frontier")
	// ErrLevelOutOfRange is returned by queries naming a level outside
	// [0, NumLevels).
	ErrLevelOutOfRange = errors.New("jumpindex: level out of range")
	// ErrDisconnected is returned by queries against a disconnected index.
	ErrDisconnected = errors.New("jumpindex: index is disconnected")
)
