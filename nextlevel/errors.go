package nextlevel

import "errors"

// ErrEmptyFrontier is returned by Explore when given an empty starting
// frontier; the driver must never construct an enumerator over ∅.
var ErrEmptyFrontier = errors.New("nextlevel: explore called with empty frontier")
