package subset

import "errors"

var (
	// ErrIndexOutOfRange indicates a subset index outside [0, 2^size).
	ErrIndexOutOfRange = errors.New("subset: index out of range for set size")
	// ErrSetTooLarge indicates a set whose power set is not addressable by int.
	ErrSetTooLarge = errors.New("subset: set size exceeds addressable bits")
	// ErrNotSubset indicates that Encode was given elements not drawn from the set.
	ErrNotSubset = errors.New("subset: elements are not a subset of the ordered set")
)
