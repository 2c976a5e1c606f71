package attr

import "errors"

// ErrUnknownAttribute is returned when a lookup names an attribute that was
// never registered in the store.
var ErrUnknownAttribute = errors.New("attr: unknown attribute")

// ErrKindMismatch describes an attribute read through an accessor for the
// wrong Kind (e.g. Continuous() on a Categorical attribute). The accessors
// do not return it; they panic with a message naming both kinds.
var ErrKindMismatch = errors.New("attr: kind mismatch")

// ErrLengthMismatch is returned when a constructor's value slice does not
// have exactly one entry per node.
var ErrLengthMismatch = errors.New("attr: value slice length does not match node count")
