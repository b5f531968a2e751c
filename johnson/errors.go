package johnson

import "errors"

// ErrGraphNil indicates that a nil *core.Graph was passed to SetGraph, or
// that FindSimpleCycles/CountSimpleCycles was called before one was bound.
var ErrGraphNil = errors.New("johnson: graph is nil")
