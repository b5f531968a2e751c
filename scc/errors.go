package scc

import "errors"

// ErrGraphNil indicates that a nil *core.Graph was passed where a graph is required.
var ErrGraphNil = errors.New("scc: graph is nil")
