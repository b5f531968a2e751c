package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)
