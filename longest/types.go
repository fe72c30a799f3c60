// Package longest types and configuration: sentinel errors, the CycleError
// diagnostic, and functional options for LongestPath.
package longest

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by the longest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to LongestPath.
	ErrNilGraph = errors.New("longest: graph is nil")

	// ErrEmptyStart indicates that the provided start vertex ID is empty.
	ErrEmptyStart = errors.New("longest: start vertex ID is empty")

	// ErrStartVertexNotFound indicates that the start vertex does not exist
	// in the provided graph.
	ErrStartVertexNotFound = errors.New("longest: start vertex not found")

	// ErrCycleDetected indicates that a vertex already on the active DFS
	// path was reached again. Concrete errors are *CycleError values that
	// unwrap to this sentinel, so errors.Is(err, ErrCycleDetected) matches.
	ErrCycleDetected = errors.New("longest: cycle detected")
)

// CycleError reports a cycle reachable from the start vertex. VertexID is
// the vertex at which the active path was re-entered; it always lies on the
// cycle. Retrieve it with errors.As:
//
//	var ce *longest.CycleError
//	if errors.As(err, &ce) {
//	    fmt.Println("cycle through", ce.VertexID)
//	}
type CycleError struct {
	// VertexID is the identifier of the re-encountered vertex.
	VertexID string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("longest: cycle detected involving vertex %q", e.VertexID)
}

// Unwrap ties every CycleError to the ErrCycleDetected sentinel.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// Option configures optional behavior of a LongestPath call.
type Option func(*Options)

// Options holds configurable parameters for one LongestPath call.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the traversal early with ctx.Err(),
	// leaving the cache without entries for in-flight vertices.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is expanded — an
	// active-path hit or a cache hit never fires it. Returning an error
	// aborts the call with that error wrapped.
	OnVisit func(id string) error
}

// DefaultOptions returns the Options used when no Option is supplied:
// Background context, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the expansion hook.
// The hook observes real exploration work, which makes memoization
// externally testable: a fully cached call fires it zero times.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
