// Package bfs provides tunable options and error definitions
// for breadth-first search over a neighbor Source.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceNil is returned if a nil Source is passed.
	ErrSourceNil = errors.New("bfs: source is nil")

	// ErrStartNotFound is returned when the start id is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("bfs: no path")
)

// Source is the read-only neighbor view BFS walks.
// *adjacency.Index satisfies it.
type Source interface {
	Has(id string) bool
	EachNeighbor(id string, fn func(nbr string) bool)
}

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. Returning an error aborts.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip the step curr -> neighbor by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback; an error from it stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
//   - Order: nodes in visit sequence.
//   - Depth: hop distance from the start for every reached node.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start -> dest path by following parent links.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, errors.Wrapf(ErrNoPath, "to %q", dest)
	}
	path := make([]string, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}

// AtDepth returns the reached nodes whose distance lies in [lo, hi], in visit
// order.
func (r *Result) AtDepth(lo, hi int) []string {
	var out []string
	for _, id := range r.Order {
		if d := r.Depth[id]; d >= lo && d <= hi {
			out = append(out, id)
		}
	}
	return out
}
