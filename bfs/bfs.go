// Package bfs provides breadth-first search over a neighbor Source,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"github.com/cockroachdb/errors"
)

// walker encapsulates mutable BFS state.
type walker struct {
	src   Source
	opts  Options
	queue []string
	head  int
	res   *Result
}

// BFS runs breadth-first search on src from start.
// Returns ErrSourceNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or a wrapped OnVisit error.
func BFS(src Source, start string, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrSourceNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !src.Has(start) {
		return nil, errors.Wrapf(ErrStartNotFound, "%q", start)
	}

	w := &walker{
		src:  src,
		opts: o,
		res: &Result{
			Start:  start,
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

// enqueue records depth and parent for id and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[w.head]
		w.head++
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at %q", id)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.src.EachNeighbor(id, func(nbr string) bool {
			if _, seen := w.res.Depth[nbr]; seen {
				return true
			}
			if w.opts.FilterNeighbor(id, nbr) {
				w.enqueue(nbr, next, id)
			}
			return true
		})
	}
	return nil
}
