package challenge

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/constellation/bfs"
)

// Generate draws a challenge from nodes over src.
// Returns ErrUnsatisfiable when the graph is too small or too sparse for the
// configured hop band.
func Generate(nodes []Candidate, src bfs.Source, opts ...Option) (*Challenge, error) {
	cfg := newConfig(opts...)
	if src == nil {
		return nil, errors.Wrap(ErrUnsatisfiable, "no adjacency index")
	}

	pool := make([]Candidate, 0, len(nodes))
	for _, n := range nodes {
		if src.Has(n.ID) {
			pool = append(pool, n)
		}
	}
	if len(pool) < 2 {
		return nil, errors.Wrapf(ErrUnsatisfiable, "%d usable nodes", len(pool))
	}

	if cfg.start != "" {
		if !src.Has(cfg.start) {
			return nil, errors.Wrapf(ErrUnsatisfiable, "start %q not in graph", cfg.start)
		}
		ch, ok, err := tryStart(src, cfg.start, cfg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(ErrUnsatisfiable, "no target %d..%d hops from %q", cfg.minHops, cfg.maxHops, cfg.start)
		}
		return ch, nil
	}

	s := newSampler(pool, cfg.preferPopular)
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		start, ok := s.draw(cfg.rng)
		if !ok {
			break
		}
		ch, found, err := tryStart(src, start, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.log.Debugw("challenge generated",
				"start", ch.StartID, "target", ch.TargetID, "hops", ch.OptimalHops, "attempts", attempt)
			return ch, nil
		}
	}
	cfg.log.Debugw("challenge unsatisfiable", "nodes", len(pool), "minHops", cfg.minHops, "maxHops", cfg.maxHops)
	return nil, errors.WithHint(
		errors.Wrapf(ErrUnsatisfiable, "band %d..%d over %d nodes", cfg.minHops, cfg.maxHops, len(pool)),
		"try a smaller hop band or a larger artist set",
	)
}

// tryStart runs one bounded BFS and picks a target in band.
func tryStart(src bfs.Source, start string, cfg config) (*Challenge, bool, error) {
	res, err := bfs.BFS(src, start, bfs.WithMaxDepth(cfg.maxHops))
	if err != nil {
		return nil, false, err
	}
	targets := res.AtDepth(cfg.minHops, cfg.maxHops)
	if len(targets) == 0 {
		return nil, false, nil
	}
	target := targets[cfg.rng.Intn(len(targets))]
	path, err := res.PathTo(target)
	if err != nil {
		return nil, false, err
	}
	return &Challenge{
		StartID:     start,
		TargetID:    target,
		OptimalPath: path,
		OptimalHops: len(path) - 1,
	}, true, nil
}
