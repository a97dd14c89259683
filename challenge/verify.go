package challenge

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/constellation/bfs"
)

// Adjacent is the extra capability Verify needs beyond bfs.Source.
type Adjacent interface {
	bfs.Source
	Adjacent(a, b string) bool
}

// Verify checks that c is consistent with idx: both endpoints exist,
// OptimalPath is a walk from start to target of OptimalHops steps, and no
// shorter route exists. Any mismatch is ErrStaleChallenge.
func (c *Challenge) Verify(idx Adjacent) error {
	if c == nil {
		return errors.Wrap(ErrStaleChallenge, "nil challenge")
	}
	if !idx.Has(c.StartID) || !idx.Has(c.TargetID) {
		return errors.Wrapf(ErrStaleChallenge, "endpoint %q or %q missing", c.StartID, c.TargetID)
	}
	p := c.OptimalPath
	if len(p) != c.OptimalHops+1 || p[0] != c.StartID || p[len(p)-1] != c.TargetID {
		return errors.Wrap(ErrStaleChallenge, "path endpoints or length do not match")
	}
	for i := 1; i < len(p); i++ {
		if !idx.Adjacent(p[i-1], p[i]) {
			return errors.Wrapf(ErrStaleChallenge, "%q and %q are not adjacent", p[i-1], p[i])
		}
	}
	d, err := Distance(idx, c.StartID, c.TargetID)
	if err != nil {
		return errors.Mark(err, ErrStaleChallenge)
	}
	if d != c.OptimalHops {
		return errors.Wrapf(ErrStaleChallenge, "distance %d, recorded %d", d, c.OptimalHops)
	}
	return nil
}

// Distance returns the hop distance between a and b, or bfs.ErrNoPath.
func Distance(src bfs.Source, a, b string) (int, error) {
	path, err := ShortestPath(src, a, b)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// ShortestPath returns one shortest a..b path, or bfs.ErrNoPath.
func ShortestPath(src bfs.Source, a, b string) ([]string, error) {
	stop := errors.New("found")
	res, err := bfs.BFS(src, a, bfs.WithOnVisit(func(id string, _ int) error {
		if id == b {
			return stop
		}
		return nil
	}))
	if err != nil && !errors.Is(err, stop) {
		return nil, err
	}
	return res.PathTo(b)
}
