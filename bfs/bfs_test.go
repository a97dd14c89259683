package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/adjacency"
	"github.com/katalvlaran/constellation/bfs"
)

func chain(n int) *adjacency.Index {
	pairs := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}
	return adjacency.FromPairs(pairs)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrSourceNil) {
		t.Errorf("nil source: want ErrSourceNil, got %v", err)
	}
	idx := adjacency.FromPairs([][2]string{{"A", "B"}})
	if _, err := bfs.BFS(idx, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	if _, err := bfs.BFS(idx, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.BFS(idx, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start.
func TestBFS_Disconnected(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{{"X", "Y"}, {"P", "Q"}})
	resX, err := bfs.BFS(idx, "X")
	require.NoError(t, err)
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	_, err = resX.PathTo("Q")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth verifies positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	idx := chain(2)
	res, _ := bfs.BFS(idx, "v0", bfs.WithMaxDepth(1))
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
	res, _ = bfs.BFS(idx, "v0", bfs.WithMaxDepth(0))
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes steps.
func TestBFS_FilterNeighbor(t *testing.T) {
	idx := chain(2)
	res, err := bfs.BFS(idx, "v0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "v1" && nbr == "v2")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
}

func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(chain(3), "v0", bfs.WithOnVisit(func(id string, d int) error {
		if d == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_PathTo covers trivial, normal and shortest-over-longer routes.
func TestBFS_PathTo(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
	})
	res, err := bfs.BFS(idx, "A")
	require.NoError(t, err)

	p, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)

	p, err = res.PathTo("K")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "F", "K"}, p)

	assert.Equal(t, []string{"C", "F"}, res.AtDepth(2, 2))
	assert.Equal(t, []string{"B", "E", "C", "F"}, res.AtDepth(1, 2))
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(100), "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
