package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/constellation/dsu"
)

func TestForest_UnionFind(t *testing.T) {
	f := dsu.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Sets())

	assert.True(t, f.Union(0, 1))
	assert.True(t, f.Union(3, 4))
	assert.False(t, f.Union(1, 0), "already joined")
	assert.Equal(t, 3, f.Sets())

	assert.True(t, f.Connected(0, 1))
	assert.False(t, f.Connected(1, 3))

	assert.True(t, f.Union(1, 4))
	assert.True(t, f.Connected(0, 3))
	assert.False(t, f.Connected(0, 2))
	assert.Equal(t, 2, f.Sets())
}

func TestForest_OutOfRange(t *testing.T) {
	f := dsu.New(2)
	assert.Equal(t, -1, f.Find(-1))
	assert.Equal(t, -1, f.Find(2))
	assert.False(t, f.Union(0, 9))
	assert.False(t, f.Connected(5, 5))

	empty := dsu.New(-3)
	assert.Zero(t, empty.Len())
}

func TestForest_LongChainCompresses(t *testing.T) {
	const n = 1000
	f := dsu.New(n)
	for i := 1; i < n; i++ {
		f.Union(i-1, i)
	}
	root := f.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, f.Find(i))
	}
	assert.Equal(t, 1, f.Sets())
}
