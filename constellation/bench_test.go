package constellation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/constellation/constellation"
)

// BenchmarkBuild_300 measures a typical "top 300 artists" build.
func BenchmarkBuild_300(b *testing.B) {
	artists := randomArtists(rand.New(rand.NewSource(1)), 300, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = constellation.Build(artists)
	}
}
