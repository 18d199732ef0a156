package goldstein_test

import (
	"testing"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/phase"
	"github.com/katalvlaran/lvphase/synth"
)

// BenchmarkRun measures the full pipeline on a noisy 256×256 paraboloid.
// Complexity: O(R×C) for detection and integration plus the box searches.
func BenchmarkRun(b *testing.B) {
	w := phase.WrapGrid(synth.AddNoise(synth.Paraboloid(256, 256, 0.01), 0.4, 42))
	gs, err := goldstein.New(w)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gs.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDetectResidues measures the parallel residue scan alone.
func BenchmarkDetectResidues(b *testing.B) {
	w := phase.WrapGrid(synth.Simplex(512, 512, synth.WithScale(0.02)))
	gs, err := goldstein.New(w)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gs.DetectResidues()
	}
}
