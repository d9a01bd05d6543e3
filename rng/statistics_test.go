package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

// Moment checks against U(0,1): mean 1/2, variance 1/12. Tolerances are
// several standard errors wide at this sample size, so failures mean a
// broken recurrence, not bad luck.

func TestStream_UniformMoments(t *testing.T) {
	const n = 100_000
	s := NewStreamProvider().NextRNStream()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.NextUniform()
	}
	assert.InDelta(t, 0.5, stat.Mean(xs, nil), 0.01)
	assert.InDelta(t, 1.0/12.0, stat.Variance(xs, nil), 0.005)
}

func TestStreams_AreUncorrelated(t *testing.T) {
	const n = 50_000
	p := NewStreamProvider()
	a := p.NextRNStream()
	b := p.NextRNStream()
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = a.NextUniform()
		ys[i] = b.NextUniform()
	}
	assert.InDelta(t, 0.0, stat.Correlation(xs, ys, nil), 0.02)
}

func TestLegacyGenerator_UniformMoments(t *testing.T) {
	const n = 100_000
	g := NewLegacyGenerator()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.NextUniform()
	}
	assert.InDelta(t, 0.5, stat.Mean(xs, nil), 0.01)
	assert.InDelta(t, 1.0/12.0, stat.Variance(xs, nil), 0.005)
}
