package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyGenerator_Determinism(t *testing.T) {
	a := NewLegacyGenerator()
	b := NewLegacyGenerator()
	for i := 0; i < 10000; i++ {
		if a.NextUniform() != b.NextUniform() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestLegacyGenerator_InstancesAreIsolated(t *testing.T) {
	// Two generators never share state; draining one leaves the other
	// at its first draw.
	a := NewLegacyGenerator()
	b := NewLegacyGenerator()
	first := b.NextUniform()
	for i := 0; i < 500; i++ {
		a.NextUniform()
	}
	c := NewLegacyGenerator()
	assert.Equal(t, first, c.NextUniform())
}

func TestLegacyGenerator_OpenInterval(t *testing.T) {
	g := NewLegacyGenerator()
	for stream := 1; stream <= legacyStreamCount; stream++ {
		require.NoError(t, g.SelectStream(stream))
		for i := 0; i < 1000; i++ {
			u := g.NextUniform()
			if u <= 0.0 || u >= 1.0 {
				t.Fatalf("stream %d draw %d produced %v, outside (0,1)", stream, i, u)
			}
		}
	}
}

func TestLegacyGenerator_StreamsAreIndependentSlots(t *testing.T) {
	g := NewLegacyGenerator()
	require.NoError(t, g.SelectStream(2))
	firstOf2 := g.NextUniform()

	h := NewLegacyGenerator()
	for i := 0; i < 100; i++ {
		h.NextUniform() // exhaust stream 1 only
	}
	require.NoError(t, h.SelectStream(2))
	assert.Equal(t, firstOf2, h.NextUniform(), "draws on stream 1 must not disturb stream 2")
}

func TestLegacyGenerator_SelectStreamBounds(t *testing.T) {
	g := NewLegacyGenerator()
	for _, n := range []int{0, -1, legacyStreamCount + 1} {
		var numErr *InvalidStreamNumberError
		require.ErrorAs(t, g.SelectStream(n), &numErr)
	}
	assert.Equal(t, 1, g.CurrentStream(), "rejected select must not move the stream")
}

func TestLegacyGenerator_SetSeed(t *testing.T) {
	g := NewLegacyGenerator()
	require.NoError(t, g.SetSeed(5, 42))
	got, err := g.Seed(5)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	require.NoError(t, g.SelectStream(5))
	u1 := g.NextUniform()

	h := NewLegacyGenerator()
	require.NoError(t, h.SetSeed(5, 42))
	require.NoError(t, h.SelectStream(5))
	assert.Equal(t, u1, h.NextUniform())
}

func TestLegacyGenerator_SetSeedRejection(t *testing.T) {
	g := NewLegacyGenerator()
	before, err := g.Seed(1)
	require.NoError(t, err)

	tests := []struct {
		name string
		seed int64
	}{
		{"zero", 0},
		{"negative", -7},
		{"at modulus", legacyModulus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seedErr *InvalidSeedError
			require.ErrorAs(t, g.SetSeed(1, tt.seed), &seedErr)
			after, err := g.Seed(1)
			require.NoError(t, err)
			assert.Equal(t, before, after, "rejected seed must not mutate state")
		})
	}
}

func TestLegacyGenerator_SeedAdvancesWithDraws(t *testing.T) {
	g := NewLegacyGenerator()
	before, err := g.Seed(1)
	require.NoError(t, err)
	g.NextUniform()
	after, err := g.Seed(1)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Equal(t, (legacyMultiplier*before)%legacyModulus, after)
}
