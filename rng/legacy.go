package rng

import "fmt"

// Legacy single-stream compatibility generator: the classic Lehmer
// multiplicative congruential generator (modulus 2^31-1, multiplier
// 630360016) with its traditional table of 100 fixed stream seeds.
// Kept only so historical experiments can be replicated bit for bit;
// new code should use StreamProvider.
//
// Unlike its textbook ancestor this is an explicitly constructed
// object, not process-wide state, so independent instances never
// interfere and tests can re-instantiate it freely.

const (
	legacyStreamCount = 100
	legacyModulus     = 2147483647 // 2^31 - 1
	legacyMultiplier  = 630360016
)

// legacyDefaultSeeds is the traditional seed table; entry k seeds
// stream k+1.
var legacyDefaultSeeds = [legacyStreamCount]int64{
	1973272912, 281629770, 20006270, 1280689831, 2096730329,
	1933576050, 913566091, 246780520, 1363774876, 604901985,
	1511192140, 1259851944, 824064364, 150493284, 242708531,
	75253171, 1964472944, 1202299975, 233217322, 1911216000,
	726370533, 403498145, 993232223, 1103205531, 762430696,
	1922803170, 1385516923, 76271663, 413682397, 726466604,
	336157058, 1432650381, 1120463904, 595778810, 877722890,
	1046574445, 68911991, 2088367019, 748545416, 622401386,
	2122378830, 640690903, 1774806513, 2132545692, 2079249579,
	78130110, 852776735, 1187867272, 1351423507, 1645973084,
	1997049139, 922510944, 2045512870, 898585771, 243649545,
	1004818771, 773686062, 403188473, 372279877, 1901633463,
	498067494, 2087759558, 493157915, 597104727, 1530940798,
	1814496276, 536444882, 1663153658, 855503735, 67784357,
	1432404475, 619691088, 119025595, 880802310, 176192644,
	1116780070, 277854671, 1366580350, 1142483975, 2026948561,
	1053920743, 786262391, 1792203830, 1494667770, 1923011392,
	1433700034, 1244184613, 1147297105, 539712780, 1545929719,
	190641742, 1645390429, 264907697, 620389253, 1502074852,
	927711160, 364849192, 2049576050, 638580085, 547070247,
}

// LegacyGenerator holds 100 independently seeded Lehmer streams and a
// currently selected stream. NOT safe for concurrent use.
type LegacyGenerator struct {
	seeds  [legacyStreamCount]int64
	stream int // 1-based selected stream
}

// NewLegacyGenerator creates a generator with the traditional default
// seed table, positioned on stream 1.
func NewLegacyGenerator() *LegacyGenerator {
	g := &LegacyGenerator{stream: 1}
	g.seeds = legacyDefaultSeeds
	return g
}

// NextUniform draws from the selected stream. The low bits of a Lehmer
// state are weak, so the output keeps the historical mapping: drop 7
// low bits, force odd, scale by 2^-24, giving a value in (0,1).
func (g *LegacyGenerator) NextUniform() float64 {
	z := (legacyMultiplier * g.seeds[g.stream-1]) % legacyModulus
	g.seeds[g.stream-1] = z
	return float64(z>>7|1) / 16777216.0
}

// SelectStream switches subsequent draws to stream n (1..100).
func (g *LegacyGenerator) SelectStream(n int) error {
	if n < 1 || n > legacyStreamCount {
		return &InvalidStreamNumberError{Number: n}
	}
	g.stream = n
	return nil
}

// CurrentStream returns the 1-based selected stream number.
func (g *LegacyGenerator) CurrentStream() int {
	return g.stream
}

// SetSeed replaces stream n's state. Seeds must be in [1, 2^31-2];
// zero would trap the recurrence and is rejected, never clamped.
func (g *LegacyGenerator) SetSeed(n int, seed int64) error {
	if n < 1 || n > legacyStreamCount {
		return &InvalidStreamNumberError{Number: n}
	}
	if seed < 1 || seed >= legacyModulus {
		return &InvalidSeedError{Index: n - 1, Modulus: legacyModulus,
			Reason: fmt.Sprintf("legacy stream seed %d out of range [1, %d)", seed, legacyModulus)}
	}
	g.seeds[n-1] = seed
	return nil
}

// Seed returns stream n's current state.
func (g *LegacyGenerator) Seed(n int) (int64, error) {
	if n < 1 || n > legacyStreamCount {
		return 0, &InvalidStreamNumberError{Number: n}
	}
	return g.seeds[n-1], nil
}
