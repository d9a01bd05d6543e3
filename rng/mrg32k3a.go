package rng

import "fmt"

// MRG32k3a combined generator core. Two order-3 linear recurrences run
// modulo two distinct moduli just under 2^32; their difference, scaled
// to the open interval (0,1), is the output. The combined period is
// about 2^191.
//
// All modular arithmetic stays in uint64/int64. Every raw product here
// is below 2^64 (operands are residues below 2^32), so no split-word
// decomposition is needed; intermediate differences use int64 with a
// single conditional correction.

const (
	m1 = 4294967087 // 2^32 - 209
	m2 = 4294944443 // 2^32 - 22853

	a12  = 1403580 // first recurrence: x_n = a12*x_{n-2} - a13n*x_{n-3} mod m1
	a13n = 810728
	a21  = 527612 // second recurrence: y_n = a21*y_{n-1} - a23n*y_{n-3} mod m2
	a23n = 1370589

	// norm maps the combined residue to (0,1); equals 1/(m1+1).
	norm = 2.328306549295727688e-10
)

// GeneratorState holds the six recurrence words: [0..2] are the first
// component's lags modulo m1, [3..5] the second component's modulo m2,
// oldest lag first.
type GeneratorState [6]uint64

// defaultInitialSeed is the documented power-up seed.
var defaultInitialSeed = GeneratorState{12345, 12345, 12345, 12345, 12345, 12345}

// DefaultInitialSeed returns the documented power-up seed vector.
func DefaultInitialSeed() GeneratorState {
	return defaultInitialSeed
}

// Validate reports whether s is a legal generator state: every word
// below its modulus and neither component's three words all zero.
func (s GeneratorState) Validate() error {
	for i := 0; i < 3; i++ {
		if s[i] >= m1 {
			return &InvalidSeedError{Index: i, Value: s[i], Modulus: m1}
		}
	}
	for i := 3; i < 6; i++ {
		if s[i] >= m2 {
			return &InvalidSeedError{Index: i, Value: s[i], Modulus: m2}
		}
	}
	if s[0] == 0 && s[1] == 0 && s[2] == 0 {
		return &InvalidSeedError{Index: 0, Modulus: m1, AllZero: true}
	}
	if s[3] == 0 && s[4] == 0 && s[5] == 0 {
		return &InvalidSeedError{Index: 3, Modulus: m2, AllZero: true}
	}
	return nil
}

func (s GeneratorState) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d, %d, %d}", s[0], s[1], s[2], s[3], s[4], s[5])
}

// step advances s by one recurrence step and returns the scaled
// combined output in (0,1). The difference p1-p2 never maps to exactly
// 0 or 1: a zero residue yields m1*norm < 1 and the smallest nonzero
// residue yields norm > 0.
func (s *GeneratorState) step() float64 {
	p1 := (a12*int64(s[1]) - a13n*int64(s[0])) % m1
	if p1 < 0 {
		p1 += m1
	}
	s[0], s[1], s[2] = s[1], s[2], uint64(p1)

	p2 := (a21*int64(s[5]) - a23n*int64(s[3])) % m2
	if p2 < 0 {
		p2 += m2
	}
	s[3], s[4], s[5] = s[4], s[5], uint64(p2)

	if p1 > p2 {
		return float64(p1-p2) * norm
	}
	return float64(p1-p2+m1) * norm
}

// matrix is a 3x3 transition matrix of residues.
type matrix [3][3]uint64

// Transition matrices for jump-ahead. a1p127/a2p127 advance each
// component by 2^127 steps (the spacing between streams), a1p76/a2p76
// by 2^76 steps (the spacing between substreams).
var (
	a1p127 = matrix{
		{2427906178, 3580155704, 949770784},
		{226153695, 1230515664, 3580155704},
		{1988835001, 986791581, 1230515664},
	}
	a2p127 = matrix{
		{1464411153, 277697599, 1610723613},
		{32183930, 1464411153, 1022607788},
		{2824425944, 32183930, 2093834863},
	}
	a1p76 = matrix{
		{82758667, 1871391091, 4127413238},
		{3672831523, 69195019, 1871391091},
		{3672091415, 3528743235, 69195019},
	}
	a2p76 = matrix{
		{1511326704, 3759209742, 1610795712},
		{4292754251, 1511326704, 3889917532},
		{3859662829, 4292754251, 3708466080},
	}
)

// matVecMod returns A*v modulo m. Entries and words are below 2^32 and
// at least one factor is below m, so each product fits in uint64; terms
// are reduced before accumulating.
func matVecMod(a *matrix, v [3]uint64, m uint64) [3]uint64 {
	var out [3]uint64
	for i := 0; i < 3; i++ {
		var acc uint64
		for j := 0; j < 3; j++ {
			acc = (acc + (a[i][j]*v[j])%m) % m
		}
		out[i] = acc
	}
	return out
}

// jumpStream advances s by 2^127 recurrence steps in O(1).
func jumpStream(s GeneratorState) GeneratorState {
	return jump(s, &a1p127, &a2p127)
}

// jumpSubstream advances s by 2^76 recurrence steps in O(1).
func jumpSubstream(s GeneratorState) GeneratorState {
	return jump(s, &a1p76, &a2p76)
}

func jump(s GeneratorState, c1, c2 *matrix) GeneratorState {
	x := matVecMod(c1, [3]uint64{s[0], s[1], s[2]}, m1)
	y := matVecMod(c2, [3]uint64{s[3], s[4], s[5]}, m2)
	return GeneratorState{x[0], x[1], x[2], y[0], y[1], y[2]}
}

// Generator is the bare combined generator without stream or substream
// bookkeeping. Streams embed the same stepping logic; Generator exists
// for callers that only need a raw reproducible U(0,1) source.
//
// NOT safe for concurrent use.
type Generator struct {
	state GeneratorState
}

// NewGenerator creates a Generator seeded with the given state.
func NewGenerator(seed GeneratorState) (*Generator, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &Generator{state: seed}, nil
}

// NextUniform advances the generator one step and returns a variate in
// the open interval (0,1).
func (g *Generator) NextUniform() float64 {
	return g.state.step()
}

// PeekState returns the current state without advancing it.
func (g *Generator) PeekState() GeneratorState {
	return g.state
}

// SetState replaces the generator state. The existing state is
// untouched if the new one is invalid.
func (g *Generator) SetState(s GeneratorState) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.state = s
	return nil
}
