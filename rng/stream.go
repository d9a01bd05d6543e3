package rng

import "fmt"

// UniformSource produces U(0,1) variates. Generator, Stream and
// LegacyGenerator all satisfy it.
type UniformSource interface {
	// NextUniform returns the next variate in the open interval (0,1).
	NextUniform() float64
}

// StreamControl is the full per-stream contract: drawing plus the
// rewind, substream and antithetic controls.
type StreamControl interface {
	UniformSource
	ResetStartStream()
	ResetStartSubstream()
	AdvanceToNextSubstream()
	SetAntitheticOption(flip bool)
	GetAntitheticOption() bool
}

// Stream is one independent numbered pseudo-random sequence. It keeps
// three snapshots of generator state: the immutable stream start, the
// start of the current substream, and the live state advanced by every
// draw. Every control operation is legal at any time; none is rejected.
//
// Thread-safety: NOT safe for concurrent draws. Concurrent use of the
// same Stream without external synchronization is a data race and
// produces a non-reproducible sequence. Draws on distinct Streams from
// one provider are safe and independent.
type Stream struct {
	provider *StreamProvider
	id       int64 // provider-allocated identity
	number   int   // 1-based position in the provider registry

	streamStart    GeneratorState // fixed at creation
	substreamStart GeneratorState // moves only on substream transitions
	current        GeneratorState // moves on every draw

	antithetic bool
}

func newStream(p *StreamProvider, id int64, number int, start GeneratorState) *Stream {
	return &Stream{
		provider:       p,
		id:             id,
		number:         number,
		streamStart:    start,
		substreamStart: start,
		current:        start,
	}
}

// NextUniform advances the stream one recurrence step and returns a
// variate in (0,1). In antithetic mode the reported value is 1-u, but
// the state still advances exactly one step per draw, so toggling the
// option mid-stream never desynchronizes the underlying sequence.
func (s *Stream) NextUniform() float64 {
	u := s.current.step()
	if s.antithetic {
		return 1.0 - u
	}
	return u
}

// ResetStartStream rewinds the stream to its very beginning.
func (s *Stream) ResetStartStream() {
	s.substreamStart = s.streamStart
	s.current = s.streamStart
}

// ResetStartSubstream rewinds to the beginning of the current substream.
func (s *Stream) ResetStartSubstream() {
	s.current = s.substreamStart
}

// AdvanceToNextSubstream jumps the substream start forward by 2^76
// steps and positions the stream there.
func (s *Stream) AdvanceToNextSubstream() {
	s.substreamStart = jumpSubstream(s.substreamStart)
	s.current = s.substreamStart
}

// SetAntitheticOption controls whether draws report 1-u instead of u.
func (s *Stream) SetAntitheticOption(flip bool) {
	s.antithetic = flip
}

// GetAntitheticOption reports whether antithetic mode is on.
func (s *Stream) GetAntitheticOption() bool {
	return s.antithetic
}

// StreamStartState returns the immutable state the stream began at.
func (s *Stream) StreamStartState() GeneratorState {
	return s.streamStart
}

// SubstreamStartState returns the state of the current substream start.
func (s *Stream) SubstreamStartState() GeneratorState {
	return s.substreamStart
}

// State returns the live generator state.
func (s *Stream) State() GeneratorState {
	return s.current
}

func (s *Stream) String() string {
	return fmt.Sprintf("stream %d (id %d) at %s", s.number, s.id, s.current)
}
