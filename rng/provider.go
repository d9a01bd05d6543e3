package rng

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultStreamWarningThreshold is the registry size above which a
// provider logs an advisory warning. Needing thousands of streams
// usually means substreams were wanted instead.
const DefaultStreamWarningThreshold = 5000

// defaultStreamNumber is the registry position served by DefaultRNStream
// unless configured otherwise.
const defaultStreamNumber = 1

// StreamProvider manufactures Streams spaced 2^127 recurrence steps
// apart and keeps them in an ordered registry with dense 1-based
// numbers. The factory state always holds the stream start of the
// *next* stream to be created.
//
// All provider operations are guarded by one mutex, so get-or-create
// of a numbered stream cannot race when the provider is shared across
// goroutines. The Streams it returns are individually single-threaded.
type StreamProvider struct {
	mu sync.Mutex

	initialSeed GeneratorState // restored by ResetRNStreamSequence
	factory     GeneratorState // stream start of the next stream
	streams     []*Stream      // registry; streams[k] is stream number k+1

	defaultStream    int
	warningThreshold int
	warned           bool
	nextID           int64 // identity allocator
}

// NewStreamProvider creates a provider seeded with the documented
// default seed.
func NewStreamProvider() *StreamProvider {
	p, _ := NewStreamProviderWithSeed(defaultInitialSeed)
	return p
}

// NewStreamProviderWithSeed creates a provider whose first stream will
// start at the given seed.
func NewStreamProviderWithSeed(seed GeneratorState) (*StreamProvider, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &StreamProvider{
		initialSeed:      seed,
		factory:          seed,
		defaultStream:    defaultStreamNumber,
		warningThreshold: DefaultStreamWarningThreshold,
	}, nil
}

// DefaultRNStreamNumber returns the registry number served by
// DefaultRNStream.
func (p *StreamProvider) DefaultRNStreamNumber() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.defaultStream
}

// DefaultRNStream returns the designated default stream, creating it
// (and any predecessors) on first use.
func (p *StreamProvider) DefaultRNStream() *Stream {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnStreamLocked(p.defaultStream)
}

// NextRNStream creates, registers and returns the next stream in the
// sequence. Its stream start is the current factory state; the factory
// then advances by one stream jump.
func (p *StreamProvider) NextRNStream() *Stream {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextRNStreamLocked()
}

func (p *StreamProvider) nextRNStreamLocked() *Stream {
	p.nextID++
	s := newStream(p, p.nextID, len(p.streams)+1, p.factory)
	p.factory = jumpStream(p.factory)
	p.streams = append(p.streams, s)
	if len(p.streams) > p.warningThreshold && !p.warned {
		p.warned = true
		logrus.Warnf("stream provider has created %d streams (threshold %d); consider substreams instead of more streams",
			len(p.streams), p.warningThreshold)
	}
	return s
}

// RNStream returns the stream with the given 1-based number. A number
// beyond the current count backfills the gap: streams count+1..i are
// created in order so numbering stays dense. Numbers at or below zero
// are rejected.
func (p *StreamProvider) RNStream(i int) (*Stream, error) {
	if i <= 0 {
		return nil, &InvalidStreamNumberError{Number: i}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnStreamLocked(i), nil
}

func (p *StreamProvider) rnStreamLocked(i int) *Stream {
	for len(p.streams) < i {
		p.nextRNStreamLocked()
	}
	return p.streams[i-1]
}

// GetStreamNumber returns the stream's 1-based registry position, or
// -1 if the stream was not produced by this provider.
func (p *StreamProvider) GetStreamNumber(s *Stream) int {
	if s == nil || s.provider != p {
		return -1
	}
	return s.number
}

// StreamCount returns how many streams have been provided so far.
func (p *StreamProvider) StreamCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.streams)
}

// LastRNStream returns the most recently provided stream, or nil if
// none has been created yet.
func (p *StreamProvider) LastRNStream() *Stream {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.streams) == 0 {
		return nil
	}
	return p.streams[len(p.streams)-1]
}

// AdvanceStreamMechanism advances the factory state as if n streams had
// been produced, without registering anything or touching the count.
// Equivalent to n NextRNStream calls with the results discarded, minus
// the allocation. Non-positive n is a no-op.
func (p *StreamProvider) AdvanceStreamMechanism(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := 0; k < n; k++ {
		p.factory = jumpStream(p.factory)
	}
}

// ResetRNStreamSequence discards the whole registry and rewinds the
// factory to the provider's configured initial seed. Previously handed
// out streams keep working but are no longer known to the provider.
func (p *StreamProvider) ResetRNStreamSequence() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.streams = nil
	p.factory = p.initialSeed
	p.warned = false
}

// GetDefaultInitialSeed returns the documented power-up seed.
func (p *StreamProvider) GetDefaultInitialSeed() GeneratorState {
	return defaultInitialSeed
}

// GetCurrentSeed returns the factory state, i.e. the stream start of
// the next stream to be created.
func (p *StreamProvider) GetCurrentSeed() GeneratorState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.factory
}

// SetInitialSeed replaces the provider's configured initial seed and
// rewinds the factory to it. The registry is untouched, so this is
// meant for a fresh provider or right after ResetRNStreamSequence. An
// invalid seed is rejected with no mutation at all.
func (p *StreamProvider) SetInitialSeed(seed GeneratorState) error {
	if err := seed.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialSeed = seed
	p.factory = seed
	return nil
}

// ResetAllStreamsToStart rewinds every provided stream to its stream
// start. Streams not yet created are naturally unaffected.
func (p *StreamProvider) ResetAllStreamsToStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		s.ResetStartStream()
	}
}

// ResetAllStreamsToStartOfCurrentSubStream rewinds every provided
// stream to the start of its current substream.
func (p *StreamProvider) ResetAllStreamsToStartOfCurrentSubStream() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		s.ResetStartSubstream()
	}
}

// AdvanceAllStreamsToNextSubstream advances every provided stream to
// its next substream.
func (p *StreamProvider) AdvanceAllStreamsToNextSubstream() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		s.AdvanceToNextSubstream()
	}
}

// SetAllStreamsAntitheticOption sets the antithetic flag on every
// provided stream.
func (p *StreamProvider) SetAllStreamsAntitheticOption(flip bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		s.SetAntitheticOption(flip)
	}
}
