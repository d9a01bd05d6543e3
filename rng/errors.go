package rng

import "fmt"

// InvalidSeedError reports a seed vector rejected at assignment time,
// either a word at or above its modulus or a component whose three
// words are all zero. Seeds are never clamped; clamping would silently
// change a caller's reproducibility guarantee.
type InvalidSeedError struct {
	Index   int    // offending word (component start when AllZero)
	Value   uint64 // offending value (meaningless when AllZero)
	Modulus uint64
	AllZero bool
	Reason  string // non-empty overrides the formatted message
}

func (e *InvalidSeedError) Error() string {
	if e.Reason != "" {
		return "invalid seed: " + e.Reason
	}
	if e.AllZero {
		return fmt.Sprintf("invalid seed: component words [%d..%d] are all zero", e.Index, e.Index+2)
	}
	return fmt.Sprintf("invalid seed: word %d is %d, must be below modulus %d", e.Index, e.Value, e.Modulus)
}

// InvalidStreamNumberError reports a requested stream number at or
// below zero. Stream numbers are dense and 1-based.
type InvalidStreamNumberError struct {
	Number int
}

func (e *InvalidStreamNumberError) Error() string {
	return fmt.Sprintf("invalid stream number %d: stream numbers are 1-based", e.Number)
}
