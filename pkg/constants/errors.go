// 12 Oct 2026
// Errors from deriving the constants. Every one of them is a
// configuration problem, so they all unwrap to ErrConfig and a caller
// can just check errors.Is(err, ErrConfig).

package constants

import (
	"errors"
	"fmt"
)

// ErrConfig is at the bottom of every error from this package.
var ErrConfig = errors.New("configuration error")

// ChunkDivisorError says L has no divisor <= maxChunkL except 1.
type ChunkDivisorError struct {
	L int
}

func (e *ChunkDivisorError) Error() string {
	return fmt.Sprintf("L = %d only has chunk width 1. Reconsider your value for L. "+
		"Prime numbers are a bad idea. Ideally, try something divisible by 25", e.L)
}
func (e *ChunkDivisorError) Unwrap() error { return ErrConfig }

// IDRangeOverflowError is returned when the cumulative number of
// mutated identities no longer fits in a uint64. N is the number of
// mutations at which we gave up.
type IDRangeOverflowError struct {
	MaxMut, L, Q int
	N            int
}

func (e *IDRangeOverflowError) Error() string {
	return fmt.Sprintf("overflow in id range at %d mutations (max_mut %d, L %d, q %d)",
		e.N, e.MaxMut, e.L, e.Q)
}
func (e *IDRangeOverflowError) Unwrap() error { return ErrConfig }

// ChunkAlignmentError means L is not a multiple of the chunk width.
type ChunkAlignmentError struct {
	L, ChunkL int
}

func (e *ChunkAlignmentError) Error() string {
	return fmt.Sprintf("L (%d) should be a multiple of chunk width (%d)", e.L, e.ChunkL)
}
func (e *ChunkAlignmentError) Unwrap() error { return ErrConfig }

// InvalidRestrictionError is an epistasis restriction level that is not 0, 1 or 2.
type InvalidRestrictionError struct {
	Level int
}

func (e *InvalidRestrictionError) Error() string {
	return fmt.Sprintf("epi_restrict should be 0, 1 or 2, got %d", e.Level)
}
func (e *InvalidRestrictionError) Unwrap() error { return ErrConfig }

// RangeError is a single scalar parameter outside its allowed range.
type RangeError struct {
	Name  string
	Value any
	Want  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("parameter %s = %v, want %s", e.Name, e.Value, e.Want)
}
func (e *RangeError) Unwrap() error { return ErrConfig }
