// 13 Oct 2026
// Property based tests. gopter throws random parameters at the
// derivations and we check the invariants hold.

package constants_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	. "github.com/andrew-torda/mutparam/pkg/constants"
)

func newProps() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestChunkLProps(t *testing.T) {
	properties := newProps()
	properties.Property("chunk width divides L and is the largest <= 25", prop.ForAll(
		func(l int) bool {
			w, err := ChunkL(l)
			best := 1
			for x := min(25, l); x > 1; x-- {
				if l%x == 0 {
					best = x
					break
				}
			}
			if best == 1 {
				var cde *ChunkDivisorError
				return errors.As(err, &cde)
			}
			return err == nil && w == best && l%w == 0 && w <= 25
		},
		gen.IntRange(1, 500),
	))
	properties.TestingRun(t)
}

func TestMaxMutProps(t *testing.T) {
	properties := newProps()
	properties.Property("max_mut is at least three", prop.ForAll(
		func(m, l int, p float64) bool {
			return MaxMut(m, l, p) >= 3
		},
		gen.IntRange(1, 20000000),
		gen.IntRange(1, 150),
		gen.Float64Range(0.0001, 0.6),
	))
	properties.TestingRun(t)
}

func TestNMutRangeProps(t *testing.T) {
	properties := newProps()
	properties.Property("id ranges start at one and grow", prop.ForAll(
		func(maxMut, l, q int) bool {
			r, err := NMutRange(maxMut, l, q)
			if err != nil {
				var oe *IDRangeOverflowError
				return errors.As(err, &oe) && r == nil
			}
			if len(r) != 2*maxMut+1 || r[0] != 1 {
				return false
			}
			for i := 1; i < len(r); i++ {
				if i <= l && r[i] <= r[i-1] {
					return false
				}
				if i > l && r[i] != r[i-1] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 25),
		gen.IntRange(1, 120),
		gen.IntRange(2, 20),
	))
	properties.TestingRun(t)
}

func TestPNMutProps(t *testing.T) {
	properties := newProps()
	properties.Property("probabilities sum to one", prop.ForAll(
		func(maxMut, l int, p float64) bool {
			pn := PNMut(maxMut, l, p)
			var sum float64
			for _, x := range pn {
				if x < 0 {
					return false
				}
				sum += x
			}
			return len(pn) == maxMut+1 && math.Abs(sum-1) < 1e-9
		},
		gen.IntRange(0, 60),
		gen.IntRange(1, 300),
		gen.Float64Range(0, 1),
	))
	properties.TestingRun(t)
}

func TestNewIdempotentProps(t *testing.T) {
	properties := newProps()
	properties.Property("deriving twice gives the same tables", prop.ForAll(
		func(l int, p float64, seed int64) bool {
			params := DefaultParams()
			params.L, params.PMut, params.Seed = l, p, seed
			c1, err1 := New(params)
			c2, err2 := New(params)
			if err1 != nil || err2 != nil {
				return err1 != nil && err2 != nil && err1.Error() == err2.Error()
			}
			return c1.MaxMut() == c2.MaxMut() && c1.Seed == seed &&
				cmp.Equal(c1.NMutRange(), c2.NMutRange()) &&
				cmp.Equal(c1.PNMut(), c2.PNMut())
		},
		gen.IntRange(10, 60),
		gen.Float64Range(0.001, 0.3),
		gen.Int64(),
	))
	properties.TestingRun(t)
}
