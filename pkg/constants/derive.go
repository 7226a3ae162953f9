// 12 Oct 2026
// The four derived quantities. All the combinatorics is done in big
// floats or 256 bit integers. With L in the hundreds, C(L, k) * p^k
// under- and overflows a float64 long before the product does.

package constants

import (
	"math/big"

	"github.com/holiman/uint256"
)

const (
	prec      = 128 // bits of mantissa for the big.Float calculations
	maxChunkL = 25  // largest chunk width we will use
	minMaxMut = 3   // smallest max_mut we derive
	minNseq   = 5   // expected number of sequences we consider significant
)

// newF returns a big float with our precision set
func newF(x float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(x) }

// binom is n choose k as a big float. It is zero for k > n or k < 0.
func binom(n, k int) *big.Float {
	if k < 0 || k > n {
		return newF(0)
	}
	b := new(big.Int).Binomial(int64(n), int64(k))
	return new(big.Float).SetPrec(prec).SetInt(b)
}

// pow raises x to the non-negative power n by squaring.
func pow(x *big.Float, n int) *big.Float {
	r := newF(1)
	b := new(big.Float).SetPrec(prec).Set(x)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r.Mul(r, b)
		}
		b.Mul(b, b)
	}
	return r
}

// binomProb is the probability of exactly k mutations in l positions,
// C(l,k) * p^k * (1-p)^(l-k).
func binomProb(l, k int, pMut float64) *big.Float {
	if k < 0 || k > l {
		return newF(0)
	}
	p := newF(pMut)
	q := newF(1)
	q.Sub(q, p)
	r := binom(l, k)
	r.Mul(r, pow(p, k))
	return r.Mul(r, pow(q, l-k))
}

// Expected is the expected number of sequences out of m with exactly k
// mutations.
func Expected(m, l, k int, pMut float64) *big.Float {
	r := binomProb(l, k, pMut)
	return r.Mul(r, newF(float64(m)))
}

// ChunkL finds the largest x <= 25 with l % x == 0. If that
// is 1, l is probably prime and we return an error.
func ChunkL(l int) (int, error) {
	if l < 1 {
		return 0, &RangeError{Name: "L", Value: l, Want: ">= 1"}
	}
	x := min(maxChunkL, l)
	for ; l%x != 0; x-- {
	}
	if x == 1 {
		return 0, &ChunkDivisorError{L: l}
	}
	return x, nil
}

// MaxMut is the number of mutations we have to model explicitly.
// Starting from two mutations, we keep going while the expected number
// of sequences is above minNseq or still rising. We return the last
// value for which that held, but never less than minMaxMut.
func MaxMut(m, l int, pMut float64) int {
	lim := newF(minNseq)
	k := 2
	prev := Expected(m, l, k, pMut)
	for {
		k++
		cur := Expected(m, l, k, pMut)
		if k >= l || (cur.Cmp(lim) <= 0 && cur.Cmp(prev) <= 0) {
			break
		}
		prev = cur
	}
	return max(k-1, minMaxMut)
}

// idTerm is C(l,i) * (q-1)^i, the number of identities with exactly
// i mutations. ok is false if the value does not fit in 256 bits.
func idTerm(l, i, q int) (t *uint256.Int, ok bool) {
	t = uint256.NewInt(1)
	if i > l {
		return t.Clear(), true
	}
	for k := 0; k < i; k++ { // t stays C(l, k+1)
		if _, over := t.MulOverflow(t, uint256.NewInt(uint64(l-k))); over {
			return nil, false
		}
		t.Div(t, uint256.NewInt(uint64(k+1)))
	}
	if q <= 1 {
		return t.Clear(), true
	}
	sym := uint256.NewInt(uint64(q - 1))
	for k := 0; k < i; k++ {
		if _, over := t.MulOverflow(t, sym); over {
			return nil, false
		}
	}
	return t, true
}

// NMutRange returns the cumulative number of mutated identities for
// 0, 1, .. 2*maxMut mutations. The factor of two leaves room for
// sequencing errors on top of mutations. The sums have to fit in a
// uint64, since downstream the values are used as ids.
func NMutRange(maxMut, l, q int) ([]uint64, error) {
	if maxMut < 0 {
		return nil, &RangeError{Name: "max_mut", Value: maxMut, Want: ">= 0"}
	}
	r := make([]uint64, 2*maxMut+1)
	r[0] = 1
	sum := uint256.NewInt(1)
	for i := 1; i < len(r); i++ {
		t, ok := idTerm(l, i, q)
		if ok {
			_, over := sum.AddOverflow(sum, t)
			ok = !over && sum.IsUint64()
		}
		if !ok || sum.Uint64() < r[i-1] {
			return nil, &IDRangeOverflowError{MaxMut: maxMut, L: l, Q: q, N: i}
		}
		r[i] = sum.Uint64()
	}
	return r, nil
}

// PNMut is the probability of 0, 1, .. maxMut mutations. Everything
// beyond maxMut is lumped into the last element, so the sum is one.
// Rounding can make that last element a hair below zero. It is
// clamped.
func PNMut(maxMut, l int, pMut float64) []float64 {
	if maxMut < 0 {
		return nil
	}
	p := make([]float64, maxMut+1)
	sum := newF(0)
	for i := 0; i < maxMut; i++ {
		x := binomProb(l, i, pMut)
		sum.Add(sum, x)
		p[i], _ = x.Float64()
	}
	tail := newF(1)
	tail.Sub(tail, sum)
	if p[maxMut], _ = tail.Float64(); p[maxMut] < 0 {
		p[maxMut] = 0
	}
	return p
}
