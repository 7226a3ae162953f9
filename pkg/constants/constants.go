// 12 Oct 2026

package constants

import (
	"math"
	"sort"
	"time"
)

// Params are the scalar parameters before anything is derived.
// MaxMut is nil unless the user fixed max_mut. A fixed value is
// taken as is, without the usual floor of three, but may not exceed L
// (or three, for tiny L, so derived values can be fed back).
type Params struct {
	L           int     // sequence length
	Q           int     // symbols per position
	M           int     // number of sequences
	PMut        float64 // mutation probability per position
	PErr        float64 // sequencing error probability per position
	PEffect     float64
	PEpistasis  float64
	Seed        int64
	MaxMut      *int
	BTot        float64 // total binding partner concentration
	EpiRestrict int     // 0, 1 or 2
}

// DefaultParams are used for anything not set in a parameter file.
func DefaultParams() Params {
	const pMut = 0.1
	return Params{
		L:           50,
		Q:           2,
		M:           12 * 1000 * 1000,
		PMut:        pMut,
		PErr:        pMut / 10,
		PEffect:     0.5,
		PEpistasis:  0.3,
		Seed:        time.Now().UnixNano(),
		BTot:        2.0,
		EpiRestrict: 0,
	}
}

// Fixed returns a pointer to n, for setting Params.MaxMut.
func Fixed(n int) *int { return &n }

// probOK is false for NaN as well as for values outside [0,1]
func probOK(x float64) bool { return x >= 0 && x <= 1 }

// checkRange looks at each parameter on its own.
func (p *Params) checkRange() error {
	const prob = "a probability in [0,1]"
	switch {
	case p.L < 1:
		return &RangeError{Name: "L", Value: p.L, Want: ">= 1"}
	case p.Q < 2:
		return &RangeError{Name: "q", Value: p.Q, Want: ">= 2"}
	case p.M < 1:
		return &RangeError{Name: "M", Value: p.M, Want: ">= 1"}
	case !probOK(p.PMut):
		return &RangeError{Name: "p_mut", Value: p.PMut, Want: prob}
	case !probOK(p.PErr):
		return &RangeError{Name: "p_error", Value: p.PErr, Want: prob}
	case !probOK(p.PEffect):
		return &RangeError{Name: "p_effect", Value: p.PEffect, Want: prob}
	case !probOK(p.PEpistasis):
		return &RangeError{Name: "p_epistasis", Value: p.PEpistasis, Want: prob}
	case !(p.BTot > 0) || math.IsInf(p.BTot, 1):
		return &RangeError{Name: "B_tot", Value: p.BTot, Want: "> 0"}
	case p.MaxMut != nil && *p.MaxMut < 0:
		return &RangeError{Name: "max_mut", Value: *p.MaxMut, Want: ">= 0"}
	case p.MaxMut != nil && *p.MaxMut > max(p.L, minMaxMut): // beyond L every term is zero
		return &RangeError{Name: "max_mut", Value: *p.MaxMut, Want: "<= L"}
	}
	return nil
}

// Constants holds the parameters and everything derived from them.
// It is built once by New and not changed afterwards, so it can be
// shared between goroutines. The slices returned by the methods belong
// to Constants and must not be modified.
type Constants struct {
	L           int
	Q           int
	M           int
	PMut        float64
	PErr        float64
	PEffect     float64
	PEpistasis  float64
	Seed        int64
	BTot        float64
	EpiRestrict int

	maxMut    int
	chunkL    int
	nMutRange []uint64
	pNMut     []float64
}

// New checks the parameters and derives chunk width, max_mut, the
// id ranges and the probabilities for each number of mutations. If
// anything fails, there is no Constants.
func New(p Params) (*Constants, error) {
	if err := p.checkRange(); err != nil {
		return nil, err
	}
	c := &Constants{
		L: p.L, Q: p.Q, M: p.M,
		PMut: p.PMut, PErr: p.PErr, PEffect: p.PEffect, PEpistasis: p.PEpistasis,
		Seed: p.Seed, BTot: p.BTot, EpiRestrict: p.EpiRestrict,
	}
	var err error
	if c.chunkL, err = ChunkL(p.L); err != nil {
		return nil, err
	}
	if p.MaxMut != nil {
		c.maxMut = *p.MaxMut
	} else {
		c.maxMut = MaxMut(p.M, p.L, p.PMut)
	}
	if c.nMutRange, err = NMutRange(c.maxMut, p.L, p.Q); err != nil {
		return nil, err
	}
	c.pNMut = PNMut(c.maxMut, p.L, p.PMut)
	if err = c.CheckValidity(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckValidity looks at combinations of parameters, after everything
// has been derived.
func (c *Constants) CheckValidity() error {
	if c.chunkL < 1 || c.L%c.chunkL != 0 {
		return &ChunkAlignmentError{L: c.L, ChunkL: c.chunkL}
	}
	switch c.EpiRestrict {
	case 0, 1, 2:
	default:
		return &InvalidRestrictionError{Level: c.EpiRestrict}
	}
	return nil
}

func (c *Constants) MaxMut() int { return c.maxMut }
func (c *Constants) ChunkL() int { return c.chunkL }

// NMutRange has 2*MaxMut+1 cumulative identity counts.
func (c *Constants) NMutRange() []uint64 { return c.nMutRange }

// PNMut has MaxMut+1 probabilities, summing to one.
func (c *Constants) PNMut() []float64 { return c.pNMut }

// Params gives back the scalars, with max_mut fixed to the value in
// use. Feeding them to New gives the same Constants.
func (c *Constants) Params() Params {
	return Params{
		L: c.L, Q: c.Q, M: c.M,
		PMut: c.PMut, PErr: c.PErr, PEffect: c.PEffect, PEpistasis: c.PEpistasis,
		Seed: c.Seed, MaxMut: Fixed(c.maxMut), BTot: c.BTot, EpiRestrict: c.EpiRestrict,
	}
}

// ExpectedSeqs is the expected number of sequences out of M with
// 0, 1, .. MaxMut mutations. The last one includes everything above.
func (c *Constants) ExpectedSeqs() []float64 {
	e := make([]float64, len(c.pNMut))
	for i, p := range c.pNMut {
		e[i] = float64(c.M) * p
	}
	return e
}

// NMutOf maps an identity to its number of mutations by searching the
// id ranges. ok is false if id is beyond the last range.
func (c *Constants) NMutOf(id uint64) (n int, ok bool) {
	r := c.nMutRange
	n = sort.Search(len(r), func(i int) bool { return r[i] > id })
	return n, n < len(r)
}
