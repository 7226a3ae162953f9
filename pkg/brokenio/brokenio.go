// brokenio wraps an io.Reader and breaks it on purpose.
// Typical use in a test: you have a reader with a perfectly good
// parameter file. Wrap it with NewReader and set the rate of failures.
// Reads then either fail with an error, or succeed but with the end of
// the buffer wiped out, which is what a half written file looks like.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is returned when we decide a read fails.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Rdr holds the wrapped reader and the rates of each kind of damage.
// Rates are fractions, so 0.05 means 5 % of reads.
type Rdr struct {
	orig      io.Reader
	rnd       *rand.Rand
	probFail  float32 // read returns ErrBroken
	probTrash float32 // tail of the buffer is zeroed
	fracTrash float32 // how much of the tail
	nCalled   int
	nByte     int
}

// NewReader wraps r. seed makes the damage reproducible.
func NewReader(r io.Reader, seed int64) *Rdr {
	return &Rdr{orig: r, rnd: rand.New(rand.NewSource(seed)), fracTrash: 0.5}
}

// SetProbFail sets the probability of a read returning an error.
func (r *Rdr) SetProbFail(prob float32) { r.probFail = prob }

// SetProbTrash sets the probability of a read having its end wiped out.
func (r *Rdr) SetProbTrash(prob float32) { r.probTrash = prob }

// SetFracTrash sets the fraction of the buffer that gets wiped.
func (r *Rdr) SetFracTrash(frac float32) { r.fracTrash = frac }

// Stats gives the number of reads and bytes that went through.
func (r *Rdr) Stats() (nCalled, nByte int) { return r.nCalled, r.nByte }

// trash zeroes the last frac of p and returns how much is left.
func trash(p []byte, frac float32) int {
	nkeep := int(float32(len(p)) * (1. - frac))
	clear(p[nkeep:])
	return nkeep
}

// Read passes through to the original reader, then maybe breaks things.
func (r *Rdr) Read(p []byte) (int, error) {
	r.nCalled++
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err := r.orig.Read(p)
	r.nByte += n
	if n > 0 && r.probTrash > 0 && r.rnd.Float32() < r.probTrash {
		trash(p[:n], r.fracTrash)
	}
	return n, err
}
