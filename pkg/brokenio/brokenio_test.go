package brokenio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/mutparam/pkg/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func TestReaderSimple(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != longstring {
		t.Errorf("simple read got %q, %v", b, err)
	}
	if _, nb := rdr.Stats(); nb != len(longstring) {
		t.Error("byte count", nb)
	}
}

func TestFail(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbFail(1)
	if _, err := io.ReadAll(rdr); !errors.Is(err, brokenio.ErrBroken) {
		t.Error("wanted ErrBroken, got", err)
	}
}

func TestTrash(t *testing.T) {
	for _, frac := range []float32{0, 0.3, 1} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
		rdr.SetProbTrash(1)
		rdr.SetFracTrash(frac)
		s := make([]byte, len(longstring))
		n, err := rdr.Read(s)
		if err != nil || n != len(longstring) {
			t.Fatal("read", n, err)
		}
		nNull := bytes.Count(s, []byte{0})
		if want := len(s) - int(float32(len(s))*(1-frac)); nNull != want {
			t.Errorf("frac %g: got %d nulls want %d", frac, nNull, want)
		}
		if nkeep := len(s) - nNull; string(s[:nkeep]) != longstring[:nkeep] {
			t.Errorf("frac %g: kept part changed %q", frac, s[:nkeep])
		}
	}
}
