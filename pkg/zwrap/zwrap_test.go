// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/andrew-torda/mutparam/pkg/zwrap"
)

const content = "L\t60\nq\t4\n"

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWrapMaybe(t *testing.T) {
	var tests = []struct {
		data    []byte
		gzipped bool
	}{
		{gzipped(t, content), true},
		{[]byte(content), false},
		{[]byte{}, false},
	}
	for _, tt := range tests {
		r, err := zwrap.WrapMaybe(bytes.NewReader(tt.data))
		if err != nil {
			t.Fatal(err)
		}
		if r.Compressed() != tt.gzipped {
			t.Error("compressed got", r.Compressed(), "want", tt.gzipped)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		want := content
		if len(tt.data) == 0 {
			want = ""
		}
		if string(b) != want {
			t.Errorf("got %q want %q", b, want)
		}
		if err := r.Close(); err != nil {
			t.Error(err)
		}
	}
}

func TestWrapPlain(t *testing.T) {
	if _, err := zwrap.Wrap(bytes.NewReader([]byte(content))); err == nil {
		t.Error("Wrap on plain text should fail")
	}
}
