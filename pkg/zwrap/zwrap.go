// Package zwrap takes a source and, if it is gzipped, wraps it so reads
// come from the decompressor. Parameter files are tiny, but they get
// archived with the rest of a run and come back compressed.

package zwrap

import (
	"compress/gzip"
	"io"
)

// Rdr is what we return. If zrdr is nil, the source was not compressed.
type Rdr struct {
	src  io.Reader
	zrdr *gzip.Reader
}

// Read makes sure we read from the decompressor and not the
// underlying stream, if there is a decompressor.
func (r *Rdr) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.src.Read(p)
}

// Close closes the decompressor. The source belongs to the caller.
func (r *Rdr) Close() error {
	if r.zrdr == nil {
		return nil
	}
	return r.zrdr.Close()
}

// Compressed says if the reader is going through gzip.
func (r *Rdr) Compressed() bool { return r.zrdr != nil }

// Wrap assumes src is gzipped. The error from gzip is just passed back.
func Wrap(src io.Reader) (*Rdr, error) {
	var err error
	r := &Rdr{src: src}
	r.zrdr, err = gzip.NewReader(src)
	return r, err
}

// WrapMaybe decides if src is compressed. If it is not, src is rewound
// and read as it is.
func WrapMaybe(src io.ReadSeeker) (*Rdr, error) {
	if r, err := Wrap(src); err == nil {
		return r, nil
	}
	_, err := src.Seek(0, io.SeekStart)
	return &Rdr{src: src}, err
}
