package coding_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/flate"

	"github.com/ghettovoice/httphdr/coding"
	"github.com/ghettovoice/httphdr/header"
)

var payload = []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 64))

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		enc  header.Encoding
		opts *coding.Options
	}{
		{"identity", header.EncodingIdentity, nil},
		{"gzip", header.EncodingGzip, nil},
		{"gzip best speed", header.EncodingGzip, &coding.Options{Level: coding.BestSpeed}},
		{"gzip huffman only", header.EncodingGzip, &coding.Options{Level: coding.HuffmanOnly}},
		{"deflate", header.EncodingDeflate, nil},
		{"deflate best compression", header.EncodingDeflate, &coding.Options{Level: coding.BestCompression}},
		{"compress", header.EncodingCompress, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w, err := coding.NewWriter(c.enc, &buf, c.opts)
			if err != nil {
				t.Fatalf("coding.NewWriter(%v, w, opts) error = %v, want nil", c.enc, err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatalf("w.Write(payload) error = %v, want nil", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("w.Close() error = %v, want nil", err)
			}
			if c.enc != header.EncodingIdentity && buf.Len() >= len(payload) {
				t.Errorf("encoded length = %d, want less than %d", buf.Len(), len(payload))
			}

			r, err := coding.NewReader(c.enc, &buf)
			if err != nil {
				t.Fatalf("coding.NewReader(%v, r) error = %v, want nil", c.enc, err)
			}
			defer r.Close()
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
			}
			if diff := cmp.Diff(payload, got); diff != "" {
				t.Errorf("decoded payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewReader_RawDeflate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter(w, level) error = %v, want nil", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("fw.Write(payload) error = %v, want nil", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("fw.Close() error = %v, want nil", err)
	}

	r, err := coding.NewReader(header.EncodingDeflate, &buf)
	if err != nil {
		t.Fatalf("coding.NewReader(deflate, r) error = %v, want nil", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll(r) error = %v, want nil", err)
	}
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("decoded payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReader_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		enc  header.Encoding
		in   []byte
		want error
	}{
		{"unknown", header.EncodingUnknown, payload, coding.ErrUnsupportedEncoding},
		{"gzip garbage", header.EncodingGzip, []byte("not gzip data"), nil},
		{"deflate truncated", header.EncodingDeflate, []byte{0x78}, io.ErrUnexpectedEOF},
		{"deflate empty", header.EncodingDeflate, nil, io.ErrUnexpectedEOF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r, err := coding.NewReader(c.enc, bytes.NewReader(c.in))
			if err == nil {
				r.Close()
				t.Fatalf("coding.NewReader(%v, r) error = nil, want non-nil", c.enc)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Errorf("coding.NewReader(%v, r) error = %v, want %v", c.enc, err, c.want)
			}
		})
	}
}

func TestNewWriter_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		enc  header.Encoding
		opts *coding.Options
		want error
	}{
		{"unknown", header.EncodingUnknown, nil, coding.ErrUnsupportedEncoding},
		{"out of range", header.Encoding(42), nil, coding.ErrUnsupportedEncoding},
		{"gzip bad level", header.EncodingGzip, &coding.Options{Level: 42}, nil},
		{"deflate bad level", header.EncodingDeflate, &coding.Options{Level: -42}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			w, err := coding.NewWriter(c.enc, io.Discard, c.opts)
			if err == nil {
				w.Close()
				t.Fatalf("coding.NewWriter(%v, w, %+v) error = nil, want non-nil", c.enc, c.opts)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Errorf("coding.NewWriter(%v, w, %+v) error = %v, want %v", c.enc, c.opts, err, c.want)
			}
		})
	}
}

func TestForHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  header.Encoding
	}{
		{"gzip", "gzip", header.EncodingGzip},
		{"x-gzip", "X-GZIP", header.EncodingGzip},
		{"deflate", "deflate", header.EncodingDeflate},
		{"compress", "x-compress", header.EncodingCompress},
		{"identity", "identity", header.EncodingIdentity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ce, err := header.ParseContentEncoding(c.value)
			if err != nil {
				t.Fatalf("header.ParseContentEncoding(%q) error = %v, want nil", c.value, err)
			}
			cd := coding.ForHeader(ce, nil)
			if got := cd.Encoding(); got != c.want {
				t.Errorf("coding.ForHeader(%q).Encoding() = %v, want %v", c.value, got, c.want)
			}

			enc, err := cd.Encode(payload)
			if err != nil {
				t.Fatalf("Coding.Encode(payload) error = %v, want nil", err)
			}
			dec, err := cd.Decode(enc)
			if err != nil {
				t.Fatalf("Coding.Decode(encoded) error = %v, want nil", err)
			}
			if diff := cmp.Diff(payload, dec); diff != "" {
				t.Errorf("Coding.Decode(Coding.Encode(payload)) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForHeader_Unknown(t *testing.T) {
	t.Parallel()

	cd := coding.ForHeader(header.NewContentEncoding(header.EncodingUnknown), nil)
	if _, err := cd.Encode(payload); !errors.Is(err, coding.ErrUnsupportedEncoding) {
		t.Errorf("Coding.Encode(payload) error = %v, want %v", err, coding.ErrUnsupportedEncoding)
	}
	if _, err := cd.Decode(payload); !errors.Is(err, coding.ErrUnsupportedEncoding) {
		t.Errorf("Coding.Decode(payload) error = %v, want %v", err, coding.ErrUnsupportedEncoding)
	}
}
