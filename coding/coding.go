// Package coding provides stream readers and writers for HTTP content codings (RFC 9110 Section 8.4.1).
//
// Supported codings are gzip, deflate (a zlib stream), compress (LZW) and identity.
// gzip and deflate use github.com/klauspost/compress.
package coding

//go:generate go tool errtrace -w .

import (
	"bufio"
	"bytes"
	"compress/lzw"
	"io"

	"braces.dev/errtrace"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// ErrUnsupportedEncoding is returned for codings without a stream implementation.
const ErrUnsupportedEncoding errorutil.Error = "unsupported content coding"

// Compression levels accepted by [Options.Level].
const (
	DefaultLevel    = 0
	BestSpeed       = 1
	BestCompression = 9
	HuffmanOnly     = -2
)

// lzwLitWidth is the literal code width of the compress coding.
const lzwLitWidth = 8

// Options are options for [NewWriter].
type Options struct {
	// Level is a compression level of gzip and deflate writers,
	// from [BestSpeed] to [BestCompression], or [HuffmanOnly].
	// If zero, the default level of the coding is used.
	Level int
}

func (o *Options) level() int {
	if o == nil || o.Level == DefaultLevel {
		return flate.DefaultCompression
	}
	return o.Level
}

// NewReader returns a reader decoding r with the content coding enc.
//
// The deflate reader accepts both zlib streams and raw deflate data,
// as some servers send the latter.
// Closing the returned reader does not close r.
func NewReader(enc header.Encoding, r io.Reader) (io.ReadCloser, error) {
	switch enc {
	case header.EncodingIdentity:
		return io.NopCloser(r), nil
	case header.EncodingGzip:
		return errtrace.Wrap2(gzip.NewReader(r))
	case header.EncodingDeflate:
		return errtrace.Wrap2(newDeflateReader(r))
	case header.EncodingCompress:
		return lzw.NewReader(r, lzw.MSB, lzwLitWidth), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedEncoding, "%q", enc.String()))
	}
}

func newDeflateReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	hdr, err := br.Peek(2)
	if err != nil && len(hdr) < 2 {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, errtrace.Wrap(err)
	}
	if isZlibHeader(hdr[0], hdr[1]) {
		return errtrace.Wrap2(zlib.NewReader(br))
	}
	return flate.NewReader(br), nil
}

// isZlibHeader reports whether cmf and flg start a zlib stream (RFC 1950 Section 2.2).
func isZlibHeader(cmf, flg byte) bool {
	return cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// NewWriter returns a writer encoding data written to it with the content coding enc into w.
// Options are optional, nil is allowed.
// The returned writer must be closed to flush buffered data, closing it does not close w.
func NewWriter(enc header.Encoding, w io.Writer, opts *Options) (io.WriteCloser, error) {
	switch enc {
	case header.EncodingIdentity:
		return nopWriteCloser{w}, nil
	case header.EncodingGzip:
		return errtrace.Wrap2(gzip.NewWriterLevel(w, opts.level()))
	case header.EncodingDeflate:
		return errtrace.Wrap2(zlib.NewWriterLevel(w, opts.level()))
	case header.EncodingCompress:
		return lzw.NewWriter(w, lzw.MSB, lzwLitWidth), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedEncoding, "%q", enc.String()))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Coding binds a content coding to the stream constructors.
type Coding struct {
	enc  header.Encoding
	opts *Options
}

// ForHeader returns the coding of the Content-Encoding header.
func ForHeader(ce header.ContentEncoding, opts *Options) Coding {
	return Coding{enc: ce.Encoding(), opts: opts}
}

// Encoding returns the content coding.
func (c Coding) Encoding() header.Encoding { return c.enc }

// NewReader is like the package level [NewReader].
func (c Coding) NewReader(r io.Reader) (io.ReadCloser, error) {
	return errtrace.Wrap2(NewReader(c.enc, r))
}

// NewWriter is like the package level [NewWriter].
func (c Coding) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return errtrace.Wrap2(NewWriter(c.enc, w, c.opts))
}

// Encode encodes data with the coding.
func (c Coding) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, errtrace.Wrap(err)
	}
	if err := w.Close(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buf.Bytes(), nil
}

// Decode decodes data with the coding.
func (c Coding) Decode(data []byte) ([]byte, error) {
	r, err := c.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer r.Close()
	return errtrace.Wrap2(io.ReadAll(r))
}
