package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// ContentLength represents the Content-Length header field.
// It indicates the size of the message content in decimal number of octets.
type ContentLength uint64

// NewContentLength returns a Content-Length header with the given size.
func NewContentLength(n uint64) ContentLength { return ContentLength(n) }

// ParseContentLength parses a Content-Length field value from s (string or []byte).
// The value must be a non-negative decimal number fitting into 64 bits, surrounding whitespace is ignored.
func ParseContentLength[T ~string | ~[]byte](s T) (ContentLength, error) {
	v, err := grammar.ParseUint(util.TrimOWS(s))
	if err != nil {
		return 0, errtrace.Wrap(newParseError(ContentLength(0).CanonicName(), err))
	}
	return ContentLength(v), nil
}

// Value returns the content size.
func (hdr ContentLength) Value() uint64 { return uint64(hdr) }

// CanonicName returns the canonical name of the header.
func (ContentLength) CanonicName() Name { return "Content-Length" }

// ID returns [ContentLengthID].
func (ContentLength) ID() ID { return ContentLengthID }

// RenderTo writes the header to the provided writer.
func (hdr ContentLength) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr ContentLength) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentLength) RenderValue() string { return strconv.FormatUint(uint64(hdr), 10) }

// RenderValueTo writes the header value without the name prefix.
func (hdr ContentLength) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.RenderValue()))
}

func (hdr ContentLength) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentLength) Format(f fmt.State, verb rune) {
	type hideMethods ContentLength
	type ContentLength hideMethods
	formatHeader(f, verb, hdr, ContentLength(hdr))
}

// Clone returns a copy of the header.
func (hdr ContentLength) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr ContentLength) Equal(val any) bool {
	var other ContentLength
	switch v := val.(type) {
	case ContentLength:
		other = v
	case *ContentLength:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (ContentLength) IsValid() bool { return true }

func (hdr ContentLength) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentLength) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
