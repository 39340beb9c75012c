package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Encoding is a content coding.
// The zero value is [EncodingIdentity].
type Encoding uint8

const (
	EncodingIdentity Encoding = iota
	EncodingGzip
	EncodingCompress
	EncodingDeflate
	// EncodingUnknown is a coding outside the built-in set.
	EncodingUnknown
)

var encodingTokens = [...]string{
	EncodingIdentity: "identity",
	EncodingGzip:     "gzip",
	EncodingCompress: "compress",
	EncodingDeflate:  "deflate",
	EncodingUnknown:  "unknown",
}

// ParseEncoding maps a content coding token to [Encoding].
// Tokens are matched case-insensitively, "x-gzip" and "x-compress" are accepted as aliases.
// Unrecognized tokens map to [EncodingUnknown].
func ParseEncoding[T ~string | ~[]byte](s T) Encoding {
	tok := strings.ToLower(string(util.TrimOWS(s)))
	switch tok {
	case "identity":
		return EncodingIdentity
	case "gzip", "x-gzip":
		return EncodingGzip
	case "compress", "x-compress":
		return EncodingCompress
	case "deflate":
		return EncodingDeflate
	default:
		return EncodingUnknown
	}
}

// String returns the canonical lowercase token of the coding.
func (enc Encoding) String() string {
	if int(enc) < len(encodingTokens) {
		return encodingTokens[enc]
	}
	return encodingTokens[EncodingUnknown]
}

// IsKnown reports whether the coding belongs to the built-in set.
func (enc Encoding) IsKnown() bool { return enc < EncodingUnknown }

func (enc Encoding) MarshalText() ([]byte, error) { return []byte(enc.String()), nil }

func (enc *Encoding) UnmarshalText(data []byte) error {
	*enc = ParseEncoding(data)
	return nil
}

// ContentEncoding represents the Content-Encoding header field.
// The zero value holds [EncodingIdentity].
type ContentEncoding struct {
	enc Encoding
}

// NewContentEncoding returns a Content-Encoding header with the given coding.
func NewContentEncoding(enc Encoding) ContentEncoding { return ContentEncoding{enc: enc} }

// ParseContentEncoding parses a Content-Encoding field value from s (string or []byte).
// It never fails: unrecognized codings yield [EncodingUnknown].
func ParseContentEncoding[T ~string | ~[]byte](s T) (ContentEncoding, error) {
	return ContentEncoding{enc: ParseEncoding(s)}, nil
}

// Encoding returns the content coding.
func (hdr ContentEncoding) Encoding() Encoding { return hdr.enc }

// CanonicName returns the canonical name of the header.
func (ContentEncoding) CanonicName() Name { return "Content-Encoding" }

// ID returns [ContentEncodingID].
func (ContentEncoding) ID() ID { return ContentEncodingID }

// RenderTo writes the header to the provided writer.
func (hdr ContentEncoding) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr ContentEncoding) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentEncoding) RenderValue() string { return hdr.enc.String() }

// RenderValueTo writes the header value without the name prefix.
func (hdr ContentEncoding) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.enc.String()))
}

func (hdr ContentEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentEncoding) Format(f fmt.State, verb rune) {
	type hideMethods ContentEncoding
	type ContentEncoding hideMethods
	formatHeader(f, verb, hdr, ContentEncoding(hdr))
}

// Clone returns a copy of the header.
func (hdr ContentEncoding) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr ContentEncoding) Equal(val any) bool {
	var other ContentEncoding
	switch v := val.(type) {
	case ContentEncoding:
		other = v
	case *ContentEncoding:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.enc == other.enc
}

// IsValid checks whether the header holds a known coding.
func (hdr ContentEncoding) IsValid() bool { return hdr.enc.IsKnown() }

func (hdr ContentEncoding) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentEncoding) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
