package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
	"github.com/ghettovoice/httphdr/mime"
)

// ContentType represents the Content-Type header field.
//
// A parsed ContentType keeps the received text and renders it back unchanged,
// so unrecognized tokens and media type parameters are not lost.
// A ContentType built with [NewContentType] renders its [mime.MediaType].
type ContentType struct {
	mt  mime.MediaType
	raw string
}

// NewContentType returns a Content-Type header with the given media type.
func NewContentType(mt mime.MediaType) ContentType { return ContentType{mt: mt} }

// ParseContentType parses a Content-Type field value from s (string or []byte).
// The media type is parsed with [mime.Parse], its errors are propagated.
func ParseContentType[T ~string | ~[]byte](s T) (ContentType, error) {
	s = util.TrimOWS(s)
	mt, err := mime.Parse(s)
	if err != nil {
		return ContentType{}, errtrace.Wrap(newParseError(ContentType{}.CanonicName(), err))
	}
	return ContentType{mt: mt, raw: string(s)}, nil
}

// MediaType returns the classified media type.
func (hdr ContentType) MediaType() mime.MediaType { return hdr.mt }

// Raw returns the received field value, or an empty string if the header was not parsed.
func (hdr ContentType) Raw() string { return hdr.raw }

// CanonicName returns the canonical name of the header.
func (ContentType) CanonicName() Name { return "Content-Type" }

// ID returns [ContentTypeID].
func (ContentType) ID() ID { return ContentTypeID }

// RenderTo writes the header to the provided writer.
func (hdr ContentType) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr ContentType) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
// A header without a received value and media type renders an empty value.
func (hdr ContentType) RenderValue() string {
	if hdr.raw != "" {
		return hdr.raw
	}
	if hdr.mt.IsZero() {
		return ""
	}
	return hdr.mt.String()
}

// RenderValueTo writes the header value without the name prefix.
func (hdr ContentType) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.RenderValue()))
}

func (hdr ContentType) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentType) Format(f fmt.State, verb rune) {
	type hideMethods ContentType
	type ContentType hideMethods
	formatHeader(f, verb, hdr, ContentType(hdr))
}

// Clone returns a copy of the header.
func (hdr ContentType) Clone() Header { return hdr }

// Equal compares this header with another for equality.
// Headers are equal when their media types match including the suffix
// and the rendered values match case-insensitively.
func (hdr ContentType) Equal(val any) bool {
	var other ContentType
	switch v := val.(type) {
	case ContentType:
		other = v
	case *ContentType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.mt.EqualStrict(other.mt) && util.EqFold(hdr.RenderValue(), other.RenderValue())
}

// IsValid checks whether the header is syntactically valid.
// Parsed headers are always valid, built ones require a recognized type and subtype.
func (hdr ContentType) IsValid() bool { return hdr.raw != "" || hdr.mt.IsValid() }

func (hdr ContentType) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *ContentType) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
