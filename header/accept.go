package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
	"github.com/ghettovoice/httphdr/mime"
)

// Accept represents the Accept header field.
//
// The value is stored verbatim. Media ranges, wildcards and quality values
// are not interpreted, see [Accept.MediaRanges] for a best-effort view.
type Accept struct {
	raw string
}

// NewAccept returns an Accept header holding the raw field value.
func NewAccept(raw string) Accept { return Accept{raw: util.TrimOWS(raw)} }

// ParseAccept parses an Accept field value from s (string or []byte).
// Only surrounding whitespace is removed, it never fails.
func ParseAccept[T ~string | ~[]byte](s T) (Accept, error) {
	return Accept{raw: string(util.TrimOWS(s))}, nil
}

// Raw returns the field value as it was received.
func (hdr Accept) Raw() string { return hdr.raw }

// MediaRanges splits the value on ',' and parses each element as a media type.
// Parameters, including quality values, are dropped, and elements that fail to parse are skipped.
// The order of the value is kept.
func (hdr Accept) MediaRanges() []mime.MediaType {
	if hdr.raw == "" {
		return nil
	}

	elems := strings.Split(hdr.raw, ",")
	mts := make([]mime.MediaType, 0, len(elems))
	for _, e := range elems {
		mt, err := mime.Parse(e)
		if err != nil {
			continue
		}
		mts = append(mts, mt)
	}
	return mts
}

// CanonicName returns the canonical name of the header.
func (Accept) CanonicName() Name { return "Accept" }

// ID returns [AcceptID].
func (Accept) ID() ID { return AcceptID }

// RenderTo writes the header to the provided writer.
func (hdr Accept) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr Accept) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Accept) RenderValue() string { return hdr.raw }

// RenderValueTo writes the header value without the name prefix.
func (hdr Accept) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.raw))
}

func (hdr Accept) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Accept) Format(f fmt.State, verb rune) {
	type hideMethods Accept
	type Accept hideMethods
	formatHeader(f, verb, hdr, Accept(hdr))
}

// Clone returns a copy of the header.
func (hdr Accept) Clone() Header { return hdr }

// Equal compares this header with another for equality.
// Values are compared verbatim.
func (hdr Accept) Equal(val any) bool {
	var other Accept
	switch v := val.(type) {
	case Accept:
		other = v
	case *Accept:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.raw == other.raw
}

// IsValid checks whether the header is syntactically valid.
// An empty Accept is allowed and means no preference.
func (Accept) IsValid() bool { return true }

func (hdr Accept) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Accept) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
