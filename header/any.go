package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Any implements a generic extension header.
// It holds fields that have neither a built-in type nor a registered parser.
// All Any values share the identity [AnyID], whatever their name is.
type Any struct {
	name  Name
	value string
}

// NewAny returns an extension header with the canonicalized name and trimmed value.
func NewAny(name, value string) Any {
	return Any{name: CanonicName(name), value: util.TrimOWS(value)}
}

// Name returns the canonical field name.
func (hdr Any) Name() Name { return hdr.name }

// Value returns the field value.
func (hdr Any) Value() string { return hdr.value }

// CanonicName returns the canonical name of the header.
func (hdr Any) CanonicName() Name { return hdr.name }

// ID returns [AnyID].
func (Any) ID() ID { return AnyID }

// RenderTo writes the header to the provided writer.
func (hdr Any) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr Any) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Any) RenderValue() string { return hdr.value }

// RenderValueTo writes the header value without the name prefix.
func (hdr Any) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.value))
}

func (hdr Any) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Any) Format(f fmt.State, verb rune) {
	type hideMethods Any
	type Any hideMethods
	formatHeader(f, verb, hdr, Any(hdr))
}

// Clone returns a copy of the header.
func (hdr Any) Clone() Header { return hdr }

// Equal compares this header with another for equality.
// Names are compared case-insensitively, values verbatim.
func (hdr Any) Equal(val any) bool {
	var other Any
	switch v := val.(type) {
	case Any:
		other = v
	case *Any:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.name.Equal(other.name) && hdr.value == other.value
}

// IsValid checks whether the header name is a valid token.
func (hdr Any) IsValid() bool { return hdr.name.IsValid() }

func (hdr Any) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Any) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
