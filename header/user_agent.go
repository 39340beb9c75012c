package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

// UserAgent represents the User-Agent header field.
// The value is kept as unstructured text.
type UserAgent string

// ParseUserAgent parses a User-Agent field value from s (string or []byte).
// Only surrounding whitespace is removed, it never fails.
func ParseUserAgent[T ~string | ~[]byte](s T) (UserAgent, error) {
	return UserAgent(util.TrimOWS(s)), nil
}

// Text returns the product text.
func (hdr UserAgent) Text() string { return string(hdr) }

// CanonicName returns the canonical name of the header.
func (UserAgent) CanonicName() Name { return "User-Agent" }

// ID returns [UserAgentID].
func (UserAgent) ID() ID { return UserAgentID }

// RenderTo writes the header to the provided writer.
func (hdr UserAgent) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr UserAgent) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr UserAgent) RenderValue() string { return string(hdr) }

// RenderValueTo writes the header value without the name prefix.
func (hdr UserAgent) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, string(hdr)))
}

func (hdr UserAgent) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr UserAgent) Format(f fmt.State, verb rune) {
	type hideMethods UserAgent
	type UserAgent hideMethods
	formatHeader(f, verb, hdr, UserAgent(hdr))
}

// Clone returns a copy of the header.
func (hdr UserAgent) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr UserAgent) Equal(val any) bool {
	var other UserAgent
	switch v := val.(type) {
	case UserAgent:
		other = v
	case *UserAgent:
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
func (hdr UserAgent) IsValid() bool { return len(hdr) > 0 }

func (hdr UserAgent) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *UserAgent) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
