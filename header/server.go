package header

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Server represents the Server header field.
// The value is a sequence of product tokens and comments separated by whitespace.
type Server struct {
	tokens []string
}

// NewServer returns a Server header made of the given tokens.
// Tokens are trimmed and kept in order, empty ones are dropped.
func NewServer(tokens ...string) Server {
	toks := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = util.TrimOWS(tok); tok != "" {
			toks = append(toks, tok)
		}
	}
	return Server{tokens: toks}
}

// ParseServer parses a Server field value from s (string or []byte).
// The value is split on whitespace, it never fails.
func ParseServer[T ~string | ~[]byte](s T) (Server, error) {
	return Server{tokens: strings.Fields(string(s))}, nil
}

// Tokens returns a copy of the tokens in their original order.
func (hdr Server) Tokens() []string { return slices.Clone(hdr.tokens) }

// CanonicName returns the canonical name of the header.
func (Server) CanonicName() Name { return "Server" }

// ID returns [ServerID].
func (Server) ID() ID { return ServerID }

// RenderTo writes the header to the provided writer.
func (hdr Server) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr Server) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the tokens joined with single spaces.
func (hdr Server) RenderValue() string { return strings.Join(hdr.tokens, " ") }

// RenderValueTo writes the header value without the name prefix.
func (hdr Server) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.RenderValue()))
}

func (hdr Server) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Server) Format(f fmt.State, verb rune) {
	type hideMethods Server
	type Server hideMethods
	formatHeader(f, verb, hdr, Server(hdr))
}

// Clone returns a deep copy of the header.
func (hdr Server) Clone() Header { return Server{tokens: slices.Clone(hdr.tokens)} }

// Equal compares this header with another for equality.
func (hdr Server) Equal(val any) bool {
	var other Server
	switch v := val.(type) {
	case Server:
		other = v
	case *Server:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(hdr.tokens, other.tokens)
}

// IsValid checks whether the header has at least one token.
func (hdr Server) IsValid() bool { return len(hdr.tokens) > 0 }

func (hdr Server) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Server) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
