package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Host represents the Host header field.
// It carries the host and optional port of the target URI.
//
// The zero Host has an empty value, which is what a client sends
// when the target URI has no authority component.
type Host struct {
	addr Addr
}

// NewHost returns a Host header without a port.
func NewHost(host string) Host { return Host{addr: types.Host(host)} }

// NewHostPort returns a Host header with the given port.
func NewHostPort(host string, port uint16) Host { return Host{addr: types.HostPort(host, port)} }

// ParseHost parses a Host field value from s (string or []byte).
// IPv6 literals must be enclosed in brackets. An empty value yields the zero Host.
func ParseHost[T ~string | ~[]byte](s T) (Host, error) {
	s = util.TrimOWS(s)
	if len(s) == 0 {
		return Host{}, nil
	}

	addr, err := types.ParseAddr(s)
	if err != nil {
		return Host{}, errtrace.Wrap(newParseError(Host{}.CanonicName(), err))
	}
	return Host{addr: addr}, nil
}

// Host returns the host without IPv6 brackets.
func (hdr Host) Host() string { return hdr.addr.Host() }

// Port returns the port and a flag indicating whether it is set.
func (hdr Host) Port() (uint16, bool) { return hdr.addr.Port() }

// Addr returns the host and port as [Addr].
func (hdr Host) Addr() Addr { return hdr.addr }

// CanonicName returns the canonical name of the header.
func (Host) CanonicName() Name { return "Host" }

// ID returns [HostID].
func (Host) ID() ID { return HostID }

// RenderTo writes the header to the provided writer.
func (hdr Host) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderField(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr Host) Render(opts *RenderOptions) string { return renderFieldString(hdr, opts) }

// RenderValue returns the header value without the name prefix.
// The port is rendered only when it is set.
func (hdr Host) RenderValue() string {
	if hdr.addr.IsZero() {
		return ""
	}
	return hdr.addr.String()
}

// RenderValueTo writes the header value without the name prefix.
func (hdr Host) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(writeValue(w, hdr.RenderValue()))
}

func (hdr Host) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Host) Format(f fmt.State, verb rune) {
	type hideMethods Host
	type Host hideMethods
	formatHeader(f, verb, hdr, Host(hdr))
}

// Clone returns a copy of the header.
func (hdr Host) Clone() Header { return hdr }

// Equal compares this header with another for equality.
// Host names are compared case-insensitively.
func (hdr Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.addr.Equal(other.addr)
}

// IsValid checks whether the header is syntactically valid.
// The zero Host is valid.
func (hdr Host) IsValid() bool { return hdr.addr.IsZero() || hdr.addr.IsValid() }

func (hdr Host) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Host) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, hdr))
}
