package grammar

import (
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseUint parses a non-negative decimal integer (1*DIGIT).
// Signs, whitespace and any trailing characters are rejected, as are values overflowing uint64.
func ParseUint[T ~string | ~[]byte](s T) (uint64, error) {
	if len(s) == 0 {
		return 0, errtrace.Wrap(ErrEmptyInput)
	}
	if !IsDigits(s) {
		return 0, errtrace.Wrap(newMalformedInputErr("%q is not a decimal number", s))
	}
	v, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedInputErr(err))
	}
	return v, nil
}

// HostPort is a result of [ParseHostport].
type HostPort struct {
	Host    string
	Port    uint16
	HasPort bool
}

// ParseHostport parses a uri-host with an optional decimal port (host [ ":" port ]).
func ParseHostport[T ~string | ~[]byte](s T) (HostPort, error) {
	if len(s) == 0 {
		return HostPort{}, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := hostport([]byte(s), 0, ns); err != nil {
		return HostPort{}, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return HostPort{}, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}

	var hp HostPort
	if hn, ok := n.GetNode("host"); ok {
		hp.Host = hn.String()
	}
	if pn, ok := n.GetNode("port"); ok {
		p, err := strconv.ParseUint(pn.String(), 10, 16)
		if err != nil {
			return HostPort{}, errtrace.Wrap(newMalformedInputErr("port out of range: %v", err))
		}
		hp.Port = uint16(p)
		hp.HasPort = true
	}
	return hp, nil
}
