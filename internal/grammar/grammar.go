// Package grammar implements the ABNF rules of HTTP field values (RFC 9110, RFC 3986)
// needed by the header parsers.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

// RFC 5234 Appendix B.1.
var (
	digit = abnf.Range("DIGIT", []byte("0"), []byte("9"))
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte("A"), []byte("Z")),
		abnf.Range("%x61-7A", []byte("a"), []byte("z")),
	)
	hexdig = abnf.Alt(
		"HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte("A"), []byte("F")),
		abnf.Range("%x61-66", []byte("a"), []byte("f")),
	)
)

// RFC 9110 Section 5.6.2.
var (
	tchar = abnf.Alt("tchar", charset("tchar-sym", "!#$%&'*+-.^_`|~"), digit, alpha)
	token = abnf.Repeat1Inf("token", tchar)
)

// RFC 9110 Section 8.6.
var decimal = abnf.Repeat1Inf("1*DIGIT", digit)

// RFC 3986 Section 3.2.2 and 3.2.3.
// IP-literal is accepted loosely here; the address itself is validated with net/netip.
var (
	unreserved = abnf.Alt("unreserved", alpha, digit, charset("unreserved-sym", "-._~"))
	pctEncoded = abnf.Concat("pct-encoded", abnf.Literal("\"%\"", []byte("%")), hexdig, hexdig)
	subDelims  = charset("sub-delims", "!$&'()*+,;=")
	regName    = abnf.Repeat1Inf("reg-name", abnf.Alt("reg-name-char", unreserved, pctEncoded, subDelims))
	ipLiteral  = abnf.Concat(
		"IP-literal",
		abnf.Literal("\"[\"", []byte("[")),
		abnf.Repeat1Inf("ip-char", abnf.Alt("ip-chars", hexdig, charset("ip-sym", ":."))),
		abnf.Literal("\"]\"", []byte("]")),
	)
	host     = abnf.AltFirst("host", ipLiteral, regName)
	port     = abnf.Repeat1Inf("port", digit)
	hostport = abnf.Concat(
		"hostport",
		host,
		abnf.Optional("[ \":\" port ]", abnf.Concat("\":\" port", abnf.Literal("\":\"", []byte(":")), port)),
	)
)

func charset(key, set string) abnf.Operator {
	oprts := make([]abnf.Operator, len(set))
	for i := range len(set) {
		oprts[i] = abnf.Literal(set[i:i+1], []byte{set[i]})
	}
	return abnf.Alt(key, oprts[0], oprts[1:]...)
}

func matchAll(oprt abnf.Operator, s []byte) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := oprt(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken reports whether s is a valid RFC 9110 token.
func IsToken[T ~string | ~[]byte](s T) bool { return matchAll(token, []byte(s)) }

// IsDigits reports whether s consists of one or more decimal digits.
func IsDigits[T ~string | ~[]byte](s T) bool { return matchAll(decimal, []byte(s)) }

// IsHost reports whether s is a syntactically valid uri-host.
func IsHost[T ~string | ~[]byte](s T) bool { return matchAll(host, []byte(s)) }
