package header

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/syncutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// ParseFunc parses a field value into a header.
// The value is passed without the field name and line terminator.
type ParseFunc func(value string) (Header, error)

func wrap[H Header](fn func(string) (H, error)) ParseFunc {
	return func(value string) (Header, error) {
		hdr, err := fn(value)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return hdr, nil
	}
}

var builtins = map[Name]ParseFunc{
	"Accept":           wrap(ParseAccept[string]),
	"Content-Encoding": wrap(ParseContentEncoding[string]),
	"Content-Length":   wrap(ParseContentLength[string]),
	"Content-Type":     wrap(ParseContentType[string]),
	"Host":             wrap(ParseHost[string]),
	"Server":           wrap(ParseServer[string]),
	"User-Agent":       wrap(ParseUserAgent[string]),
}

var builtinIDs = map[ID]Name{
	AcceptID:          "Accept",
	ContentEncodingID: "Content-Encoding",
	ContentLengthID:   "Content-Length",
	ContentTypeID:     "Content-Type",
	HostID:            "Host",
	ServerID:          "Server",
	UserAgentID:       "User-Agent",
	AnyID:             "extension-header",
}

var customs syncutil.RWMap[Name, ParseFunc]

// RegisterParser registers a parser for the extension header name.
//
// The name is canonicalized. Names of built-in headers can't be overridden,
// and names whose identity collides with a built-in header are refused with [ErrHashCollision].
// Registering a name again replaces the previous parser.
func RegisterParser(name string, fn ParseFunc) error {
	if fn == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil parse func"))
	}
	cn := CanonicName(name)
	if !cn.IsValid() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid header name %q", name))
	}
	if _, ok := builtins[cn]; ok {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s is a built-in header", cn))
	}
	if bn, ok := builtinIDs[HashName(cn)]; ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrHashCollision, "%s collides with %s", cn, bn))
	}
	customs.Set(cn, fn)
	return nil
}

// UnregisterParser removes the parser registered for the name with [RegisterParser].
func UnregisterParser(name string) {
	customs.Del(CanonicName(name))
}

func lookupParser(cn Name) (ParseFunc, bool) {
	if fn, ok := builtins[cn]; ok {
		return fn, true
	}
	return customs.Get(cn)
}

// ParseValue parses the field value of the header with the given name.
//
// The name is canonicalized and dispatched to the built-in parser of that header,
// then to a parser registered with [RegisterParser]. Other names yield [Any].
// Parse errors are prefixed with the canonical name, e.g. "parse Content-Length: ...".
func ParseValue[N ~string, V ~string | ~[]byte](name N, value V) (Header, error) {
	cn := CanonicName(name)
	if cn == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyInput, "empty header name"))
	}
	if !cn.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "invalid header name %q", string(name)))
	}

	fn, ok := lookupParser(cn)
	if !ok {
		return NewAny(string(cn), string(value)), nil
	}

	hdr, err := fn(string(util.TrimOWS(value)))
	if err != nil {
		if isParseError(err) {
			return nil, errtrace.Wrap(err)
		}
		return nil, errtrace.Wrap(newParseError(cn, err))
	}
	if hdr == nil {
		return nil, errtrace.Wrap(newParseError(cn, errorutil.Errorf("parser returned nil header")))
	}
	return hdr, nil
}

// Parse parses a header field line "Name: value".
// A trailing line terminator is allowed. Whitespace between the name and the colon is rejected.
func Parse[T ~string | ~[]byte](line T) (Header, error) {
	s := strings.TrimRight(string(line), "\r\n")
	if s == "" {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "missing ':' in header line %q", s))
	}
	if !grammar.IsToken(name) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "invalid header name %q", name))
	}
	return errtrace.Wrap2(ParseValue(name, value))
}
