package header

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/headermock/header.go -package=headermock . Header

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// Header represents a typed HTTP header field.
//
// Implementations are immutable values: once built they may be shared between goroutines.
// ID must return the same constant for every value of the implementing type,
// including its zero value.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	// CanonicName returns the canonical field name.
	CanonicName() Name
	// ID returns the identity of the header type.
	ID() ID
	// RenderValue returns the field value without the name prefix.
	RenderValue() string
	// RenderValueTo writes the field value without the name prefix.
	RenderValueTo(w io.Writer) (int, error)
}

// Name represents an HTTP header field name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is a valid token.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
// Field names are case-insensitive.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return util.EqFold(n, other)
}

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Dnt":              "DNT",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
	"X-Xss-Protection": "X-XSS-Protection",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "content-length" is "Content-Length".
// A few well-known names keep their conventional spelling, e.g. "etag" converts to "ETag".
func CanonicName[T ~string](name T) Name {
	cn := textproto.CanonicalMIMEHeaderKey(string(util.TrimSP(name)))
	if n, ok := hdrNames[cn]; ok {
		return n
	}
	return Name(cn)
}

func fieldName(hdr Header, opts *RenderOptions) Name {
	if opts != nil && opts.Lowercase {
		return util.LCase(hdr.CanonicName())
	}
	return hdr.CanonicName()
}

func renderField(w io.Writer, hdr Header, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(fieldName(hdr, opts), ": ")
	cw.Call(hdr.RenderValueTo)
	return errtrace.Wrap2(cw.Result())
}

func renderFieldString(hdr Header, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderField(sb, hdr, opts) //nolint:errcheck
	return sb.String()
}

func writeValue(w io.Writer, v string) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, v))
}

// formatHeader implements fmt.Formatter for headers.
// raw must be the header converted to a type without methods.
func formatHeader(f fmt.State, verb rune, hdr Header, raw any) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.RenderValue())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render(nil)))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.RenderValue()))
		return
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), raw)
		return
	}
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToJSON encodes the header as a JSON object {"name":"<CanonicName>","value":"<RenderValue>"}.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

var errNotHeaderJSON errorutil.Error = "not a header JSON"

// FromJSON decodes a header encoded with [ToJSON], parsing the value with [ParseValue].
func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}

	hdr, err := ParseValue(hd.Name, hd.Value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}

// unmarshalJSON decodes data into hdr, which must receive a header of type H.
func unmarshalJSON[H Header](data []byte, hdr *H) error {
	var zero H
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zero
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := Cast[H](gh)
	if !ok {
		*hdr = zero
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, zero))
	}
	*hdr = h
	return nil
}
