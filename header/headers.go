package header

import (
	"encoding/json"
	"io"
	"iter"
	"slices"
	"strconv"

	"braces.dev/errtrace"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Headers is an ordered collection of header fields.
//
// Headers is not safe for concurrent modification.
// Build it in one goroutine, then it can be shared for reading.
type Headers []Header

// Append appends headers to the collection, nil headers are skipped.
func (hs *Headers) Append(hdrs ...Header) {
	for _, hdr := range hdrs {
		if hdr != nil {
			*hs = append(*hs, hdr)
		}
	}
}

// All returns an iterator over all headers in order.
func (hs Headers) All() iter.Seq[Header] { return slices.Values(hs) }

// Values returns all headers with the given name in order.
// Names are compared case-insensitively.
func (hs Headers) Values(name string) []Header {
	var out []Header
	for _, hdr := range hs {
		if hdr.CanonicName().Equal(name) {
			out = append(out, hdr)
		}
	}
	return out
}

// First returns the first header with the given name.
func (hs Headers) First(name string) (Header, bool) {
	for _, hdr := range hs {
		if hdr.CanonicName().Equal(name) {
			return hdr, true
		}
	}
	return nil, false
}

// Has reports whether the collection contains a header with the given name.
func (hs Headers) Has(name string) bool {
	_, ok := hs.First(name)
	return ok
}

// Len returns the number of headers.
func (hs Headers) Len() int { return len(hs) }

// Clone returns a deep copy of the collection.
func (hs Headers) Clone() Headers {
	if hs == nil {
		return nil
	}
	out := make(Headers, len(hs))
	for i, hdr := range hs {
		out[i] = hdr.Clone()
	}
	return out
}

// RenderTo writes the headers to w, one "Name: value\r\n" line per header.
func (hs Headers) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, hdr := range hs {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdr.RenderTo(w, opts)) })
		cw.WriteString("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the headers rendered with [Headers.RenderTo].
func (hs Headers) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hs Headers) String() string { return hs.Render(nil) }

// Equal reports whether both collections hold equal headers in the same order.
func (hs Headers) Equal(val any) bool {
	var other Headers
	switch v := val.(type) {
	case Headers:
		other = v
	case *Headers:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hs, other, func(a, b Header) bool { return a.Equal(b) })
}

// Get returns the first header of type T.
func Get[T Header](hs Headers) (T, bool) {
	for _, hdr := range hs {
		if h, ok := Cast[T](hdr); ok {
			return h, true
		}
	}
	var zero T
	return zero, false
}

// GetAll returns all headers of type T in order.
func GetAll[T Header](hs Headers) []T {
	var out []T
	for _, hdr := range hs {
		if h, ok := Cast[T](hdr); ok {
			out = append(out, h)
		}
	}
	return out
}

// MarshalJSON encodes headers as a JSON array of {"name":"...","value":"..."} objects.
func (hs Headers) MarshalJSON() ([]byte, error) {
	if hs == nil {
		return []byte("null"), nil
	}
	hds := make([]headerData, len(hs))
	for i, hdr := range hs {
		hds[i] = headerData{Name: string(hdr.CanonicName()), Value: hdr.RenderValue()}
	}
	return errtrace.Wrap2(json.Marshal(hds))
}

// UnmarshalJSON decodes headers encoded with [Headers.MarshalJSON].
// Every value is parsed with [ParseValue].
func (hs *Headers) UnmarshalJSON(data []byte) error {
	var hds []headerData
	if err := json.Unmarshal(data, &hds); err != nil {
		return errtrace.Wrap(err)
	}
	if hds == nil {
		*hs = nil
		return nil
	}
	return errtrace.Wrap(hs.fromPairs(len(hds), func(i int) (string, string) {
		return hds[i].Name, hds[i].Value
	}))
}

func (hs *Headers) fromPairs(n int, pair func(i int) (string, string)) error {
	out := make(Headers, 0, n)
	var errs []error
	for i := range n {
		name, value := pair(i)
		hdr, err := ParseValue(name, value)
		if err != nil {
			errs = append(errs, errorutil.JoinPrefix("header #"+strconv.Itoa(i)+":", err))
			continue
		}
		out = append(out, hdr)
	}
	*hs = out
	return errtrace.Wrap(errorutil.JoinPrefix("decode headers:", errs...))
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
// Headers are encoded as an array of [name, value] pairs.
func (hs Headers) EncodeMsgpack(enc *msgpack.Encoder) error {
	if hs == nil {
		return errtrace.Wrap(enc.EncodeNil())
	}
	if err := enc.EncodeArrayLen(len(hs)); err != nil {
		return errtrace.Wrap(err)
	}
	for _, hdr := range hs {
		if err := enc.EncodeArrayLen(2); err != nil {
			return errtrace.Wrap(err)
		}
		if err := enc.EncodeString(string(hdr.CanonicName())); err != nil {
			return errtrace.Wrap(err)
		}
		if err := enc.EncodeString(hdr.RenderValue()); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
// Every value is parsed with [ParseValue].
func (hs *Headers) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if n < 0 {
		*hs = nil
		return nil
	}

	pairs := make([][2]string, n)
	for i := range pairs {
		l, err := dec.DecodeArrayLen()
		if err != nil {
			return errtrace.Wrap(err)
		}
		if l != 2 {
			return errtrace.Wrap(errorutil.Errorf("decode headers: header #%d: got %d items, want 2", i, l))
		}
		if pairs[i][0], err = dec.DecodeString(); err != nil {
			return errtrace.Wrap(err)
		}
		if pairs[i][1], err = dec.DecodeString(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(hs.fromPairs(n, func(i int) (string, string) {
		return pairs[i][0], pairs[i][1]
	}))
}
