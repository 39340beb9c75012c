// Package header provides typed HTTP header fields (RFC 9110).
//
// This package offers typed representations, parsing, rendering, comparison
// and cloning of a set of common header fields, a generic [Header] interface
// implemented by all of them, and a checked downcast from that interface to the
// concrete types.
//
// # Overview
//
// Built-in header types: [Accept], [ContentEncoding], [ContentLength],
// [ContentType], [Host], [Server] and [UserAgent]. Fields with other names are
// represented by [Any] or by a custom parser registered with [RegisterParser].
//
// All header types implement the [Header] interface, which combines [types.Renderer],
// [types.Cloneable[Header]], [types.ValidFlag], and [types.Equalable].
// Header values are immutable: accessors return copies, so a header may be shared
// between goroutines once it is built.
//
// # Identity
//
// Every header type has an identity [ID], the FNV-1a hash of its canonical
// name. Identities of built-in types are constants, e.g. [ContentLengthID],
// and every value of a type reports the same identity from its ID method.
// All extension headers share [AnyID].
//
// [Cast] recovers the concrete type of a [Header]. It checks the identity first
// and then the dynamic type, so a foreign implementation that reports a built-in
// identity is never mistaken for the built-in type:
//
//	if ct, ok := header.Cast[header.ContentType](hdr); ok {
//		mt := ct.MediaType()
//	}
//
// # Parsing
//
// Every built-in type has a ParseXxx function accepting string or []byte field
// values, e.g. [ParseContentLength]. [ParseValue] dispatches by field name and
// [Parse] accepts a whole "Name: value" line:
//
//	hdr, err := header.Parse("Content-Length: 1234")
//
// Malformed values fail with an error wrapping [ErrMalformedInput] or [ErrEmptyInput]
// and prefixed with the field name. Values that are well-formed but outside the
// built-in vocabulary degrade instead: an unknown coding becomes [EncodingUnknown],
// an unknown media type component becomes one of the mime Ext sentinels.
//
// [Parser] wraps the same functions with structured logging.
//
// # Header Naming and Canonicalization
//
// Header names are canonicalized using [textproto.CanonicalMIMEHeaderKey] combined
// with a few well-known spellings:
//
//	"Content-Md5" → "Content-MD5"
//	"Etag" → "ETag"
//	"Www-Authenticate" → "WWW-Authenticate"
//
// # Custom Parsers
//
// Applications can register parsers for extension headers:
//
//	func init() {
//		header.RegisterParser("X-Request-Id", func(value string) (header.Header, error) {
//			return ParseRequestID(value)
//		})
//	}
//
// Names of built-in headers can't be registered, and names whose identity collides
// with a built-in one are refused with [ErrHashCollision].
//
// # Rendering
//
//	str := hdr.Render(nil)      // "Name: value"
//	val := hdr.RenderValue()    // "value"
//	hdr.RenderTo(w, opts)       // writes "Name: value" to an io.Writer
//
// [RenderOptions.Lowercase] renders lowercase field names as HTTP/2 and HTTP/3 require.
//
// # Collections and serialization
//
// [Headers] keeps fields in order and provides typed lookup with [Get] and [GetAll].
// Single headers and collections are encoded to JSON as {"name":"<CanonicName>","value":"<RenderValue>"}
// objects, see [ToJSON] and [FromJSON]. [Headers] also implements msgpack custom encoding.
// Decoding always re-parses the values.
package header
