package mime

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

const (
	// ErrEmptyInput is returned by [Parse] for empty input.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is wrapped by errors of structurally malformed input.
	ErrMalformedInput = grammar.ErrMalformedInput
)

// ErrMissingSlash is returned by [Parse] when the type and subtype are not separated by '/'.
// It wraps [ErrMalformedInput].
var ErrMissingSlash = errorutil.NewWrapperError(ErrMalformedInput, "missing '/'")

// MediaType holds a classified media type.
type MediaType struct {
	Type    Type
	Subtype Subtype
	Suffix  Suffix
}

// Unknown is a media type with unclassified type and subtype and no suffix.
// It is the zero value of [MediaType].
var Unknown = MediaType{Type: TypeExt, Subtype: SubtypeExt, Suffix: SuffixNone}

// New returns a media type without a suffix.
func New(typ Type, sub Subtype) MediaType {
	return MediaType{Type: typ, Subtype: sub, Suffix: SuffixNone}
}

// NewWithSuffix returns a media type with the structured syntax suffix.
func NewWithSuffix(typ Type, sub Subtype, sfx Suffix) MediaType {
	return MediaType{Type: typ, Subtype: sub, Suffix: sfx}
}

// Parse parses a media type from the given input s (string or []byte).
//
// The input is split on the first '/' into the type and subtype tokens.
// The subtype is split on its last '+' into the subtype and suffix.
// Each part is matched case-sensitively against the built-in vocabulary,
// unmatched parts degrade to Ext. Media type parameters following ';' and
// surrounding whitespace are ignored.
//
// Missing '/' is reported as [ErrMissingSlash],
// empty input as [ErrEmptyInput]. In both cases [Unknown] is returned.
func Parse[T ~string | ~[]byte](s T) (MediaType, error) {
	str := util.TrimOWS(string(s))
	if i := strings.IndexByte(str, ';'); i >= 0 {
		str = util.TrimOWS(str[:i])
	}
	if str == "" {
		return Unknown, errtrace.Wrap(ErrEmptyInput)
	}

	top, sub, ok := strings.Cut(str, "/")
	if !ok {
		return Unknown, errtrace.Wrap(fmt.Errorf("%w in %q", ErrMissingSlash, str))
	}

	mt := MediaType{Type: ParseType(top), Suffix: SuffixNone}
	if i := strings.LastIndexByte(sub, '+'); i >= 0 {
		mt.Subtype = ParseSubtype(sub[:i])
		mt.Suffix = ParseSuffix(sub[i+1:])
	} else {
		mt.Subtype = ParseSubtype(sub)
	}
	return mt, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[T ~string | ~[]byte](s T) MediaType { return util.Must2(Parse(s)) }

// String renders the media type as "type/subtype[+suffix]".
func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(mt.Type.String())
	sb.WriteByte('/')
	sb.WriteString(mt.Subtype.String())
	if mt.Suffix != SuffixNone {
		sb.WriteByte('+')
		sb.WriteString(mt.Suffix.String())
	}
	return sb.String()
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

// Equal reports whether mt has the same type and subtype as val.
// The suffix is not compared: "application/ld+json" equals "application/ld+xml".
// val can be MediaType or *MediaType.
func (mt MediaType) Equal(val any) bool {
	other, ok := asMediaType(val)
	return ok && mt.Type == other.Type && mt.Subtype == other.Subtype
}

// EqualStrict is like [MediaType.Equal], but also compares suffixes.
func (mt MediaType) EqualStrict(val any) bool {
	other, ok := asMediaType(val)
	return ok && mt == other
}

func asMediaType(val any) (MediaType, bool) {
	switch v := val.(type) {
	case MediaType:
		return v, true
	case *MediaType:
		if v == nil {
			return MediaType{}, false
		}
		return *v, true
	default:
		return MediaType{}, false
	}
}

// IsValid reports whether both type and subtype belong to the built-in vocabulary.
func (mt MediaType) IsValid() bool { return !mt.Type.IsExt() && !mt.Subtype.IsExt() }

// IsZero reports whether mt is [Unknown].
func (mt MediaType) IsZero() bool { return mt == Unknown }

// HasSuffix reports whether a structured syntax suffix is present.
func (mt MediaType) HasSuffix() bool { return mt.Suffix != SuffixNone }

func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *MediaType) UnmarshalText(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		*mt = Unknown
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*mt = v
	return nil
}
