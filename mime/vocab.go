package mime

// Type is a top-level media type.
type Type uint8

// Top-level media types.
const (
	// TypeExt is a syntactically valid top-level type outside the built-in vocabulary.
	TypeExt Type = iota
	TypeStar
	TypeText
	TypeImage
	TypeAudio
	TypeVideo
	TypeApplication
	TypeMessage
	TypeMultipart
)

var typeTokens = [...]string{
	TypeExt:         extToken,
	TypeStar:        "*",
	TypeText:        "text",
	TypeImage:       "image",
	TypeAudio:       "audio",
	TypeVideo:       "video",
	TypeApplication: "application",
	TypeMessage:     "message",
	TypeMultipart:   "multipart",
}

// Subtype is a media subtype without the structured syntax suffix.
type Subtype uint8

// Media subtypes.
const (
	// SubtypeExt is a syntactically valid subtype outside the built-in vocabulary.
	SubtypeExt Subtype = iota
	SubtypeStar
	SubtypePlain
	SubtypeHTML
	SubtypeXHTML
	SubtypeXML
	SubtypeJavaScript
	SubtypeCSS
	SubtypeJSON
	SubtypeFormURLEncoded
	SubtypePNG
	SubtypeGIF
	SubtypeBMP
	SubtypeJPEG
)

var subtypeTokens = [...]string{
	SubtypeExt:            extToken,
	SubtypeStar:           "*",
	SubtypePlain:          "plain",
	SubtypeHTML:           "html",
	SubtypeXHTML:          "xhtml",
	SubtypeXML:            "xml",
	SubtypeJavaScript:     "javascript",
	SubtypeCSS:            "css",
	SubtypeJSON:           "json",
	SubtypeFormURLEncoded: "x-www-form-urlencoded",
	SubtypePNG:            "png",
	SubtypeGIF:            "gif",
	SubtypeBMP:            "bmp",
	SubtypeJPEG:           "jpeg",
}

// Suffix is a structured syntax suffix (RFC 6839).
type Suffix uint8

// Structured syntax suffixes.
const (
	// SuffixNone means no suffix is present.
	SuffixNone Suffix = iota
	// SuffixExt is a present suffix outside the built-in vocabulary.
	SuffixExt
	SuffixJSON
	SuffixBER
	SuffixDER
	SuffixFastInfoset
	SuffixWBXML
	SuffixZIP
	SuffixXML
)

var suffixTokens = [...]struct {
	token string
	descr string
}{
	SuffixNone:        {"", ""},
	SuffixExt:         {extToken, ""},
	SuffixJSON:        {"json", "JavaScript Object Notation"},
	SuffixBER:         {"ber", "Basic Encoding Rules"},
	SuffixDER:         {"der", "Distinguished Encoding Rules"},
	SuffixFastInfoset: {"fastinfoset", "Fast Infoset"},
	SuffixWBXML:       {"wbxml", "WAP Binary XML"},
	SuffixZIP:         {"zip", "ZIP file storage"},
	SuffixXML:         {"xml", "Extensible Markup Language"},
}

// extToken is rendered in place of components that have no canonical spelling.
// It is not a vocabulary entry itself, so it parses back to Ext.
const extToken = "unknown"

var (
	typeIndex    = indexOf[string, Type](typeTokens[:], func(s string) string { return s })
	subtypeIndex = indexOf[string, Subtype](subtypeTokens[:], func(s string) string { return s })
	suffixIndex  = indexOf[struct{ token, descr string }, Suffix](suffixTokens[:], func(s struct{ token, descr string }) string { return s.token })
)

func indexOf[E any, T ~uint8](tokens []E, tok func(E) string) map[string]T {
	m := make(map[string]T, len(tokens))
	for i, e := range tokens {
		// index 0 holds the sentinel of every enum
		if i == 0 {
			continue
		}
		if s := tok(e); s != "" && s != extToken {
			m[s] = T(i)
		}
	}
	return m
}

// ParseType matches s case-sensitively against the top-level type vocabulary.
// Unmatched tokens yield [TypeExt].
func ParseType(s string) Type { return typeIndex[s] }

// ParseSubtype matches s case-sensitively against the subtype vocabulary.
// Unmatched tokens yield [SubtypeExt].
func ParseSubtype(s string) Subtype { return subtypeIndex[s] }

// ParseSuffix matches s case-sensitively against the suffix vocabulary.
// Unmatched tokens yield [SuffixExt], including the empty one, since the suffix separator is present.
func ParseSuffix(s string) Suffix {
	if sfx, ok := suffixIndex[s]; ok {
		return sfx
	}
	return SuffixExt
}

// String returns the canonical lowercase token of the type.
func (t Type) String() string {
	if int(t) < len(typeTokens) {
		return typeTokens[t]
	}
	return extToken
}

// IsExt reports whether the type is outside the built-in vocabulary.
func (t Type) IsExt() bool { return t == TypeExt || int(t) >= len(typeTokens) }

// String returns the canonical lowercase token of the subtype.
func (s Subtype) String() string {
	if int(s) < len(subtypeTokens) {
		return subtypeTokens[s]
	}
	return extToken
}

// IsExt reports whether the subtype is outside the built-in vocabulary.
func (s Subtype) IsExt() bool { return s == SubtypeExt || int(s) >= len(subtypeTokens) }

// String returns the canonical lowercase token of the suffix, without the '+' separator.
// [SuffixNone] renders as an empty string.
func (s Suffix) String() string {
	if int(s) < len(suffixTokens) {
		return suffixTokens[s].token
	}
	return extToken
}

// Description returns a human readable name of the underlying serialization,
// e.g. "JavaScript Object Notation" for [SuffixJSON].
func (s Suffix) Description() string {
	if int(s) < len(suffixTokens) {
		return suffixTokens[s].descr
	}
	return ""
}

// IsExt reports whether the suffix is present, but outside the built-in vocabulary.
func (s Suffix) IsExt() bool { return s == SuffixExt || int(s) >= len(suffixTokens) }
