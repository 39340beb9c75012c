// Package mime classifies MIME media types (RFC 6838) as used by the
// Content-Type and Accept HTTP header fields.
//
// A [MediaType] is a triple of a top-level [Type], a [Subtype] and an optional
// structured syntax [Suffix] (RFC 6839), each drawn from a small built-in
// vocabulary:
//
//	mt, err := mime.Parse("application/vnd.api+json")
//	// mt.Type == mime.TypeApplication
//	// mt.Subtype == mime.SubtypeExt
//	// mt.Suffix == mime.SuffixJSON
//
// Components that are syntactically present but not part of the vocabulary
// degrade to the Ext sentinels ([TypeExt], [SubtypeExt], [SuffixExt]) instead of
// failing, so media types of newer or nonstandard peers are still accepted.
// A missing suffix is [SuffixNone]. The sentinels are the zero values of their
// enums, thus the zero MediaType is [Unknown].
//
// The model keeps only the classification. Ext components render as the
// placeholder token "unknown" and media type parameters are dropped, so callers
// that need the original spelling must keep the source text.
//
// [MediaType.Equal] compares the type and subtype only, ignoring the suffix;
// use [MediaType.EqualStrict] or the == operator to compare all components.
package mime
