package tcontainer

import (
	"strings"

	"github.com/serenize/snaker"
)

// Tag is the 8-bit discriminator for one of the sixteen value kinds.
type Tag uint8

const (
	TagNull Tag = iota
	TagBool
	TagShort
	TagUShort
	TagInt
	TagUInt
	TagLong
	TagULong
	TagLLong
	TagULLong
	TagFloat
	TagDouble
	TagBytes
	TagContainer
	TagString
	TagArray

	tagCount = TagArray + 1
)

// Class partitions the closed tag set for generic traversal: a caller that
// doesn't care which concrete kind it holds can still dispatch on Class.
type Class int

const (
	ClassPrimitive Class = iota
	ClassBytesLike
	ClassComposite
)

// tagName is the Go identifier for each tag, e.g. "Bool" for TagBool.
// init derives the wire/registry name ("bool_value") from this via
// snaker, so the canonical strings never drift from the Tag identifiers.
var tagName = [tagCount]string{
	TagNull:      "Null",
	TagBool:      "Bool",
	TagShort:     "Short",
	TagUShort:    "UShort",
	TagInt:       "Int",
	TagUInt:      "UInt",
	TagLong:      "Long",
	TagULong:     "ULong",
	TagLLong:     "Llong",
	TagULLong:    "Ullong",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagBytes:     "Bytes",
	TagContainer: "Container",
	TagString:    "String",
	TagArray:     "Array",
}

var typeNameCache [tagCount]string

func init() {
	for t, name := range tagName {
		// "UShort" -> "u_short" -> "ushort_value" collapses the snake_case
		// double-underscore snaker would otherwise emit for the leading
		// initialism, matching the registry's conventional names.
		snake := strings.ReplaceAll(snaker.CamelToSnake(name), "_", "")
		typeNameCache[t] = snake + "_value"
	}
	typeNameCache[TagNull] = "null_value"
}

// Valid reports whether t is one of the sixteen known tags.
func (t Tag) Valid() bool { return t < tagCount }

// String returns the canonical registry name for t, e.g. "bool_value".
// Unknown tags render as "unknown_value".
func (t Tag) String() string {
	if !t.Valid() {
		return "unknown_value"
	}
	return typeNameCache[t]
}

// Class classifies t for generic traversal. Unknown tags are ClassPrimitive
// by convention; callers should check Valid() first when it matters.
func (t Tag) Class() Class {
	switch t {
	case TagContainer, TagArray:
		return ClassComposite
	case TagBytes, TagString:
		return ClassBytesLike
	default:
		return ClassPrimitive
	}
}

// width returns the canonical little-endian payload width in bytes for
// fixed-width numeric tags, or -1 for tags without a fixed width.
func (t Tag) width() int {
	switch t {
	case TagBool:
		return 1
	case TagShort, TagUShort:
		return 2
	case TagInt, TagUInt, TagLong, TagULong:
		return 4
	case TagLLong, TagULLong, TagDouble:
		return 8
	case TagFloat:
		return 4
	default:
		return -1
	}
}

// tagByName resolves a registry name (as produced by Tag.String) back to a
// Tag. Used by text-format decoding.
func tagByName(name string) (Tag, bool) {
	for t := Tag(0); t < tagCount; t++ {
		if typeNameCache[t] == name {
			return t, true
		}
	}
	return 0, false
}

// maxDepth is the maximum permitted nesting depth for containers/arrays,
// per the invariant in spec §3.
const maxDepth = 32
