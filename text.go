package tcontainer

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Text wire format (spec §6, "Text wire format (optional, lossless)").
//
// Grammar:
//
//	@header={source_id:<v>,source_sub_id:<v>,target_id:<v>,target_sub_id:<v>,message_type:<v>};@data={name:type:literal;...};
//
// literal escapes backslash, comma, semicolon, and braces with a leading
// backslash; a value name escapes those and also ':' so it cannot be taken
// for the name/type separator. Numeric/bool literals render as decimal/true/false text;
// string literals render as raw (escaped) UTF-8; every other tag
// (bytes/container/array) renders its canonical binary payload as hex —
// this keeps the grammar flat (no recursive textual container syntax) while
// still round-tripping composites bit-for-bit, which is all §6 requires of
// the text format ("optional, lossless").
//
// This is grounded on the kcenon/go_container_system wire_protocol.go
// example's @header={{...}};@data={{...}}; bracket framing, adapted to this
// spec's own key:value / name:type:literal grammar rather than copied.
const (
	textHeaderPrefix = "@header={"
	textDataPrefix   = "@data={"
	textBlockSuffix  = "};"
)

func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', ',', ';', '{', '}':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitUnescaped splits s on sep at positions not preceded by an odd number
// of consecutive backslashes (i.e. not escaped), and returns the segments
// with their own escaping left intact (callers unescape per-segment).
func splitUnescaped(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			cur.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			cur.WriteByte(c)
			escaped = true
			continue
		}
		if c == sep {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	out = append(out, cur.String())
	return out
}

func unescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// findUnescapedBlock locates the content between prefix and the first
// unescaped "};" after it, returning the content and the offset just past
// the terminator.
func findUnescapedBlock(s string, start int, prefix string) (content string, end int, err error) {
	if !strings.HasPrefix(s[start:], prefix) {
		return "", 0, errors.Errorf("tcontainer: expected %q at offset %d", prefix, start)
	}
	i := start + len(prefix)
	escaped := false
	for j := i; j < len(s); j++ {
		c := s[j]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '}' && j+1 < len(s) && s[j+1] == ';' {
			return s[i:j], j + 2, nil
		}
	}
	return "", 0, errors.Wrap(ErrShortBuffer, "tcontainer: unterminated text block")
}

// SerializeText renders c in the text wire format.
func (c *Container) SerializeText() string {
	var b strings.Builder
	b.WriteString(textHeaderPrefix)
	fields := []struct{ key, val string }{
		{"source_id", c.sourceID},
		{"source_sub_id", c.sourceSubID},
		{"target_id", c.targetID},
		{"target_sub_id", c.targetSubID},
		{"message_type", c.messageType},
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.key)
		b.WriteByte(':')
		b.WriteString(escapeText(f.val))
	}
	b.WriteString(textBlockSuffix)

	b.WriteString(textDataPrefix)
	for i, v := range c.values {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strings.ReplaceAll(escapeText(v.name), ":", "\\:"))
		b.WriteByte(':')
		b.WriteString(v.tag.String())
		b.WriteByte(':')
		b.WriteString(textLiteral(v))
	}
	b.WriteString(textBlockSuffix)
	return b.String()
}

func textLiteral(v Value) string {
	switch v.tag {
	case TagNull:
		return ""
	case TagBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case TagShort:
		n, _ := v.AsShort()
		return strconv.FormatInt(int64(n), 10)
	case TagUShort:
		n, _ := v.AsUShort()
		return strconv.FormatUint(uint64(n), 10)
	case TagInt:
		n, _ := v.AsInt()
		return strconv.FormatInt(int64(n), 10)
	case TagUInt:
		n, _ := v.AsUInt()
		return strconv.FormatUint(uint64(n), 10)
	case TagLong:
		n, _ := v.AsLong()
		return strconv.FormatInt(n, 10)
	case TagULong:
		n, _ := v.AsULong()
		return strconv.FormatUint(n, 10)
	case TagLLong:
		n, _ := v.AsLLong()
		return strconv.FormatInt(n, 10)
	case TagULLong:
		n, _ := v.AsULLong()
		return strconv.FormatUint(n, 10)
	case TagFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case TagDouble:
		f, _ := v.AsDouble()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case TagString:
		return escapeText(string(v.payload))
	default: // bytes, container, array: canonical payload as hex
		return hex.EncodeToString(v.payload)
	}
}

// parseText parses the text wire format into a fresh Container.
func parseText(data []byte) (*Container, error) {
	s := string(data)

	headerContent, off, err := findUnescapedBlock(s, 0, textHeaderPrefix)
	if err != nil {
		return nil, err
	}
	dataContent, _, err := findUnescapedBlock(s, off, textDataPrefix)
	if err != nil {
		return nil, err
	}

	c := &Container{}
	if strings.TrimSpace(headerContent) != "" {
		for _, pair := range splitUnescaped(headerContent, ',') {
			idx := unescapedIndexByte(pair, ':')
			if idx < 0 {
				return nil, errors.Errorf("tcontainer: malformed header field %q", pair)
			}
			key := pair[:idx]
			val := unescapeText(pair[idx+1:])
			switch key {
			case "source_id":
				c.sourceID = val
			case "source_sub_id":
				c.sourceSubID = val
			case "target_id":
				c.targetID = val
			case "target_sub_id":
				c.targetSubID = val
			case "message_type":
				c.messageType = val
			}
		}
	}

	if strings.TrimSpace(dataContent) != "" {
		for _, item := range splitUnescaped(dataContent, ';') {
			if item == "" {
				continue
			}
			v, err := parseTextValue(item)
			if err != nil {
				return nil, err
			}
			c.Add(v)
		}
	}

	return c, nil
}

func unescapedIndexByte(s string, sep byte) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == sep {
			return i
		}
	}
	return -1
}

func parseTextValue(item string) (Value, error) {
	i1 := unescapedIndexByte(item, ':')
	if i1 < 0 {
		return Value{}, errors.Errorf("tcontainer: malformed data item %q", item)
	}
	rest := item[i1+1:]
	i2 := unescapedIndexByte(rest, ':')
	if i2 < 0 {
		return Value{}, errors.Errorf("tcontainer: malformed data item %q", item)
	}
	name := unescapeText(item[:i1])
	typeName := rest[:i2]
	literal := rest[i2+1:]

	tag, ok := tagByName(typeName)
	if !ok {
		return Value{}, newDecodeError(0, ErrUnknownTag)
	}

	switch tag {
	case TagNull:
		return NewNull(name), nil
	case TagBool:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad bool literal")
		}
		return NewBool(name, b), nil
	case TagShort:
		n, err := strconv.ParseInt(literal, 10, 16)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad short literal")
		}
		return NewShort(name, int16(n)), nil
	case TagUShort:
		n, err := strconv.ParseUint(literal, 10, 16)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad ushort literal")
		}
		return NewUShort(name, uint16(n)), nil
	case TagInt:
		n, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad int literal")
		}
		return NewInt(name, int32(n)), nil
	case TagUInt:
		n, err := strconv.ParseUint(literal, 10, 32)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad uint literal")
		}
		return NewUInt(name, uint32(n)), nil
	case TagLong:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad long literal")
		}
		return NewLong(name, n)
	case TagULong:
		n, err := strconv.ParseUint(literal, 10, 64)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad ulong literal")
		}
		return NewULong(name, n)
	case TagLLong:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad llong literal")
		}
		return NewLLong(name, n), nil
	case TagULLong:
		n, err := strconv.ParseUint(literal, 10, 64)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad ullong literal")
		}
		return NewULLong(name, n), nil
	case TagFloat:
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad float literal")
		}
		return NewFloat(name, float32(f)), nil
	case TagDouble:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad double literal")
		}
		return NewDouble(name, f), nil
	case TagString:
		return NewString(name, unescapeText(literal)), nil
	default: // bytes, container, array
		raw, err := hex.DecodeString(literal)
		if err != nil {
			return Value{}, errors.Wrap(err, "tcontainer: bad hex literal")
		}
		switch tag {
		case TagBytes:
			return NewBytes(name, raw), nil
		case TagContainer:
			inner, err := decodeContainerBody(raw, 1)
			if err != nil {
				return Value{}, err
			}
			return NewContainerValue(name, inner), nil
		case TagArray:
			items, err := decodeArrayBody(raw, 1)
			if err != nil {
				return Value{}, err
			}
			return NewArrayValue(name, items), nil
		}
	}
	return Value{}, newDecodeError(0, ErrUnknownTag)
}
