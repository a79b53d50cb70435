package tcontainer

import (
	"encoding/binary"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/meridianhq/tcontainer/internal/wire"
	"github.com/pkg/errors"
)

// Value is the leaf of the serialization tree: a named, tagged datum.
// It stores its payload as canonical little-endian bytes rather than a
// decoded scalar — see Variant for the decoded-scalar alternative used by
// ThreadSafeContainer.
//
// parent is a non-owning back-reference set by Container.Add, used only to
// give accessors/errors context; it does not keep the container alive and
// Go's GC is unbothered by the resulting cycle (spec §9's "parent
// back-references" concern is a manual-memory-management one that doesn't
// apply here).
type Value struct {
	name    string
	tag     Tag
	payload []byte
	parent  *Container
}

// Name returns the value's name. Names may be empty and are not unique
// within a container.
func (v Value) Name() string { return v.name }

// Tag returns the value's wire tag.
func (v Value) Tag() Tag { return v.tag }

// Parent returns the container this value was last added to, or nil.
func (v Value) Parent() *Container { return v.parent }

// Data returns the raw canonical payload bytes for v. For composite tags
// this is the recursive encoding described in spec §4.B/§4.D.
func (v Value) Data() []byte { return v.payload }

func le16(b []byte) int16  { return int16(binary.LittleEndian.Uint16(b)) }
func le16u(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le32(b []byte) int32  { return int32(binary.LittleEndian.Uint32(b)) }
func le32u(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func le64(b []byte) int64  { return int64(binary.LittleEndian.Uint64(b)) }
func le64u(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func putLE16(v int16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}
func putLE16u(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}
func putLE32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
func putLE32u(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
func putLE64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}
func putLE64u(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// NewNull constructs a null-tag value with an empty payload.
func NewNull(name string) Value { return Value{name: name, tag: TagNull} }

// NewBool constructs a bool-tag value.
func NewBool(name string, v bool) Value {
	b := byte(0)
	if v {
		b = 1
	}
	return Value{name: name, tag: TagBool, payload: []byte{b}}
}

// NewShort constructs a short-tag (int16) value.
func NewShort(name string, v int16) Value {
	return Value{name: name, tag: TagShort, payload: putLE16(v)}
}

// NewUShort constructs a ushort-tag (uint16) value.
func NewUShort(name string, v uint16) Value {
	return Value{name: name, tag: TagUShort, payload: putLE16u(v)}
}

// NewInt constructs an int-tag (int32) value.
func NewInt(name string, v int32) Value {
	return Value{name: name, tag: TagInt, payload: putLE32(v)}
}

// NewUInt constructs a uint-tag (uint32) value.
func NewUInt(name string, v uint32) Value {
	return Value{name: name, tag: TagUInt, payload: putLE32u(v)}
}

// NewLong constructs a long-tag value. The wire payload is 32-bit; v must
// fit in [math.MinInt32, math.MaxInt32] or a *RangeError is returned
// (spec invariant, P5).
func NewLong(name string, v int64) (Value, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return Value{}, &RangeError{Tag: TagLong, Value: v}
	}
	return Value{name: name, tag: TagLong, payload: putLE32(int32(v))}, nil
}

// NewULong constructs an ulong-tag value. The wire payload is 32-bit; v must
// fit in [0, math.MaxUint32] or a *RangeError is returned (P5).
func NewULong(name string, v uint64) (Value, error) {
	if v > math.MaxUint32 {
		return Value{}, &RangeError{Tag: TagULong, Value: int64(v)}
	}
	return Value{name: name, tag: TagULong, payload: putLE32u(uint32(v))}, nil
}

// NewLLong constructs an llong-tag (int64) value. No range restriction.
func NewLLong(name string, v int64) Value {
	return Value{name: name, tag: TagLLong, payload: putLE64(v)}
}

// NewULLong constructs an ullong-tag (uint64) value. No range restriction.
func NewULLong(name string, v uint64) Value {
	return Value{name: name, tag: TagULLong, payload: putLE64u(v)}
}

// NewFloat constructs a float-tag (IEEE-754 binary32) value.
func NewFloat(name string, v float32) Value {
	return Value{name: name, tag: TagFloat, payload: putLE32u(math.Float32bits(v))}
}

// NewDouble constructs a double-tag (IEEE-754 binary64) value.
func NewDouble(name string, v float64) Value {
	return Value{name: name, tag: TagDouble, payload: putLE64u(math.Float64bits(v))}
}

// NewBytes constructs a bytes-tag value. The payload is copied.
func NewBytes(name string, v []byte) Value {
	cp := append([]byte(nil), v...)
	return Value{name: name, tag: TagBytes, payload: cp}
}

// NewString constructs a string-tag value from UTF-8 text.
func NewString(name, v string) Value {
	return Value{name: name, tag: TagString, payload: []byte(v)}
}

// NewContainerValue wraps c as a container-tag value whose payload is the
// full nested container encoding (spec §6).
func NewContainerValue(name string, c *Container) Value {
	return Value{name: name, tag: TagContainer, payload: c.encodeBody()}
}

// NewArrayValue constructs an array-tag value from an ordered, possibly
// heterogeneous sequence of child values: count(4 LE) | value×count.
func NewArrayValue(name string, items []Value) Value {
	buf := make([]byte, 0, 4)
	buf = wire.PutUint32(buf, uint32(len(items)))
	for _, it := range items {
		buf = wire.EncodeTo(buf, byte(it.tag), []byte(it.name), it.payload)
	}
	return Value{name: name, tag: TagArray, payload: buf}
}

// Children returns the ordered sequence of child values for composite tags
// (container, array). For any other tag it returns a *CoercionError.
func (v Value) Children() ([]Value, error) {
	switch v.tag {
	case TagArray:
		return decodeArrayBody(v.payload, 0)
	case TagContainer:
		c, err := decodeContainerBody(v.payload, 0)
		if err != nil {
			return nil, err
		}
		return c.values, nil
	default:
		return nil, &CoercionError{Name: v.name, From: v.tag, To: "children", Kind: ErrTypeMismatch}
	}
}

// AsContainer decodes a container-tag value's payload into a *Container.
func (v Value) AsContainer() (*Container, error) {
	if v.tag != TagContainer {
		return nil, &CoercionError{Name: v.name, From: v.tag, To: "container", Kind: ErrTypeMismatch}
	}
	return decodeContainerBody(v.payload, 0)
}

// mismatch builds a type-mismatch CoercionError for accessor to.
func (v Value) mismatch(to string) error {
	return &CoercionError{Name: v.name, From: v.tag, To: to, Kind: ErrTypeMismatch}
}

func (v Value) illegal(to string) error {
	return &CoercionError{Name: v.name, From: v.tag, To: to, Kind: ErrIllegalCoercion}
}

// asNumeric64 widens any fixed-width numeric tag's payload to an int64/
// uint64/float64 triple so the As* accessors can share one coercion table.
// ok is false for non-numeric tags (bytes/string/container/array/null).
func (v Value) asNumeric64() (i int64, u uint64, f float64, isFloat, ok bool) {
	switch v.tag {
	case TagBool:
		if len(v.payload) > 0 && v.payload[0] != 0 {
			i = 1
		}
		return i, uint64(i), float64(i), false, true
	case TagShort:
		x := le16(v.payload)
		return int64(x), uint64(int64(x)), float64(x), false, true
	case TagUShort:
		x := le16u(v.payload)
		return int64(x), uint64(x), float64(x), false, true
	case TagInt:
		x := le32(v.payload)
		return int64(x), uint64(int64(x)), float64(x), false, true
	case TagUInt:
		x := le32u(v.payload)
		return int64(x), uint64(x), float64(x), false, true
	case TagLong:
		x := le32(v.payload)
		return int64(x), uint64(int64(x)), float64(x), false, true
	case TagULong:
		x := le32u(v.payload)
		return int64(x), uint64(x), float64(x), false, true
	case TagLLong:
		x := le64(v.payload)
		return x, uint64(x), float64(x), false, true
	case TagULLong:
		x := le64u(v.payload)
		return int64(x), x, float64(x), false, true
	case TagFloat:
		x := math.Float32frombits(le32u(v.payload))
		return int64(x), uint64(x), float64(x), true, true
	case TagDouble:
		x := math.Float64frombits(le64u(v.payload))
		return int64(x), uint64(x), x, true, true
	default:
		return 0, 0, 0, false, false
	}
}

// AsBool coerces v to bool: numeric tags use "!= 0"; string parses via
// strconv (falling back to a decimal-parse-then-!=0 rule, matching the
// other numeric coercions); null is an illegal coercion.
func (v Value) AsBool() (bool, error) {
	if v.tag == TagNull {
		return false, v.illegal("bool")
	}
	if v.tag == TagString {
		n, _ := strconv.ParseInt(string(v.payload), 10, 64)
		if b, err := strconv.ParseBool(string(v.payload)); err == nil {
			return b, nil
		}
		return n != 0, nil
	}
	if v.tag == TagBytes || v.tag == TagContainer || v.tag == TagArray {
		return false, v.mismatch("bool")
	}
	i, _, _, _, _ := v.asNumeric64()
	return i != 0, nil
}

// AsShort coerces v to int16 following the numeric↔numeric static-cast rule.
func (v Value) AsShort() (int16, error) { i, err := v.asInt64("short"); return int16(i), err }

// AsUShort coerces v to uint16.
func (v Value) AsUShort() (uint16, error) { u, err := v.asUint64("ushort"); return uint16(u), err }

// AsInt coerces v to int32.
func (v Value) AsInt() (int32, error) { i, err := v.asInt64("int"); return int32(i), err }

// AsUInt coerces v to uint32.
func (v Value) AsUInt() (uint32, error) { u, err := v.asUint64("uint"); return uint32(u), err }

// AsLong coerces v to int64 (widened from the wire's 32-bit long payload).
func (v Value) AsLong() (int64, error) { return v.asInt64("long") }

// AsULong coerces v to uint64 (widened from the wire's 32-bit ulong payload).
func (v Value) AsULong() (uint64, error) { return v.asUint64("ulong") }

// AsLLong coerces v to int64.
func (v Value) AsLLong() (int64, error) { return v.asInt64("llong") }

// AsULLong coerces v to uint64.
func (v Value) AsULLong() (uint64, error) { return v.asUint64("ullong") }

func (v Value) asInt64(to string) (int64, error) {
	if v.tag == TagNull {
		return 0, v.illegal(to)
	}
	if v.tag == TagString {
		n, _ := strconv.ParseInt(string(v.payload), 10, 64)
		return n, nil
	}
	if v.tag == TagBytes || v.tag == TagContainer || v.tag == TagArray {
		return 0, v.mismatch(to)
	}
	i, _, _, _, _ := v.asNumeric64()
	return i, nil
}

func (v Value) asUint64(to string) (uint64, error) {
	if v.tag == TagNull {
		return 0, v.illegal(to)
	}
	if v.tag == TagString {
		n, _ := strconv.ParseUint(string(v.payload), 10, 64)
		return n, nil
	}
	if v.tag == TagBytes || v.tag == TagContainer || v.tag == TagArray {
		return 0, v.mismatch(to)
	}
	_, u, _, _, _ := v.asNumeric64()
	return u, nil
}

// AsFloat coerces v to float32.
func (v Value) AsFloat() (float32, error) {
	f, err := v.asFloat64("float")
	return float32(f), err
}

// AsDouble coerces v to float64.
func (v Value) AsDouble() (float64, error) { return v.asFloat64("double") }

func (v Value) asFloat64(to string) (float64, error) {
	if v.tag == TagNull {
		return 0, v.illegal(to)
	}
	if v.tag == TagString {
		f, _ := strconv.ParseFloat(string(v.payload), 64)
		return f, nil
	}
	if v.tag == TagBytes || v.tag == TagContainer || v.tag == TagArray {
		return 0, v.mismatch(to)
	}
	_, _, f, _, _ := v.asNumeric64()
	return f, nil
}

// AsString coerces v to a string. Numeric/bool render in decimal; bytes
// are returned as a string holding the raw payload bytes, with invalid
// UTF-8 sequences left as they are (not replaced); null is an illegal
// coercion.
func (v Value) AsString() (string, error) {
	switch v.tag {
	case TagNull:
		return "", v.illegal("string")
	case TagString:
		return string(v.payload), nil
	case TagBytes:
		return string(v.payload), nil
	case TagContainer, TagArray:
		return "", v.mismatch("string")
	case TagBool:
		b, _ := v.AsBool()
		if b {
			return "true", nil
		}
		return "false", nil
	case TagFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case TagDouble:
		f, _ := v.AsDouble()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case TagUShort, TagUInt, TagULong, TagULLong:
		u, _ := v.asUint64("string")
		return strconv.FormatUint(u, 10), nil
	default:
		i, _ := v.asInt64("string")
		return strconv.FormatInt(i, 10), nil
	}
}

// AsBytes returns v's raw payload for bytes-tag values. Any other tag is a
// type-mismatch.
func (v Value) AsBytes() ([]byte, error) {
	if v.tag != TagBytes {
		return nil, v.mismatch("bytes")
	}
	return append([]byte(nil), v.payload...), nil
}

// ValidateUTF8 reports whether the payload of a string-tag value is
// well-formed UTF-8, returning ErrBadUTF8 if not.
func (v Value) ValidateUTF8() error {
	if v.tag != TagString {
		return v.mismatch("utf8")
	}
	if !utf8.Valid(v.payload) {
		return errors.Wrapf(ErrBadUTF8, "value %q", v.name)
	}
	return nil
}

// Serialize emits the complete value frame: tag | name_len | name |
// payload_len | payload (spec §6).
func (v Value) Serialize() []byte {
	return wire.Encode(byte(v.tag), []byte(v.name), v.payload)
}

// Clone returns a deep, parent-detached copy of v. Composite payloads are
// already self-contained byte slices, so Clone only needs a fresh payload
// backing array; it is still a conceptual deep-copy per spec's Container.Copy.
func (v Value) Clone() Value {
	return Value{
		name:    v.name,
		tag:     v.tag,
		payload: append([]byte(nil), v.payload...),
	}
}

// Equal reports whether v and other are structurally identical: same tag,
// same name, same payload bytes (composites recurse via byte-equality of
// their encoded form, which is sufficient since encoding is canonical).
func (v Value) Equal(other Value) bool {
	if v.name != other.name || v.tag != other.tag {
		return false
	}
	if len(v.payload) != len(other.payload) {
		return false
	}
	for i := range v.payload {
		if v.payload[i] != other.payload[i] {
			return false
		}
	}
	return true
}
