package tcontainer

// Variant is the decoded-scalar sum type alternative to Value (spec §4.F).
// Where Value stores a tagged byte payload, Variant stores the already
// decoded Go scalar, which is cheaper to pattern-match on repeatedly.
// ThreadSafeContainer does not hold or return Variants: it stores Values,
// and a Variant is obtained from a Value with Bridge.ToVariant. Variant has
// no serialize/deserialize methods of its own; it reaches the wire by
// converting it with Bridge.ToValue and encoding the Value, so wire output
// stays bit-identical regardless of which representation a caller works in.
type Variant struct {
	name string
	tag  Tag

	b   bool
	i16 int16
	u16 uint16
	i32 int32
	u32 uint32
	i64 int64
	u64 uint64
	f32 float32
	f64 float64
	by  []byte
	s   string

	container *Container
	array     []Value
}

// Name returns the variant's name.
func (v Variant) Name() string { return v.name }

// Tag returns the variant's kind.
func (v Variant) Tag() Tag { return v.tag }

func NewNullVariant(name string) Variant { return Variant{name: name, tag: TagNull} }
func NewBoolVariant(name string, b bool) Variant {
	return Variant{name: name, tag: TagBool, b: b}
}
func NewShortVariant(name string, v int16) Variant {
	return Variant{name: name, tag: TagShort, i16: v}
}
func NewUShortVariant(name string, v uint16) Variant {
	return Variant{name: name, tag: TagUShort, u16: v}
}
func NewIntVariant(name string, v int32) Variant {
	return Variant{name: name, tag: TagInt, i32: v}
}
func NewUIntVariant(name string, v uint32) Variant {
	return Variant{name: name, tag: TagUInt, u32: v}
}
func NewLongVariant(name string, v int32) Variant {
	return Variant{name: name, tag: TagLong, i32: v}
}
func NewULongVariant(name string, v uint32) Variant {
	return Variant{name: name, tag: TagULong, u32: v}
}
func NewLLongVariant(name string, v int64) Variant {
	return Variant{name: name, tag: TagLLong, i64: v}
}
func NewULLongVariant(name string, v uint64) Variant {
	return Variant{name: name, tag: TagULLong, u64: v}
}
func NewFloatVariant(name string, v float32) Variant {
	return Variant{name: name, tag: TagFloat, f32: v}
}
func NewDoubleVariant(name string, v float64) Variant {
	return Variant{name: name, tag: TagDouble, f64: v}
}
func NewBytesVariant(name string, v []byte) Variant {
	return Variant{name: name, tag: TagBytes, by: append([]byte(nil), v...)}
}
func NewStringVariant(name, v string) Variant {
	return Variant{name: name, tag: TagString, s: v}
}
func NewContainerVariant(name string, c *Container) Variant {
	return Variant{name: name, tag: TagContainer, container: c}
}
func NewArrayVariant(name string, items []Value) Variant {
	return Variant{name: name, tag: TagArray, array: items}
}

// Bool returns the decoded bool and whether v's tag is bool.
func (v Variant) Bool() (bool, bool) { return v.b, v.tag == TagBool }

// Short returns the decoded int16 and whether v's tag is short.
func (v Variant) Short() (int16, bool) { return v.i16, v.tag == TagShort }

// UShort returns the decoded uint16 and whether v's tag is ushort.
func (v Variant) UShort() (uint16, bool) { return v.u16, v.tag == TagUShort }

// Int returns the decoded int32 and whether v's tag is int.
func (v Variant) Int() (int32, bool) { return v.i32, v.tag == TagInt }

// UInt returns the decoded uint32 and whether v's tag is uint.
func (v Variant) UInt() (uint32, bool) { return v.u32, v.tag == TagUInt }

// Long returns the decoded 32-bit-range int and whether v's tag is long.
func (v Variant) Long() (int32, bool) { return v.i32, v.tag == TagLong }

// ULong returns the decoded 32-bit-range uint and whether v's tag is ulong.
func (v Variant) ULong() (uint32, bool) { return v.u32, v.tag == TagULong }

// LLong returns the decoded int64 and whether v's tag is llong.
func (v Variant) LLong() (int64, bool) { return v.i64, v.tag == TagLLong }

// ULLong returns the decoded uint64 and whether v's tag is ullong.
func (v Variant) ULLong() (uint64, bool) { return v.u64, v.tag == TagULLong }

// Float returns the decoded float32 and whether v's tag is float.
func (v Variant) Float() (float32, bool) { return v.f32, v.tag == TagFloat }

// Double returns the decoded float64 and whether v's tag is double.
func (v Variant) Double() (float64, bool) { return v.f64, v.tag == TagDouble }

// Bytes returns the decoded byte slice and whether v's tag is bytes.
func (v Variant) Bytes() ([]byte, bool) { return v.by, v.tag == TagBytes }

// String returns the decoded string and whether v's tag is string.
func (v Variant) String() (string, bool) { return v.s, v.tag == TagString }

// ContainerRef returns the nested container and whether v's tag is container.
func (v Variant) ContainerRef() (*Container, bool) { return v.container, v.tag == TagContainer }

// ArrayRef returns the nested value sequence and whether v's tag is array.
func (v Variant) ArrayRef() ([]Value, bool) { return v.array, v.tag == TagArray }
