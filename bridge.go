package tcontainer

import "sync"

// Bridge converts between Value (byte-payload) and Variant (decoded-scalar)
// representations. ToVariant/ToValue are total over the 16 tags and mutually
// inverse for every legal input (round-trip law, spec §8 P3). Migration
// statistics are kept under a dedicated mutex, in a small struct rather than
// a single atomic counter like the sampling counter in sloghooks/loghooks.go,
// since Bridge tracks per-direction and failure counts together.
type Bridge struct {
	mu    sync.Mutex
	stats BridgeStats
}

// BridgeStats reports Bridge conversion activity.
type BridgeStats struct {
	ToVariantOK     uint64
	ToVariantFailed uint64
	ToValueOK       uint64
	ToValueFailed   uint64
}

// NewBridge returns a ready-to-use Bridge.
func NewBridge() *Bridge { return &Bridge{} }

// Stats returns a snapshot of the migration counters.
func (br *Bridge) Stats() BridgeStats {
	br.mu.Lock()
	defer br.mu.Unlock()
	return br.stats
}

// ToVariant decodes v's payload into a Variant. Composite tags recursively
// decode their children/sub-container so the resulting Variant carries fully
// materialized refs, not raw bytes.
func (br *Bridge) ToVariant(v Value) (Variant, error) {
	variant, err := br.toVariant(v)
	br.mu.Lock()
	if err != nil {
		br.stats.ToVariantFailed++
	} else {
		br.stats.ToVariantOK++
	}
	br.mu.Unlock()
	return variant, err
}

func (br *Bridge) toVariant(v Value) (Variant, error) {
	switch v.tag {
	case TagNull:
		return NewNullVariant(v.name), nil
	case TagBool:
		b, err := v.AsBool()
		if err != nil {
			return Variant{}, err
		}
		return NewBoolVariant(v.name, b), nil
	case TagShort:
		n, err := v.AsShort()
		if err != nil {
			return Variant{}, err
		}
		return NewShortVariant(v.name, n), nil
	case TagUShort:
		n, err := v.AsUShort()
		if err != nil {
			return Variant{}, err
		}
		return NewUShortVariant(v.name, n), nil
	case TagInt:
		n, err := v.AsInt()
		if err != nil {
			return Variant{}, err
		}
		return NewIntVariant(v.name, n), nil
	case TagUInt:
		n, err := v.AsUInt()
		if err != nil {
			return Variant{}, err
		}
		return NewUIntVariant(v.name, n), nil
	case TagLong:
		n, err := v.AsLong()
		if err != nil {
			return Variant{}, err
		}
		return NewLongVariant(v.name, int32(n)), nil
	case TagULong:
		n, err := v.AsULong()
		if err != nil {
			return Variant{}, err
		}
		return NewULongVariant(v.name, uint32(n)), nil
	case TagLLong:
		n, err := v.AsLLong()
		if err != nil {
			return Variant{}, err
		}
		return NewLLongVariant(v.name, n), nil
	case TagULLong:
		n, err := v.AsULLong()
		if err != nil {
			return Variant{}, err
		}
		return NewULLongVariant(v.name, n), nil
	case TagFloat:
		f, err := v.AsFloat()
		if err != nil {
			return Variant{}, err
		}
		return NewFloatVariant(v.name, f), nil
	case TagDouble:
		f, err := v.AsDouble()
		if err != nil {
			return Variant{}, err
		}
		return NewDoubleVariant(v.name, f), nil
	case TagBytes:
		b, err := v.AsBytes()
		if err != nil {
			return Variant{}, err
		}
		return NewBytesVariant(v.name, b), nil
	case TagString:
		s, err := v.AsString()
		if err != nil {
			return Variant{}, err
		}
		return NewStringVariant(v.name, s), nil
	case TagContainer:
		c, err := v.AsContainer()
		if err != nil {
			return Variant{}, err
		}
		return NewContainerVariant(v.name, c), nil
	case TagArray:
		items, err := v.Children()
		if err != nil {
			return Variant{}, err
		}
		return NewArrayVariant(v.name, items), nil
	default:
		return Variant{}, newDecodeError(0, ErrUnknownTag)
	}
}

// ToValue encodes a Variant back into its canonical Value form.
func (br *Bridge) ToValue(v Variant) (Value, error) {
	value, err := br.toValue(v)
	br.mu.Lock()
	if err != nil {
		br.stats.ToValueFailed++
	} else {
		br.stats.ToValueOK++
	}
	br.mu.Unlock()
	return value, err
}

func (br *Bridge) toValue(v Variant) (Value, error) {
	switch v.tag {
	case TagNull:
		return NewNull(v.name), nil
	case TagBool:
		return NewBool(v.name, v.b), nil
	case TagShort:
		return NewShort(v.name, v.i16), nil
	case TagUShort:
		return NewUShort(v.name, v.u16), nil
	case TagInt:
		return NewInt(v.name, v.i32), nil
	case TagUInt:
		return NewUInt(v.name, v.u32), nil
	case TagLong:
		return NewLong(v.name, int64(v.i32))
	case TagULong:
		return NewULong(v.name, uint64(v.u32))
	case TagLLong:
		return NewLLong(v.name, v.i64), nil
	case TagULLong:
		return NewULLong(v.name, v.u64), nil
	case TagFloat:
		return NewFloat(v.name, v.f32), nil
	case TagDouble:
		return NewDouble(v.name, v.f64), nil
	case TagBytes:
		return NewBytes(v.name, v.by), nil
	case TagString:
		return NewString(v.name, v.s), nil
	case TagContainer:
		return NewContainerValue(v.name, v.container), nil
	case TagArray:
		return NewArrayValue(v.name, v.array), nil
	default:
		return Value{}, newDecodeError(0, ErrUnknownTag)
	}
}
