package tcontainer

import (
	"github.com/meridianhq/tcontainer/internal/wire"
	"github.com/pkg/errors"
)

// Format selects a serialization projection for Container.Bytes. Only
// FormatBinary is normative; the others are lossless (FormatText,
// FormatArrayBinary) or lossy (FormatJSON, FormatXML, FormatIon) projections
// per spec §6.
type Format int

const (
	FormatBinary Format = iota
	FormatText
	FormatArrayBinary
	FormatJSON
	FormatXML
	FormatIon
)

// Container is a header (source/target identities, message type) plus an
// ordered, duplicate-key-preserving collection of Values. It is the unit of
// serialization. A plain Container is not safe for concurrent use; see
// ThreadSafeContainer.
type Container struct {
	sourceID    string
	sourceSubID string
	targetID    string
	targetSubID string
	messageType string

	values []Value

	// PreferredFormat records the caller's preferred Format and is carried
	// over by Copy. Zero value is FormatBinary. Bytes and Serialize do not
	// read it: Bytes always encodes in the format passed to it.
	PreferredFormat Format
}

// NewContainer returns an empty container with no header fields set.
func NewContainer() *Container { return &Container{} }

// SetSource sets the source routing identity. subID is optional; pass "" to
// clear it.
func (c *Container) SetSource(id, subID string) {
	c.sourceID = id
	c.sourceSubID = subID
}

// SetTarget sets the target routing identity. subID is optional; pass "" to
// clear it.
func (c *Container) SetTarget(id, subID string) {
	c.targetID = id
	c.targetSubID = subID
}

// SetMessageType sets the header's message type field.
func (c *Container) SetMessageType(t string) { c.messageType = t }

func (c *Container) SourceID() string      { return c.sourceID }
func (c *Container) SourceSubID() string   { return c.sourceSubID }
func (c *Container) TargetID() string      { return c.targetID }
func (c *Container) TargetSubID() string   { return c.targetSubID }
func (c *Container) MessageType() string   { return c.messageType }

// Size returns the number of stored values.
func (c *Container) Size() int { return len(c.values) }

// Add appends value to the container, setting its parent back-reference.
// Duplicate names are permitted and preserve insertion order (P4).
func (c *Container) Add(value Value) {
	value.parent = c
	c.values = append(c.values, value)
}

// nullSentinel is the value GetValue returns when no match is found; it
// never fails (spec §4.D).
var nullSentinel = Value{tag: TagNull}

// GetValue returns the first value named name, or a null-tag sentinel if
// none exists.
func (c *Container) GetValue(name string) Value {
	for _, v := range c.values {
		if v.name == name {
			return v
		}
	}
	return nullSentinel
}

// ValueArray returns every value named name, in insertion order.
func (c *Container) ValueArray(name string) []Value {
	var out []Value
	for _, v := range c.values {
		if v.name == name {
			out = append(out, v)
		}
	}
	return out
}

// Remove removes every value named name. Idempotent: removing an absent
// name is a no-op.
func (c *Container) Remove(name string) {
	kept := c.values[:0]
	for _, v := range c.values {
		if v.name != name {
			kept = append(kept, v)
		}
	}
	c.values = kept
}

// Clear empties the value list; the header is preserved.
func (c *Container) Clear() { c.values = nil }

// Values returns the full ordered value list. The slice is owned by the
// container; callers that mutate it must not retain it across further
// container mutations.
func (c *Container) Values() []Value { return c.values }

// Merge appends other's values, in order, onto c. The header is unchanged;
// name collisions are preserved as duplicates (spec §4.D "Merge semantics").
func (c *Container) Merge(other *Container) {
	for _, v := range other.values {
		c.Add(v.Clone())
	}
}

// Copy clones the header; if deep is true every value is cloned too
// (composites recursively, since Value.Clone copies the whole canonical
// payload). If deep is false the returned container shares no slice backing
// array with c but its Values are shallow copies referencing the same
// payload bytes.
func (c *Container) Copy(deep bool) *Container {
	out := &Container{
		sourceID:        c.sourceID,
		sourceSubID:     c.sourceSubID,
		targetID:        c.targetID,
		targetSubID:     c.targetSubID,
		messageType:     c.messageType,
		PreferredFormat: c.PreferredFormat,
	}
	out.values = make([]Value, len(c.values))
	for i, v := range c.values {
		if deep {
			v = v.Clone()
		}
		v.parent = out
		out.values[i] = v
	}
	return out
}

// encodeBody writes the nested-container encoding used both as the
// top-level binary wire format and as the payload of a container-tag Value:
// five length-prefixed header strings, value_count(4 LE), then that many
// value frames, in insertion order (spec §6).
func (c *Container) encodeBody() []byte {
	size := 4*5 + len(c.sourceID) + len(c.sourceSubID) + len(c.targetID) + len(c.targetSubID) + len(c.messageType) + 4
	buf := make([]byte, 0, size)
	buf = wire.PutString(buf, c.sourceID)
	buf = wire.PutString(buf, c.sourceSubID)
	buf = wire.PutString(buf, c.targetID)
	buf = wire.PutString(buf, c.targetSubID)
	buf = wire.PutString(buf, c.messageType)
	buf = wire.PutUint32(buf, uint32(len(c.values)))
	for _, v := range c.values {
		buf = wire.EncodeTo(buf, byte(v.tag), []byte(v.name), v.payload)
	}
	return buf
}

// Serialize produces the normative binary wire bytes for c (spec §6).
// Byte positions of each value's frame are strictly increasing in insertion
// order (P4).
func (c *Container) Serialize() []byte { return c.encodeBody() }

// SerializeArray is identical to Serialize but documents the array-of-bytes
// framing used when callers want an opaque byte container rather than a
// string (spec §6 "Array-of-bytes format"); the bytes are identical to
// Serialize's.
func (c *Container) SerializeArray() []byte { return c.Serialize() }

// Bytes encodes c using format. FormatBinary/FormatArrayBinary are
// lossless and normative/equivalent; FormatText is lossless; FormatJSON,
// FormatXML, and FormatIon are lossy projections (see the projections
// subpackage) gated behind explicit opt-in by requiring the caller to
// import that package — Bytes itself only implements the normative and
// text formats to keep the core free of projection dependencies.
func (c *Container) Bytes(format Format) ([]byte, error) {
	switch format {
	case FormatBinary, FormatArrayBinary:
		return c.Serialize(), nil
	case FormatText:
		return []byte(c.SerializeText()), nil
	default:
		return nil, errors.Errorf("tcontainer: format %d requires the projections package", format)
	}
}

// Deserialize parses bytes into c, auto-detecting text vs binary by the
// first byte (ASCII '@' => text, else binary, spec §6). On any failure c is
// left completely unchanged (spec §4.D "Failure semantics").
func (c *Container) Deserialize(data []byte) error {
	if wire.HasTextPrefix(data) {
		parsed, err := parseText(data)
		if err != nil {
			return errors.WithStack(err)
		}
		*c = *parsed
		c.reparent()
		return nil
	}

	parsed, err := decodeContainerBody(data, 0)
	if err != nil {
		return err
	}
	*c = *parsed
	c.reparent()
	return nil
}

func (c *Container) reparent() {
	for i := range c.values {
		c.values[i].parent = c
	}
}
