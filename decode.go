package tcontainer

import (
	"encoding/binary"

	"github.com/meridianhq/tcontainer/internal/wire"
)

// DecodeValue reads one tagged value frame from b starting at offset off,
// dispatching on tag and recursing into composite payloads. depth is the
// current nesting depth (0 at the top level); exceeding maxDepth fails with
// ErrDepthExceeded (spec §3, P6).
//
// It returns the decoded Value and the offset immediately following its
// frame.
func DecodeValue(b []byte, off, depth int) (Value, int, error) {
	if depth > maxDepth {
		return Value{}, off, newDecodeError(off, ErrDepthExceeded)
	}

	f, next, short, ok := wire.Decode(b, off)
	if !ok {
		if short {
			return Value{}, off, newDecodeError(off, ErrShortBuffer)
		}
		return Value{}, off, newDecodeError(off, ErrBadLength)
	}

	tag := Tag(f.Tag)
	if !tag.Valid() {
		return Value{}, off, newDecodeError(off, ErrUnknownTag)
	}

	name := append([]byte(nil), f.Name...)
	payload := append([]byte(nil), f.Payload...)
	v := Value{name: string(name), tag: tag, payload: payload}

	// Composite payloads are validated eagerly (recursively) so a malformed
	// nested frame surfaces here rather than lazily on first Children() call.
	switch tag {
	case TagArray:
		if _, err := decodeArrayBody(payload, depth+1); err != nil {
			return Value{}, off, err
		}
	case TagContainer:
		if _, err := decodeContainerBody(payload, depth+1); err != nil {
			return Value{}, off, err
		}
	}

	return v, next, nil
}

// decodeArrayBody parses an array-tag payload: count(4 LE) | value×count.
func decodeArrayBody(payload []byte, depth int) ([]Value, error) {
	if depth > maxDepth {
		return nil, newDecodeError(0, ErrDepthExceeded)
	}
	if len(payload) < 4 {
		if len(payload) == 0 {
			return nil, nil
		}
		return nil, newDecodeError(0, ErrShortBuffer)
	}
	count := int(binary.LittleEndian.Uint32(payload[:4]))
	if count < 0 {
		return nil, newDecodeError(0, ErrBadLength)
	}

	off := 4
	items := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		v, next, err := DecodeValue(payload, off, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		off = next
	}
	if off != len(payload) {
		return nil, newDecodeError(off, ErrBadLength)
	}
	return items, nil
}

// decodeContainerBody parses a nested container payload: five
// length-prefixed header strings, value_count(4 LE), then that many value
// frames (spec §6).
func decodeContainerBody(payload []byte, depth int) (*Container, error) {
	if depth > maxDepth {
		return nil, newDecodeError(0, ErrDepthExceeded)
	}

	off := 0
	fields := make([]string, 5)
	for i := range fields {
		s, next, short, ok := wire.ReadString(payload, off)
		if !ok {
			if short {
				return nil, newDecodeError(off, ErrShortBuffer)
			}
			return nil, newDecodeError(off, ErrBadLength)
		}
		fields[i] = string(s)
		off = next
	}

	if off+4 > len(payload) {
		return nil, newDecodeError(off, ErrShortBuffer)
	}
	count := int(binary.LittleEndian.Uint32(payload[off : off+4]))
	off += 4
	if count < 0 {
		return nil, newDecodeError(off, ErrBadLength)
	}

	c := &Container{
		sourceID:    fields[0],
		sourceSubID: fields[1],
		targetID:    fields[2],
		targetSubID: fields[3],
		messageType: fields[4],
	}

	values := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		v, next, err := DecodeValue(payload, off, depth)
		if err != nil {
			return nil, err
		}
		v.parent = c
		values = append(values, v)
		off = next
	}
	if off != len(payload) {
		return nil, newDecodeError(off, ErrBadLength)
	}
	c.values = values
	return c, nil
}
