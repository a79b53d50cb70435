// Package wire contains the compact, normative on-the-wire framing used by
// tcontainer to encode a single value. It provides bounds-checked decoders
// and pre-sized encoders.
//
// Encoding choices (mandated by the container wire format, not chosen here):
//   - All lengths are uint32 little-endian (LE), matching the target
//     platforms' native order for the systems this format interops with.
//   - There is no magic/version prefix on a value frame: the tag byte alone
//     (0x00-0x0F) discriminates it from the text format, whose first byte is
//     always ASCII '@' (0x40).
//   - Decoders are written for bounds safety: every slice read is preceded by
//     a length check against the remaining buffer; on any mismatch they
//     return ok=false with a shortBuffer flag, which the tcontainer package
//     maps to its ErrShortBuffer/ErrBadLength sentinels.
//   - Decoders return subslices of the input buffer (zero-copy) for name and
//     payload bytes. Callers that need to retain bytes beyond the input
//     buffer's lifetime must copy them; Value does this at construction.
package wire

import (
	"encoding/binary"
)

// ErrShortBuffer/ErrBadLength are defined in the tcontainer package; this
// package reports failures as (next int, shortBuffer bool, ok bool) so the caller can
// attach the appropriate sentinel and offset without an import cycle.

// Frame is one decoded value frame: tag, name bytes, and payload bytes.
// Name and Payload are zero-copy subslices of the buffer passed to Decode.
type Frame struct {
	Tag     byte
	Name    []byte
	Payload []byte
}

// Encode writes tag(1) | name_len(4 LE) | name | payload_len(4 LE) | payload.
func Encode(tag byte, name, payload []byte) []byte {
	buf := make([]byte, 0, 1+4+len(name)+4+len(payload))
	buf = append(buf, tag)

	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], uint32(len(name)))
	buf = append(buf, u4[:]...)
	buf = append(buf, name...)

	binary.LittleEndian.PutUint32(u4[:], uint32(len(payload)))
	buf = append(buf, u4[:]...)
	buf = append(buf, payload...)
	return buf
}

// EncodeTo appends the frame for (tag, name, payload) to buf and returns the
// grown buffer, avoiding an intermediate allocation when building up a
// sequence of frames (arrays, container bodies).
func EncodeTo(buf []byte, tag byte, name, payload []byte) []byte {
	buf = append(buf, tag)

	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], uint32(len(name)))
	buf = append(buf, u4[:]...)
	buf = append(buf, name...)

	binary.LittleEndian.PutUint32(u4[:], uint32(len(payload)))
	buf = append(buf, u4[:]...)
	buf = append(buf, payload...)
	return buf
}

// Decode reads one frame starting at offset off in b.
// Returns the frame and the offset immediately after it, or an error
// position (the byte offset where the failure was detected) with ok=false.
// shortBuffer is true for every failure Decode reports: a declared name or
// payload length that runs past the end of b is treated as running out of
// input, the same as a missing tag or length field.
func Decode(b []byte, off int) (f Frame, next int, shortBuffer bool, ok bool) {
	if off+1 > len(b) {
		return Frame{}, off, true, false
	}
	f.Tag = b[off]
	off++

	nameLen, off2, short, ok2 := readUint32(b, off)
	if !ok2 {
		return Frame{}, off2, short, false
	}
	off = off2

	if nameLen < 0 || off+nameLen > len(b) {
		return Frame{}, off, true, false
	}
	f.Name = b[off : off+nameLen]
	off += nameLen

	payloadLen, off3, short, ok3 := readUint32(b, off)
	if !ok3 {
		return Frame{}, off3, short, false
	}
	off = off3

	if payloadLen < 0 || off+payloadLen > len(b) {
		return Frame{}, off, true, false
	}
	f.Payload = b[off : off+payloadLen]
	off += payloadLen

	return f, off, false, true
}

func readUint32(b []byte, off int) (v, next int, shortBuffer, ok bool) {
	if off+4 > len(b) {
		return 0, off, true, false
	}
	return int(binary.LittleEndian.Uint32(b[off : off+4])), off + 4, false, true
}

// PutUint32 appends the little-endian encoding of v to buf.
func PutUint32(buf []byte, v uint32) []byte {
	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], v)
	return append(buf, u4[:]...)
}

// ReadString reads a length-prefixed UTF-8 string at offset off: a uint32 LE
// length followed by that many bytes. Used for container header fields.
func ReadString(b []byte, off int) (s []byte, next int, shortBuffer bool, ok bool) {
	n, off2, short, ok2 := readUint32(b, off)
	if !ok2 {
		return nil, off2, short, false
	}
	if n < 0 || off2+n > len(b) {
		return nil, off2, true, false
	}
	return b[off2 : off2+n], off2 + n, false, true
}

// PutString appends a length-prefixed UTF-8 string to buf.
func PutString(buf []byte, s string) []byte {
	buf = PutUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// HasTextPrefix reports whether b opens with the text format's leading '@'.
// Binary frames always begin with a tag byte in [0x00, 0x0F], so there is no
// collision (spec §6).
func HasTextPrefix(b []byte) bool {
	return len(b) > 0 && b[0] == '@'
}
