// Package tcontainer implements a typed, self-describing data container and
// its binary wire codec for inter-process and cross-language messaging.
//
// A Container carries a routing header (source/target identities, message
// type) plus an ordered, multi-keyed collection of Values: primitives,
// bytes, strings, nested containers, and arrays. Sixteen value kinds are
// closed over by Tag; serialization walks the container in insertion order
// and produces the same bytes every time (Container.Serialize is pure).
//
// Components:
//   - Tag: the closed 16-kind type registry (types.go).
//   - Value: the tagged, byte-payload leaf (value.go).
//   - DecodeValue: the tag-dispatching decoder (decode.go).
//   - Container: the ordered multimap + header + wire codec (container.go).
//   - ThreadSafeContainer: the reader/writer-locked wrapper (sync_container.go).
//   - Variant: the decoded-scalar sum type, and Bridge, its total and
//     mutually-inverse mapping to/from Value (variant.go, bridge.go).
//     ThreadSafeContainer stores and returns Values, not Variants.
//   - Pool: an optional reuse pool for Value payload buffers (pool.go).
//
// Wire formats:
//
//	binary (normative): tag(1) | name_len(4 LE) | name | payload_len(4 LE) | payload
//	text (lossless):     @header={...};@data={...};
//	projections (lossy): see the projections subpackage for JSON/XML/Ion renderings.
package tcontainer
