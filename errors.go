package tcontainer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors for the closed taxonomy in spec §7. Use errors.Is against
// these; DecodeError and CoercionError wrap them with positional/type
// context via Unwrap.
var (
	ErrShortBuffer     = errors.New("tcontainer: short buffer")
	ErrUnknownTag      = errors.New("tcontainer: unknown tag")
	ErrBadLength       = errors.New("tcontainer: declared length inconsistent with buffer")
	ErrBadUTF8         = errors.New("tcontainer: ill-formed utf-8")
	ErrRangeOverflow   = errors.New("tcontainer: value outside range for tag")
	ErrTypeMismatch    = errors.New("tcontainer: requested type incompatible with stored tag")
	ErrIllegalCoercion = errors.New("tcontainer: illegal coercion")
	ErrDepthExceeded   = errors.New("tcontainer: nesting deeper than maximum depth")
	ErrPoolExhausted   = errors.New("tcontainer: pool exhausted")
)

// DecodeError carries positional context for a failure raised while reading
// a value frame off the wire. ID is a correlation identifier a Logger/Hooks
// sink can use to tie together retries or multi-line log output for the same
// failed parse, the way kolide-launcher tags a single request's log lines.
type DecodeError struct {
	ID     uuid.UUID
	Offset int
	Cause  error
}

func newDecodeError(offset int, cause error) *DecodeError {
	return &DecodeError{ID: uuid.New(), Offset: offset, Cause: cause}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tcontainer: decode error at offset %d [%s]: %v", e.Offset, e.ID, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// CoercionError is raised by Value accessors when the stored tag cannot be
// coerced to the requested shape (type-mismatch or illegal-coercion).
type CoercionError struct {
	Name string
	From Tag
	To   string
	Kind error // ErrTypeMismatch or ErrIllegalCoercion
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("tcontainer: value %q (%s) cannot coerce to %s: %v", e.Name, e.From, e.To, e.Kind)
}

func (e *CoercionError) Unwrap() error { return e.Kind }

// RangeError is raised by constructors for tags 6/7 (long/ulong) when the
// supplied scalar does not fit the wire's 32-bit range.
type RangeError struct {
	Tag   Tag
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tcontainer: %s value %d out of 32-bit range", e.Tag, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrRangeOverflow }
