package tcontainer

import (
	"sync"

	"go.uber.org/multierr"
)

// ThreadSafeContainer wraps a Container with a single reader-writer lock
// (spec §4.E), grounded on the RWMutex-guarded-map discipline used
// throughout the gen-store and cache layers this module descends from:
// readers take RLock, writers take Lock, and no lock is ever held across a
// user callback. Getters return by value (or a snapshot slice) so the
// wrapper never hands out an interior reference that outlives the lock.
type ThreadSafeContainer struct {
	mu sync.RWMutex
	c  Container
}

// NewThreadSafeContainer wraps an empty Container.
func NewThreadSafeContainer() *ThreadSafeContainer {
	return &ThreadSafeContainer{}
}

// WrapThreadSafeContainer takes ownership of c, wrapping it for concurrent
// access. Callers must not touch c directly afterward.
func WrapThreadSafeContainer(c *Container) *ThreadSafeContainer {
	tsc := &ThreadSafeContainer{}
	if c != nil {
		tsc.c = *c
	}
	return tsc
}

// GetValue returns the first value named name, or a null-tag sentinel.
func (t *ThreadSafeContainer) GetValue(name string) Value {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.GetValue(name)
}

// ValueArray returns every value named name, in insertion order.
func (t *ThreadSafeContainer) ValueArray(name string) []Value {
	t.mu.RLock()
	defer t.mu.RUnlock()
	src := t.c.ValueArray(name)
	out := make([]Value, len(src))
	copy(out, src)
	return out
}

// Size returns the number of stored values.
func (t *ThreadSafeContainer) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.Size()
}

// Serialize produces the normative binary wire bytes under a read lock.
func (t *ThreadSafeContainer) Serialize() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.Serialize()
}

// Bytes encodes the container in format under a read lock.
func (t *ThreadSafeContainer) Bytes(format Format) ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.Bytes(format)
}

// Snapshot copies the current value list under a read lock and returns it
// for the caller to iterate outside the lock (spec §4.E "offered as a
// snapshot").
func (t *ThreadSafeContainer) Snapshot() []Value {
	t.mu.RLock()
	defer t.mu.RUnlock()
	src := t.c.Values()
	out := make([]Value, len(src))
	copy(out, src)
	return out
}

// Header returns the five routing/type fields under a read lock.
func (t *ThreadSafeContainer) Header() (sourceID, sourceSubID, targetID, targetSubID, messageType string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.SourceID(), t.c.SourceSubID(), t.c.TargetID(), t.c.TargetSubID(), t.c.MessageType()
}

// Add appends value under an exclusive lock.
func (t *ThreadSafeContainer) Add(value Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.Add(value)
}

// Remove removes every value named name under an exclusive lock.
func (t *ThreadSafeContainer) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.Remove(name)
}

// RemoveMany removes every value named in names, aggregating a multierr for
// any names that did not exist (treated here as non-fatal; Remove itself is
// idempotent, so the aggregation exists for callers who want to know which
// names were no-ops).
func (t *ThreadSafeContainer) RemoveMany(names []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var errs error
	for _, name := range names {
		if len(t.c.ValueArray(name)) == 0 {
			errs = multierr.Append(errs, &CoercionError{Name: name, Kind: ErrTypeMismatch, To: "remove"})
			continue
		}
		t.c.Remove(name)
	}
	return errs
}

// Clear empties the value list under an exclusive lock; header is preserved.
func (t *ThreadSafeContainer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.Clear()
}

// SetSource sets the source routing identity under an exclusive lock.
func (t *ThreadSafeContainer) SetSource(id, subID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.SetSource(id, subID)
}

// SetTarget sets the target routing identity under an exclusive lock.
func (t *ThreadSafeContainer) SetTarget(id, subID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.SetTarget(id, subID)
}

// SetMessageType sets the message type field under an exclusive lock.
func (t *ThreadSafeContainer) SetMessageType(mt string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.SetMessageType(mt)
}

// Deserialize replaces the wrapped container's contents under an exclusive
// lock. On failure the container is left completely unchanged.
func (t *ThreadSafeContainer) Deserialize(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.c.Deserialize(data)
}

// Merge appends other's values onto the wrapped container under an
// exclusive lock.
func (t *ThreadSafeContainer) Merge(other *Container) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.c.Merge(other)
}

// Copy returns a standalone (non-thread-safe) copy of the wrapped
// container, taken under a read lock.
func (t *ThreadSafeContainer) Copy(deep bool) *Container {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.c.Copy(deep)
}
