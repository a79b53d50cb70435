// Package legacy offers a flat key→Value store for external consumers that
// still speak a classical "polymorphic value store" API rather than
// tcontainer's ordered, duplicate-key-preserving Container. It is a
// bridge-compatible shim, not a second source of truth: internally it just
// holds Values and optionally serializes through a Container.
//
// Shape grounded on kcenon/go_container_system's ValueStore (Add/Get/
// Contains/Remove/Clear/Size/Keys + an EnableThreadSafety toggle backed by
// atomic.Bool and per-operation read/write/serialization counters); the
// thread-safety-toggle-plus-RWMutex idiom itself is the one the teacher's
// now-removed cas.go cache used.
package legacy

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/meridianhq/tcontainer"
)

// Store is a flat, keyed collection of Values. Thread safety is opt-in: by
// default Store is unsynchronized (fast path for single-goroutine callers);
// EnableThreadSafety switches every operation to take the RWMutex.
type Store struct {
	mu                sync.RWMutex
	threadSafeEnabled atomic.Bool
	values            map[string]tcontainer.Value

	readCount          atomic.Uint64
	writeCount         atomic.Uint64
	serializationCount atomic.Uint64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]tcontainer.Value)}
}

// EnableThreadSafety switches Store to lock every subsequent operation.
// Irreversible: there is no DisableThreadSafety, matching the one-way
// upgrade kcenon's ValueStore offers.
func (s *Store) EnableThreadSafety() { s.threadSafeEnabled.Store(true) }

// Add stores value under key, overwriting any existing entry.
func (s *Store) Add(key string, value tcontainer.Value) {
	if s.threadSafeEnabled.Load() {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	s.values[key] = value
	s.writeCount.Add(1)
}

// Get retrieves the value stored under key. ok is false if key is absent.
func (s *Store) Get(key string) (tcontainer.Value, bool) {
	if s.threadSafeEnabled.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	v, ok := s.values[key]
	if ok {
		s.readCount.Add(1)
	}
	return v, ok
}

// Contains reports whether key is present.
func (s *Store) Contains(key string) bool {
	if s.threadSafeEnabled.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	_, ok := s.values[key]
	return ok
}

// Remove deletes key, reporting whether it was present.
func (s *Store) Remove(key string) bool {
	if s.threadSafeEnabled.Load() {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Clear empties the store.
func (s *Store) Clear() {
	if s.threadSafeEnabled.Load() {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	s.values = make(map[string]tcontainer.Value)
}

// Size returns the number of stored entries.
func (s *Store) Size() int {
	if s.threadSafeEnabled.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return len(s.values)
}

// Empty reports whether the store has no entries.
func (s *Store) Empty() bool { return s.Size() == 0 }

// Keys returns every stored key, sorted for deterministic iteration.
func (s *Store) Keys() []string {
	if s.threadSafeEnabled.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stats reports read/write/serialization activity counters.
type Stats struct {
	Reads          uint64
	Writes         uint64
	Serializations uint64
}

// Stats returns a snapshot of the store's activity counters.
func (s *Store) Stats() Stats {
	return Stats{
		Reads:          s.readCount.Load(),
		Writes:         s.writeCount.Load(),
		Serializations: s.serializationCount.Load(),
	}
}

// ToContainer copies every entry into a fresh Container, one Value per key,
// named after the key. Iteration order is the sorted key order from Keys.
func (s *Store) ToContainer() *tcontainer.Container {
	c := tcontainer.NewContainer()
	if s.threadSafeEnabled.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	for _, k := range sortedKeysLocked(s.values) {
		c.Add(s.values[k].Clone())
	}
	s.serializationCount.Add(1)
	return c
}

func sortedKeysLocked(m map[string]tcontainer.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromContainer replaces the store's contents with c's values, keyed by
// each Value's name. If names repeat, the last one wins (the flat store has
// no concept of the Container's duplicate-name ordering).
func FromContainer(c *tcontainer.Container) *Store {
	s := NewStore()
	for _, v := range c.Values() {
		s.values[v.Name()] = v
	}
	return s
}
