package legacy

import (
	"testing"

	"github.com/meridianhq/tcontainer"
)

func TestStoreAddGetContainsRemove(t *testing.T) {
	s := NewStore()
	s.Add("name", tcontainer.NewString("name", "alice"))

	v, ok := s.Get("name")
	if !ok {
		t.Fatal("Get(name) ok = false")
	}
	if got, _ := v.AsString(); got != "alice" {
		t.Fatalf("Get(name) = %q, want alice", got)
	}
	if !s.Contains("name") {
		t.Fatal("Contains(name) = false")
	}
	if s.Contains("missing") {
		t.Fatal("Contains(missing) = true")
	}

	if !s.Remove("name") {
		t.Fatal("Remove(name) = false, want true")
	}
	if s.Remove("name") {
		t.Fatal("second Remove(name) = true, want false")
	}
}

func TestStoreSizeEmptyClear(t *testing.T) {
	s := NewStore()
	if !s.Empty() {
		t.Fatal("new Store should be Empty()")
	}
	s.Add("a", tcontainer.NewInt("a", 1))
	s.Add("b", tcontainer.NewInt("b", 2))
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	s.Clear()
	if !s.Empty() || s.Size() != 0 {
		t.Fatal("Clear() should empty the store")
	}
}

func TestStoreKeysSorted(t *testing.T) {
	s := NewStore()
	s.Add("zeta", tcontainer.NewInt("zeta", 1))
	s.Add("alpha", tcontainer.NewInt("alpha", 2))
	s.Add("mu", tcontainer.NewInt("mu", 3))

	keys := s.Keys()
	want := []string{"alpha", "mu", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestStoreStatsCounters(t *testing.T) {
	s := NewStore()
	s.Add("a", tcontainer.NewInt("a", 1))
	s.Get("a")
	s.Get("a")
	s.ToContainer()

	stats := s.Stats()
	if stats.Writes != 1 {
		t.Fatalf("Writes = %d, want 1", stats.Writes)
	}
	if stats.Reads != 2 {
		t.Fatalf("Reads = %d, want 2", stats.Reads)
	}
	if stats.Serializations != 1 {
		t.Fatalf("Serializations = %d, want 1", stats.Serializations)
	}
}

func TestStoreOperationsAfterEnableThreadSafety(t *testing.T) {
	s := NewStore()
	s.EnableThreadSafety()
	s.Add("x", tcontainer.NewInt("x", 1))
	if v, ok := s.Get("x"); !ok {
		t.Fatal("Get(x) should still work after EnableThreadSafety")
	} else if n, _ := v.AsInt(); n != 1 {
		t.Fatalf("Get(x) = %d, want 1", n)
	}
}

func TestStoreToContainerAndFromContainerRoundTrip(t *testing.T) {
	s := NewStore()
	s.Add("name", tcontainer.NewString("name", "bob"))
	s.Add("age", tcontainer.NewInt("age", 42))

	c := s.ToContainer()
	if c.Size() != 2 {
		t.Fatalf("ToContainer().Size() = %d, want 2", c.Size())
	}

	s2 := FromContainer(c)
	if s2.Size() != 2 {
		t.Fatalf("FromContainer Size() = %d, want 2", s2.Size())
	}
	v, ok := s2.Get("name")
	if !ok {
		t.Fatal("FromContainer lost the 'name' key")
	}
	if got, _ := v.AsString(); got != "bob" {
		t.Fatalf("name = %q, want bob", got)
	}
}
