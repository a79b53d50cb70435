package tcontainer

import (
	"errors"
	"testing"
)

type recordingHooks struct {
	decodeRecovered []string
	depthExceeded   []string
	poolExhausted   []Tag
}

func (r *recordingHooks) DecodeRecovered(name string, tag Tag, err error) {
	r.decodeRecovered = append(r.decodeRecovered, name)
}
func (r *recordingHooks) DepthExceeded(name string, depth int) {
	r.depthExceeded = append(r.depthExceeded, name)
}
func (r *recordingHooks) CoercionFailed(name string, from Tag, to string, err error) {}
func (r *recordingHooks) RangeRejected(name string, tag Tag, value int64)            {}
func (r *recordingHooks) PoolExhausted(tag Tag)                                      { r.poolExhausted = append(r.poolExhausted, tag) }
func (r *recordingHooks) BridgeMigrated(name string, from, to string)                {}

func TestNopHooksIsNoop(t *testing.T) {
	var h Hooks = NopHooks{}
	h.DecodeRecovered("x", TagInt, errors.New("boom"))
	h.DepthExceeded("x", 33)
	h.CoercionFailed("x", TagInt, "bool", errors.New("boom"))
	h.RangeRejected("x", TagLong, 1<<40)
	h.PoolExhausted(TagBytes)
	h.BridgeMigrated("x", "Value", "Variant")
	// no panics, nothing to assert: NopHooks is a pure no-op.
}

func TestMultiFanOutDispatchesToAll(t *testing.T) {
	a := &recordingHooks{}
	b := &recordingHooks{}
	m := Multi(a, b)

	m.DecodeRecovered("field", TagInt, errors.New("x"))
	m.DepthExceeded("field", 40)
	m.PoolExhausted(TagBytes)

	for _, r := range []*recordingHooks{a, b} {
		if len(r.decodeRecovered) != 1 || r.decodeRecovered[0] != "field" {
			t.Fatalf("decodeRecovered = %v, want [field]", r.decodeRecovered)
		}
		if len(r.depthExceeded) != 1 || r.depthExceeded[0] != "field" {
			t.Fatalf("depthExceeded = %v, want [field]", r.depthExceeded)
		}
		if len(r.poolExhausted) != 1 || r.poolExhausted[0] != TagBytes {
			t.Fatalf("poolExhausted = %v, want [TagBytes]", r.poolExhausted)
		}
	}
}

func TestMultiIgnoresNilEntries(t *testing.T) {
	a := &recordingHooks{}
	m := Multi(a, nil)
	m.DecodeRecovered("x", TagInt, nil) // must not panic on the nil entry
	if len(a.decodeRecovered) != 1 {
		t.Fatalf("decodeRecovered = %v, want 1 entry", a.decodeRecovered)
	}
}
