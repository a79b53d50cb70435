package tcontainer

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; do not perform I/O.
// If work may block, buffer it and drop on backpressure (best effort).
type Hooks interface {
	DecodeRecovered(name string, tag Tag, err error)
	DepthExceeded(name string, depth int)
	CoercionFailed(name string, from Tag, to string, err error)
	RangeRejected(name string, tag Tag, value int64)
	PoolExhausted(tag Tag)
	BridgeMigrated(name string, from, to string)
}

// NopHooks is a default no-op.
type NopHooks struct{}

func (NopHooks) DecodeRecovered(string, Tag, error)      {}
func (NopHooks) DepthExceeded(string, int)               {}
func (NopHooks) CoercionFailed(string, Tag, string, error) {}
func (NopHooks) RangeRejected(string, Tag, int64)        {}
func (NopHooks) PoolExhausted(Tag)                       {}
func (NopHooks) BridgeMigrated(string, string, string)   {}

// Multi returns a Hooks that fan-outs to all provided hooks, in order.
// Nil entries are ignored.
// Panics from a hook will propagate to the caller.
//
// example usage:
//
// logH := sloghooks.New(slog.Default(), sloghooks.Options{})
// metH := myMetricsHook{...}
//
// // fan-out
// mh := tcontainer.Multi(logH, metH)
//
// // Either: single async queue for the whole fan-out
// hooks := asynchook.New(mh, 1, 1000)
//
// // Or: give each hook its own queue (isolate backpressure)
//
//	hooks := tcontainer.Multi(
//	    asynchook.New(logH, 1, 1000),
//	    asynchook.New(metH, 1, 1000),
//	)
func Multi(hs ...Hooks) Hooks {
	nn := make([]Hooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			nn = append(nn, h)
		}
	}
	return multiHooks(nn)
}

type multiHooks []Hooks

func (m multiHooks) DecodeRecovered(name string, tag Tag, err error) {
	for _, h := range m {
		h.DecodeRecovered(name, tag, err)
	}
}
func (m multiHooks) DepthExceeded(name string, depth int) {
	for _, h := range m {
		h.DepthExceeded(name, depth)
	}
}
func (m multiHooks) CoercionFailed(name string, from Tag, to string, err error) {
	for _, h := range m {
		h.CoercionFailed(name, from, to, err)
	}
}
func (m multiHooks) RangeRejected(name string, tag Tag, value int64) {
	for _, h := range m {
		h.RangeRejected(name, tag, value)
	}
}
func (m multiHooks) PoolExhausted(tag Tag) {
	for _, h := range m {
		h.PoolExhausted(tag)
	}
}
func (m multiHooks) BridgeMigrated(name, from, to string) {
	for _, h := range m {
		h.BridgeMigrated(name, from, to)
	}
}
