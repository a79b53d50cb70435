// usage:
//
// import (
//
//	"github.com/meridianhq/tcontainer"
//	"github.com/meridianhq/tcontainer/hooks/async"
//	"github.com/meridianhq/tcontainer/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeRecoveredEvery: 10, // sample logs: ~every 10th self-heal
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
package asynchook

import (
	"sync"

	"github.com/meridianhq/tcontainer"
)

// Hooks wraps an inner tcontainer.Hooks so every callback is dispatched on a
// bounded worker pool instead of the caller's goroutine; events are dropped
// under backpressure rather than blocking the decode/accessor path that
// triggered them.
type Hooks struct {
	inner tcontainer.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ tcontainer.Hooks = (*Hooks)(nil)

// New starts workers goroutines draining a queue of length qlen. Non-positive
// workers/qlen fall back to 1 and 1024 respectively.
func New(inner tcontainer.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops all workers. Safe to call multiple times.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DecodeRecovered(name string, tag tcontainer.Tag, err error) {
	h.try(func() { h.inner.DecodeRecovered(name, tag, err) })
}
func (h *Hooks) DepthExceeded(name string, depth int) {
	h.try(func() { h.inner.DepthExceeded(name, depth) })
}
func (h *Hooks) CoercionFailed(name string, from tcontainer.Tag, to string, err error) {
	h.try(func() { h.inner.CoercionFailed(name, from, to, err) })
}
func (h *Hooks) RangeRejected(name string, tag tcontainer.Tag, value int64) {
	h.try(func() { h.inner.RangeRejected(name, tag, value) })
}
func (h *Hooks) PoolExhausted(tag tcontainer.Tag) {
	h.try(func() { h.inner.PoolExhausted(tag) })
}
func (h *Hooks) BridgeMigrated(name, from, to string) {
	h.try(func() { h.inner.BridgeMigrated(name, from, to) })
}
