package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/meridianhq/tcontainer"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeRecoveredEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeCtr atomic.Uint64
}

var _ tcontainer.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRecovered(name string, tag tcontainer.Tag, err error) {
	if h.l == nil || !sample(h.opts.DecodeRecoveredEvery, &h.decodeCtr) {
		return
	}
	h.l.Debug("tcontainer.decode_recovered",
		"name", name,
		"tag", tag.String(),
		"err", err)
}

func (h *Hooks) DepthExceeded(name string, depth int) {
	if h.l == nil {
		return
	}
	h.l.Warn("tcontainer.depth_exceeded",
		"name", name,
		"depth", depth)
}

func (h *Hooks) CoercionFailed(name string, from tcontainer.Tag, to string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("tcontainer.coercion_failed",
		"name", name,
		"from", from.String(),
		"to", to,
		"err", err)
}

func (h *Hooks) RangeRejected(name string, tag tcontainer.Tag, value int64) {
	if h.l == nil {
		return
	}
	h.l.Warn("tcontainer.range_rejected",
		"name", name,
		"tag", tag.String(),
		"value", value)
}

func (h *Hooks) PoolExhausted(tag tcontainer.Tag) {
	if h.l == nil {
		return
	}
	h.l.Warn("tcontainer.pool_exhausted",
		"tag", tag.String())
}

func (h *Hooks) BridgeMigrated(name, from, to string) {
	if h.l == nil {
		return
	}
	h.l.Debug("tcontainer.bridge_migrated",
		"name", name,
		"from", from,
		"to", to)
}
