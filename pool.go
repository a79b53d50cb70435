package tcontainer

import (
	"sync/atomic"
	"time"

	"github.com/meridianhq/tcontainer/internal/sweep"
)

// defaultPoolSize is the per-tag retention cap NewPool uses when given a
// non-positive size: how many freed payload buffers are retained per tag
// before Release starts discarding instead of recycling.
const defaultPoolSize = 64

// Pool is a per-tag free list for Value payload buffers, held in one
// buffered channel per tag with an atomic available count (spec §4.G).
// Acquire/Release are the allocate/free pair; a buffer obtained through
// Acquire always comes back zero-length, since Release truncates it before
// it is ever handed back out.
type Pool struct {
	size int

	mu    [tagCount]chan []byte
	hits  [tagCount]atomic.Uint64
	miss  [tagCount]atomic.Uint64
	avail [tagCount]atomic.Int64

	sweeper *sweep.Sweeper
}

// NewPool constructs a Pool. size is the per-tag retention cap; a
// non-positive size uses defaultPoolSize.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = defaultPoolSize
	}
	p := &Pool{size: size}
	for t := range p.mu {
		p.mu[t] = make(chan []byte, size)
	}
	return p
}

// NewPoolWithSweep is NewPool plus a background sweeper that, every
// interval, trims any tag's free list down to at most size/2 — bounding the
// footprint of a pool that briefly spiked (e.g. a burst of large bytes-tag
// values) well after the burst ends, rather than waiting for the next
// Release to discard the excess one buffer at a time.
func NewPoolWithSweep(size int, interval time.Duration) *Pool {
	p := NewPool(size)
	p.sweeper = sweep.New(interval, p.trim)
	return p
}

// Close stops the background sweeper, if one was started. Safe to call on a
// Pool built with plain NewPool.
func (p *Pool) Close() {
	if p.sweeper != nil {
		p.sweeper.Close()
	}
}

func (p *Pool) trim() {
	target := p.size / 2
	for t := range p.mu {
	drain:
		for int(p.avail[Tag(t)].Load()) > target {
			select {
			case <-p.mu[t]:
				p.avail[Tag(t)].Add(-1)
			default:
				break drain
			}
		}
	}
}

// Acquire returns a zero-length buffer with at least cap capacity for tag,
// recycled from the free list when available, else freshly allocated.
func (p *Pool) Acquire(tag Tag, capacity int) []byte {
	if !tag.Valid() {
		return make([]byte, 0, capacity)
	}
	select {
	case buf := <-p.mu[tag]:
		p.avail[tag].Add(-1)
		p.hits[tag].Add(1)
		if cap(buf) < capacity {
			return make([]byte, 0, capacity)
		}
		return buf[:0]
	default:
		p.miss[tag].Add(1)
		return make([]byte, 0, capacity)
	}
}

// Release returns buf to tag's free list. If the list is at capacity, buf is
// dropped for the garbage collector to reclaim (spec's "ErrPoolExhausted" is
// reserved for callers that want release failures surfaced rather than
// silently dropped; Release itself never fails).
func (p *Pool) Release(tag Tag, buf []byte) {
	if !tag.Valid() || buf == nil {
		return
	}
	buf = buf[:0]
	select {
	case p.mu[tag] <- buf:
		p.avail[tag].Add(1)
	default:
		// at capacity; let GC reclaim
	}
}

// TagStats reports a single tag's pool activity.
type TagStats struct {
	Hits      uint64
	Misses    uint64
	Available int64
}

// HitRate returns hits / (hits + misses), or 0 if there have been no
// Acquire calls yet.
func (s TagStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns tag's current hit/miss/available counters.
func (p *Pool) Stats(tag Tag) TagStats {
	if !tag.Valid() {
		return TagStats{}
	}
	return TagStats{
		Hits:      p.hits[tag].Load(),
		Misses:    p.miss[tag].Load(),
		Available: p.avail[tag].Load(),
	}
}
