package alloc

import "fmt"

// DefaultChunkCap is the chunk capacity (in elements) used when a pool is
// created with a non-positive capacity.
const DefaultChunkCap = 64

// chunk is a single fixed-capacity storage block within a pool. It is
// created once and never resized or moved, so addresses into it stay valid
// until the pool is released.
type chunk[T any] struct {
	elems []T // backing storage, len(elems) == capacity
	used  int // elements handed out from the front
}

// Pool is a chunk-based allocator. It serves typed requests by carving
// slices out of fixed-capacity chunks, creating a new chunk only when no
// existing one fits. Not goroutine-safe.
type Pool[T any] struct {
	chunks   []chunk[T]
	chunkCap int
	released bool
}

// NewPool creates a pool with the given chunk capacity in elements.
// If chunkCap <= 0, DefaultChunkCap is used. The first chunk is created
// lazily, on the first allocation no existing chunk can satisfy.
func NewPool[T any](chunkCap int) *Pool[T] {
	if chunkCap <= 0 {
		chunkCap = DefaultChunkCap
	}
	return &Pool[T]{chunkCap: chunkCap}
}

// Allocate returns storage for n contiguous elements. Chunks are scanned in
// creation order and the first one with capacity-used >= n wins; when none
// fits, a new chunk of max(chunkCap, n) elements is created with its first
// n elements taken. n <= 0 returns nil with no side effects.
//
// The returned slice is capped at n, so appending to it can never step into
// storage handed out by a later call.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	p.panicIfReleased()
	if n > p.MaxSize() {
		return nil, fmt.Errorf("allocate %d elements: %w", n, ErrOutOfMemory)
	}

	for i := range p.chunks {
		c := &p.chunks[i]
		if len(c.elems)-c.used >= n {
			s := c.elems[c.used : c.used+n : c.used+n]
			c.used += n
			return s, nil
		}
	}
	return p.grow(n), nil
}

// grow appends a chunk of at least n elements and takes n from it.
func (p *Pool[T]) grow(n int) []T {
	size := p.chunkCap
	if n > size {
		size = n
	}
	elems := make([]T, size)
	p.chunks = append(p.chunks, chunk[T]{elems: elems, used: n})
	return elems[:n:n]
}

// Deallocate is a no-op. The pool never reclaims sub-chunk space: repeated
// allocate/deallocate cycles grow total reserved memory monotonically, and
// space only comes back in bulk at Release. This is the pool's documented
// trade-off for allocation speed and stable addresses, not a leak.
func (p *Pool[T]) Deallocate([]T) {}

// Construct places v at p.
func (p *Pool[T]) Construct(dst *T, v T) { *dst = v }

// Destroy zeroes the value at p without giving up its storage.
func (p *Pool[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// MaxSize reports the theoretical element count limit for one request.
func (p *Pool[T]) MaxSize() int { return maxElems[T]() }

// Policy reports the pool strategy together with its chunk capacity.
func (p *Pool[T]) Policy() Policy {
	return Policy{Kind: KindPool, ChunkCap: p.chunkCap}
}

// Release destroys, for every chunk in creation order, the elements in its
// used prefix, then drops the chunk storage. The pool is unusable
// afterwards; further allocations panic. Release is idempotent.
func (p *Pool[T]) Release() {
	for i := range p.chunks {
		c := &p.chunks[i]
		clear(c.elems[:c.used])
		c.elems = nil
	}
	p.chunks = nil
	p.released = true
}

// panicIfReleased panics if the pool has been released.
func (p *Pool[T]) panicIfReleased() {
	if p.released {
		panic("alloc: use after Release()")
	}
}

var _ Allocator[int] = (*Pool[int])(nil)
