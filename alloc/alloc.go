package alloc

import (
	"math"
	"unsafe"
)

// Allocator is the generic storage contract containers depend on. It hands
// out raw (zero-valued but logically uninitialized) storage for contiguous
// elements and supports in-place construction and destruction at addresses
// it handed out.
//
// Equality between allocators is identity: implementations are used through
// pointers, so == on two Allocator values reports whether they are the same
// instance.
type Allocator[T any] interface {
	// Allocate returns storage for n contiguous elements. n <= 0 yields a
	// nil slice and no side effects. The caller must Construct elements
	// before treating them as live.
	Allocate(n int) ([]T, error)

	// Deallocate returns storage previously obtained from Allocate. A
	// strategy may treat this as a no-op; the pool does.
	Deallocate(s []T)

	// Construct places v at p.
	Construct(p *T, v T)

	// Destroy ends the lifetime of the value at p without releasing its
	// storage. The storage may be handed out again by the same strategy.
	Destroy(p *T)

	// MaxSize reports the largest element count an Allocate call could
	// theoretically satisfy.
	MaxSize() int

	// Policy describes the strategy and its chunk sizing, so that Rebind
	// can derive an equivalent allocator for another element type.
	Policy() Policy
}

// Kind identifies an allocation strategy.
type Kind uint8

const (
	// KindSystem delegates every request to the Go runtime.
	KindSystem Kind = iota
	// KindPool serves requests from fixed-capacity chunks.
	KindPool
)

// Policy captures everything needed to build an equivalent allocator for a
// different element type: the strategy and its chunk capacity.
type Policy struct {
	Kind     Kind
	ChunkCap int // elements per chunk, meaningful for KindPool
}

// Rebind derives a fresh allocator for element type U carrying the same
// policy as a. The result never shares chunks with a: rebinding copies the
// sizing policy, not the storage, so a container's node allocator has its
// own chunk sequence even when configured from an element-typed allocator.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return FromPolicy[U](a.Policy())
}

// FromPolicy builds an allocator for element type U from a policy.
func FromPolicy[U any](pol Policy) Allocator[U] {
	switch pol.Kind {
	case KindPool:
		return NewPool[U](pol.ChunkCap)
	default:
		return NewSystem[U]()
	}
}

// System is the default strategy: every Allocate is a runtime allocation
// and Deallocate leaves reclamation to the garbage collector.
type System[T any] struct{}

// NewSystem creates a runtime-backed allocator.
func NewSystem[T any]() *System[T] {
	return &System[T]{}
}

// Allocate returns a fresh zeroed slice of n elements.
func (s *System[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > s.MaxSize() {
		return nil, ErrOutOfMemory
	}
	return make([]T, n), nil
}

// Deallocate drops the reference; the garbage collector reclaims it.
func (s *System[T]) Deallocate([]T) {}

// Construct places v at p.
func (s *System[T]) Construct(p *T, v T) { *p = v }

// Destroy zeroes the value at p.
func (s *System[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// MaxSize reports the element count bound implied by the address space.
func (s *System[T]) MaxSize() int { return maxElems[T]() }

// Policy reports the system strategy.
func (s *System[T]) Policy() Policy { return Policy{Kind: KindSystem} }

// maxElems is the size-type limit divided by the element size.
func maxElems[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

var _ Allocator[int] = (*System[int])(nil)
