// Package list implements a singly linked, append-at-tail sequence whose
// node storage comes from an alloc.Allocator. The container is a thin
// consumer of the allocator contract: it obtains raw node storage,
// constructs nodes in place, links them, and on Clear destroys and returns
// every node in link order.
package list

import (
	"unsafe"

	"github.com/lerakirpu/AllocatorLab/alloc"
)

// node pairs one element with the link to the next node. nil next marks the
// end of the sequence.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence with O(1) append at the tail and forward
// iteration from the head. All node storage is delegated to the configured
// allocator, rebound to the internal node type. Not goroutine-safe.
//
// Invariants: the list is empty iff head and tail are both nil; tail.next
// is always nil; following next links from head reaches tail in exactly
// Len()-1 steps.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	nodes alloc.Allocator[node[T]]
}

// New creates an empty list backed by the system allocator.
func New[T any]() *List[T] {
	return &List[T]{nodes: alloc.NewSystem[node[T]]()}
}

// NewWith creates an empty list whose nodes are obtained from an allocator
// with the same policy as a. The element-typed allocator is rebound to the
// node type, so the list's nodes never share chunks with a itself.
func NewWith[T any](a alloc.Allocator[T]) *List[T] {
	return &List[T]{nodes: alloc.Rebind[node[T]](a)}
}

// Of creates a list holding vals in order, backed by the system allocator.
func Of[T any](vals ...T) (*List[T], error) {
	return OfWith(alloc.NewSystem[T](), vals...)
}

// OfWith creates a list holding vals in order, with node storage policy
// taken from a.
func OfWith[T any](a alloc.Allocator[T], vals ...T) (*List[T], error) {
	l := NewWith(a)
	for _, v := range vals {
		if err := l.PushBack(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// PushBack appends a copy of v. On success the length grows by exactly one;
// on failure the list is unchanged.
func (l *List[T]) PushBack(v T) error {
	return l.EmplaceBack(func() (T, error) { return v, nil })
}

// EmplaceBack appends the element produced by build, constructing it
// directly into freshly allocated node storage. If build fails, the node
// storage is returned to the allocator before the error is propagated, so
// a failed emplace leaves the list exactly as it was.
func (l *List[T]) EmplaceBack(build func() (T, error)) error {
	s, err := l.nodes.Allocate(1)
	if err != nil {
		return err
	}
	v, err := build()
	if err != nil {
		l.nodes.Deallocate(s)
		return err
	}
	n := &s[0]
	l.nodes.Construct(n, node[T]{value: v})
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return nil
}

// Clear destroys and returns every node from head to tail in link order,
// then resets the list to empty. Clearing an empty list is a no-op.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.nodes.Destroy(n)
		l.nodes.Deallocate(unsafe.Slice(n, 1))
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Clone returns an independent deep copy: every element is appended to the
// copy in original order. The copy's nodes come from a fresh allocator with
// the same policy as the source's, never from the source's own instance
// (allocator equality is identity, so sharing would invisibly couple the
// two lists' chunk lifetimes).
func (l *List[T]) Clone() (*List[T], error) {
	out := &List[T]{nodes: alloc.Rebind[node[T]](l.nodes)}
	for n := l.head; n != nil; n = n.next {
		if err := out.PushBack(n.value); err != nil {
			out.Clear()
			return nil, err
		}
	}
	return out, nil
}

// Take transfers src's elements and allocator into l in O(1), clearing l's
// previous contents first. src is left valid and empty, with a fresh
// allocator of its former policy. Taking from itself is a no-op.
func (l *List[T]) Take(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head, l.tail, l.size, l.nodes = src.head, src.tail, src.size, src.nodes
	src.head = nil
	src.tail = nil
	src.size = 0
	src.nodes = alloc.Rebind[node[T]](l.nodes)
}

// CopyFrom clears l, adopts src's allocator policy, and deep-copies src's
// elements in order. Copying from itself is a no-op.
func (l *List[T]) CopyFrom(src *List[T]) error {
	if l == src {
		return nil
	}
	l.Clear()
	l.nodes = alloc.Rebind[node[T]](src.nodes)
	for n := src.head; n != nil; n = n.next {
		if err := l.PushBack(n.value); err != nil {
			return err
		}
	}
	return nil
}
