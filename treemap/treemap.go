// Package treemap implements an ordered map keyed by a caller-supplied
// comparison policy, with entry storage delegated to an alloc.Allocator.
// It exists as the associative consumer of the allocator contract: any
// allocator that satisfies the contract can back it, pool or system.
//
// The map is insert-and-replace only; there is no deletion. Paired with
// the pool allocator, which never reclaims sub-chunk space, deletion would
// only flip entries dead without returning memory.
package treemap

import (
	"iter"

	"github.com/lerakirpu/AllocatorLab/alloc"
)

// entry is one tree node: a key/value pair and its subtree links.
type entry[K, V any] struct {
	key   K
	val   V
	left  *entry[K, V]
	right *entry[K, V]
}

// Map is a binary search tree ordered by a Less policy. Not goroutine-safe.
type Map[K, V any] struct {
	root    *entry[K, V]
	less    func(a, b K) bool
	entries alloc.Allocator[entry[K, V]]
	size    int
}

// New creates an empty map ordered by less, backed by the system allocator.
func New[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		less:    less,
		entries: alloc.NewSystem[entry[K, V]](),
	}
}

// NewWith creates an empty map ordered by less, with entry storage policy
// taken from a. The key-typed allocator is rebound to the internal entry
// type, so the map's entries never share chunks with a itself.
func NewWith[K, V any](less func(a, b K) bool, a alloc.Allocator[K]) *Map[K, V] {
	return &Map[K, V]{
		less:    less,
		entries: alloc.Rebind[entry[K, V]](a),
	}
}

// Put inserts k with value v, replacing the value if k is already present.
// Keys compare equal when neither is less than the other.
func (m *Map[K, V]) Put(k K, v V) error {
	link := &m.root
	for *link != nil {
		e := *link
		switch {
		case m.less(k, e.key):
			link = &e.left
		case m.less(e.key, k):
			link = &e.right
		default:
			e.val = v
			return nil
		}
	}
	s, err := m.entries.Allocate(1)
	if err != nil {
		return err
	}
	e := &s[0]
	m.entries.Construct(e, entry[K, V]{key: k, val: v})
	*link = e
	m.size++
	return nil
}

// Get returns the value stored under k and whether k is present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e := m.root
	for e != nil {
		switch {
		case m.less(k, e.key):
			e = e.left
		case m.less(e.key, k):
			e = e.right
		default:
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// All returns the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(m.root, yield)
	}
}

func inorder[K, V any](e *entry[K, V], yield func(K, V) bool) bool {
	if e == nil {
		return true
	}
	return inorder(e.left, yield) && yield(e.key, e.val) && inorder(e.right, yield)
}
