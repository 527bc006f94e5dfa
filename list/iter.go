package list

import "iter"

// Iterator is a forward-only cursor over a list. The zero position is
// before the first element; Next advances and reports whether a current
// element exists. Re-invoking Iter on the list restarts traversal.
//
// Calling Value or Ptr before the first Next, or after Next returned
// false, dereferences the end marker and panics.
type Iterator[T any] struct {
	cur  *node[T]
	next *node[T]
}

// Iter returns a cursor positioned before the first element.
func (l *List[T]) Iter() Iterator[T] {
	return Iterator[T]{next: l.head}
}

// Next advances to the next element, reporting false at the end.
func (it *Iterator[T]) Next() bool {
	it.cur = it.next
	if it.cur == nil {
		return false
	}
	it.next = it.cur.next
	return true
}

// Value returns the current element.
func (it *Iterator[T]) Value() T { return it.cur.value }

// Ptr returns the address of the current element, through which it can be
// mutated in place.
func (it *Iterator[T]) Ptr() *T { return &it.cur.value }

// All returns a mutable traversal: element pointers in link order from head
// to tail. The sequence is single-pass but can be restarted by ranging
// again.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Values returns a read-only traversal: element copies in link order. It is
// the widening of All — derived from the mutable form, never the reverse.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range l.All() {
			if !yield(*p) {
				return
			}
		}
	}
}
