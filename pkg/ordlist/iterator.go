package ordlist

import "Ordo/pkg/util"

// Iterator is a cursor over one list. It keeps no snapshot and no
// prev/next cache: every move re-reads the live chain, so a key inserted
// while the iteration is in flight may or may not be visited depending on
// where the writer landed it. An invalid iterator stands for both
// "before first" and "past last"; the two are indistinguishable.
type Iterator[K any] struct {
	list *OrderedList[K]
	node *Node[K]
}

// Valid reports whether the iterator is positioned at a node.
func (it *Iterator[K]) Valid() bool {
	return it.node != nil
}

// Key returns the key at the current position.
// REQUIRES: Valid()
func (it *Iterator[K]) Key() K {
	util.Assert(it.Valid())
	return it.node.key
}

// Next advances to the successor; invalid at end of chain.
// REQUIRES: Valid()
func (it *Iterator[K]) Next() {
	util.Assert(it.Valid())
	it.node = it.node.Next()
}

// Prev moves to the predecessor by rescanning from the head, linear in
// the chain length; invalid when the current key is the smallest.
// REQUIRES: Valid()
func (it *Iterator[K]) Prev() {
	util.Assert(it.Valid())
	it.node = it.list.FindLessThan(it.node.key)
	if it.node == it.list.head {
		it.node = nil
	}
}

// Seek positions at the first key >= target; invalid if none.
func (it *Iterator[K]) Seek(target K) {
	it.node = it.list.FindGreaterOrEqual(target)
}

// SeekToFirst positions at the smallest key; invalid iff the list is
// empty.
func (it *Iterator[K]) SeekToFirst() {
	it.node = it.list.head.Next()
}

// SeekToLast positions at the largest key; invalid iff the list is
// empty.
func (it *Iterator[K]) SeekToLast() {
	it.node = it.list.FindLast()
	if it.node == it.list.head {
		it.node = nil
	}
}

// Equal reports whether both cursors reference the same node. Two
// invalid iterators compare equal, collapsing before-first and past-last
// into one state.
func (it *Iterator[K]) Equal(other *Iterator[K]) bool {
	return it.node == other.node
}
