package ordlist

/*
if k1 < k2,  ret < 0 (-1)
if k1 == k2, ret == 0
if k1 > k2,  0 < ret (+1)
*/

type Comparator[K any] func(k1, k2 K) int

// OrderedList is a sorted singly linked chain behind a sentinel head
// node. The chain reachable from the head is strictly ascending by the
// comparator and holds no duplicates; nodes are never unlinked or freed
// while the list is alive.
//
// Concurrency discipline is single-writer / multi-reader: at most one
// goroutine may call Insert at a time (enforced by the caller), while any
// number of goroutines run Contains, Seek or full iterations against it
// without extra locking. Readers synchronize with the writer only through
// the release-store in Node.SetNext.
type OrderedList[K any] struct {
	head    *Node[K]
	compare Comparator[K]
}

// New creates an empty list. The comparator must be a side-effect-free
// total order and stays fixed for the list's lifetime.
func New[K any](compare func(k1, k2 K) int) *OrderedList[K] {
	l := &OrderedList[K]{}
	var sentinel K
	l.head = NewNode(sentinel)
	l.compare = compare
	return l
}

func (l *OrderedList[K]) equal(a, b K) bool {
	return l.compare(a, b) == 0
}

func (l *OrderedList[K]) keyIsAfterNode(key K, n *Node[K]) bool {
	return n != nil && l.compare(n.key, key) < 0
}

// findGreaterOrEqual returns the first node whose key is >= key (nil if
// none) and the last node before that position. prev is the sentinel
// head when key sorts before everything stored.
func (l *OrderedList[K]) findGreaterOrEqual(key K) (x, prev *Node[K]) {
	prev = l.head
	x = prev.Next()
	for l.keyIsAfterNode(key, x) {
		prev = x
		x = x.Next()
	}
	return x, prev
}

// FindGreaterOrEqual returns the first node whose key is >= key, or nil
// if every stored key is smaller.
func (l *OrderedList[K]) FindGreaterOrEqual(key K) *Node[K] {
	x, _ := l.findGreaterOrEqual(key)
	return x
}

// FindLessThan returns the last node whose key is strictly < key. When
// key is <= every stored key, or the list is empty, it returns the
// sentinel head rather than touching a nil successor; the sentinel never
// carries a key, so callers detect "no predecessor" by comparing against
// the head (Iterator.Prev does) or by calling Next on the result.
func (l *OrderedList[K]) FindLessThan(key K) *Node[K] {
	x := l.head
	for {
		next := x.Next()
		if next == nil || 0 <= l.compare(next.key, key) {
			return x
		}
		x = next
	}
}

// FindLast returns the final node of the chain, or the sentinel head
// when the list is empty.
func (l *OrderedList[K]) FindLast() *Node[K] {
	x := l.head
	for {
		next := x.Next()
		if next == nil {
			return x
		}
		x = next
	}
}

// Insert links key into its sorted position. Only one goroutine may be
// inside Insert at a time. A key already stored (by comparator) is
// rejected with ErrKeyExists and the chain is left untouched.
func (l *OrderedList[K]) Insert(key K) error {
	x, prev := l.findGreaterOrEqual(key)
	if x != nil && l.equal(key, x.key) {
		return ErrKeyExists
	}

	x = NewNode(key)
	// Set the new node's own link before publication. A reader racing
	// with this Insert either misses x entirely or, once prev.SetNext
	// lands, observes x with a valid successor; never a half-linked node.
	x.NoBarrierSetNext(prev.NoBarrierNext())
	prev.SetNext(x)
	return nil
}

// Contains reports whether a key equal to key (by comparator) is stored.
// Safe to call concurrently with the single writer.
func (l *OrderedList[K]) Contains(key K) bool {
	x, _ := l.findGreaterOrEqual(key)
	return x != nil && l.equal(key, x.key)
}

// Iterator returns a cursor positioned at the first key, invalid when
// the list is empty.
func (l *OrderedList[K]) Iterator() *Iterator[K] {
	it := &Iterator[K]{}
	it.list = l
	it.node = l.head.Next()
	return it
}
