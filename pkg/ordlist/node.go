package ordlist

import "sync/atomic"

// Node is one cell of the ordered chain. The key is immutable after
// construction; the successor link is the only mutable field and is only
// ever written by the single inserting goroutine.
type Node[K any] struct {
	key  K
	next atomic.Pointer[Node[K]]
}

func NewNode[K any](key K) *Node[K] {
	x := &Node[K]{}
	x.key = key
	return x
}

func (n *Node[K]) Key() K {
	return n.key
}

// Next returns the successor with acquire semantics: a reader that
// observes a node published by SetNext also observes the node fully
// constructed, including its own forward link.
func (n *Node[K]) Next() *Node[K] {
	return n.next.Load()
}

// NoBarrierNext is the writer-side read of the successor. sync/atomic has
// no relaxed ordering, so this is the same load as Next; it stays a
// separate method to mark call sites where the caller is the sole writer
// and no cross-goroutine synchronization is required.
func (n *Node[K]) NoBarrierNext() *Node[K] {
	return n.next.Load()
}

// SetNext publishes x as the successor with release semantics. This is
// the publication point: once it returns, any goroutine reading through
// Next sees x together with everything stored in it beforehand.
func (n *Node[K]) SetNext(x *Node[K]) {
	n.next.Store(x)
}

// NoBarrierSetNext initializes the link of a node that has not been
// published into the chain yet, so no other goroutine can observe it.
func (n *Node[K]) NoBarrierSetNext(x *Node[K]) {
	n.next.Store(x)
}
