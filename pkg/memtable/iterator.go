package memtable

import "Ordo/pkg/ordlist"

// Iterator walks entries in internal-key order: ascending by user key,
// newest sequence first within one user key. Safe to use concurrently
// with the single writing goroutine.
type Iterator struct {
	iter *ordlist.Iterator[[]byte]
}

// Iterator returns a cursor positioned at the first entry.
func (t *Memtable) Iterator() *Iterator {
	it := t.table.Iterator()
	it.SeekToFirst()
	return &Iterator{iter: it}
}

func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

func (it *Iterator) Next() {
	it.iter.Next()
}

// Seek positions at the first entry for userKey visible at snapshot seq.
func (it *Iterator) Seek(userKey []byte, seq uint64) {
	it.iter.Seek(EncodeMemtableKey(userKey, seq, KTypeValue))
}

// Entry returns the decoded entry at the current position.
// REQUIRES: Valid()
func (it *Iterator) Entry() Entry {
	return DecodeEntry(it.iter.Key())
}

// UserKey returns the user key at the current position.
// REQUIRES: Valid()
func (it *Iterator) UserKey() []byte {
	return it.Entry().UserKey()
}

// Value returns the value at the current position; nil for tombstones.
// REQUIRES: Valid()
func (it *Iterator) Value() []byte {
	return it.Entry().Value()
}
