package memtable

import (
	"bytes"
	"encoding/binary"

	"Ordo/pkg/ordlist"
)

/*
if k1 < k2,  ret < 0 (-1)
if k1 == k2, ret == 0
if k1 > k2,  0 < ret (+1)
*/

type Compare func(key1, key2 []byte) int

// Memtable is an in-memory write buffer: encoded entries sorted by
// internal key in an ordered list. It inherits the list's concurrency
// contract: one writing goroutine (Put/Delete), any number of concurrent
// readers (Get, Iterator). Nothing is ever removed; deletes are
// tombstone entries shadowing older values.
type Memtable struct {
	table          *ordlist.OrderedList[[]byte]
	ref            int
	allocated      uint64
	userKeyCompare Compare
}

func New(cmp Compare) *Memtable {
	mtable := &Memtable{}
	mtable.userKeyCompare = cmp
	if mtable.userKeyCompare == nil {
		mtable.userKeyCompare = bytes.Compare
	}
	mtable.table = ordlist.New(mtable.entryCompare)
	return mtable
}

func (t *Memtable) Ref() {
	t.ref++
}

func (t *Memtable) Unref() {
	t.ref--
}

// entries order ascending by user key, then descending by sequence, so
// the freshest entry for a key is the first one at or after the lookup
// position.
func (t *Memtable) entryCompare(k1, k2 []byte) int {
	entry1 := DecodeEntry(k1)
	entry2 := DecodeEntry(k2)
	if w := t.userKeyCompare(entry1.UserKey(), entry2.UserKey()); w != 0 {
		return w
	}
	seq1, seq2 := entry1.Sequence(), entry2.Sequence()
	switch {
	case seq1 < seq2:
		return 1
	case seq2 < seq1:
		return -1
	}
	return 0
}

// Get returns the value of lkey.Key as of snapshot lkey.Sequence, and
// false when the key is absent or its freshest entry is a tombstone.
func (t *Memtable) Get(lkey LookupKey) ([]byte, bool) {
	mkey := EncodeMemtableKey(lkey.Key, lkey.Sequence, KTypeValue)
	// FindLessThan lands on the sentinel for an empty table or when mkey
	// sorts first; Next is then the candidate entry either way.
	x := t.table.FindLessThan(mkey).Next()
	if x == nil {
		return nil, false
	}

	entry := DecodeEntry(x.Key())
	if t.userKeyCompare(entry.UserKey(), lkey.Key) != 0 {
		return nil, false
	}

	switch entry.ValueType() {
	case KTypeDelete:
		return nil, false
	case KTypeValue:
		return entry.Value(), true
	}
	return nil, false
}

// Put makes an entry from (seq, vtype, key, value) and stores it.
// Writing the same (key, seq) pair twice returns ordlist.ErrKeyExists.
func (t *Memtable) Put(seq uint64, vtype ValueType, key []byte, value []byte) error {
	mkey := EncodeMemtableKey(key, seq, vtype)
	valLen := len(value)
	varintLen := VarintLen(uint64(valLen))
	mkeyLen := len(mkey)

	entry := make([]byte, mkeyLen+varintLen+valLen)
	offset := 0
	// put memtable key
	copy(entry, mkey)
	offset += mkeyLen

	// put value len, unsigned varint so the width matches VarintLen
	binary.PutUvarint(entry[mkeyLen:], uint64(valLen))
	offset += varintLen

	// put value
	copy(entry[offset:], value)
	offset += valLen

	if err := t.table.Insert(entry); err != nil {
		return err
	}
	t.allocated += uint64(offset)
	return nil
}

// Delete writes a tombstone for key at seq. Older values stay reachable
// through lower-sequence lookups.
func (t *Memtable) Delete(seq uint64, key []byte) error {
	return t.Put(seq, KTypeDelete, key, nil)
}

func (t *Memtable) MemoryUsage() uint64 {
	return t.allocated
}
