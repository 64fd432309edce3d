package memtable

import (
	"bytes"
	"fmt"
	"testing"

	"Ordo/pkg/ordlist"

	"gotest.tools/assert"
)

func TestMemtable(t *testing.T) {
	mtable := New(nil)
	keyone := []byte("hi")
	valone := []byte("jo")
	keytwo := []byte("bug-less")
	valtwo := []byte("long-time-ago")
	seq := uint64(1)
	assert.NilError(t, mtable.Put(seq, KTypeValue, keyone, valone)) // seq 1
	seq++
	assert.NilError(t, mtable.Put(seq, KTypeDelete, keyone, nil)) // seq 2
	seq++

	lk := LookupKey{}

	lk.Sequence = 1
	lk.Key = keyone
	fval, found := mtable.Get(lk)
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, valone) == 0)

	// the tombstone at seq 2 shadows the value
	lk.Sequence = 2
	fval, found = mtable.Get(lk)
	assert.Assert(t, !found)
	assert.Assert(t, fval == nil)

	// put new
	assert.NilError(t, mtable.Put(seq, KTypeValue, keyone, valone)) // seq 3
	seq++
	assert.NilError(t, mtable.Put(seq, KTypeValue, keytwo, valtwo)) // seq 4
	seq++

	lk.Sequence = seq

	lk.Key = keyone
	fval, found = mtable.Get(lk)
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, valone) == 0)

	lk.Key = keytwo
	fval, found = mtable.Get(lk)
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, valtwo) == 0)

	// change value of keyone to valtwo
	assert.NilError(t, mtable.Put(seq, KTypeValue, keyone, valtwo))
	seq++

	lk.Key = keyone
	lk.Sequence = seq
	fval, found = mtable.Get(lk)
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, valtwo) == 0)

	// snapshot read still sees the old value
	lk.Sequence = 3
	fval, found = mtable.Get(lk)
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, valone) == 0)
}

func TestMemtableGetEmpty(t *testing.T) {
	mtable := New(nil)

	lk := LookupKey{Key: []byte("nothing"), Sequence: 42}
	fval, found := mtable.Get(lk)
	assert.Assert(t, !found)
	assert.Assert(t, fval == nil)
}

func TestMemtablePutSameKeySeq(t *testing.T) {
	mtable := New(nil)
	key := []byte("dup")

	assert.NilError(t, mtable.Put(1, KTypeValue, key, []byte("a")))
	err := mtable.Put(1, KTypeValue, key, []byte("b"))
	assert.Assert(t, err == ordlist.ErrKeyExists)
}

func TestMemtableDelete(t *testing.T) {
	mtable := New(nil)
	key := []byte("gone")

	assert.NilError(t, mtable.Put(1, KTypeValue, key, []byte("v")))
	assert.NilError(t, mtable.Delete(2, key))

	_, found := mtable.Get(LookupKey{Key: key, Sequence: 3})
	assert.Assert(t, !found)

	fval, found := mtable.Get(LookupKey{Key: key, Sequence: 1})
	assert.Assert(t, found)
	assert.Assert(t, bytes.Compare(fval, []byte("v")) == 0)
}

// Values whose length needs a multi-byte varint must come back intact;
// a width mismatch between sizing and encoding clips the payload.
func TestMemtableLargeValueRoundTrip(t *testing.T) {
	mtable := New(nil)

	for i, vlen := range []int{63, 64, 65, 127, 128, 5000} {
		seq := uint64(i + 1)
		key := []byte(fmt.Sprintf("value-%d", vlen))
		value := bytes.Repeat([]byte{byte('a' + i)}, vlen)
		assert.NilError(t, mtable.Put(seq, KTypeValue, key, value))

		fval, found := mtable.Get(LookupKey{Key: key, Sequence: seq})
		assert.Assert(t, found)
		assert.Assert(t, len(fval) == vlen)
		assert.Assert(t, bytes.Equal(fval, value))
	}
}

// User keys long enough to widen the internal-key length varint must
// still decode cleanly on the lookup path.
func TestMemtableLongUserKeyRoundTrip(t *testing.T) {
	mtable := New(nil)

	for i, klen := range []int{55, 56, 57, 119, 120, 121, 300} {
		seq := uint64(i + 1)
		key := bytes.Repeat([]byte{'k'}, klen)
		value := []byte(fmt.Sprintf("v-%d", klen))
		assert.NilError(t, mtable.Put(seq, KTypeValue, key, value))

		fval, found := mtable.Get(LookupKey{Key: key, Sequence: seq})
		assert.Assert(t, found)
		assert.Assert(t, bytes.Equal(fval, value))
	}
}

func TestMemtableIterator(t *testing.T) {
	mtable := New(nil)
	assert.NilError(t, mtable.Put(1, KTypeValue, []byte("b"), []byte("v1")))
	assert.NilError(t, mtable.Put(2, KTypeValue, []byte("a"), []byte("v2")))
	assert.NilError(t, mtable.Put(3, KTypeValue, []byte("a"), []byte("v3")))

	// ascending user key, newest sequence first within one key
	it := mtable.Iterator()
	assert.Assert(t, it.Valid())
	assert.Assert(t, bytes.Compare(it.UserKey(), []byte("a")) == 0)
	assert.Assert(t, it.Entry().Sequence() == 3)
	assert.Assert(t, bytes.Compare(it.Value(), []byte("v3")) == 0)

	it.Next()
	assert.Assert(t, it.Valid())
	assert.Assert(t, bytes.Compare(it.UserKey(), []byte("a")) == 0)
	assert.Assert(t, it.Entry().Sequence() == 2)

	it.Next()
	assert.Assert(t, it.Valid())
	assert.Assert(t, bytes.Compare(it.UserKey(), []byte("b")) == 0)
	assert.Assert(t, it.Entry().Sequence() == 1)

	it.Next()
	assert.Assert(t, it.Valid() == false)
}

func TestMemtableIteratorSeek(t *testing.T) {
	mtable := New(nil)
	assert.NilError(t, mtable.Put(1, KTypeValue, []byte("a"), []byte("old")))
	assert.NilError(t, mtable.Put(5, KTypeValue, []byte("a"), []byte("new")))

	it := mtable.Iterator()
	it.Seek([]byte("a"), 3)
	assert.Assert(t, it.Valid())
	// only the seq<=3 entry is visible at this snapshot
	assert.Assert(t, it.Entry().Sequence() == 1)
	assert.Assert(t, bytes.Compare(it.Value(), []byte("old")) == 0)
}

func BenchmarkMemtablePut(b *testing.B) {
	key := []byte("im key")
	value := []byte("im value")

	mtable := New(nil)
	for i := 0; i < b.N; i++ {
		_ = mtable.Put(uint64(i), KTypeValue, key, value)
	}
	allocatedKB := mtable.allocated / 1024
	fmt.Printf("memtable memory usage: %d KB, b.N=%d\n", allocatedKB, b.N)
}

func BenchmarkMemtablePutGet(b *testing.B) {
	key := []byte("im key")
	value := []byte("im value")

	lk := LookupKey{}
	lk.Key = key

	mtable := New(nil)
	for i := 0; i < b.N; i++ {
		lk.Sequence = uint64(i)
		_ = mtable.Put(uint64(i), KTypeValue, key, value)
	}
	for i := 0; i < b.N; i++ {
		lk.Sequence = uint64(i)
		mtable.Get(lk)
	}
}
