package ordlist

import (
	"testing"

	"gotest.tools/assert"
)

func TestIteratorSeek(t *testing.T) {
	l := New(Compare)
	assert.NilError(t, l.Insert(5))

	it := l.Iterator()
	it.Seek(5)
	assert.Assert(t, it.Valid())
	assert.Assert(t, it.Key() == 5)

	// 5 is the maximum, nothing at or above 6
	it.Seek(6)
	assert.Assert(t, it.Valid() == false)

	it.Seek(4)
	assert.Assert(t, it.Valid())
	assert.Assert(t, it.Key() == 5)
}

func TestIteratorForwardBackwardSymmetry(t *testing.T) {
	l := New(Compare)
	for _, k := range []int{342, 413, 4552, 65, 512, 1, 31435} {
		assert.NilError(t, l.Insert(k))
	}

	forward := []int{}
	it := l.Iterator()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		forward = append(forward, it.Key())
	}

	backward := []int{}
	for it.SeekToLast(); it.Valid(); it.Prev() {
		backward = append(backward, it.Key())
	}

	assert.Assert(t, len(forward) == len(backward))
	for i := range forward {
		assert.Assert(t, forward[i] == backward[len(backward)-1-i])
	}
}

func TestIteratorPrevAtMinimum(t *testing.T) {
	l := New(Compare)
	assert.NilError(t, l.Insert(1))
	assert.NilError(t, l.Insert(2))

	it := l.Iterator()
	it.SeekToFirst()
	assert.Assert(t, it.Key() == 1)
	it.Prev()
	assert.Assert(t, it.Valid() == false)
}

func TestIteratorEqual(t *testing.T) {
	l := New(Compare)
	assert.NilError(t, l.Insert(1))
	assert.NilError(t, l.Insert(2))

	a := l.Iterator()
	b := l.Iterator()
	a.SeekToFirst()
	b.SeekToFirst()
	assert.Assert(t, a.Equal(b))

	a.Next()
	assert.Assert(t, a.Equal(b) == false)

	// both past the end: invalid iterators compare equal
	a.Next()
	b.Next()
	b.Next()
	assert.Assert(t, a.Valid() == false)
	assert.Assert(t, b.Valid() == false)
	assert.Assert(t, a.Equal(b))
}

func TestIteratorKeyPanicsWhenInvalid(t *testing.T) {
	l := New(Compare)
	it := l.Iterator()
	assert.Assert(t, it.Valid() == false)

	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	it.Key()
}
