package memtable

import (
	"encoding/binary"

	"Ordo/pkg/util"
)

// entry format:
//                           -------memtable key-------
//    klength  varint32
//                              ----internal key----
//    userkey  char[klength]       <- ukeyOffset
//    tag(sequence<<8|type)  uint64
//                               ----internal key---
//                           --------memtable key-------
//    vlength  varint32            <- valueOffset
//    value    char[vlength]

type ValueType uint8

const (
	KTypeValue  ValueType = 0x01
	KTypeDelete ValueType = 0x02
)

// Entry is a decoded view over one stored buffer; it aliases the buffer,
// it does not copy it.
type Entry struct {
	// value offset
	valueOffs uint32
	// user key offset
	ukeyOffs uint32
	tag      uint64
	buf      []byte
}

func (e Entry) UserKey() []byte {
	return e.buf[e.ukeyOffs : e.valueOffs-8]
}

func (e Entry) InternalKey() []byte {
	return e.buf[e.ukeyOffs:e.valueOffs]
}

func (e Entry) MemtableKey() []byte {
	return e.buf[:e.valueOffs]
}

func (e Entry) Value() []byte {
	if int(e.valueOffs) == len(e.buf) {
		return nil
	}
	_, n := binary.Uvarint(e.buf[e.valueOffs:])
	return e.buf[e.valueOffs+uint32(n):]
}

func (e Entry) ValueType() ValueType {
	return ValueType(e.tag & 0xff)
}

func (e Entry) Sequence() uint64 {
	return e.tag >> 8
}

func DecodeEntry(buf []byte) Entry {
	e := Entry{}
	e.buf = buf
	klen, n := binary.Uvarint(buf)
	util.Assertf(0 < n && int(klen) <= len(buf)-n,
		"malformed entry: klen=%d buflen=%d", klen, len(buf))
	idx := uint32(n)
	e.ukeyOffs = idx
	idx = e.ukeyOffs + uint32(klen) - 8
	e.tag = binary.BigEndian.Uint64(e.buf[idx:])
	idx += 8
	e.valueOffs = idx
	return e
}

func VarintLen(v uint64) int {
	len := 1
	for v >= 128 {
		v >>= 7
		len++
	}
	return len
}

// LookupKey names a user key at a snapshot: Get returns the freshest
// value written at or before Sequence.
type LookupKey struct {
	Key      []byte
	Sequence uint64
}

// EncodeMemtableKey builds the key prefix of an entry: varint length of
// the internal key, the user key, then the sequence/type tag.
func EncodeMemtableKey(uKey []byte, sequence uint64, vtype ValueType) []byte {
	tag := sequence<<8 | uint64(vtype)
	internalKeyLen := uint64(len(uKey) + 8)
	varintLen := VarintLen(internalKeyLen)
	buf := make([]byte, varintLen+int(internalKeyLen))

	binary.PutUvarint(buf, internalKeyLen)
	offset := varintLen
	copy(buf[offset:], uKey)
	offset += int(internalKeyLen) - 8
	binary.BigEndian.PutUint64(buf[offset:], tag)

	return buf
}
