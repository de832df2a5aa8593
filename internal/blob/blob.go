package blob

import (
	"bytes"
	"encoding/binary"

	"github.com/gostonefire/blobcontainers/internal/utils"
)

// A blob is one hash map entry packed contiguously in the arena buffer:
//
//	| next blob offset (8 bytes) | key bytes | terminator (1 byte) | value bytes (valueLength) |
//
// The key and value addresses are derived from the blob offset with plain offset arithmetic,
// which is the whole point of the layout - one allocation per entry, no per-field bookkeeping.

// NewBlob - Allocates a new blob in the arena and packs the key and value into it.
// The next link of the new blob is set to NilOffset.
//   - key is the key to store, it must not contain the terminator byte
//   - value is the value to store, it must be of length valueLength as given when creating the arena
//
// It returns:
//   - offset which addresses the new blob in the arena
func (A *Arena) NewBlob(key string, value []byte) (offset int64) {
	offset = A.alloc(NextLength + int64(len(key)) + KeyTerminatorLength + A.valueLength)

	binary.LittleEndian.PutUint64(A.buf[offset:], uint64(NilOffset))

	keyOffset := offset + NextLength
	copy(A.buf[keyOffset:], key)
	A.buf[keyOffset+int64(len(key))] = keyTerminator

	copy(A.buf[keyOffset+int64(len(key))+KeyTerminatorLength:], value)

	return
}

// Next - Returns the offset of the next blob in the chain, or NilOffset if the given blob is the last one
func (A *Arena) Next(blobOffset int64) int64 {
	return int64(binary.LittleEndian.Uint64(A.buf[blobOffset:]))
}

// SetNext - Sets the next link of the given blob
func (A *Arena) SetNext(blobOffset, nextOffset int64) {
	binary.LittleEndian.PutUint64(A.buf[blobOffset:], uint64(nextOffset))
}

// Key - Returns the key stored in the given blob
func (A *Arena) Key(blobOffset int64) string {
	keyOffset := blobOffset + NextLength
	end := bytes.IndexByte(A.buf[keyOffset:A.used], keyTerminator)

	return string(A.buf[keyOffset : keyOffset+int64(end)])
}

// KeyEquals - Returns true if the key stored in the given blob equals the given key.
// The comparison runs directly against the arena buffer, so unlike Key it does not build a new
// string per visited blob, which matters in chain walks.
//   - key must not contain the terminator byte, a key holding one can never have been stored
func (A *Arena) KeyEquals(blobOffset int64, key string) bool {
	keyOffset := blobOffset + NextLength
	end := keyOffset + int64(len(key))
	if end >= A.used || A.buf[end] != keyTerminator {
		return false
	}

	return utils.IsEqual(A.buf[keyOffset:end], []byte(key))
}

// Value - Returns the value stored in the given blob.
// The returned slice aliases the arena buffer, hence it is valid only until the next blob is allocated.
func (A *Arena) Value(blobOffset int64) []byte {
	valueOffset := blobOffset + NextLength + int64(len(A.Key(blobOffset))) + KeyTerminatorLength

	return A.buf[valueOffset : valueOffset+A.valueLength]
}

// SetValue - Overwrites the value part of the given blob in place
func (A *Arena) SetValue(blobOffset int64, value []byte) {
	copy(A.Value(blobOffset), value)
}
