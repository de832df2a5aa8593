package blob

// Arena - A bump pointer allocator owning one contiguous byte buffer from which all blobs of one
// hash map are allocated. Blobs are addressed by their byte offset into the buffer rather than by
// pointer, which keeps links valid when the buffer is reallocated on growth. Offset NilOffset is
// reserved and never assigned to a blob.
type Arena struct {
	buf         []byte
	used        int64
	valueLength int64
}

// NewArena - Returns a pointer to a new Arena instance
//   - valueLength is the fixed length of the value part in every blob
//   - initialCapacity is the initial buffer size in bytes, rounded up to minArenaCapacity if lower
func NewArena(valueLength, initialCapacity int64) *Arena {
	if initialCapacity < minArenaCapacity {
		initialCapacity = minArenaCapacity
	}

	return &Arena{
		buf:         make([]byte, initialCapacity),
		used:        arenaReservedLength,
		valueLength: valueLength,
	}
}

// ValueLength - Returns the fixed value length blobs in this arena are created with
func (A *Arena) ValueLength() int64 {
	return A.valueLength
}

// Used - Returns the number of buffer bytes currently in use, including the reserved prefix
func (A *Arena) Used() int64 {
	return A.used
}

// Release - Drops the backing buffer and resets the arena to its empty state.
// Any blob offset handed out before the call is invalid afterwards.
func (A *Arena) Release() {
	A.buf = nil
	A.used = 0
}

// alloc - Reserves n bytes in the buffer and returns the offset to the reserved region.
// The buffer grows by doubling until the region fits, preserving all existing content.
func (A *Arena) alloc(n int64) (offset int64) {
	if A.used+n > int64(len(A.buf)) {
		newSize := int64(len(A.buf))
		if newSize < minArenaCapacity {
			newSize = minArenaCapacity
		}
		for A.used+n > newSize {
			newSize *= 2
		}

		newBuf := make([]byte, newSize)
		copy(newBuf, A.buf[:A.used])
		A.buf = newBuf
	}

	offset = A.used
	A.used += n

	return
}
