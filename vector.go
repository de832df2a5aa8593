package blobcontainers

import (
	"fmt"
)

// defaultVectorCapacity - Used when the given capacityHint is 0 (zero)
const defaultVectorCapacity int64 = 16

// Vector - A dynamically growing array of fixed size raw elements kept in one contiguous, exclusively
// owned byte buffer. The element at index i occupies the elementLength bytes starting at byte
// offset i * elementLength. The Vector never knows the type of what it stores, it only moves bytes.
type Vector struct {
	data          []byte
	size          int64
	capacity      int64
	elementLength int64
	cleanup       CleanupFunc
}

// NewVector - Returns a new Vector prepared to hold elements of a fixed byte length.
//   - elementLength is the number of bytes every element occupies, it must be higher than 0 (zero)
//   - capacityHint is the initial number of element slots to allocate, 0 (zero) means use an internal default
//   - cleanup is an optional callback invoked on an element right before it is overwritten or the vector is disposed, nil means no cleanup
//
// It returns:
//   - vector is a pointer to a Vector struct
//   - err is a standard Go error which should be nil if everything went ok
func NewVector(elementLength, capacityHint int64, cleanup CleanupFunc) (vector *Vector, err error) {
	// Check if elementLength is valid
	if elementLength <= 0 {
		err = fmt.Errorf("elementLength must be a positive value higher than 0 (zero)")
		return
	}

	// Check if capacityHint is valid, zero is handled with the internal default
	if capacityHint < 0 {
		err = fmt.Errorf("capacityHint must not be negative")
		return
	}
	if capacityHint == 0 {
		capacityHint = defaultVectorCapacity
	}

	vector = &Vector{
		data:          make([]byte, capacityHint*elementLength),
		capacity:      capacityHint,
		elementLength: elementLength,
		cleanup:       cleanup,
	}

	return
}

// Count - Returns the number of elements currently stored in the vector
func (V *Vector) Count() int64 {
	return V.size
}

// ElementLength - Returns the fixed element length the vector was created with
func (V *Vector) ElementLength() int64 {
	return V.elementLength
}

// Dispose - Invokes the cleanup callback, if one was given, once per stored element in index order
// and then releases the backing buffer. The vector must not be used after this call, except for
// calling Dispose again which is a no-op.
func (V *Vector) Dispose() {
	if V.cleanup != nil {
		for i := int64(0); i < V.size; i++ {
			V.cleanup(V.nth(i))
		}
	}

	V.data = nil
	V.size = 0
	V.capacity = 0
	V.cleanup = nil
}

// nth - Returns the buffer slice holding the element at index n
func (V *Vector) nth(n int64) []byte {
	return V.data[n*V.elementLength : (n+1)*V.elementLength]
}

// expand - Doubles the capacity of the backing buffer, preserving all stored elements
func (V *Vector) expand() {
	V.capacity *= 2
	newData := make([]byte, V.capacity*V.elementLength)
	copy(newData, V.data)
	V.data = newData
}
