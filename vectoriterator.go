package blobcontainers

import (
	"github.com/gostonefire/blobcontainers/crt"
)

// VectorElements - Is used to iterate over the elements of a vector one by one, front to back.
// The cursor is only valid as long as no mutating operation is performed on the vector, an
// insert or a dispose in between calls leaves the cursor undefined.
type VectorElements struct {
	vector *Vector
	index  int64
}

// Elements - Returns a cursor over all stored elements, positioned before the first one
func (V *Vector) Elements() *VectorElements {
	return &VectorElements{vector: V}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (E *VectorElements) HasNext() bool {
	return E.index < E.vector.size
}

// Next - Returns the next element.
// It returns:
//   - value is a slice aliasing the element bytes within the vector buffer, valid only until the next mutating operation on the vector
//   - err is an error of type crt.NoElementFound if there are no more elements
func (E *VectorElements) Next() (value []byte, err error) {
	if E.index >= E.vector.size {
		err = crt.NoElementFound{}
		return
	}

	value = E.vector.nth(E.index)
	E.index++

	return
}
