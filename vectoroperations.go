package blobcontainers

import (
	"fmt"
	"sort"

	"github.com/gostonefire/blobcontainers/crt"
)

// Get - Returns the element stored at the given index.
//   - index is the position of the element, it must be within 0 and Count() - 1
//
// It returns:
//   - value is a slice aliasing the element bytes within the vector buffer, hence it is valid only until the next mutating operation on the vector
//   - err is either of type crt.NoElementFound if the index is out of range, or a standard error
func (V *Vector) Get(index int64) (value []byte, err error) {
	if index < 0 || index >= V.size {
		err = crt.NoElementFound{}
		return
	}

	value = V.nth(index)

	return
}

// Insert - Copies the given element into the vector at the given index, shifting all elements from
// that index and onward one slot to the right. Inserting at index Count() behaves as an append.
// If the vector is at full capacity it first doubles its capacity.
//   - value is the element to insert, its length must equal the element length given in the call to NewVector
//   - index is the position to insert at, it must be within 0 and Count()
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func (V *Vector) Insert(value []byte, index int64) (err error) {
	// Check validity of the value
	if int64(len(value)) != V.elementLength {
		err = fmt.Errorf("wrong length of value, should be %d", V.elementLength)
		return
	}

	// Check validity of the index
	if index < 0 || index > V.size {
		err = fmt.Errorf("index out of range, should be within 0 and %d", V.size)
		return
	}

	if V.size == V.capacity {
		V.expand()
	}

	// The shift source and destination ranges overlap, Go copy handles that the memmove way
	copy(V.data[(index+1)*V.elementLength:(V.size+1)*V.elementLength], V.data[index*V.elementLength:V.size*V.elementLength])
	copy(V.nth(index), value)

	V.size++

	return
}

// Append - Copies the given element to the end of the vector, doubling capacity first if needed.
//   - value is the element to append, its length must equal the element length given in the call to NewVector
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func (V *Vector) Append(value []byte) (err error) {
	return V.Insert(value, V.size)
}

// Replace - Overwrites the element at the given index with the given element. If a cleanup callback
// was given it is first invoked on the element being overwritten.
//   - value is the new element, its length must equal the element length given in the call to NewVector
//   - index is the position of the element to overwrite, it must be within 0 and Count() - 1
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func (V *Vector) Replace(value []byte, index int64) (err error) {
	// Check validity of the value
	if int64(len(value)) != V.elementLength {
		err = fmt.Errorf("wrong length of value, should be %d", V.elementLength)
		return
	}

	// Check validity of the index
	if index < 0 || index >= V.size {
		err = fmt.Errorf("index out of range, should be within 0 and %d", V.size-1)
		return
	}

	if V.cleanup != nil {
		V.cleanup(V.nth(index))
	}
	copy(V.nth(index), value)

	return
}

// Remove - Removes the element at the given index, shifting all elements after it one slot to the
// left. If a cleanup callback was given it is first invoked on the element being removed.
//   - index is the position of the element to remove, it must be within 0 and Count() - 1
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func (V *Vector) Remove(index int64) (err error) {
	// Check validity of the index
	if index < 0 || index >= V.size {
		err = fmt.Errorf("index out of range, should be within 0 and %d", V.size-1)
		return
	}

	if V.cleanup != nil {
		V.cleanup(V.nth(index))
	}

	copy(V.data[index*V.elementLength:], V.data[(index+1)*V.elementLength:V.size*V.elementLength])
	V.size--

	return
}

// Search - Returns the index of the first element in the range from fromIndex to the end of the
// vector that matches the given key according to the comparator.
//   - key is the element to search for, its length must equal the element length given in the call to NewVector
//   - compare is a three-way comparator over two elements
//   - fromIndex is the position to start the search at, it must be within 0 and Count()
//   - sorted set to true performs a binary search over the range, which then must actually be sorted per the comparator, false performs a linear scan
//
// It returns:
//   - index is the position of the matching element
//   - err is either of type crt.NoElementFound if no element matches, or a standard error
func (V *Vector) Search(key []byte, compare CompareFunc, fromIndex int64, sorted bool) (index int64, err error) {
	// Check validity of the key
	if int64(len(key)) != V.elementLength {
		err = fmt.Errorf("wrong length of key, should be %d", V.elementLength)
		return
	}

	// Check validity of the start index
	if fromIndex < 0 || fromIndex > V.size {
		err = fmt.Errorf("fromIndex out of range, should be within 0 and %d", V.size)
		return
	}

	if sorted {
		n := int(V.size - fromIndex)
		i := sort.Search(n, func(i int) bool {
			return compare(V.nth(fromIndex+int64(i)), key) >= 0
		})
		if i < n && compare(V.nth(fromIndex+int64(i)), key) == 0 {
			index = fromIndex + int64(i)
			return
		}
	} else {
		for i := fromIndex; i < V.size; i++ {
			if compare(V.nth(i), key) == 0 {
				index = i
				return
			}
		}
	}

	err = crt.NoElementFound{}

	return
}

// Sort - Sorts all stored elements in place according to the comparator. The sort is not guaranteed
// to be stable.
//   - compare is a three-way comparator over two elements
func (V *Vector) Sort(compare CompareFunc) {
	sort.Sort(&vectorSorter{vector: V, compare: compare, scratch: make([]byte, V.elementLength)})
}

// vectorSorter - Adapts the vector to sort.Interface, swapping whole elements via a scratch buffer
type vectorSorter struct {
	vector  *Vector
	compare CompareFunc
	scratch []byte
}

func (S *vectorSorter) Len() int {
	return int(S.vector.size)
}

func (S *vectorSorter) Less(i, j int) bool {
	return S.compare(S.vector.nth(int64(i)), S.vector.nth(int64(j))) < 0
}

func (S *vectorSorter) Swap(i, j int) {
	a := S.vector.nth(int64(i))
	b := S.vector.nth(int64(j))
	copy(S.scratch, a)
	copy(a, b)
	copy(b, S.scratch)
}
