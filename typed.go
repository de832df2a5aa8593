package blobcontainers

import (
	"github.com/gostonefire/blobcontainers/hashfunc"
	"github.com/gostonefire/blobcontainers/serializer"
)

// TypedVector - A generic front over Vector for callers that want a typed API. Values are run
// through the given serializer on the way in and out, the byte level machinery stays internal.
type TypedVector[T any] struct {
	vector *Vector
	ser    serializer.Serializer[T]
}

// NewTypedVector - Returns a new TypedVector over elements of type T.
//   - ser is the fixed size serializer deciding the byte representation of T
//   - capacityHint is the initial number of element slots to allocate, 0 (zero) means use an internal default
//
// It returns:
//   - typedVector is a pointer to a TypedVector struct
//   - err is a standard Go error which should be nil if everything went ok
func NewTypedVector[T any](ser serializer.Serializer[T], capacityHint int64) (typedVector *TypedVector[T], err error) {
	vector, err := NewVector(ser.Size(), capacityHint, nil)
	if err != nil {
		return
	}

	typedVector = &TypedVector[T]{vector: vector, ser: ser}

	return
}

// Count - Returns the number of elements currently stored in the vector
func (T *TypedVector[E]) Count() int64 {
	return T.vector.Count()
}

// Get - Returns the element stored at the given index
func (T *TypedVector[E]) Get(index int64) (value E, err error) {
	raw, err := T.vector.Get(index)
	if err != nil {
		return
	}

	value = T.ser.FromBytes(raw)

	return
}

// Insert - Inserts the given element at the given index, shifting later elements one slot to the right
func (T *TypedVector[E]) Insert(value E, index int64) (err error) {
	return T.vector.Insert(T.ser.ToBytes(value), index)
}

// Append - Appends the given element to the end of the vector
func (T *TypedVector[E]) Append(value E) (err error) {
	return T.vector.Append(T.ser.ToBytes(value))
}

// Replace - Overwrites the element at the given index
func (T *TypedVector[E]) Replace(value E, index int64) (err error) {
	return T.vector.Replace(T.ser.ToBytes(value), index)
}

// Remove - Removes the element at the given index, shifting later elements one slot to the left
func (T *TypedVector[E]) Remove(index int64) (err error) {
	return T.vector.Remove(index)
}

// Search - Returns the index of the first element matching key per the typed comparator, searching
// from fromIndex to the end of the vector, binary when sorted is true and linear otherwise.
// An error of type crt.NoElementFound is returned if no element matches.
func (T *TypedVector[E]) Search(key E, compare func(a, b E) int, fromIndex int64, sorted bool) (index int64, err error) {
	return T.vector.Search(T.ser.ToBytes(key), T.rawCompare(compare), fromIndex, sorted)
}

// Sort - Sorts all stored elements in place per the typed comparator
func (T *TypedVector[E]) Sort(compare func(a, b E) int) {
	T.vector.Sort(T.rawCompare(compare))
}

// Elements - Returns a cursor over the raw elements, see Vector.Elements
func (T *TypedVector[E]) Elements() *VectorElements {
	return T.vector.Elements()
}

// Dispose - Releases the underlying vector
func (T *TypedVector[E]) Dispose() {
	T.vector.Dispose()
}

// rawCompare - Adapts a typed comparator to the raw byte comparator the vector works with
func (T *TypedVector[E]) rawCompare(compare func(a, b E) int) CompareFunc {
	return func(a, b []byte) int {
		return compare(T.ser.FromBytes(a), T.ser.FromBytes(b))
	}
}

// TypedHashMap - A generic front over HashMap for callers that want a typed API
type TypedHashMap[T any] struct {
	hashMap *HashMap
	ser     serializer.Serializer[T]
}

// NewTypedHashMap - Returns a new TypedHashMap from string keys to values of type T.
//   - ser is the fixed size serializer deciding the byte representation of T
//   - capacityHint is the number of buckets to allocate, 0 (zero) means use an internal default
//   - algorithm is an optional custom bucket selection algorithm, nil means use the internal default
//
// It returns:
//   - typedHashMap is a pointer to a TypedHashMap struct
//   - err is a standard Go error which should be nil if everything went ok
func NewTypedHashMap[T any](ser serializer.Serializer[T], capacityHint int64, algorithm hashfunc.BucketAlgorithm) (typedHashMap *TypedHashMap[T], err error) {
	hashMap, err := NewHashMap(ser.Size(), capacityHint, nil, algorithm)
	if err != nil {
		return
	}

	typedHashMap = &TypedHashMap[T]{hashMap: hashMap, ser: ser}

	return
}

// Count - Returns the number of keys currently stored in the map
func (T *TypedHashMap[V]) Count() int64 {
	return T.hashMap.Count()
}

// Put - Stores the given value under the given key, overwriting any existing value
func (T *TypedHashMap[V]) Put(key string, value V) (err error) {
	return T.hashMap.Put(key, T.ser.ToBytes(value))
}

// Get - Returns the value stored under the given key.
// An error of type crt.NoKeyFound is returned if the key is not present.
func (T *TypedHashMap[V]) Get(key string) (value V, err error) {
	raw, err := T.hashMap.Get(key)
	if err != nil {
		return
	}

	value = T.ser.FromBytes(raw)

	return
}

// Keys - Returns a cursor over all stored keys, see HashMap.Keys
func (T *TypedHashMap[V]) Keys() *MapKeys {
	return T.hashMap.Keys()
}

// Dispose - Releases the underlying hash map
func (T *TypedHashMap[V]) Dispose() {
	T.hashMap.Dispose()
}
