//go:build unit

package blobcontainers

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"

	"github.com/gostonefire/blobcontainers/crt"
)

func TestVector_Insert(t *testing.T) {
	t.Run("count equals the number of inserts and elements read back at their positions", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")

		// Execute
		for i := int64(0); i < 100; i++ {
			err = vector.Append(int64Bytes(i * 3))
			assert.NoError(t, err, "append element")
		}

		// Check
		assert.Equal(t, int64(100), vector.Count(), "count equals number of inserts")
		for i := int64(0); i < 100; i++ {
			value, err := vector.Get(i)
			assert.NoError(t, err, "get element")
			assert.Equal(t, i*3, bytesInt64(value), "element read back at its position")
		}
	})

	t.Run("inserting at index zero reverses insertion order", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 4, nil)
		assert.NoError(t, err, "create new vector")

		// Execute
		for i := int64(1); i <= 20; i++ {
			err = vector.Insert(int64Bytes(i), 0)
			assert.NoError(t, err, "insert element at front")
		}

		// Check
		elements := vector.Elements()
		for i := int64(20); i >= 1; i-- {
			assert.True(t, elements.HasNext(), "cursor has more elements")
			value, err := elements.Next()
			assert.NoError(t, err, "get next element")
			assert.Equal(t, i, bytesInt64(value), "front to back gives reverse insertion order")
		}
		assert.False(t, elements.HasNext(), "cursor exhausted")
	})

	t.Run("inserting in the middle shifts later elements right", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{1, 2, 4, 5} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}

		// Execute
		err = vector.Insert(int64Bytes(3), 2)

		// Check
		assert.NoError(t, err, "insert in the middle")
		for i, want := range []int64{1, 2, 3, 4, 5} {
			value, err := vector.Get(int64(i))
			assert.NoError(t, err, "get element")
			assert.Equal(t, want, bytesInt64(value), "elements in expected order")
		}
	})

	t.Run("growth preserves previously inserted elements", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 2, nil)
		assert.NoError(t, err, "create new vector")

		// Execute, repeatedly exceeding capacity
		for i := int64(0); i < 1000; i++ {
			err = vector.Append(int64Bytes(i))
			assert.NoError(t, err, "append element")
		}

		// Check
		for i := int64(0); i < 1000; i++ {
			value, err := vector.Get(i)
			assert.NoError(t, err, "get element")
			assert.Equal(t, i, bytesInt64(value), "element survived growth")
		}
	})

	t.Run("throws error when index is out of range", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")

		// Execute
		err = vector.Insert(int64Bytes(1), 1)

		// Check
		assert.Error(t, err, "insert past count not accepted")
	})

	t.Run("throws error when value has wrong length", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")

		// Execute
		err = vector.Insert([]byte{1, 2, 3}, 0)

		// Check
		assert.Error(t, err, "wrong value length not accepted")
	})
}

func TestVector_Get(t *testing.T) {
	t.Run("throws correct error when index is out of range", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		err = vector.Append(int64Bytes(7))
		assert.NoError(t, err, "append element")

		// Execute
		_, err = vector.Get(1)

		// Check
		assert.ErrorIs(t, err, crt.NoElementFound{}, "get correct error")
	})
}

func TestVector_Replace(t *testing.T) {
	t.Run("overwrites element and cleans up the old one", func(t *testing.T) {
		// Prepare
		var cleaned []int64
		vector, err := NewVector(8, 0, func(value []byte) {
			cleaned = append(cleaned, bytesInt64(value))
		})
		assert.NoError(t, err, "create new vector")
		err = vector.Append(int64Bytes(1))
		assert.NoError(t, err, "append element")

		// Execute
		err = vector.Replace(int64Bytes(2), 0)

		// Check
		assert.NoError(t, err, "replace element")
		value, err := vector.Get(0)
		assert.NoError(t, err, "get element")
		assert.Equal(t, int64(2), bytesInt64(value), "new element in place")
		assert.Equal(t, []int64{1}, cleaned, "cleanup invoked on old element")
		assert.Equal(t, int64(1), vector.Count(), "count unchanged")
	})
}

func TestVector_Remove(t *testing.T) {
	t.Run("removes element and shifts later elements left", func(t *testing.T) {
		// Prepare
		var cleaned []int64
		vector, err := NewVector(8, 0, func(value []byte) {
			cleaned = append(cleaned, bytesInt64(value))
		})
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{1, 2, 3} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}

		// Execute
		err = vector.Remove(1)

		// Check
		assert.NoError(t, err, "remove element")
		assert.Equal(t, int64(2), vector.Count(), "count decreased")
		assert.Equal(t, []int64{2}, cleaned, "cleanup invoked on removed element")
		value, err := vector.Get(1)
		assert.NoError(t, err, "get element")
		assert.Equal(t, int64(3), bytesInt64(value), "later element shifted left")
	})
}

func TestVector_Search(t *testing.T) {
	t.Run("linear search finds a present value", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{5, 3, 9, 3, 7} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}

		// Execute
		index, err := vector.Search(int64Bytes(9), compareInt64, 0, false)

		// Check
		assert.NoError(t, err, "search present value")
		value, err := vector.Get(index)
		assert.NoError(t, err, "get element")
		assert.Equal(t, int64(9), bytesInt64(value), "found index holds the searched value")
	})

	t.Run("linear search respects the start index", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{3, 1, 3} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}

		// Execute
		index, err := vector.Search(int64Bytes(3), compareInt64, 1, false)

		// Check
		assert.NoError(t, err, "search present value")
		assert.Equal(t, int64(2), index, "first match at or after start index")
	})

	t.Run("binary search respects the start index", func(t *testing.T) {
		// Prepare, an unsorted head followed by a sorted tail starting at index 2
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{9, 2, 1, 3, 5, 7} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}

		// Execute and Check, every tail value comes back at its absolute index
		for i, v := range []int64{1, 3, 5, 7} {
			index, err := vector.Search(int64Bytes(v), compareInt64, 2, true)
			assert.NoError(t, err, "binary search present value")
			assert.Equal(t, int64(i+2), index, "index reported relative to the vector, not the range")
		}

		// Execute and Check, a value only present before the start index is absent
		_, err = vector.Search(int64Bytes(2), compareInt64, 2, true)
		assert.ErrorIs(t, err, crt.NoElementFound{}, "value before start index not found")

		// Execute and Check, a value inside the tail's span but not stored is absent
		_, err = vector.Search(int64Bytes(4), compareInt64, 2, true)
		assert.ErrorIs(t, err, crt.NoElementFound{}, "absent value gives correct error")
	})

	t.Run("throws correct error when value is absent in both modes", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range []int64{1, 2, 4} {
			err = vector.Append(int64Bytes(v))
			assert.NoError(t, err, "append element")
		}
		vector.Sort(compareInt64)

		// Execute and Check
		_, err = vector.Search(int64Bytes(3), compareInt64, 0, false)
		assert.ErrorIs(t, err, crt.NoElementFound{}, "linear search gives correct error")

		_, err = vector.Search(int64Bytes(3), compareInt64, 0, true)
		assert.ErrorIs(t, err, crt.NoElementFound{}, "binary search gives correct error")
	})

	t.Run("throws error when start index is out of range", func(t *testing.T) {
		// Prepare
		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")

		// Execute
		_, err = vector.Search(int64Bytes(1), compareInt64, 1, false)

		// Check
		assert.Error(t, err, "start index past count not accepted")
	})
}

func TestVector_Sort(t *testing.T) {
	t.Run("sorting then binary searching returns the final index of every element", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		values := rnd.Perm(200)

		vector, err := NewVector(8, 0, nil)
		assert.NoError(t, err, "create new vector")
		for _, v := range values {
			err = vector.Append(int64Bytes(int64(v)))
			assert.NoError(t, err, "append element")
		}

		// Execute
		vector.Sort(compareInt64)

		// Check
		for i := int64(0); i < vector.Count(); i++ {
			value, err := vector.Get(i)
			assert.NoError(t, err, "get element")
			assert.Equal(t, i, bytesInt64(value), "permutation of 0..n-1 sorted means element equals index")

			index, err := vector.Search(value, compareInt64, 0, true)
			assert.NoError(t, err, "binary search present value")
			assert.Equal(t, i, index, "binary search returns the element's index")
		}
	})
}
