package blobcontainers

import (
	"fmt"
	"strings"

	"github.com/gostonefire/blobcontainers/crt"
	"github.com/gostonefire/blobcontainers/internal/blob"
)

// Put - Stores the given value under the given key. If the key is already present its value is
// overwritten in place and the count is left unchanged, with the cleanup callback, if one was given,
// first invoked on the old value. A new key gets a new blob prepended to its bucket chain.
//   - key is an arbitrary length string, it must not contain a 0 (zero) byte since keys are stored with a zero byte terminator
//   - value is the value to store, its length must equal the value length given in the call to NewHashMap
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func (M *HashMap) Put(key string, value []byte) (err error) {
	// Check validity of the key
	if strings.IndexByte(key, 0) >= 0 {
		err = fmt.Errorf("key must not contain a zero byte")
		return
	}

	// Check validity of the value
	if int64(len(value)) != M.valueLength {
		err = fmt.Errorf("wrong length of value, should be %d", M.valueLength)
		return
	}

	bucketNo, err := M.bucketNumber(key)
	if err != nil {
		return
	}

	// Overwrite in place if the key is already present in the chain
	for offset := M.buckets[bucketNo]; offset != blob.NilOffset; offset = M.store.Next(offset) {
		if M.store.KeyEquals(offset, key) {
			if M.cleanup != nil {
				M.cleanup(M.store.Value(offset))
			}
			M.store.SetValue(offset, value)
			return
		}
	}

	// New key, prepend a new blob to the bucket chain
	offset := M.store.NewBlob(key, value)
	if M.buckets[bucketNo] != blob.NilOffset {
		M.store.SetNext(offset, M.buckets[bucketNo])
	}
	M.buckets[bucketNo] = offset

	M.count++

	return
}

// Get - Returns the value stored under the given key.
//   - key is the key to look up
//
// It returns:
//   - value is a slice aliasing the value bytes within the map's blob arena, hence it is valid only until the next mutating operation on the map
//   - err is either of type crt.NoKeyFound if the key is not present, or a standard error
func (M *HashMap) Get(key string) (value []byte, err error) {
	// A key holding a zero byte can never have been stored
	if strings.IndexByte(key, 0) >= 0 {
		err = crt.NoKeyFound{}
		return
	}

	bucketNo, err := M.bucketNumber(key)
	if err != nil {
		return
	}

	for offset := M.buckets[bucketNo]; offset != blob.NilOffset; offset = M.store.Next(offset) {
		if M.store.KeyEquals(offset, key) {
			value = M.store.Value(offset)
			return
		}
	}

	err = crt.NoKeyFound{}

	return
}

// First - Returns the key of the head blob in the first non-empty bucket, scanning buckets from
// index 0 (zero) and up.
//
// It returns:
//   - key is the first key in traversal order
//   - err is an error of type crt.NoKeyFound if the map is empty
func (M *HashMap) First() (key string, err error) {
	for i := int64(0); i < M.numberOfBuckets; i++ {
		if M.buckets[i] != blob.NilOffset {
			key = M.store.Key(M.buckets[i])
			return
		}
	}

	err = crt.NoKeyFound{}

	return
}

// Next - Returns the key following the given one in traversal order. The order is first within the
// chain the previous key lives in, then over subsequent buckets in index order. A full walk from
// First through repeated Next visits every stored key exactly once, as long as no Put is performed
// in between calls (a Put prepends to a chain and can shift the very next key).
//   - previousKey is a key previously returned by First or Next, it must still be present in the map
//
// It returns:
//   - key is the next key in traversal order
//   - err is an error of type crt.NoKeyFound if previousKey is not present or if previousKey was the last key
func (M *HashMap) Next(previousKey string) (key string, err error) {
	// A key holding a zero byte can never have been stored
	if strings.IndexByte(previousKey, 0) >= 0 {
		err = crt.NoKeyFound{}
		return
	}

	bucketNo, err := M.bucketNumber(previousKey)
	if err != nil {
		return
	}

	// Recover the blob owning the previous key from its chain
	offset := M.buckets[bucketNo]
	for offset != blob.NilOffset && !M.store.KeyEquals(offset, previousKey) {
		offset = M.store.Next(offset)
	}
	if offset == blob.NilOffset {
		err = crt.NoKeyFound{}
		return
	}

	// If there is another blob in the chain its key is the next one
	if next := M.store.Next(offset); next != blob.NilOffset {
		key = M.store.Key(next)
		return
	}

	// Otherwise jump to the head of the next non-empty bucket
	for i := bucketNo + 1; i < M.numberOfBuckets; i++ {
		if M.buckets[i] != blob.NilOffset {
			key = M.store.Key(M.buckets[i])
			return
		}
	}

	err = crt.NoKeyFound{}

	return
}

// bucketNumber - Runs the key through the bucket algorithm and checks the result is addressable
func (M *HashMap) bucketNumber(key string) (bucketNo int64, err error) {
	bucketNo = M.algorithm.BucketNumber(key)
	if bucketNo < 0 || bucketNo >= M.numberOfBuckets {
		err = fmt.Errorf("bucket algorithm returned bucket number %d outside of table size %d", bucketNo, M.numberOfBuckets)
	}

	return
}
