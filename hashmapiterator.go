package blobcontainers

import (
	"github.com/gostonefire/blobcontainers/crt"
	"github.com/gostonefire/blobcontainers/internal/blob"
)

// MapKeys - Is used to iterate over the keys of a hash map one by one. The visit order is the same
// as for First and Next, i.e. chain by chain over buckets in index order, but the cursor keeps its
// position itself so no key is rehashed between calls. The cursor is only valid as long as no Put
// or Dispose is performed on the map in between calls.
type MapKeys struct {
	hashMap    *HashMap
	bucketNo   int64
	nextOffset int64
}

// Keys - Returns a cursor over all stored keys, positioned before the first one
func (M *HashMap) Keys() *MapKeys {
	keys := &MapKeys{hashMap: M, nextOffset: blob.NilOffset}

	for i := int64(0); i < M.numberOfBuckets; i++ {
		if M.buckets[i] != blob.NilOffset {
			keys.bucketNo = i
			keys.nextOffset = M.buckets[i]
			break
		}
	}

	return keys
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (K *MapKeys) HasNext() bool {
	return K.nextOffset != blob.NilOffset
}

// Next - Returns the next key.
// It returns:
//   - key is the next key in traversal order
//   - err is an error of type crt.NoKeyFound if there are no more keys
func (K *MapKeys) Next() (key string, err error) {
	if K.nextOffset == blob.NilOffset {
		err = crt.NoKeyFound{}
		return
	}

	key = K.hashMap.store.Key(K.nextOffset)

	// Advance within the chain, or to the head of the next non-empty bucket
	K.nextOffset = K.hashMap.store.Next(K.nextOffset)
	for K.nextOffset == blob.NilOffset {
		K.bucketNo++
		if K.bucketNo >= K.hashMap.numberOfBuckets {
			break
		}
		K.nextOffset = K.hashMap.buckets[K.bucketNo]
	}

	return
}
