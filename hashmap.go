package blobcontainers

import (
	"fmt"

	"github.com/gostonefire/blobcontainers/hashfunc"
	"github.com/gostonefire/blobcontainers/internal/blob"
	"github.com/gostonefire/blobcontainers/internal/hash"
)

// defaultNumberOfBuckets - Used when the given capacityHint is 0 (zero)
const defaultNumberOfBuckets int64 = 1023

// HashMap - A hash map from string keys to fixed size raw values. The bucket array is fixed in
// length for the lifetime of the map, each bucket holding the head of a singly linked chain of
// blobs. Every blob packs the next link, the key and the value contiguously in the map's own
// blob arena. Same bucket keys carry no order guarantee, new keys are prepended to their chain.
type HashMap struct {
	buckets           []int64
	numberOfBuckets   int64
	valueLength       int64
	count             int64
	cleanup           CleanupFunc
	algorithm         hashfunc.BucketAlgorithm
	internalAlgorithm bool
	store             *blob.Arena
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of keys stored
//   - BucketDistribution is the number of keys stored in each available bucket
type HashMapStat struct {
	Records            int64
	BucketDistribution []int64
}

// NewHashMap - Returns a new HashMap prepared to hold values of a fixed byte length under string keys.
// The number of buckets is decided at creation and never changes, regardless of how many keys are stored.
//   - valueLength is the number of bytes every value occupies, it must be higher than 0 (zero)
//   - capacityHint is the number of buckets to allocate, 0 (zero) means use an internal default
//   - cleanup is an optional callback invoked on a value right before it is overwritten or the map is disposed, nil means no cleanup
//   - algorithm is an optional custom bucket selection algorithm following the hashfunc.BucketAlgorithm interface, nil means use the internal default
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a standard Go error which should be nil if everything went ok
func NewHashMap(valueLength, capacityHint int64, cleanup CleanupFunc, algorithm hashfunc.BucketAlgorithm) (hashMap *HashMap, err error) {
	// Check if valueLength is valid
	if valueLength <= 0 {
		err = fmt.Errorf("valueLength must be a positive value higher than 0 (zero)")
		return
	}

	// Check if capacityHint is valid, zero is handled with the internal default
	if capacityHint < 0 {
		err = fmt.Errorf("capacityHint must not be negative")
		return
	}
	if capacityHint == 0 {
		capacityHint = defaultNumberOfBuckets
	}

	// If no BucketAlgorithm was given then use the default internal
	var internalAlg bool
	if algorithm == nil {
		algorithm = hash.NewLinearCongruenceAlgorithm(capacityHint)
		internalAlg = true
	} else {
		algorithm.SetTableSize(capacityHint)
	}

	// A custom algorithm owns the final table size, it may have rounded the requested one up
	numberOfBuckets := algorithm.GetTableSize()

	hashMap = &HashMap{
		buckets:           make([]int64, numberOfBuckets),
		numberOfBuckets:   numberOfBuckets,
		valueLength:       valueLength,
		cleanup:           cleanup,
		algorithm:         algorithm,
		internalAlgorithm: internalAlg,
		store:             blob.NewArena(valueLength, 0),
	}

	return
}

// Count - Returns the number of keys currently stored in the map
func (M *HashMap) Count() int64 {
	return M.count
}

// NumberOfBuckets - Returns the fixed number of buckets the map addresses
func (M *HashMap) NumberOfBuckets() int64 {
	return M.numberOfBuckets
}

// ValueLength - Returns the fixed value length the map was created with
func (M *HashMap) ValueLength() int64 {
	return M.valueLength
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
// For a map with very many buckets the HashMapStat.BucketDistribution slice can be memory heavy
// (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of keys per bucket, false will set HashMapStat.BucketDistribution to nil
func (M *HashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	hashMapStat = &HashMapStat{}

	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int64, M.numberOfBuckets)
	}

	for i := int64(0); i < M.numberOfBuckets; i++ {
		for offset := M.buckets[i]; offset != blob.NilOffset; offset = M.store.Next(offset) {
			hashMapStat.Records++
			if includeDistribution {
				hashMapStat.BucketDistribution[i]++
			}
		}
	}

	return
}

// Dispose - Walks every bucket chain invoking the cleanup callback, if one was given, once per
// stored value, then releases the blob arena and the bucket array. The map must not be used after
// this call, except for calling Dispose again which is a no-op.
func (M *HashMap) Dispose() {
	if M.cleanup != nil {
		for i := int64(0); i < M.numberOfBuckets; i++ {
			for offset := M.buckets[i]; offset != blob.NilOffset; offset = M.store.Next(offset) {
				M.cleanup(M.store.Value(offset))
			}
		}
	}

	M.store.Release()
	M.buckets = nil
	M.numberOfBuckets = 0
	M.count = 0
	M.cleanup = nil
}
