package blobcontainers

import (
	"github.com/gostonefire/blobcontainers/hashfunc"
	"github.com/gostonefire/blobcontainers/internal/hash"
)

// NewLinearCongruenceAlgorithm - Returns the bucket selection algorithm the hash map uses when none is
// supplied. It derives a hash code by running every byte of the key through a multiply-accumulate
// (linear congruence) recurrence and applies bucket = hashCode % tableSize to get the bucket number.
// The requested table size is kept as is.
//
// The instance is mainly useful together with ReorgConf when re-organizing a hash map that was created
// with a custom algorithm back to the internal one.
//   - tableSize is the number of buckets the hash map will address
func NewLinearCongruenceAlgorithm(tableSize int64) hashfunc.BucketAlgorithm {
	return hash.NewLinearCongruenceAlgorithm(tableSize)
}

// NewChecksumAlgorithm - Returns an alternative bucket selection algorithm implemented using
// crc32.ChecksumIEEE to create a hash value over the key and then applying
// bucket = hash & (actualTableSize - 1) to get the bucket number, where actualTableSize is the nearest
// bigger exponent of 2 of the requested table size. Since the algorithm owns the final table size, the
// hash map created with it may end up with more buckets than the capacity hint asked for.
//   - tableSize is the number of buckets the hash map will address
func NewChecksumAlgorithm(tableSize int64) hashfunc.BucketAlgorithm {
	return hash.NewChecksumAlgorithm(tableSize)
}
