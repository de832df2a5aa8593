package hash

import (
	"hash/crc32"

	"github.com/gostonefire/blobcontainers/internal/utils"
)

// ChecksumAlgorithm - An alternative bucket selection algorithm implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash & (actualTableSize - 1) to get the
// bucket number, where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type ChecksumAlgorithm struct {
	tableSize int64
}

// NewChecksumAlgorithm - Returns a pointer to a new ChecksumAlgorithm instance
func NewChecksumAlgorithm(tableSize int64) *ChecksumAlgorithm {
	ha := &ChecksumAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the bucket algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the hash map will address
func (C *ChecksumAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = utils.RoundUp2(tableSize)
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1
func (C *ChecksumAlgorithm) BucketNumber(key string) int64 {
	h := int64(crc32.ChecksumIEEE([]byte(key)))
	return h & (C.tableSize - 1)
}

// GetTableSize - Returns the table size the implemented bucket function is supporting
func (C *ChecksumAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
