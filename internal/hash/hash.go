package hash

// multiplier - Tuning constant for the linear congruence recurrence. The choice of value affects how well
// keys spread over buckets, not the correctness of the algorithm.
const multiplier uint64 = 2630849305

// LinearCongruenceAlgorithm - The internally used bucket selection algorithm. It derives a hash code by
// running every byte of the key through a multiply-accumulate (linear congruence) recurrence and then
// applying bucket = hashCode % tableSize to get the bucket number. The computed bucket number is stable,
// i.e. hashing the same key against the same table size will always return the same number.
// The algorithm is case-sensitive.
type LinearCongruenceAlgorithm struct {
	tableSize int64
}

// NewLinearCongruenceAlgorithm - Returns a pointer to a new LinearCongruenceAlgorithm instance
func NewLinearCongruenceAlgorithm(tableSize int64) *LinearCongruenceAlgorithm {
	ha := &LinearCongruenceAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the bucket algorithm.
// In this implementation the requested table size is used as is.
//   - tableSize is the number of buckets the hash map will address
func (L *LinearCongruenceAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1
func (L *LinearCongruenceAlgorithm) BucketNumber(key string) int64 {
	var hashCode uint64
	for i := 0; i < len(key); i++ {
		hashCode = hashCode*multiplier + uint64(key[i])
	}

	return int64(hashCode % uint64(L.tableSize))
}

// GetTableSize - Returns the table size the implemented bucket function is supporting
func (L *LinearCongruenceAlgorithm) GetTableSize() int64 {
	return L.tableSize
}
