package hashfunc

// BucketAlgorithm - Interface that permits an implementation using the BlobHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type BucketAlgorithm interface {
	// SetTableSize - Sets the table size for the bucket algorithm.
	// It is called when creating a new hash map. Hence, if a custom algorithm is supplied and the instance
	// already has a table size, it will be overwritten by the number of buckets given when creating the hash map.
	//   - tableSize is the number of buckets the hash map will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given key it generates a bucket number between 0 and table size - 1.
	// The same key must always yield the same bucket number for an unchanged table size.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	BucketNumber(key string) int64

	// GetTableSize - Returns the table size the implemented bucket function is supporting.
	// It is very important that this function returns the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x,
	// and if such operations are built in the implementation of this interface it must be covered in GetTableSize.
	GetTableSize() int64
}
