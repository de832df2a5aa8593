package blobcontainers

import (
	"fmt"

	"github.com/gostonefire/blobcontainers/hashfunc"
	"github.com/gostonefire/blobcontainers/internal/utils"
)

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new hash map.
//   - CapacityHint is the new number of buckets, 0 (zero) means keep the number of buckets of the source map
//   - ValueExtension is number of bytes to extend the value length with
//   - PrependValueExtension whether to prepend the extra space or append it
//   - NewBucketAlgorithm is the bucket algorithm to use, nil means use the internal default
type ReorgConf struct {
	CapacityHint          int64
	ValueExtension        int64
	PrependValueExtension bool
	NewBucketAlgorithm    hashfunc.BucketAlgorithm
}

// Reorg - Is used when an existing hash map needs to reflect new conditions as compared to when it
// was first created. For instance if the first estimate of the number of buckets was way off and the
// chains have grown long, or we need to store more data in each value, or perhaps a better bucket
// algorithm has been found for the particular set of keys we are processing.
//
// The reorganization copies every key and value of the source map into a freshly created map.
// Ownership of the stored values follows the copy, i.e. the new map takes over the cleanup callback
// and the source map is left without one, so disposing the source afterwards releases its memory
// without invoking cleanup on values that live on in the new map. Should the copy fail midway the
// half-built new map is disposed without cleanup and ownership stays with the source map, which is
// left untouched.
//
// The reorganization will happen only if there are detectable changes coming from the ReorgConf
// struct, a zero valued struct returns with no processing and a nil new map. To force a
// reorganization even if there are no changes to apply, use the force flag.
//   - from is the hash map to reorganize
//   - reorgConf is an instance of the ReorgConf struct
//   - force set to true forces a reorganization regardless of what is changed from the ReorgConf struct
//
// It returns:
//   - to is a pointer to the new HashMap, nil if no processing happened
//   - err is a standard Go error, nil if everything went ok
func Reorg(from *HashMap, reorgConf ReorgConf, force bool) (to *HashMap, err error) {
	// Sort out new settings and also make sure there are any changes at all (unless force flag has already overridden that)
	hasChanges := force
	var capacityHint, valueLength int64
	var bucketAlgorithm hashfunc.BucketAlgorithm
	if reorgConf.CapacityHint > 0 && reorgConf.CapacityHint != from.numberOfBuckets {
		capacityHint = reorgConf.CapacityHint
		hasChanges = true
	} else {
		capacityHint = from.numberOfBuckets
	}
	if reorgConf.ValueExtension > 0 {
		valueLength = from.valueLength + reorgConf.ValueExtension
		hasChanges = true
	} else {
		valueLength = from.valueLength
	}
	if reorgConf.NewBucketAlgorithm != nil || (reorgConf.NewBucketAlgorithm == nil && !from.internalAlgorithm) {
		bucketAlgorithm = reorgConf.NewBucketAlgorithm
		hasChanges = true
	}
	if !hasChanges {
		return
	}

	to, err = NewHashMap(valueLength, capacityHint, from.cleanup, bucketAlgorithm)
	if err != nil {
		return
	}

	err = reorgRecords(from, to, reorgConf)
	if err != nil {
		// The new map holds byte copies of values still owned by the source map, disposing it
		// with cleanup attached would clean values the source map is about to clean again
		to.cleanup = nil
		to.Dispose()
		to = nil
		return
	}

	// Value ownership has moved to the new map
	from.cleanup = nil

	return
}

// reorgRecords - Copies every key and value of the source map into the new map, extending values
// if asked to.
//   - from is the hash map to copy records from
//   - to is the hash map to copy records to
//   - reorgConf is an instance of the ReorgConf struct
//
// It returns:
//   - err is a standard Go error, nil if everything went ok
func reorgRecords(from, to *HashMap, reorgConf ReorgConf) (err error) {
	var key string
	var value []byte
	keys := from.Keys()
	for keys.HasNext() {
		key, err = keys.Next()
		if err != nil {
			return
		}
		value, err = from.Get(key)
		if err != nil {
			return
		}

		err = to.Put(key, utils.ExtendByteSlice(value, reorgConf.ValueExtension, reorgConf.PrependValueExtension))
		if err != nil {
			err = fmt.Errorf("error while adding record to reorganized hash map: %s", err)
			return
		}
	}

	return
}
