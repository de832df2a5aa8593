package blobcontainers

// CleanupFunc - Callback invoked on a stored element or value right before it is overwritten or its owning
// container is disposed. It is handed the raw bytes of the element/value and is responsible for releasing
// any resources those bytes refer to. A nil CleanupFunc means no cleanup is needed.
type CleanupFunc func(value []byte)

// CompareFunc - A three-way comparator over two raw elements of equal length.
// It returns a negative number if a sorts before b, zero if they are equal and a positive number
// if a sorts after b.
type CompareFunc func(a, b []byte) int
