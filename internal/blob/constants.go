package blob

// NilOffset - The offset value representing the absence of a blob, both as the head of an empty
// bucket and as the next link of the last blob in a chain. The arena reserves the space at offset
// zero so no real blob can ever be stored there.
const NilOffset int64 = 0

// NextLength - Number of bytes used for the next blob link stored first in each blob
const NextLength int64 = 8

// KeyTerminatorLength - Number of bytes used for the key terminator stored after the key bytes
const KeyTerminatorLength int64 = 1

// keyTerminator - The terminator byte marking the end of the key within a blob
const keyTerminator byte = 0

// arenaReservedLength - Number of bytes reserved at the start of the arena to keep NilOffset unused
const arenaReservedLength int64 = 8

// minArenaCapacity - Smallest initial arena capacity in bytes
const minArenaCapacity int64 = 64
