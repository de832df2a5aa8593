package serializer

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"
)

// Serializer - Converts values of one type to and from fixed size byte representations, which is
// what the raw containers store. Every value of the type must serialize to exactly Size() bytes.
type Serializer[T any] interface {
	// ToBytes - Returns the byte representation of the given value, always of length Size()
	ToBytes(value T) []byte
	// FromBytes - Restores a value from its byte representation
	FromBytes(raw []byte) T
	// Size - Returns the fixed byte length of the representation
	Size() int64
}

// Int64Serializer is a Serializer of the int64 type
type Int64Serializer struct{}

func (S Int64Serializer) ToBytes(value int64) []byte {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, uint64(value))
	return raw
}
func (S Int64Serializer) FromBytes(raw []byte) int64 {
	return int64(binary.LittleEndian.Uint64(raw))
}
func (S Int64Serializer) Size() int64 {
	return 8
}

// Float64Serializer is a Serializer of the float64 type
type Float64Serializer struct{}

func (S Float64Serializer) ToBytes(value float64) []byte {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, math.Float64bits(value))
	return raw
}
func (S Float64Serializer) FromBytes(raw []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(raw))
}
func (S Float64Serializer) Size() int64 {
	return 8
}

// NumberSerializer is a Serializer of any integer type, stored as 8 bytes regardless of the
// width of the type itself
type NumberSerializer[T constraints.Integer] struct{}

func (S NumberSerializer[T]) ToBytes(value T) []byte {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, uint64(int64(value)))
	return raw
}
func (S NumberSerializer[T]) FromBytes(raw []byte) T {
	return T(int64(binary.LittleEndian.Uint64(raw)))
}
func (S NumberSerializer[T]) Size() int64 {
	return 8
}

// BytesSerializer is a Serializer of fixed length byte slices. Shorter input is zero padded at
// the end, longer input is truncated.
type BytesSerializer struct {
	Length int64
}

func (S BytesSerializer) ToBytes(value []byte) []byte {
	raw := make([]byte, S.Length)
	copy(raw, value)
	return raw
}
func (S BytesSerializer) FromBytes(raw []byte) []byte {
	value := make([]byte, S.Length)
	copy(value, raw)
	return value
}
func (S BytesSerializer) Size() int64 {
	return S.Length
}
