package fixedbytes

import (
	"encoding/binary"
	"unsafe"
)

// Integer is the set of fixed-width integer types a container converts
// to and from.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// FromInteger returns a container of the given size holding the
// little-endian representation of v. min(size, width-of-I) bytes are copied
// starting at index 0; if the container is wider than I the remaining high
// bytes are zero, if it is narrower the high-order bytes of v are silently
// dropped.
func FromInteger[I Integer](size int, v I) FixedBytes {
	fb := New(size)
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(v))
	copy(fb.data, scratch[:unsafe.Sizeof(v)])
	return fb
}

// ToInteger reads the container's low-order bytes as a little-endian
// integer of type I: min(Size(), width-of-I) bytes land in the low end of a
// zero-initialized value. It is the exact inverse of FromInteger when the
// container size matches the integer width.
func ToInteger[I Integer](fb FixedBytes) I {
	var zero I
	var scratch [8]byte
	copy(scratch[:unsafe.Sizeof(zero)], fb.data)
	return I(binary.LittleEndian.Uint64(scratch[:]))
}
