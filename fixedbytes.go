// Package fixedbytes provides a fixed-capacity byte vector with bitwise,
// shift, rotation and integer-conversion operations.
//
// A FixedBytes holds exactly the number of bytes it was created with; the
// size never changes afterwards. Byte 0 is the least-significant byte when
// the container is interpreted as an integer (little-endian convention).
// Every operation on a constructed container is total: out-of-range indices
// are clamped or ignored, oversized shifts saturate to zero, conversions
// truncate or zero-extend. Nothing in the operation set returns an error or
// panics.
package fixedbytes

import "bytes"

// FixedBytes is a fixed-size sequence of bytes with value semantics.
// The zero value is not usable; construct with New, FromBytes, FromSlice
// or FromInteger.
type FixedBytes struct {
	data []byte
}

// New returns a zero-filled container of the given size.
// It panics if size < 1; a container is never empty.
func New(size int) FixedBytes {
	if size < 1 {
		panic("fixedbytes: size must be at least 1")
	}
	return FixedBytes{data: make([]byte, size)}
}

// FromBytes returns a container holding a copy of b, sized exactly len(b).
// It panics if b is empty.
func FromBytes(b []byte) FixedBytes {
	fb := New(len(b))
	copy(fb.data, b)
	return fb
}

// FromSlice returns a container of the given size filled from data.
// min(size, len(data)) bytes are copied starting at index 0; any remaining
// high indices stay zero. Truncation and padding are silent.
func FromSlice(size int, data []byte) FixedBytes {
	fb := New(size)
	copy(fb.data, data)
	return fb
}

// Size returns the number of bytes in the container.
func (fb FixedBytes) Size() int { return len(fb.data) }

// BitSize returns Size()*8.
func (fb FixedBytes) BitSize() int { return len(fb.data) * 8 }

// Get returns the byte at index i under the clamped-index policy: i below 0
// reads index 0, i at or above Size() reads the last byte. It never fails.
func (fb FixedBytes) Get(i int) byte {
	return fb.data[clamp(i, len(fb.data))]
}

// Set stores v at index i under the same clamped-index policy as Get.
func (fb *FixedBytes) Set(i int, v byte) {
	fb.data[clamp(i, len(fb.data))] = v
}

// At returns the byte at index i with strict bounds: it panics if i is out
// of range. Use Get for the saturating variant.
func (fb FixedBytes) At(i int) byte { return fb.data[i] }

// SetAt stores v at index i with strict bounds.
func (fb *FixedBytes) SetAt(i int, v byte) { fb.data[i] = v }

// Front returns the byte at index 0, the least-significant byte under the
// little-endian convention.
func (fb FixedBytes) Front() byte { return fb.data[0] }

// Back returns the byte at the highest index.
func (fb FixedBytes) Back() byte { return fb.data[len(fb.data)-1] }

// Bytes returns the underlying byte run. The slice aliases the container's
// storage: writes through it are visible to the container and vice versa.
// Use Clone().Bytes() for an independent copy.
func (fb FixedBytes) Bytes() []byte { return fb.data }

// Clone returns an independent copy.
func (fb FixedBytes) Clone() FixedBytes {
	return FromBytes(fb.data)
}

// Fill sets every byte to v.
func (fb *FixedBytes) Fill(v byte) {
	for i := range fb.data {
		fb.data[i] = v
	}
}

// Clear sets every byte to zero.
func (fb *FixedBytes) Clear() { fb.Fill(0) }

// Reverse returns a new container with the byte order flipped
// (byte i swaps with byte Size()-1-i). This is a structural endianness
// helper, not a bit-level shift.
func (fb FixedBytes) Reverse() FixedBytes {
	n := len(fb.data)
	out := New(n)
	for i := 0; i < n; i++ {
		out.data[i] = fb.data[n-1-i]
	}
	return out
}

// Equal reports whether both containers hold the same byte sequence.
func (fb FixedBytes) Equal(other FixedBytes) bool {
	return bytes.Equal(fb.data, other.data)
}

// Compare orders containers lexicographically on the byte sequence in index
// order, like bytes.Compare: -1 if fb < other, 0 if equal, +1 if fb > other.
func (fb FixedBytes) Compare(other FixedBytes) int {
	return bytes.Compare(fb.data, other.data)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
