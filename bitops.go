package fixedbytes

import "math/bits"

// Binary operators combine byte-wise and return a new container sized like
// the receiver. A shorter operand is treated as zero-extended; a longer one
// is read only up to the receiver's size.

// And returns fb & other.
func (fb FixedBytes) And(other FixedBytes) FixedBytes {
	out := New(len(fb.data))
	for i := 0; i < len(fb.data) && i < len(other.data); i++ {
		out.data[i] = fb.data[i] & other.data[i]
	}
	return out
}

// Or returns fb | other.
func (fb FixedBytes) Or(other FixedBytes) FixedBytes {
	out := fb.Clone()
	for i := 0; i < len(fb.data) && i < len(other.data); i++ {
		out.data[i] = fb.data[i] | other.data[i]
	}
	return out
}

// Xor returns fb ^ other.
func (fb FixedBytes) Xor(other FixedBytes) FixedBytes {
	out := fb.Clone()
	for i := 0; i < len(fb.data) && i < len(other.data); i++ {
		out.data[i] = fb.data[i] ^ other.data[i]
	}
	return out
}

// Not returns the byte-wise complement of fb.
func (fb FixedBytes) Not() FixedBytes {
	out := New(len(fb.data))
	for i, b := range fb.data {
		out.data[i] = ^b
	}
	return out
}

// AndInPlace sets fb = fb & other.
func (fb *FixedBytes) AndInPlace(other FixedBytes) { *fb = fb.And(other) }

// OrInPlace sets fb = fb | other.
func (fb *FixedBytes) OrInPlace(other FixedBytes) { *fb = fb.Or(other) }

// XorInPlace sets fb = fb ^ other.
func (fb *FixedBytes) XorInPlace(other FixedBytes) { *fb = fb.Xor(other) }

// NotInPlace complements every byte of fb.
func (fb *FixedBytes) NotInPlace() { *fb = fb.Not() }

// ShiftLeft returns fb logically shifted left by the given number of bits,
// treating the whole container as one little-endian bit sequence: bits move
// toward higher-index bytes, vacated low positions fill with zero, bits
// shifted past the top are discarded. A negative count is treated as zero;
// a count of BitSize() or more yields the all-zero container.
func (fb FixedBytes) ShiftLeft(shiftBits int) FixedBytes {
	n := len(fb.data)
	if shiftBits <= 0 {
		return fb.Clone()
	}
	out := New(n)
	if shiftBits >= n*8 {
		return out
	}
	byteShift := shiftBits / 8
	bitShift := uint(shiftBits % 8)
	if bitShift == 0 {
		for i := byteShift; i < n; i++ {
			out.data[i] = fb.data[i-byteShift]
		}
		return out
	}
	var carry byte
	for i := 0; i < n-byteShift; i++ {
		out.data[i+byteShift] = fb.data[i]<<bitShift | carry
		carry = fb.data[i] >> (8 - bitShift)
	}
	return out
}

// ShiftRight is the mirror of ShiftLeft: bits move toward lower-index
// bytes, vacated high positions fill with zero.
func (fb FixedBytes) ShiftRight(shiftBits int) FixedBytes {
	n := len(fb.data)
	if shiftBits <= 0 {
		return fb.Clone()
	}
	out := New(n)
	if shiftBits >= n*8 {
		return out
	}
	byteShift := shiftBits / 8
	bitShift := uint(shiftBits % 8)
	if bitShift == 0 {
		for i := 0; i < n-byteShift; i++ {
			out.data[i] = fb.data[i+byteShift]
		}
		return out
	}
	var carry byte
	for i := n - byteShift - 1; i >= 0; i-- {
		out.data[i] = fb.data[i+byteShift]>>bitShift | carry
		carry = fb.data[i+byteShift] << (8 - bitShift)
	}
	return out
}

// RotateLeft returns fb circularly shifted left by n bits. Rotation by any
// multiple of BitSize() is the identity; n may be negative (rotates right).
// The two shifted halves are disjoint and cover every bit position, so the
// OR loses nothing.
func (fb FixedBytes) RotateLeft(n int) FixedBytes {
	total := fb.BitSize()
	n %= total
	if n < 0 {
		n += total
	}
	if n == 0 {
		return fb.Clone()
	}
	return fb.ShiftLeft(n).Or(fb.ShiftRight(total - n))
}

// RotateRight returns fb circularly shifted right by n bits.
func (fb FixedBytes) RotateRight(n int) FixedBytes {
	total := fb.BitSize()
	n %= total
	if n < 0 {
		n += total
	}
	if n == 0 {
		return fb.Clone()
	}
	return fb.ShiftRight(n).Or(fb.ShiftLeft(total - n))
}

// Single-bit operations address the container by global bit index: bit 0 is
// the least-significant bit of byte 0, bit pos lives in byte pos/8 at
// position pos%8. An out-of-range pos is silently ignored by the mutators
// and reads as false from TestBit.

// SetBit sets the bit at pos to 1.
func (fb *FixedBytes) SetBit(pos int) {
	if pos >= 0 && pos < fb.BitSize() {
		fb.data[pos/8] |= 1 << (pos % 8)
	}
}

// ClearBit sets the bit at pos to 0.
func (fb *FixedBytes) ClearBit(pos int) {
	if pos >= 0 && pos < fb.BitSize() {
		fb.data[pos/8] &^= 1 << (pos % 8)
	}
}

// ToggleBit flips the bit at pos.
func (fb *FixedBytes) ToggleBit(pos int) {
	if pos >= 0 && pos < fb.BitSize() {
		fb.data[pos/8] ^= 1 << (pos % 8)
	}
}

// TestBit reports whether the bit at pos is set.
func (fb FixedBytes) TestBit(pos int) bool {
	if pos < 0 || pos >= fb.BitSize() {
		return false
	}
	return fb.data[pos/8]&(1<<(pos%8)) != 0
}

// PopCount returns the number of set bits across the whole container.
func (fb FixedBytes) PopCount() int {
	count := 0
	for _, b := range fb.data {
		count += bits.OnesCount8(b)
	}
	return count
}
