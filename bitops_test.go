package fixedbytes

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftIdentityAndSaturation(t *testing.T) {
	condition := func(raw [7]byte, over uint8) bool {
		x := FromBytes(raw[:])
		zero := New(x.Size())
		big := x.BitSize() + int(over)
		return x.ShiftLeft(0).Equal(x) &&
			x.ShiftRight(0).Equal(x) &&
			x.ShiftLeft(big).Equal(zero) &&
			x.ShiftRight(big).Equal(zero)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestShiftNegativeCountIsIdentity(t *testing.T) {
	x := FromBytes([]byte{0xde, 0xad})
	require.True(t, x.ShiftLeft(-1).Equal(x))
	require.True(t, x.ShiftRight(-100).Equal(x))
}

func TestShiftConcreteScenario(t *testing.T) {
	// 0x01020304 stored little-endian
	b := FromInteger(4, uint32(0x01020304))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b.Bytes())
	assert.Equal(t, []byte{0x00, 0x04, 0x03, 0x02}, b.ShiftLeft(8).Bytes())
	assert.Equal(t, []byte{0x03, 0x02, 0x01, 0x00}, b.ShiftRight(8).Bytes())
	assert.Equal(t, []byte{0x01, 0x04, 0x03, 0x02}, b.RotateLeft(8).Bytes())
}

func TestShiftCarryAcrossBytes(t *testing.T) {
	b := FromBytes([]byte{0x80, 0x00}) // bit 7 set
	assert.Equal(t, []byte{0x00, 0x01}, b.ShiftLeft(1).Bytes(), "carry into next byte")

	b = FromBytes([]byte{0x00, 0x01}) // bit 8 set
	assert.Equal(t, []byte{0x80, 0x00}, b.ShiftRight(1).Bytes(), "carry into previous byte")

	b = FromBytes([]byte{0xff, 0x00, 0x00})
	assert.Equal(t, []byte{0xe0, 0x1f, 0x00}, b.ShiftLeft(5).Bytes())
	assert.Equal(t, []byte{0x00, 0xf8, 0x07}, b.ShiftLeft(11).Bytes())
}

func TestShiftMatchesIntegerSemantics(t *testing.T) {
	// the container behaves like a 64-bit integer when it is 8 bytes wide
	condition := func(v uint64, s uint8) bool {
		n := int(s % 64)
		b := FromInteger(8, v)
		left := ToInteger[uint64](b.ShiftLeft(n)) == v<<n
		right := ToInteger[uint64](b.ShiftRight(n)) == v>>n
		return left && right
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestRotateComplementarity(t *testing.T) {
	condition := func(raw [5]byte, s uint16) bool {
		x := FromBytes(raw[:])
		n := int(s) % x.BitSize()
		return x.RotateLeft(n).RotateRight(n).Equal(x)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestRotatePeriodicity(t *testing.T) {
	condition := func(raw [4]byte, s uint16) bool {
		x := FromBytes(raw[:])
		total := x.BitSize()
		n := int(s)
		return x.RotateLeft(total).Equal(x) &&
			x.RotateLeft(n).Equal(x.RotateLeft(n%total))
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestRotateMatchesIntegerSemantics(t *testing.T) {
	b := FromInteger(4, uint32(0x80000001))
	assert.Equal(t, uint32(0x00000003), ToInteger[uint32](b.RotateLeft(1)))
	assert.Equal(t, uint32(0xc0000000), ToInteger[uint32](b.RotateRight(1)))
	// negative rotation goes the other way
	assert.Equal(t, uint32(0xc0000000), ToInteger[uint32](b.RotateLeft(-1)))
}

func TestBitwiseInvolutions(t *testing.T) {
	condition := func(raw [6]byte) bool {
		x := FromBytes(raw[:])
		zero := New(x.Size())
		return x.Not().Not().Equal(x) &&
			x.And(x).Equal(x) &&
			x.Or(x).Equal(x) &&
			x.Xor(x).Equal(zero)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestBitwiseConcrete(t *testing.T) {
	a := FromBytes([]byte{0b1100, 0xff})
	b := FromBytes([]byte{0b1010, 0x0f})
	assert.Equal(t, []byte{0b1000, 0x0f}, a.And(b).Bytes())
	assert.Equal(t, []byte{0b1110, 0xff}, a.Or(b).Bytes())
	assert.Equal(t, []byte{0b0110, 0xf0}, a.Xor(b).Bytes())
	assert.Equal(t, []byte{0xf3, 0x00}, a.Not().Bytes())
}

func TestBitwiseShorterOperandZeroExtends(t *testing.T) {
	a := FromBytes([]byte{0xff, 0xff, 0xff})
	b := FromBytes([]byte{0x0f})
	assert.Equal(t, []byte{0x0f, 0x00, 0x00}, a.And(b).Bytes())
	assert.Equal(t, []byte{0xff, 0xff, 0xff}, a.Or(b).Bytes())
	assert.Equal(t, []byte{0xf0, 0xff, 0xff}, a.Xor(b).Bytes())
	// result is always sized like the receiver
	assert.Equal(t, 1, b.Xor(a).Size())
}

func TestInPlaceVariants(t *testing.T) {
	a := FromBytes([]byte{0b1100})
	b := FromBytes([]byte{0b1010})
	a.AndInPlace(b)
	require.Equal(t, []byte{0b1000}, a.Bytes())
	a.OrInPlace(b)
	require.Equal(t, []byte{0b1010}, a.Bytes())
	a.XorInPlace(b)
	require.Equal(t, []byte{0}, a.Bytes())
	a.NotInPlace()
	require.Equal(t, []byte{0xff}, a.Bytes())
}

func TestBitAccessors(t *testing.T) {
	b := New(2)
	for pos := 0; pos < b.BitSize(); pos++ {
		require.False(t, b.TestBit(pos))
		b.SetBit(pos)
		require.True(t, b.TestBit(pos))
		b.ToggleBit(pos)
		require.False(t, b.TestBit(pos))
		b.ToggleBit(pos)
		require.True(t, b.TestBit(pos))
		b.ClearBit(pos)
		require.False(t, b.TestBit(pos))
	}
}

func TestBitAccessorsOutOfRangeAreSilent(t *testing.T) {
	b := FromBytes([]byte{0xff})
	before := b.Clone()
	b.SetBit(8)
	b.SetBit(-1)
	b.ClearBit(100)
	b.ToggleBit(64)
	require.True(t, b.Equal(before))
	require.False(t, b.TestBit(8))
	require.False(t, b.TestBit(-1))
}

func TestBitIndexingConvention(t *testing.T) {
	// bit 0 is the least-significant bit of byte 0
	b := New(4)
	b.SetBit(0)
	require.Equal(t, byte(1), b.At(0))
	b.Clear()
	b.SetBit(9)
	require.Equal(t, byte(2), b.At(1))
}

func TestPopCount(t *testing.T) {
	require.Equal(t, 0, New(4).PopCount())
	require.Equal(t, 4, FromBytes([]byte{0x0f, 0, 0, 0}).PopCount())

	condition := func(raw [8]byte) bool {
		x := FromBytes(raw[:])
		c := x.PopCount()
		return c >= 0 && c <= x.BitSize() &&
			x.Not().PopCount() == x.BitSize()-c
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestPopCountAllOnes(t *testing.T) {
	b := New(3).Not()
	require.Equal(t, 24, b.PopCount())
}

func FuzzShiftRoundTrip(f *testing.F) {
	f.Add([]byte{0x04, 0x03, 0x02, 0x01}, 8)
	f.Add([]byte{0xff}, 3)
	f.Fuzz(func(t *testing.T, raw []byte, n int) {
		if len(raw) == 0 {
			t.Skip()
		}
		x := FromBytes(raw)
		n %= x.BitSize()
		if n < 0 {
			n = -n
		}
		if !x.RotateLeft(n).RotateRight(n).Equal(x) {
			t.Fatalf("rotate round trip failed for %s n=%d", x, n)
		}
		// a shift drops exactly the bits that leave the container
		kept := x.ShiftLeft(n).PopCount() + x.ShiftRight(x.BitSize()-n).PopCount()
		if kept != x.PopCount() {
			t.Fatalf("bits lost across complementary shifts: %d != %d", kept, x.PopCount())
		}
	})
}
