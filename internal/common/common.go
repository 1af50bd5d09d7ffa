package common

import (
	"encoding/binary"
	"math"
	"reflect"
)

// IsFixedKind reports whether k is a fixed-size primitive kind with a
// stable byte layout.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size primitive kinds, -1
// otherwise.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// Alignment returns the natural alignment for fixed-size primitive kinds.
func Alignment(k reflect.Kind) int {
	switch k {
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return 1
	}
}

// AppendFixed appends the little-endian bytes of a fixed-kind value to dst.
func AppendFixed(dst []byte, v reflect.Value, k reflect.Kind) []byte {
	var scratch [8]byte
	switch k {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case reflect.Int8:
		return append(dst, byte(v.Int()))
	case reflect.Uint8:
		return append(dst, byte(v.Uint()))
	case reflect.Int16:
		binary.LittleEndian.PutUint16(scratch[:], uint16(v.Int()))
		return append(dst, scratch[:2]...)
	case reflect.Uint16:
		binary.LittleEndian.PutUint16(scratch[:], uint16(v.Uint()))
		return append(dst, scratch[:2]...)
	case reflect.Int32:
		binary.LittleEndian.PutUint32(scratch[:], uint32(v.Int()))
		return append(dst, scratch[:4]...)
	case reflect.Uint32:
		binary.LittleEndian.PutUint32(scratch[:], uint32(v.Uint()))
		return append(dst, scratch[:4]...)
	case reflect.Int64:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.Int()))
		return append(dst, scratch[:8]...)
	case reflect.Uint64:
		binary.LittleEndian.PutUint64(scratch[:], v.Uint())
		return append(dst, scratch[:8]...)
	case reflect.Float32:
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(float32(v.Float())))
		return append(dst, scratch[:4]...)
	case reflect.Float64:
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v.Float()))
		return append(dst, scratch[:8]...)
	default:
		panic("not a fixed kind")
	}
}

// ReadFixed decodes a fixed-width primitive from the start of b and sets
// dst. b must hold at least FixedSize(k) bytes.
func ReadFixed(dst reflect.Value, b []byte, k reflect.Kind) {
	switch k {
	case reflect.Bool:
		dst.SetBool(b[0] != 0)
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int16:
		dst.SetInt(int64(int16(binary.LittleEndian.Uint16(b))))
	case reflect.Uint16:
		dst.SetUint(uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Int32:
		dst.SetInt(int64(int32(binary.LittleEndian.Uint32(b))))
	case reflect.Uint32:
		dst.SetUint(uint64(binary.LittleEndian.Uint32(b)))
	case reflect.Int64:
		dst.SetInt(int64(binary.LittleEndian.Uint64(b)))
	case reflect.Uint64:
		dst.SetUint(binary.LittleEndian.Uint64(b))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
}
