package fixedbytes

import (
	"encoding/hex"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyHex = errors.New("empty hex input")

// BinaryString renders the container as binary digits for logs and tests:
// bytes listed from the highest index down to index 0, separated by spaces,
// bit 7 first within each byte.
func (fb FixedBytes) BinaryString() string {
	var sb strings.Builder
	sb.Grow(len(fb.data) * 9)
	for i := len(fb.data) - 1; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			if fb.data[i]&(1<<j) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i != 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

const hexDigits = "0123456789abcdef"

// Hex renders the container as a "0x"-prefixed lowercase hex string with
// bytes printed from the highest index down to index 0, two digits per
// byte. With the little-endian convention this reads as the numeric value.
func (fb FixedBytes) Hex() string {
	var sb strings.Builder
	sb.Grow(2 + len(fb.data)*2)
	sb.WriteString("0x")
	for i := len(fb.data) - 1; i >= 0; i-- {
		sb.WriteByte(hexDigits[fb.data[i]>>4])
		sb.WriteByte(hexDigits[fb.data[i]&0x0f])
	}
	return sb.String()
}

// String implements fmt.Stringer as the hex rendering.
func (fb FixedBytes) String() string { return fb.Hex() }

// MarshalText implements encoding.TextMarshaler using the hex form, which
// also makes FixedBytes usable as a JSON value.
func (fb FixedBytes) MarshalText() ([]byte, error) {
	return []byte(fb.Hex()), nil
}

// UnmarshalText parses the hex form produced by Hex. The "0x" prefix is
// optional and digits may be upper or lower case; an odd digit count is
// padded with a leading zero. The container is resized to the parsed byte
// count, so an empty input is rejected.
func (fb *FixedBytes) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimPrefix(string(text), "0x"), "0X")
	if s == "" {
		return ErrEmptyHex
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*fb = FromBytes(raw).Reverse()
	return nil
}

// MarshalYAML implements yaml.Marshaler as the hex rendering.
func (fb FixedBytes) MarshalYAML() (any, error) {
	return fb.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; it accepts anything
// UnmarshalText does.
func (fb *FixedBytes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return fb.UnmarshalText([]byte(s))
}
