// Package composer views values with a stable byte layout as raw bytes and
// back. It replaces memory reinterpretation with explicit little-endian
// serialization, restricted to fixed-width primitives and structs composed
// of them.
//
// The layout is the fields' declaration order with no padding between
// fields, each field little-endian. Unexported fields are skipped, as is
// usual for reflection-driven encoders.
package composer

import (
	"errors"
	"reflect"

	"github.com/rawbytedev/fixedbytes"
	"github.com/rawbytedev/fixedbytes/internal/common"
	"github.com/rawbytedev/fixedbytes/pkg/typeset"
)

var (
	ErrNotComposable = errors.New("type has no fixed byte layout")
	ErrNotPointer    = errors.New("expected pointer to a composable value")
	ErrShortBuffer   = errors.New("buffer shorter than the value's layout")
	ErrNotAllowed    = errors.New("type not in the codec allow list")
)

// Size returns the packed byte size of v's layout, or -1 if v is not
// composable.
func Size(v any) int {
	t := reflect.TypeOf(v)
	if t == nil {
		return -1
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return sizeOfType(t)
}

func sizeOfType(t reflect.Type) int {
	k := t.Kind()
	if common.IsFixedKind(k) {
		return common.FixedSize(k)
	}
	if k != reflect.Struct {
		return -1
	}
	total := 0
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue
		}
		sz := sizeOfType(sf.Type)
		if sz < 0 {
			return -1
		}
		total += sz
	}
	if total == 0 {
		return -1
	}
	return total
}

// Decompose returns the packed little-endian bytes of v. Pointers are
// dereferenced first.
func Decompose(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if !rv.IsValid() || sizeOfType(rv.Type()) < 0 {
		return nil, ErrNotComposable
	}
	return appendValue(nil, rv), nil
}

func appendValue(dst []byte, v reflect.Value) []byte {
	k := v.Kind()
	if common.IsFixedKind(k) {
		return common.AppendFixed(dst, v, k)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue
		}
		dst = appendValue(dst, v.Field(i))
	}
	return dst
}

// Recompose fills *out from packed bytes produced by Decompose. out must be
// a non-nil pointer to a composable value and data must cover its layout.
func Recompose(data []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	dst := rv.Elem()
	sz := sizeOfType(dst.Type())
	if sz < 0 {
		return ErrNotComposable
	}
	if len(data) < sz {
		return ErrShortBuffer
	}
	readValue(data, dst)
	return nil
}

func readValue(data []byte, dst reflect.Value) int {
	k := dst.Kind()
	if common.IsFixedKind(k) {
		common.ReadFixed(dst, data, k)
		return common.FixedSize(k)
	}
	t := dst.Type()
	pos := 0
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue
		}
		pos += readValue(data[pos:], dst.Field(i))
	}
	return pos
}

// ToFixedBytes packs v into a fixedbytes container sized to its layout.
func ToFixedBytes(v any) (fixedbytes.FixedBytes, error) {
	raw, err := Decompose(v)
	if err != nil {
		return fixedbytes.FixedBytes{}, err
	}
	return fixedbytes.FromBytes(raw), nil
}

// FromFixedBytes fills *out from a container's bytes.
func FromFixedBytes(fb fixedbytes.FixedBytes, out any) error {
	return Recompose(fb.Bytes(), out)
}

// Codec is a composer restricted to an allow list of types. A nil allow
// list permits every composable type.
type Codec struct {
	Allowed *typeset.Set
}

// NewCodec returns a Codec restricted to the given set.
func NewCodec(allowed *typeset.Set) *Codec {
	return &Codec{Allowed: allowed}
}

func (c *Codec) permitted(v any) bool {
	if c.Allowed == nil {
		return true
	}
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return c.Allowed.ContainsType(t)
}

// Decompose is Decompose gated by the allow list.
func (c *Codec) Decompose(v any) ([]byte, error) {
	if !c.permitted(v) {
		return nil, ErrNotAllowed
	}
	return Decompose(v)
}

// Recompose is Recompose gated by the allow list.
func (c *Codec) Recompose(data []byte, out any) error {
	if !c.permitted(out) {
		return ErrNotAllowed
	}
	return Recompose(data, out)
}

// ToFixedBytes is ToFixedBytes gated by the allow list.
func (c *Codec) ToFixedBytes(v any) (fixedbytes.FixedBytes, error) {
	if !c.permitted(v) {
		return fixedbytes.FixedBytes{}, ErrNotAllowed
	}
	return ToFixedBytes(v)
}
