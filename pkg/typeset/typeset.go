// Package typeset provides an ordered registry of types with index lookup
// and size/alignment aggregation. It is the runtime counterpart of a
// compile-time type list: membership, type-at-index, index-of-type and the
// aggregate maximum size and alignment over the set.
package typeset

import "reflect"

// Set is an ordered, de-duplicated collection of types. The zero value is
// an empty set.
type Set struct {
	types []reflect.Type
	index map[reflect.Type]int
}

// New builds a set from types in order, keeping the first occurrence of a
// duplicate. Nil entries are skipped.
func New(types ...reflect.Type) *Set {
	s := &Set{index: make(map[reflect.Type]int, len(types))}
	for _, t := range types {
		if t == nil {
			continue
		}
		if _, ok := s.index[t]; ok {
			continue
		}
		s.index[t] = len(s.types)
		s.types = append(s.types, t)
	}
	return s
}

// Of builds a set from the dynamic types of the given values.
func Of(vals ...any) *Set {
	types := make([]reflect.Type, 0, len(vals))
	for _, v := range vals {
		types = append(types, reflect.TypeOf(v))
	}
	return New(types...)
}

// Count returns the number of distinct types in the set.
func (s *Set) Count() int { return len(s.types) }

// TypeAt returns the type at position i, or false if i is out of range.
func (s *Set) TypeAt(i int) (reflect.Type, bool) {
	if i < 0 || i >= len(s.types) {
		return nil, false
	}
	return s.types[i], true
}

// IndexOfType returns the position of t in the set, or false if absent.
func (s *Set) IndexOfType(t reflect.Type) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

// IndexOf returns the position of v's dynamic type in the set.
func (s *Set) IndexOf(v any) (int, bool) {
	return s.IndexOfType(reflect.TypeOf(v))
}

// ContainsType reports whether t is in the set.
func (s *Set) ContainsType(t reflect.Type) bool {
	_, ok := s.index[t]
	return ok
}

// Contains reports whether v's dynamic type is in the set.
func (s *Set) Contains(v any) bool {
	return s.ContainsType(reflect.TypeOf(v))
}

// MaxSize returns the largest byte size among the set's types, 0 for an
// empty set.
func (s *Set) MaxSize() int {
	max := 0
	for _, t := range s.types {
		if sz := int(t.Size()); sz > max {
			max = sz
		}
	}
	return max
}

// MaxAlign returns the strictest alignment among the set's types, 0 for an
// empty set.
func (s *Set) MaxAlign() int {
	max := 0
	for _, t := range s.types {
		if a := t.Align(); a > max {
			max = a
		}
	}
	return max
}
