package champ

import (
	"fmt"
	"io"
	"strings"
)

// Set is a persistent hash set with the same sharing and concurrency
// properties as Dict.
type Set[K any] struct {
	dict Dict[K, struct{}]
}

// NewSet returns an empty Set. A nil hasher selects the built-in one for K.
func NewSet[K any](hasher Hasher[K]) Set[K] {
	return Set[K]{dict: NewDict[K, struct{}](hasher)}
}

// SetOf returns a Set holding the given keys.
func SetOf[K any](hasher Hasher[K], keys ...K) Set[K] {
	b := NewSetBuilder[K](hasher)
	for _, k := range keys {
		b.Insert(k)
	}

	return b.Set()
}

// Len returns the number of keys.
func (s Set[K]) Len() int {
	return s.dict.Len()
}

// Has reports whether key is present.
func (s Set[K]) Has(key K) bool {
	return s.dict.Has(key)
}

// Insert returns a Set containing key and whether key was already present.
func (s Set[K]) Insert(key K) (Set[K], bool) {
	d, present := s.dict.Set(key, struct{}{})
	return Set[K]{dict: d}, present
}

// Delete returns a Set without key; s itself when key is absent.
func (s Set[K]) Delete(key K) Set[K] {
	return Set[K]{dict: s.dict.Delete(key)}
}

// Union returns the keys present in either set.
func (s Set[K]) Union(other Set[K]) Set[K] {
	return Set[K]{dict: s.dict.Merge(other.dict, nil)}
}

// Intersection returns the keys present in both sets.
func (s Set[K]) Intersection(other Set[K]) Set[K] {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}

	return small.Filter(large.Has)
}

// Subtract returns the keys of s not present in other.
func (s Set[K]) Subtract(other Set[K]) Set[K] {
	if s.Len() <= other.Len() {
		return s.Filter(func(k K) bool { return !other.Has(k) })
	}

	b := s.dict.Builder()

	other.All(func(k K) bool {
		b.Delete(k)
		return true
	})

	return Set[K]{dict: b.Dict()}
}

// IsSubset reports whether every key of s is present in other.
func (s Set[K]) IsSubset(other Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}

	subset := true

	s.All(func(k K) bool {
		subset = other.Has(k)
		return subset
	})

	return subset
}

// Filter returns the keys for which keep returns true.
func (s Set[K]) Filter(keep func(key K) bool) Set[K] {
	return Set[K]{dict: s.dict.Filter(func(k K, _ struct{}) bool { return keep(k) })}
}

// Equal reports whether both sets hold the same keys. Both sets are expected
// to use the same hasher.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.dict.Equal(other.dict, func(_, _ struct{}) bool { return true })
}

// All calls yield for every key in hash order until yield returns false.
func (s Set[K]) All(yield func(key K) bool) {
	s.dict.All(func(k K, _ struct{}) bool { return yield(k) })
}

// Slice returns the keys in hash order.
func (s Set[K]) Slice() []K {
	return s.dict.Keys()
}

// Iterator returns a new iterator over the keys; its values are empty.
func (s Set[K]) Iterator() *Iterator[K, struct{}] {
	return s.dict.Iterator()
}

// Builder returns a builder starting from the contents of s.
func (s Set[K]) Builder() *SetBuilder[K] {
	return &SetBuilder[K]{dict: s.dict.Builder()}
}

// Stats walks the trie and describes its shape.
func (s Set[K]) Stats() Stats {
	return s.dict.Stats()
}

// DebugDump writes the trie layout to w.
func (s Set[K]) DebugDump(w io.Writer) {
	s.dict.DebugDump(w)
}

func (s Set[K]) String() string {
	var b strings.Builder

	b.WriteString("champ.Set{")

	first := true

	s.All(func(k K) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&b, "%v", k)

		return true
	})

	b.WriteByte('}')

	return b.String()
}
