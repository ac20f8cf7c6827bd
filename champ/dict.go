package champ

import (
	"fmt"
	"io"
	"strings"
)

// Dict is a persistent hash map. It is a small value: copying it is cheap and
// every modifying method returns a new Dict sharing structure with the old
// one, which itself never changes. A Dict is safe for concurrent reads.
//
// The zero Dict is empty and picks NewHasher[K]() on first insertion.
type Dict[K, V any] struct {
	root   *node[K, V] // nil when empty
	size   int
	hasher Hasher[K]
}

// NewDict returns an empty Dict using the given hasher. A nil hasher selects
// the built-in one for K.
func NewDict[K, V any](hasher Hasher[K]) Dict[K, V] {
	if hasher == nil {
		hasher = NewHasher[K]()
	}

	return Dict[K, V]{hasher: hasher}
}

// DictOf returns a Dict holding the entries of a builtin map.
func DictOf[K comparable, V any](hasher Hasher[K], entries map[K]V) Dict[K, V] {
	b := NewDictBuilder[K, V](hasher)
	for k, v := range entries {
		b.Set(k, v)
	}

	return b.Dict()
}

func (d Dict[K, V]) hash() Hasher[K] {
	if d.hasher == nil {
		return NewHasher[K]()
	}

	return d.hasher
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int {
	return d.size
}

// Get returns the value stored under key and whether the key is present.
func (d Dict[K, V]) Get(key K) (V, bool) {
	if d.root == nil {
		var zero V
		return zero, false
	}

	h := d.hash()

	return d.root.get(key, h.Hash(key), 0, h)
}

// Has reports whether key is present.
func (d Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Set returns a Dict with key mapped to value and whether an existing value
// was replaced.
func (d Dict[K, V]) Set(key K, value V) (Dict[K, V], bool) {
	res := result[K, V]{}
	nd := d.insert(newEdit(), key, value, &res)

	return nd, res.ok
}

// Update returns a Dict with key mapped to fn(old, ok), where ok reports
// whether the key was present.
func (d Dict[K, V]) Update(key K, fn func(old V, ok bool) V) Dict[K, V] {
	old, ok := d.Get(key)
	nd, _ := d.Set(key, fn(old, ok))

	return nd
}

// Delete returns a Dict without key. If the key is absent d itself is
// returned, sharing its root.
func (d Dict[K, V]) Delete(key K) Dict[K, V] {
	nd, _, _ := d.Remove(key)
	return nd
}

// Remove is like Delete and also returns the removed value.
func (d Dict[K, V]) Remove(key K) (Dict[K, V], V, bool) {
	res := result[K, V]{}
	nd := d.remove(newEdit(), key, &res)

	return nd, res.old, res.ok
}

// Merge returns the union of d and other. For keys present in both the value
// is combine(key, dValue, otherValue); a nil combine keeps other's value.
// Both dicts are expected to use the same hasher.
func (d Dict[K, V]) Merge(other Dict[K, V], combine func(key K, a, b V) V) Dict[K, V] {
	switch {
	case other.root == nil:
		return d
	case d.root == nil:
		return other
	}

	var (
		h   = d.hash()
		res = result[K, V]{combine: combine}
		nd  = d
	)

	nd.hasher = h
	nd.root = d.root.merge(newEdit(), other.root, 0, h, &res)
	nd.size = d.size + other.size - res.hits

	checkInvariants(nd.root, nd.size, h)

	return nd
}

// Filter returns a Dict holding the entries for which keep returns true.
func (d Dict[K, V]) Filter(keep func(key K, value V) bool) Dict[K, V] {
	b := d.Builder()

	d.All(func(k K, v V) bool {
		if !keep(k, v) {
			b.Delete(k)
		}

		return true
	})

	return b.Dict()
}

// All calls yield for every entry in hash order until yield returns false.
func (d Dict[K, V]) All(yield func(key K, value V) bool) {
	if d.root != nil {
		d.root.each(yield)
	}
}

// Keys returns all the keys in hash order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.size)

	d.All(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// Values returns all the values in hash order of their keys.
func (d Dict[K, V]) Values() []V {
	vals := make([]V, 0, d.size)

	d.All(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})

	return vals
}

// Iterator returns a new iterator positioned before the first entry.
func (d Dict[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(d.root)
}

// Equal reports whether d and other hold the same entries, comparing values
// with eq. Both dicts are expected to use the same hasher: the comparison is
// structural and relies on equal contents producing identical tries.
func (d Dict[K, V]) Equal(other Dict[K, V], eq func(a, b V) bool) bool {
	if d.size != other.size {
		return false
	}

	if d.root == other.root {
		return true
	}

	return d.root.equal(other.root, d.hash(), eq)
}

// Builder returns a builder starting from the contents of d.
func (d Dict[K, V]) Builder() *DictBuilder[K, V] {
	d.hasher = d.hash()

	return &DictBuilder[K, V]{dict: d, edit: newEdit()}
}

// Stats walks the trie and describes its shape.
func (d Dict[K, V]) Stats() Stats {
	return trieStats(d.root)
}

// DebugDump writes the trie layout to w.
func (d Dict[K, V]) DebugDump(w io.Writer) {
	debugDump(w, d.root)
}

func (d Dict[K, V]) String() string {
	var b strings.Builder

	b.WriteString("champ.Dict{")

	first := true

	d.All(func(k K, v V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&b, "%v: %v", k, v)

		return true
	})

	b.WriteByte('}')

	return b.String()
}

// insert is Set under a given edit session. Nodes owned by e are changed in
// place.
func (d Dict[K, V]) insert(e *edit, key K, value V, res *result[K, V]) Dict[K, V] {
	var (
		h  = d.hash()
		en = entry[K, V]{key: key, value: value, hash: h.Hash(key)}
		nd = d
	)

	nd.hasher = h

	if d.root == nil {
		bit := bitpos(partition(en.hash, 0))
		nd.root = newBitmapNode(e, bit, 0, []entry[K, V]{en}, nil)
		nd.size = 1

		checkInvariants(nd.root, nd.size, h)

		return nd
	}

	nd.root = d.root.insert(e, en, 0, h, res)
	if !res.ok {
		nd.size++
	}

	checkInvariants(nd.root, nd.size, h)

	return nd
}

// remove is Remove under a given edit session.
func (d Dict[K, V]) remove(e *edit, key K, res *result[K, V]) Dict[K, V] {
	if d.root == nil {
		return d
	}

	h := d.hash()
	root := d.root.remove(e, key, h.Hash(key), 0, h, res)

	if !res.ok {
		return d
	}

	nd := d
	nd.hasher = h
	nd.size--
	nd.root = root

	if root.isEmpty() {
		nd.root = nil
	}

	checkInvariants(nd.root, nd.size, h)

	return nd
}
