package champ

// DictBuilder accumulates changes to a Dict in place. Nodes created by the
// builder are edited without copying until Dict is called; nodes shared with
// published dicts are copied on first write. A builder is not safe for
// concurrent use.
type DictBuilder[K, V any] struct {
	dict Dict[K, V]
	edit *edit
}

// NewDictBuilder returns a builder for an empty Dict. A nil hasher selects
// the built-in one for K.
func NewDictBuilder[K, V any](hasher Hasher[K]) *DictBuilder[K, V] {
	return NewDict[K, V](hasher).Builder()
}

// Len returns the number of entries.
func (b *DictBuilder[K, V]) Len() int {
	return b.dict.Len()
}

// Get returns the value stored under key.
func (b *DictBuilder[K, V]) Get(key K) (V, bool) {
	return b.dict.Get(key)
}

// Set maps key to value and reports whether an existing value was replaced.
func (b *DictBuilder[K, V]) Set(key K, value V) bool {
	res := result[K, V]{}
	b.dict = b.dict.insert(b.edit, key, value, &res)

	return res.ok
}

// Delete removes key and reports whether it was present.
func (b *DictBuilder[K, V]) Delete(key K) bool {
	res := result[K, V]{}
	b.dict = b.dict.remove(b.edit, key, &res)

	return res.ok
}

// Dict publishes the current contents. The builder stays usable: its next
// change copies whatever it touches, so the returned Dict never changes.
func (b *DictBuilder[K, V]) Dict() Dict[K, V] {
	b.edit = newEdit()
	return b.dict
}

// SetBuilder accumulates changes to a Set in place, see DictBuilder.
type SetBuilder[K any] struct {
	dict *DictBuilder[K, struct{}]
}

// NewSetBuilder returns a builder for an empty Set. A nil hasher selects the
// built-in one for K.
func NewSetBuilder[K any](hasher Hasher[K]) *SetBuilder[K] {
	return &SetBuilder[K]{dict: NewDictBuilder[K, struct{}](hasher)}
}

// Len returns the number of keys.
func (b *SetBuilder[K]) Len() int {
	return b.dict.Len()
}

// Has reports whether key is present.
func (b *SetBuilder[K]) Has(key K) bool {
	_, ok := b.dict.Get(key)
	return ok
}

// Insert adds key and reports whether it was already present.
func (b *SetBuilder[K]) Insert(key K) bool {
	return b.dict.Set(key, struct{}{})
}

// Delete removes key and reports whether it was present.
func (b *SetBuilder[K]) Delete(key K) bool {
	return b.dict.Delete(key)
}

// Set publishes the current contents, see DictBuilder.Dict.
func (b *SetBuilder[K]) Set() Set[K] {
	return Set[K]{dict: b.dict.Dict()}
}
