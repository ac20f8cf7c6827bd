package champ

// find returns the position of key among the entries of a collision node or -1.
func (n *node[K, V]) find(key K, h Hasher[K]) int {
	for i := range n.entries {
		if h.Equal(n.entries[i].key, key) {
			return i
		}
	}

	return -1
}

func (n *node[K, V]) collisionInsert(e *edit, en entry[K, V], h Hasher[K], res *result[K, V]) *node[K, V] {
	if i := n.find(en.key, h); i >= 0 {
		res.hit(n.entries[i].value)

		m := n.editable(e)
		m.entries[i].value = res.resolve(m.entries[i].key, m.entries[i].value, en.value)

		return m
	}

	m := n.editable(e)
	m.entries = append(m.entries, en)

	return m
}

// collisionRemove may leave a single entry behind; the parent inlines it.
func (n *node[K, V]) collisionRemove(e *edit, key K, h Hasher[K], res *result[K, V]) *node[K, V] {
	i := n.find(key, h)
	if i < 0 {
		return n
	}

	res.hit(n.entries[i].value)

	m := n.editable(e)
	last := len(m.entries) - 1

	copy(m.entries[i:], m.entries[i+1:])
	m.entries[last] = entry[K, V]{}
	m.entries = m.entries[:last]

	return m
}

func (n *node[K, V]) collisionMerge(e *edit, o *node[K, V], h Hasher[K], res *result[K, V]) *node[K, V] {
	m := n.editable(e)

	for _, en := range o.entries {
		if i := m.find(en.key, h); i >= 0 {
			res.hit(m.entries[i].value)
			m.entries[i].value = res.resolve(en.key, m.entries[i].value, en.value)

			continue
		}

		m.entries = append(m.entries, en)
	}

	return m
}

// collisionEqual compares collision nodes as unordered sets: their entry
// order depends on the insertion history.
func (n *node[K, V]) collisionEqual(o *node[K, V], h Hasher[K], eq func(a, b V) bool) bool {
	if len(n.entries) != len(o.entries) {
		return false
	}

	for _, en := range n.entries {
		i := o.find(en.key, h)
		if i < 0 || !eq(en.value, o.entries[i].value) {
			return false
		}
	}

	return true
}
