package champ

// Iterator walks the entries of a trie in hash order: the entries of a node
// come first, then the contents of its children, each in ascending partition
// order. Iterators are cheap and independent; the trie never changes under
// them.
//
//	for it := d.Iterator(); it.Next(); {
//	    key, val := it.Key(), it.Value()
//	    ...
//	}
type Iterator[K, V any] struct {
	root  *node[K, V]
	stack []iterFrame[K, V]
	cur   *entry[K, V]
}

type iterFrame[K, V any] struct {
	node *node[K, V]
	pos  int // entries first, then children
}

func newIterator[K, V any](root *node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{root: root}
	it.Reset()

	return it
}

// Reset rewinds the iterator to the first entry.
func (it *Iterator[K, V]) Reset() {
	it.cur = nil
	it.stack = it.stack[:0]

	if it.root != nil {
		it.stack = append(it.stack, iterFrame[K, V]{node: it.root})
	}
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	for len(it.stack) > 0 {
		var (
			top = &it.stack[len(it.stack)-1]
			n   = top.node
		)

		if top.pos < len(n.entries) {
			it.cur = &n.entries[top.pos]
			top.pos++

			return true
		}

		if c := top.pos - len(n.entries); c < len(n.children) {
			top.pos++
			it.stack = append(it.stack, iterFrame[K, V]{node: n.children[c]})

			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
	}

	it.cur = nil

	return false
}

// Key returns the key of the current entry.
func (it *Iterator[K, V]) Key() K {
	if it.cur == nil {
		var zero K
		return zero
	}

	return it.cur.key
}

// Value returns the value of the current entry.
func (it *Iterator[K, V]) Value() V {
	if it.cur == nil {
		var zero V
		return zero
	}

	return it.cur.value
}

// each calls yield for every entry in the subtree until yield returns false.
func (n *node[K, V]) each(yield func(K, V) bool) bool {
	for i := range n.entries {
		if !yield(n.entries[i].key, n.entries[i].value) {
			return false
		}
	}

	for _, child := range n.children {
		if !child.each(yield) {
			return false
		}
	}

	return true
}
