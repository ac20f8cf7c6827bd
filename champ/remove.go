package champ

// remove deletes key from the subtree at depth. When the key is absent the
// very same node is returned, so a no-op is detected by pointer identity.
//
// A child left with a single entry is pulled up into n, which keeps every
// non-root node holding at least two entries (canonical form).
func (n *node[K, V]) remove(e *edit, key K, hash uint64, depth int, h Hasher[K], res *result[K, V]) *node[K, V] {
	if n.kind == collisionKind {
		return n.collisionRemove(e, key, h, res)
	}

	bit := bitpos(partition(hash, depth))

	switch {
	case n.dataMap&bit != 0:
		cur := n.entries[index(n.dataMap, bit)]
		if cur.hash != hash || !h.Equal(cur.key, key) {
			return n
		}

		res.hit(cur.value)

		m := n.editable(e)
		m.removeEntry(bit)

		return m

	case n.nodeMap&bit != 0:
		var (
			idx   = index(n.nodeMap, bit)
			old   = n.children[idx]
			child = old.remove(e, key, hash, depth+1, h, res)
		)

		if !res.ok {
			return n
		}

		if en, ok := child.single(); ok {
			// the child collapsed - inline its last entry
			m := n.editable(e)
			m.childToEntry(bit, en)

			return m
		}

		if child == old {
			return n
		}

		m := n.editable(e)
		m.children[idx] = child

		return m

	default:
		return n
	}
}
