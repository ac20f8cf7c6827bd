package champ

// insert adds en to the subtree at depth and returns the new subtree root.
// Nodes not owned by e are cloned on the way down, so only the path to the
// changed slot is copied.
func (n *node[K, V]) insert(e *edit, en entry[K, V], depth int, h Hasher[K], res *result[K, V]) *node[K, V] {
	if n.kind == collisionKind {
		return n.collisionInsert(e, en, h, res)
	}

	bit := bitpos(partition(en.hash, depth))

	switch {
	case n.dataMap&bit != 0:
		var (
			idx = index(n.dataMap, bit)
			cur = n.entries[idx]
		)

		if cur.hash == en.hash && h.Equal(cur.key, en.key) {
			// same key - replace the value
			res.hit(cur.value)

			m := n.editable(e)
			m.entries[idx].value = res.resolve(cur.key, cur.value, en.value)

			return m
		}

		// a different key in the slot - push both one level down
		child := mergeTwo(e, cur, en, depth+1)

		m := n.editable(e)
		m.entryToChild(bit, child)

		return m

	case n.nodeMap&bit != 0:
		var (
			idx   = index(n.nodeMap, bit)
			old   = n.children[idx]
			child = old.insert(e, en, depth+1, h, res)
		)

		if child == old {
			// edited in place: n is owned by e as well
			return n
		}

		m := n.editable(e)
		m.children[idx] = child

		return m

	default:
		m := n.editable(e)
		m.insertEntry(bit, en)

		return m
	}
}
