package champ

// equal compares two canonical subtrees structurally. Shared subtrees are
// equal by identity without descending into them.
func (n *node[K, V]) equal(o *node[K, V], h Hasher[K], eq func(a, b V) bool) bool {
	if n == o {
		return true
	}

	if n.kind != o.kind {
		return false
	}

	if n.kind == collisionKind {
		return n.collisionEqual(o, h, eq)
	}

	if n.dataMap != o.dataMap || n.nodeMap != o.nodeMap {
		return false
	}

	for i := range n.entries {
		a, b := &n.entries[i], &o.entries[i]

		if a.hash != b.hash || !h.Equal(a.key, b.key) || !eq(a.value, b.value) {
			return false
		}
	}

	for i, child := range n.children {
		if !child.equal(o.children[i], h, eq) {
			return false
		}
	}

	return true
}
