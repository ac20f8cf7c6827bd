package champ

// merge returns the union of two subtrees located at the same depth. Keys
// present on both sides are resolved with res.combine(key, left, right) and
// counted in res.hits. Subtrees present on one side only are shared as is.
func (n *node[K, V]) merge(e *edit, o *node[K, V], depth int, h Hasher[K], res *result[K, V]) *node[K, V] {
	if n == o && res.combine == nil {
		// the right side wins and it is the very same subtree
		res.hits += n.count()
		return n
	}

	if n.kind == collisionKind || o.kind == collisionKind {
		invariant(n.kind == o.kind, "merge: collision node meets a bitmap node")

		return n.collisionMerge(e, o, h, res)
	}

	var (
		dataMap, nodeMap uint32
		entries          = make([]entry[K, V], 0, len(n.entries)+len(o.entries))
		children         = make([]*node[K, V], 0, len(n.children)+len(o.children))
		all              = n.dataMap | n.nodeMap | o.dataMap | o.nodeMap
	)

	for all != 0 {
		bit := all & -all // lowest set bit first keeps both arrays ordered
		all &^= bit

		switch {
		case n.dataMap&bit != 0 && o.dataMap&bit != 0:
			var (
				a = n.entries[index(n.dataMap, bit)]
				b = o.entries[index(o.dataMap, bit)]
			)

			if a.hash == b.hash && h.Equal(a.key, b.key) {
				res.hit(a.value)
				a.value = res.resolve(a.key, a.value, b.value)
				entries = append(entries, a)
				dataMap |= bit

				continue
			}

			children = append(children, mergeTwo(e, a, b, depth+1))
			nodeMap |= bit

		case n.dataMap&bit != 0 && o.nodeMap&bit != 0:
			// the left entry goes into the right subtree, it stays on the left
			// side of combine
			var (
				a     = n.entries[index(n.dataMap, bit)]
				right = o.children[index(o.nodeMap, bit)]
				flip  = &result[K, V]{combine: flipped(res)}
			)

			children = append(children, right.insert(e, a, depth+1, h, flip))
			res.hits += flip.hits
			nodeMap |= bit

		case n.nodeMap&bit != 0 && o.dataMap&bit != 0:
			var (
				left = n.children[index(n.nodeMap, bit)]
				b    = o.entries[index(o.dataMap, bit)]
			)

			children = append(children, left.insert(e, b, depth+1, h, res))
			nodeMap |= bit

		case n.nodeMap&bit != 0 && o.nodeMap&bit != 0:
			var (
				left  = n.children[index(n.nodeMap, bit)]
				right = o.children[index(o.nodeMap, bit)]
			)

			children = append(children, left.merge(e, right, depth+1, h, res))
			nodeMap |= bit

		case n.dataMap&bit != 0:
			entries = append(entries, n.entries[index(n.dataMap, bit)])
			dataMap |= bit

		case o.dataMap&bit != 0:
			entries = append(entries, o.entries[index(o.dataMap, bit)])
			dataMap |= bit

		case n.nodeMap&bit != 0:
			children = append(children, n.children[index(n.nodeMap, bit)])
			nodeMap |= bit

		default:
			children = append(children, o.children[index(o.nodeMap, bit)])
			nodeMap |= bit
		}
	}

	return newBitmapNode(e, dataMap, nodeMap, entries, children)
}

// flipped adapts res.combine for inserting a left-hand entry into a right-hand
// subtree, where insert passes the right value as the old one.
func flipped[K, V any](res *result[K, V]) func(key K, old, val V) V {
	return func(key K, right, left V) V {
		if res.combine == nil {
			return right
		}

		return res.combine(key, left, right)
	}
}
