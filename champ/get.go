package champ

func (n *node[K, V]) get(key K, hash uint64, depth int, h Hasher[K]) (V, bool) {
	for cur := n; ; depth++ {
		if cur.kind == collisionKind {
			if i := cur.find(key, h); i >= 0 {
				return cur.entries[i].value, true
			}

			break
		}

		bit := bitpos(partition(hash, depth))

		if cur.dataMap&bit != 0 {
			en := &cur.entries[index(cur.dataMap, bit)]
			if en.hash == hash && h.Equal(en.key, key) {
				return en.value, true
			}

			break
		}

		if cur.nodeMap&bit == 0 {
			break
		}

		cur = cur.children[index(cur.nodeMap, bit)]
	}

	var zero V

	return zero, false
}
