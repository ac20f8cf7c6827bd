package champ

// edit identifies one editing session. Every node remembers the session that
// allocated it and may only be changed in place by that same session; any
// other node is cloned first. A persistent operation runs under a fresh edit,
// so nothing reachable from an already published root is ever mutated. A
// Builder keeps its edit across calls and drops it on publishing.
//
// A nil *edit owns nothing.
type edit struct {
	cloned int // nodes copied on write during the session
}

func newEdit() *edit {
	return &edit{}
}

// ownedBy reports whether n may be mutated in place under e.
func (n *node[K, V]) ownedBy(e *edit) bool {
	return e != nil && n.edit == e
}

// editable returns n itself when e owns it, otherwise a copy owned by e.
func (n *node[K, V]) editable(e *edit) *node[K, V] {
	if n.ownedBy(e) {
		return n
	}

	if e != nil {
		e.cloned++
	}

	return n.clone(e)
}
