package champ

import (
	"fmt"
	"strings"
)

type nodeKind uint8

const (
	bitmapKind nodeKind = iota
	collisionKind
)

// entry is an inline key/value pair. The hash is kept to re-place the entry
// when its slot has to be split without hashing the key again.
type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
}

// node is a trie node. Bitmap nodes use dataMap/nodeMap to address entries
// and children; collision nodes only use entries.
type node[K, V any] struct {
	kind     nodeKind
	dataMap  uint32
	nodeMap  uint32
	entries  []entry[K, V]
	children []*node[K, V]
	edit     *edit // session allowed to mutate the node in place
}

func newBitmapNode[K, V any](e *edit, dataMap, nodeMap uint32, entries []entry[K, V], children []*node[K, V]) *node[K, V] {
	return &node[K, V]{
		kind:     bitmapKind,
		dataMap:  dataMap,
		nodeMap:  nodeMap,
		entries:  entries,
		children: children,
		edit:     e,
	}
}

func newCollisionNode[K, V any](e *edit, entries []entry[K, V]) *node[K, V] {
	return &node[K, V]{
		kind:    collisionKind,
		entries: entries,
		edit:    e,
	}
}

// mergeTwo builds the smallest subtree at depth holding two entries with
// different keys.
func mergeTwo[K, V any](e *edit, a, b entry[K, V], depth int) *node[K, V] {
	if depth >= maxDepth {
		// all the hash bits are exhausted
		return newCollisionNode(e, []entry[K, V]{a, b})
	}

	var (
		partA = partition(a.hash, depth)
		partB = partition(b.hash, depth)
	)

	if partA == partB {
		// still the same slot - one level deeper
		child := mergeTwo(e, a, b, depth+1)

		return newBitmapNode(e, 0, bitpos(partA), nil, []*node[K, V]{child})
	}

	entries := []entry[K, V]{a, b}
	if partB < partA {
		entries[0], entries[1] = b, a
	}

	return newBitmapNode(e, bitpos(partA)|bitpos(partB), 0, entries, nil)
}

func (n *node[K, V]) clone(e *edit) *node[K, V] {
	c := *n
	c.edit = e
	c.entries = make([]entry[K, V], len(n.entries))
	copy(c.entries, n.entries)

	if n.children != nil {
		c.children = make([]*node[K, V], len(n.children))
		copy(c.children, n.children)
	}

	return &c
}

func (n *node[K, V]) isEmpty() bool {
	return n.kind == bitmapKind && n.dataMap|n.nodeMap == 0
}

// single returns the only entry of a node that should be inlined into its
// parent: a bitmap node with one entry and no children, or a collision node
// left with one entry.
func (n *node[K, V]) single() (entry[K, V], bool) {
	if len(n.entries) == 1 && len(n.children) == 0 {
		return n.entries[0], true
	}

	return entry[K, V]{}, false
}

// count walks the subtree and returns the number of entries in it.
func (n *node[K, V]) count() int {
	total := len(n.entries)
	for _, child := range n.children {
		total += child.count()
	}

	return total
}

// -- in-place edits: the caller must own n --

func (n *node[K, V]) insertEntry(bit uint32, en entry[K, V]) {
	invariant(n.dataMap&bit == 0 && n.nodeMap&bit == 0, "insertEntry: slot is occupied")

	idx := index(n.dataMap, bit)

	n.entries = append(n.entries, entry[K, V]{})
	copy(n.entries[idx+1:], n.entries[idx:])
	n.entries[idx] = en
	n.dataMap |= bit
}

func (n *node[K, V]) removeEntry(bit uint32) {
	invariant(n.dataMap&bit != 0, "removeEntry: no entry in slot")

	idx := index(n.dataMap, bit)
	last := len(n.entries) - 1

	copy(n.entries[idx:], n.entries[idx+1:])
	n.entries[last] = entry[K, V]{} // release the references
	n.entries = n.entries[:last]
	n.dataMap &^= bit
}

func (n *node[K, V]) insertChild(bit uint32, child *node[K, V]) {
	invariant(n.dataMap&bit == 0 && n.nodeMap&bit == 0, "insertChild: slot is occupied")

	idx := index(n.nodeMap, bit)

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	n.nodeMap |= bit
}

func (n *node[K, V]) removeChild(bit uint32) {
	invariant(n.nodeMap&bit != 0, "removeChild: no child in slot")

	idx := index(n.nodeMap, bit)
	last := len(n.children) - 1

	copy(n.children[idx:], n.children[idx+1:])
	n.children[last] = nil
	n.children = n.children[:last]
	n.nodeMap &^= bit
}

// entryToChild replaces the entry in bit's slot with a subtree.
func (n *node[K, V]) entryToChild(bit uint32, child *node[K, V]) {
	n.removeEntry(bit)
	n.insertChild(bit, child)
}

// childToEntry replaces the subtree in bit's slot with a single entry.
func (n *node[K, V]) childToEntry(bit uint32, en entry[K, V]) {
	n.removeChild(bit)
	n.insertEntry(bit, en)
}

func (n *node[K, V]) String() string {
	var b strings.Builder

	b.WriteString("<champ|")

	switch n.kind {
	case collisionKind:
		b.WriteString("Collision")
		if len(n.entries) > 0 {
			b.WriteString(fmt.Sprintf("|hash:%016x", n.entries[0].hash))
		}
		b.WriteString(fmt.Sprintf("|entries:%d", len(n.entries)))
	default:
		b.WriteString("Bitmap")
		b.WriteString(fmt.Sprintf("|data:%032b", n.dataMap))
		b.WriteString(fmt.Sprintf("|node:%032b", n.nodeMap))
	}

	b.WriteByte('>')

	return b.String()
}
