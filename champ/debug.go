package champ

import (
	"fmt"
	"io"
	"strings"
)

// Stats describes the shape of a trie.
type Stats struct {
	Nodes      int // bitmap nodes
	Collisions int // collision nodes
	Entries    int
	MaxDepth   int
	Levels     [maxDepth + 1]int // entries per depth
}

func (n *node[K, V]) collectStats(depth int, st *Stats) {
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}

	if n.kind == collisionKind {
		st.Collisions++
	} else {
		st.Nodes++
	}

	st.Entries += len(n.entries)
	st.Levels[depth] += len(n.entries)

	for _, child := range n.children {
		child.collectStats(depth+1, st)
	}
}

func trieStats[K, V any](root *node[K, V]) Stats {
	var st Stats
	if root != nil {
		root.collectStats(0, &st)
	}

	return st
}

func debugString[K, V any](root *node[K, V]) string {
	var b strings.Builder
	debugDump(&b, root)

	return b.String()
}

func debugDump[K, V any](w io.Writer, root *node[K, V]) {
	if root == nil {
		fmt.Fprintln(w, "T: EMPTY")
		return
	}

	root.dump(w, "T:", 0, "")
}

func (n *node[K, V]) dump(w io.Writer, tag string, depth int, indent string) {
	if n.kind == collisionKind {
		fmt.Fprintf(w, "%s%s COLLISION depth=%d %v\n", indent, tag, depth, n)

		for _, en := range n.entries {
			fmt.Fprintf(w, "%s  = key=%v val=%v\n", indent, en.key, en.value)
		}

		return
	}

	fmt.Fprintf(w, "%s%s NODE depth=%d data=%032b node=%032b\n", indent, tag, depth, n.dataMap, n.nodeMap)

	var (
		di, ni int
		sub    = indent + "  "
	)

	for part := 0; part < branchFactor; part++ {
		bit := bitpos(part)

		switch {
		case n.dataMap&bit != 0:
			en := &n.entries[di]
			di++
			fmt.Fprintf(w, "%s%02d: key=%v val=%v hash=%016x\n", sub, part, en.key, en.value, en.hash)
		case n.nodeMap&bit != 0:
			child := n.children[ni]
			ni++
			child.dump(w, fmt.Sprintf("%02d:", part), depth+1, sub)
		}
	}
}
