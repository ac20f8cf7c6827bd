package champ

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

func invariant(cond bool, msg string) {
	if invariants && !cond {
		panic("invariant failed: " + msg)
	}
}

// prefixMask masks the hash bits consumed above depth.
func prefixMask(depth int) uint64 {
	if depth*bitsPerLevel >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<(uint(depth)*bitsPerLevel) - 1
}

// validate checks the subtree at depth and returns every violation found.
// prefix holds the hash bits every entry below n must start with.
func (n *node[K, V]) validate(h Hasher[K], depth int, prefix uint64, isRoot bool) error {
	var err error

	if n.kind == collisionKind {
		return n.validateCollision(h, depth, prefix)
	}

	if depth >= maxDepth {
		err = multierr.Append(err, errors.Errorf("depth %d: bitmap node below the last hash level", depth))
	}

	if n.dataMap&n.nodeMap != 0 {
		err = multierr.Append(err, errors.Errorf(
			"depth %d: dataMap %032b overlaps nodeMap %032b", depth, n.dataMap, n.nodeMap))
	}

	if got, exp := len(n.entries), arity(n.dataMap); got != exp {
		err = multierr.Append(err, errors.Errorf("depth %d: %d entries for %d data bits", depth, got, exp))
	}

	if got, exp := len(n.children), arity(n.nodeMap); got != exp {
		err = multierr.Append(err, errors.Errorf("depth %d: %d children for %d node bits", depth, got, exp))
	}

	if err != nil {
		// the addressing is broken, the rest would only add noise
		return err
	}

	if !isRoot {
		switch {
		case n.isEmpty():
			err = multierr.Append(err, errors.Errorf("depth %d: empty non-root node", depth))
		case n.nodeMap == 0 && len(n.entries) == 1:
			err = multierr.Append(err, errors.Errorf("depth %d: single-entry node not inlined", depth))
		}
	}

	mask := prefixMask(depth)

	for i := range n.entries {
		en := &n.entries[i]
		bit := bitpos(partition(en.hash, depth))

		if n.dataMap&bit == 0 || index(n.dataMap, bit) != i {
			err = multierr.Append(err, errors.Errorf(
				"depth %d: entry %v with hash %016x stored in slot %d", depth, en.key, en.hash, i))
		}

		if en.hash&mask != prefix {
			err = multierr.Append(err, errors.Errorf(
				"depth %d: entry %v hash %016x does not match prefix %016x", depth, en.key, en.hash, prefix))
		}

		if hash := h.Hash(en.key); hash != en.hash {
			err = multierr.Append(err, errors.Errorf(
				"depth %d: entry %v stored hash %016x, key hashes to %016x", depth, en.key, en.hash, hash))
		}
	}

	for part, i := 0, 0; part < branchFactor; part++ {
		if n.nodeMap&bitpos(part) == 0 {
			continue
		}

		child := n.children[i]
		i++

		if child == nil {
			err = multierr.Append(err, errors.Errorf("depth %d: nil child in partition %d", depth, part))
			continue
		}

		childPrefix := prefix | uint64(part)<<(uint(depth)*bitsPerLevel)

		if cerr := child.validate(h, depth+1, childPrefix, false); cerr != nil {
			err = multierr.Append(err, errors.Wrapf(cerr, "partition %d at depth %d", part, depth))
		}
	}

	return err
}

func (n *node[K, V]) validateCollision(h Hasher[K], depth int, prefix uint64) error {
	var err error

	if depth != maxDepth {
		err = multierr.Append(err, errors.Errorf("depth %d: collision node above depth %d", depth, maxDepth))
	}

	if n.dataMap|n.nodeMap != 0 || len(n.children) != 0 {
		err = multierr.Append(err, errors.Errorf("depth %d: collision node with bitmap contents", depth))
	}

	if len(n.entries) < 2 {
		err = multierr.Append(err, errors.Errorf("depth %d: collision node with %d entries", depth, len(n.entries)))
	}

	for i := range n.entries {
		en := &n.entries[i]

		if en.hash != n.entries[0].hash {
			err = multierr.Append(err, errors.Errorf(
				"depth %d: collision entry %v hash %016x differs from %016x", depth, en.key, en.hash, n.entries[0].hash))
		}

		if en.hash&prefixMask(depth) != prefix {
			err = multierr.Append(err, errors.Errorf(
				"depth %d: collision entry %v hash %016x does not match prefix %016x", depth, en.key, en.hash, prefix))
		}

		for j := 0; j < i; j++ {
			if h.Equal(n.entries[j].key, en.key) {
				err = multierr.Append(err, errors.Errorf("depth %d: duplicate collision key %v", depth, en.key))
			}
		}
	}

	return err
}

// validateRoot checks a whole trie holding size entries.
func validateRoot[K, V any](root *node[K, V], size int, h Hasher[K]) error {
	if root == nil {
		if size != 0 {
			return errors.Errorf("empty trie with size %d", size)
		}

		return nil
	}

	var err error

	if root.kind != bitmapKind {
		err = multierr.Append(err, errors.New("root is not a bitmap node"))
	}

	if root.isEmpty() {
		err = multierr.Append(err, errors.New("empty root node is not released"))
	}

	if verr := root.validate(h, 0, 0, true); verr != nil {
		err = multierr.Append(err, verr)
	}

	if count := root.count(); count != size {
		err = multierr.Append(err, errors.Errorf("trie holds %d entries, size is %d", count, size))
	}

	return err
}

func checkInvariants[K, V any](root *node[K, V], size int, h Hasher[K]) {
	if !invariants {
		return
	}

	if err := validateRoot(root, size, h); err != nil {
		panic(fmt.Sprintf("invariant failed: %v\n%s", err, debugString(root)))
	}
}
