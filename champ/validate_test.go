package champ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate_Broken(t *testing.T) {
	t.Parallel()

	en := func(k int) entry[int, int] {
		return entry[int, int]{key: k, value: k, hash: uint64(k)}
	}

	for _, tcase := range []*struct {
		Name   string
		Root   func() *node[int, int]
		Size   int
		ExpErr string
	}{
		{
			"overlapping maps",
			func() *node[int, int] {
				leaf := newBitmapNode(nil, bitpos(0)|bitpos(1), 0, []entry[int, int]{en(1), en(33)}, nil)
				return newBitmapNode(nil, bitpos(1), bitpos(1), []entry[int, int]{en(1)}, []*node[int, int]{leaf})
			},
			3, "overlaps nodeMap",
		},
		{
			"missing entry",
			func() *node[int, int] {
				return newBitmapNode(nil, bitpos(1)|bitpos(2), 0, []entry[int, int]{en(1)}, nil)
			},
			1, "1 entries for 2 data bits",
		},
		{
			"wrong slot",
			func() *node[int, int] {
				return newBitmapNode(nil, bitpos(1)|bitpos(2), 0, []entry[int, int]{en(2), en(1)}, nil)
			},
			2, "stored in slot",
		},
		{
			"stale hash",
			func() *node[int, int] {
				bad := en(2)
				bad.hash = 34
				return newBitmapNode(nil, bitpos(2), 0, []entry[int, int]{bad}, nil)
			},
			1, "key hashes to",
		},
		{
			"single entry child",
			func() *node[int, int] {
				leaf := newBitmapNode(nil, bitpos(1), 0, []entry[int, int]{en(33)}, nil)
				return newBitmapNode(nil, bitpos(2), bitpos(1), []entry[int, int]{en(2)}, []*node[int, int]{leaf})
			},
			2, "single-entry node not inlined",
		},
		{
			"empty child",
			func() *node[int, int] {
				leaf := newBitmapNode[int, int](nil, 0, 0, nil, nil)
				return newBitmapNode(nil, 0, bitpos(1), nil, []*node[int, int]{leaf})
			},
			0, "empty non-root node",
		},
		{
			"wrong prefix",
			func() *node[int, int] {
				leaf := newBitmapNode(nil, bitpos(0)|bitpos(1), 0, []entry[int, int]{en(2), en(33)}, nil)
				return newBitmapNode(nil, 0, bitpos(1), nil, []*node[int, int]{leaf})
			},
			2, "does not match prefix",
		},
		{
			"shallow collision",
			func() *node[int, int] {
				coll := newCollisionNode(nil, []entry[int, int]{en(1), en(1)})
				return newBitmapNode(nil, 0, bitpos(1), nil, []*node[int, int]{coll})
			},
			2, "collision node above depth",
		},
		{
			"size mismatch",
			func() *node[int, int] {
				return newBitmapNode(nil, bitpos(1), 0, []entry[int, int]{en(1)}, nil)
			},
			2, "trie holds 1 entries, size is 2",
		},
		{
			"empty root",
			func() *node[int, int] {
				return newBitmapNode[int, int](nil, 0, 0, nil, nil)
			},
			0, "empty root node",
		},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			err := validateRoot(tcase.Root(), tcase.Size, identity)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tcase.ExpErr)
			assert.NotEmpty(t, multierr.Errors(err))
		})
	}
}

func TestValidate_Collisions(t *testing.T) {
	t.Parallel()

	var (
		k1 = collidingKey{id: 1, hash: 7}
		k2 = collidingKey{id: 2, hash: 7}
		d  = dictFrom(byOwnHash, []collidingKey{k1, k2}, func(k collidingKey) int { return k.id })
	)

	requireValid(t, d)

	// walk down to the collision node and break it
	coll := d.root
	for coll.kind != collisionKind {
		require.Len(t, coll.children, 1)
		coll = coll.children[0]
	}

	coll.entries[1].key = k1

	err := validateRoot(d.root, d.size, d.hash())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate collision key")

	coll.entries = coll.entries[:1]

	err = validateRoot(d.root, 1, d.hash())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision node with 1 entries")
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateRoot[int, int](nil, 0, identity))
	assert.Error(t, validateRoot[int, int](nil, 3, identity))
}
