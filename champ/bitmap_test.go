package champ

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Hash    uint64
		Depth   int
		ExpPart int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{33, 0, 1},
		{65, 0, 1},
		{33, 1, 1},
		{65, 1, 2},
		{0b_11111_00000_10101, 0, 0b10101},
		{0b_11111_00000_10101, 1, 0},
		{0b_11111_00000_10101, 2, 0b11111},
		{^uint64(0), 11, 31},
		{^uint64(0), 12, 15}, // only 4 bits left
		{^uint64(0), 13, 0},  // nothing left
		{0xF000_0000_0000_0000, 12, 15},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#x@%d", tcase.Hash, tcase.Depth)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.ExpPart, partition(tcase.Hash, tcase.Depth))
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Bitmap uint32
		Part   int
		ExpIdx int
	}{
		{0, 0, 0},
		{0, 31, 0},
		{0b_1, 0, 0},
		{0b_1, 5, 1},
		{0b_1011, 3, 2},
		{0b_1011, 2, 2},
		{0b_1011, 1, 1},
		{0b_1011, 0, 0},
		{fullMap, 0, 0},
		{fullMap, 17, 17},
		{fullMap, 31, 31},
		{fullMap &^ 1, 31, 30},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%032b@%d", tcase.Bitmap, tcase.Part)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.ExpIdx, index(tcase.Bitmap, bitpos(tcase.Part)))
		})
	}
}

func TestArity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, arity(0))
	assert.Equal(t, 3, arity(0b_1011))
	assert.Equal(t, 32, arity(fullMap))
	assert.Equal(t, 13, maxDepth)
}
