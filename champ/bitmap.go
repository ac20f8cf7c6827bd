package champ

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	bitsPerLevel = 5
	branchFactor = 1 << bitsPerLevel // 32
	partMask     = branchFactor - 1  // 0b_11111

	// maxDepth is ceil(64/5): all the hash bits are consumed below this depth.
	maxDepth = (64 + bitsPerLevel - 1) / bitsPerLevel // 13

	fullMap uint32 = 1<<branchFactor - 1
)

// partition returns the 5-bit slice of a hash used at the given depth.
func partition(hash uint64, depth int) int {
	return int((hash >> (uint(depth) * bitsPerLevel)) & partMask)
}

func bitpos(part int) uint32 {
	return uint32(1) << part
}

// index returns the number of bits set in bitmap strictly below bit, i.e. the
// slot of bit's partition in the corresponding compact array.
func index(bitmap, bit uint32) int {
	if bitmap == fullMap {
		// every lower partition is occupied: the slot is the partition itself
		return bits.TrailingZeros32(bit)
	}

	return int(popcount.Count(uint64(bitmap & (bit - 1))))
}

func arity(bitmap uint32) int {
	return int(popcount.Count(uint64(bitmap)))
}
