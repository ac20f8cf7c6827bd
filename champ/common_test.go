package champ

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// identity hashes an int to itself, which makes partitions easy to predict.
var identity Hasher[int] = HasherFunc[int](func(k int) uint64 { return uint64(k) })

// thirds makes every three consecutive ints share a full hash.
var thirds Hasher[int] = HasherFunc[int](func(k int) uint64 { return uint64(k / 3) })

// collidingKey carries its own hash so that different keys can share it.
type collidingKey struct {
	id   int
	hash uint64
}

var byOwnHash Hasher[collidingKey] = HasherFunc[collidingKey](func(k collidingKey) uint64 { return k.hash })

func requireValid[K, V any](t testing.TB, d Dict[K, V]) {
	t.Helper()

	require.NoError(t, validateRoot(d.root, d.size, d.hash()))
}

func intKeys(total int, seed int64) []int {
	var (
		rnd  = rand.New(rand.NewSource(seed))
		keys = rnd.Perm(total)
	)

	for i := range keys {
		keys[i] = keys[i]*7919 + 1 // spread them out
	}

	return keys
}

func shuffled[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)

	rand.New(rand.NewSource(seed)).Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

func dictFrom[K comparable, V any](hasher Hasher[K], keys []K, val func(K) V) Dict[K, V] {
	d := NewDict[K, V](hasher)
	for _, k := range keys {
		d, _ = d.Set(k, val(k))
	}

	return d
}

func same[T comparable](a, b T) bool {
	return a == b
}
