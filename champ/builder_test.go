package champ

import (
	"fmt"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictBuilder_InPlace(t *testing.T) {
	t.Parallel()

	var (
		keys = intKeys(10_000, 91)
		b    = NewDictBuilder[int, int](nil)
	)

	for _, k := range keys {
		require.False(t, b.Set(k, k))
	}

	// nothing the builder created is ever copied
	assert.Equal(t, 0, b.edit.cloned)

	for _, k := range keys[:100] {
		require.True(t, b.Set(k, -k))
		require.True(t, b.Delete(k))
		require.False(t, b.Delete(k))
	}

	assert.Equal(t, 0, b.edit.cloned)
	assert.Equal(t, len(keys)-100, b.Len())

	d := b.Dict()
	requireValid(t, d)
	assert.Equal(t, len(keys)-100, d.Len())

	val, ok := b.Get(keys[100])
	assert.True(t, ok)
	assert.Equal(t, keys[100], val)
}

func TestDictBuilder_Publish(t *testing.T) {
	t.Parallel()

	var (
		faker = gofakeit.New(13)
		b     = NewDictBuilder[string, string](nil)
		state = make(map[string]string)
	)

	for i := 0; i < 5000; i++ {
		key, val := faker.Name(), faker.Email()

		b.Set(key, val)
		state[key] = val
	}

	var (
		d    = b.Dict()
		dump = debugString(d.root)
	)

	// keep going after publishing
	for key := range state {
		b.Set(key, "changed")
	}

	for i := 0; i < 1000; i++ {
		b.Set(fmt.Sprint("extra ", i), "extra")
	}

	published := b.Dict()

	// the first snapshot is untouched
	assert.Equal(t, dump, debugString(d.root))
	assert.Equal(t, len(state), d.Len())

	for key, exp := range state {
		val, ok := d.Get(key)
		require.True(t, ok, key)
		require.Equal(t, exp, val, key)

		val, _ = published.Get(key)
		require.Equal(t, "changed", val, key)
	}

	requireValid(t, d)
	requireValid(t, published)
	assert.Equal(t, len(state)+1000, published.Len())
}

func TestDictBuilder_FromDict(t *testing.T) {
	t.Parallel()

	var (
		keys = intKeys(3000, 92)
		d    = dictFrom(thirds, keys, func(k int) int { return k })
		dump = debugString(d.root)
		b    = d.Builder()
	)

	for _, k := range keys[:1000] {
		require.True(t, b.Delete(k))
	}

	require.False(t, b.Set(-1, -1))

	// only the first change under a path copies it
	cloned := b.edit.cloned

	require.True(t, b.Set(-1, -2))
	assert.Equal(t, cloned, b.edit.cloned)

	nd := b.Dict()

	assert.Equal(t, dump, debugString(d.root))
	assert.Equal(t, 3000, d.Len())
	assert.Equal(t, 2001, nd.Len())
	requireValid(t, nd)

	val, _ := nd.Get(-1)
	assert.Equal(t, -2, val)
}

func TestDictBuilder_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	var (
		keys = intKeys(20_000, 93)
		d    = dictFrom[int, int](nil, keys, func(k int) int { return k })
		b    = d.Builder()
		wg   sync.WaitGroup
	)

	for i := 0; i < 4; i++ {
		wg.Add(1)

		go func(offset int) {
			defer wg.Done()

			for j := offset; j < len(keys); j += 4 {
				val, ok := d.Get(keys[j])
				assert.True(t, ok)
				assert.Equal(t, keys[j], val)
			}
		}(i)
	}

	// the builder writes while readers walk the shared nodes
	for _, k := range keys {
		b.Set(k, -k)
	}

	wg.Wait()

	nd := b.Dict()
	requireValid(t, nd)

	for _, k := range keys[:100] {
		val, _ := d.Get(k)
		assert.Equal(t, k, val)

		val, _ = nd.Get(k)
		assert.Equal(t, -k, val)
	}
}

func TestSetBuilder(t *testing.T) {
	t.Parallel()

	b := NewSetBuilder[int](identity)

	assert.False(t, b.Insert(1))
	assert.False(t, b.Insert(33))
	assert.True(t, b.Insert(1))
	assert.True(t, b.Has(33))
	assert.Equal(t, 2, b.Len())

	s1 := b.Set()

	assert.True(t, b.Delete(33))
	assert.False(t, b.Delete(33))
	assert.False(t, b.Insert(65))

	s2 := b.Set()

	assert.Equal(t, "champ.Set{1, 33}", s1.String())
	assert.Equal(t, "champ.Set{1, 65}", s2.String())

	s3 := s2.Builder()
	s3.Insert(2)

	assert.Equal(t, 2, s2.Len())
	assert.Equal(t, 3, s3.Set().Len())
}
