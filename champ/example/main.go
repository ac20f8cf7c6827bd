package main

import (
	"flag"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/ordo-one/go-ds/champ"
)

func main() {
	var (
		total = flag.Int("n", 100_000, "number of generated entries")
		seed  = flag.Int64("seed", 1234567890, "data generator seed")
		dump  = flag.Bool("dump", false, "dump a small trie to stdout")
	)

	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	var (
		faker   = gofakeit.New(*seed)
		builder = champ.NewDictBuilder[string, string](nil)
	)

	for i := 0; i < *total; i++ {
		builder.Set(faker.Email(), faker.Name())
	}

	people := builder.Dict()
	logStats(logger.With(zap.String("dict", "people")), people.Stats(), people.Len())

	// a persistent update leaves people as it is
	var (
		key, _   = first(people)
		renamed  = people.Update(key, func(old string, _ bool) string { return old + " Jr." })
		old, _   = people.Get(key)
		value, _ = renamed.Get(key)
	)

	logger.Info("updated",
		zap.String("key", key),
		zap.String("old", old),
		zap.String("new", value),
		zap.Bool("equal", people.Equal(renamed, func(a, b string) bool { return a == b })),
	)

	var (
		even = champ.SetOf[int](nil)
		odd  = champ.NewSetBuilder[int](nil)
	)

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			even, _ = even.Insert(i)
		} else {
			odd.Insert(i)
		}
	}

	all := even.Union(odd.Set())
	logger.Info("sets",
		zap.Int("even", even.Len()),
		zap.Int("union", all.Len()),
		zap.Int("intersection", all.Intersection(even).Len()),
		zap.Bool("subset", even.IsSubset(all)),
	)

	if *dump {
		small := champ.NewDict[string, int](nil)
		for i, word := range []string{"c", "a1", "a2", "a3", "a22", "bb"} {
			small, _ = small.Set(word, i)
		}

		small.DebugDump(os.Stdout)
	}
}

func first(d champ.Dict[string, string]) (string, bool) {
	it := d.Iterator()
	if !it.Next() {
		return "", false
	}

	return it.Key(), true
}

func logStats(logger *zap.Logger, st champ.Stats, size int) {
	logger.Info("trie",
		zap.Int("size", size),
		zap.Int("nodes", st.Nodes),
		zap.Int("collisions", st.Collisions),
		zap.Int("max_depth", st.MaxDepth),
	)

	for depth, count := range st.Levels {
		if count > 0 {
			logger.Debug("level", zap.Int("depth", depth), zap.Int("entries", count))
		}
	}
}
