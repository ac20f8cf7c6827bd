package champ

// result collects what a recursive edit found on its way.
type result[K, V any] struct {
	// combine resolves a key present on both sides; nil lets the new value win.
	combine func(key K, old, val V) V

	ok   bool // the key was found (replaced or removed)
	old  V    // its previous value
	hits int  // keys found so far, merges count their conflicts here
}

func (r *result[K, V]) hit(old V) {
	r.ok = true
	r.old = old
	r.hits++
}

func (r *result[K, V]) resolve(key K, old, val V) V {
	if r.combine == nil {
		return val
	}

	return r.combine(key, old, val)
}
