package champ

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/fxamacker/circlehash"
	"golang.org/x/exp/constraints"
)

// DefaultSeed is the hash seed of the built-in hashers.
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// Hasher hashes keys and checks them for equality. Equal keys must have
// equal hashes; the trie trusts both methods as given.
type Hasher[K any] interface {
	// Hash returns a 64-bit hash of key.
	Hash(key K) uint64

	// Equal reports whether a and b are the same key.
	Equal(a, b K) bool
}

// NewHasher returns the built-in hasher for K: integer, string and byte slice
// kinds are supported (named types included). It panics for any other K.
func NewHasher[K any]() Hasher[K] {
	var zero K

	switch any(zero).(type) {
	case int:
		return any(IntHasher[int]{Seed: DefaultSeed}).(Hasher[K])
	case int8:
		return any(IntHasher[int8]{Seed: DefaultSeed}).(Hasher[K])
	case int16:
		return any(IntHasher[int16]{Seed: DefaultSeed}).(Hasher[K])
	case int32:
		return any(IntHasher[int32]{Seed: DefaultSeed}).(Hasher[K])
	case int64:
		return any(IntHasher[int64]{Seed: DefaultSeed}).(Hasher[K])
	case uint:
		return any(IntHasher[uint]{Seed: DefaultSeed}).(Hasher[K])
	case uint8:
		return any(IntHasher[uint8]{Seed: DefaultSeed}).(Hasher[K])
	case uint16:
		return any(IntHasher[uint16]{Seed: DefaultSeed}).(Hasher[K])
	case uint32:
		return any(IntHasher[uint32]{Seed: DefaultSeed}).(Hasher[K])
	case uint64:
		return any(IntHasher[uint64]{Seed: DefaultSeed}).(Hasher[K])
	case uintptr:
		return any(IntHasher[uintptr]{Seed: DefaultSeed}).(Hasher[K])
	case string:
		return any(StringHasher{Seed: DefaultSeed}).(Hasher[K])
	case []byte:
		return any(BytesHasher{Seed: DefaultSeed}).(Hasher[K])
	}

	// fall back to reflection for named types
	if typ := reflect.TypeOf(zero); typ != nil {
		switch typ.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.String:
			return reflectHasher[K]{Seed: DefaultSeed}
		}
	}

	panic(fmt.Sprintf("champ.NewHasher: no built-in hasher for %T, provide one", zero))
}

// IntHasher hashes integer keys.
type IntHasher[K constraints.Integer] struct {
	Seed uint64
}

func (h IntHasher[K]) Hash(key K) uint64 {
	return circlehash.Hash64Uint64x2(uint64(key), 0, h.Seed)
}

func (h IntHasher[K]) Equal(a, b K) bool {
	return a == b
}

// StringHasher hashes string keys.
type StringHasher struct {
	Seed uint64
}

func (h StringHasher) Hash(key string) uint64 {
	return circlehash.Hash64String(key, h.Seed)
}

func (h StringHasher) Equal(a, b string) bool {
	return a == b
}

// BytesHasher hashes byte slice keys by content. Keys must not be modified
// once stored.
type BytesHasher struct {
	Seed uint64
}

func (h BytesHasher) Hash(key []byte) uint64 {
	return circlehash.Hash64(key, h.Seed)
}

func (h BytesHasher) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// HasherFunc adapts a hash function to the Hasher interface using == for
// equality.
type HasherFunc[K comparable] func(key K) uint64

func (f HasherFunc[K]) Hash(key K) uint64 {
	return f(key)
}

func (f HasherFunc[K]) Equal(a, b K) bool {
	return a == b
}

// reflectHasher covers named integer and string types.
type reflectHasher[K any] struct {
	Seed uint64
}

func (h reflectHasher[K]) Hash(key K) uint64 {
	v := reflect.ValueOf(key)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return circlehash.Hash64Uint64x2(uint64(v.Int()), 0, h.Seed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return circlehash.Hash64Uint64x2(v.Uint(), 0, h.Seed)
	case reflect.String:
		return circlehash.Hash64String(v.String(), h.Seed)
	}

	panic(fmt.Sprintf("champ.reflectHasher.Hash: unsupported key type %T", key))
}

func (h reflectHasher[K]) Equal(a, b K) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return va.Int() == vb.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return va.Uint() == vb.Uint()
	case reflect.String:
		return va.String() == vb.String()
	}

	panic(fmt.Sprintf("champ.reflectHasher.Equal: unsupported key type %T", a))
}
