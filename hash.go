package htable

import "github.com/cespare/xxhash/v2"

// doubleHashMax bounds the double hashing step to [1, doubleHashMax].
const doubleHashMax = 8

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Hasher maps a key to a 64-bit hash. It must be deterministic.
type Hasher func(key string) uint64

// FNV1a computes a 64-bit FNV-1a hash of the key. It is the default Hasher.
func FNV1a(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

// XXHash computes the 64-bit xxHash of the key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// hash returns the home slot of key, in [0, capacity).
func (t *Table[V]) hash(key string) int {
	return int(t.hasher(key) % uint64(len(t.slots)))
}

// doubleHash returns the probe step used by DoubleHash, in [1, doubleHashMax].
func (t *Table[V]) doubleHash(key string) int {
	return t.hash(key)%doubleHashMax + 1
}
