// Package chained implements an open hashing hash map as a stack of small
// containers: LinearMap is the slice backed association list each bucket is
// made of, BucketedMap routes keys across a fixed array of them, GrowableMap
// doubles the bucket array when the load factor is breached, and TrackedMap
// maintains the entry count incrementally so size queries stay O(1) and the
// growth check never scans the table.
package chained

import (
	"github.com/scottcagno/hashmap"
	"github.com/scottcagno/hashmap/pkg/hash/xxhash"
)

const (
	defaultLoadFactor = 0.85 // target max average bucket occupancy
	defaultMapSize    = 16
	minBucketCount    = 2
)

// HashFunc is a type definition for what a hash function should look like
type HashFunc[K comparable] func(key K) uint64

// Iterator is an iterator function type
type Iterator[K comparable, V any] func(key K, value V) bool

// StringHash is the default hash function for string keys
func StringHash(key string) uint64 {
	return xxhash.Sum64([]byte(key))
}

// alignBucketCount aligns bucket counts to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(minBucketCount)
	for count < size {
		count *= 2
	}
	return uint64(count)
}

var (
	_ hashmap.Map[string, []byte] = (*LinearMap[string, []byte])(nil)
	_ hashmap.Map[string, []byte] = (*BucketedMap[string, []byte])(nil)
	_ hashmap.Map[string, []byte] = (*GrowableMap[string, []byte])(nil)
	_ hashmap.Map[string, []byte] = (*TrackedMap[string, []byte])(nil)
)
