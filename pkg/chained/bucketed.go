package chained

// BucketedMap routes each key to one LinearMap in a fixed array of them
// ("buckets") and delegates the operation there. Bucket counts are always
// powers of two so routing can mask instead of taking a modulo.
type BucketedMap[K comparable, V any] struct {
	hash    HashFunc[K]
	mask    uint64
	buckets []*LinearMap[K, V]
}

// NewBucketedMap returns a new BucketedMap with at least size buckets,
// aligned up to the next power of two. The hash function must not be nil;
// there is no universal default over a type parameter.
func NewBucketedMap[K comparable, V any](size uint, hash HashFunc[K]) *BucketedMap[K, V] {
	if hash == nil {
		panic("chained: nil hash function")
	}
	if size == 0 {
		size = defaultMapSize
	}
	bukCnt := alignBucketCount(size)
	m := &BucketedMap[K, V]{
		hash:    hash,
		mask:    bukCnt - 1, // this minus one is extremely important for using a mask over modulo
		buckets: make([]*LinearMap[K, V], bukCnt),
	}
	for i := range m.buckets {
		m.buckets[i] = NewLinearMap[K, V]()
	}
	return m
}

// bucketFor returns the bucket that owns key. It is a pure function of the
// key and the current bucket count, which is what lets a rehash re-route
// every entry deterministically.
func (m *BucketedMap[K, V]) bucketFor(key K) *LinearMap[K, V] {
	return m.buckets[m.hash(key)&m.mask]
}

// Get returns the value for a given key, or returns false if none could be found
func (m *BucketedMap[K, V]) Get(key K) (V, bool) {
	return m.bucketFor(key).Get(key)
}

// Has reports whether key is present
func (m *BucketedMap[K, V]) Has(key K) bool {
	return m.bucketFor(key).Has(key)
}

// Put inserts a key value entry into the routed bucket and returns the
// previous value and whether the key existed
func (m *BucketedMap[K, V]) Put(key K, value V) (V, bool) {
	return m.bucketFor(key).Put(key, value)
}

// Del removes the entry for a given key from the routed bucket and returns
// the removed value, or false if none could be found
func (m *BucketedMap[K, V]) Del(key K) (V, bool) {
	return m.bucketFor(key).Del(key)
}

// Len returns the number of entries by summing every bucket. This is the
// naive O(bucket count) baseline; it must never end up on a per-operation
// hot path, which is exactly what TrackedMap exists to prevent.
func (m *BucketedMap[K, V]) Len() int {
	var length int
	for i := range m.buckets {
		length += m.buckets[i].Len()
	}
	return length
}

// Clear empties every bucket. The bucket array itself keeps its length.
func (m *BucketedMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i].Clear()
	}
}

// Range takes an iterator function and ranges the BucketedMap as long as it
// continues to return true. Range is not safe to use while mutating!
func (m *BucketedMap[K, V]) Range(it func(key K, value V) bool) {
	for i := range m.buckets {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// PercentFull returns the current load factor of the BucketedMap
func (m *BucketedMap[K, V]) PercentFull() float64 {
	return float64(m.Len()) / float64(len(m.buckets))
}
