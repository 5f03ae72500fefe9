package chained

// TrackedMap wraps a GrowableMap with an independently maintained entry
// count, adjusted on every mutating operation. Len becomes O(1), which in
// turn keeps the growth check after Put O(1) and the whole insert path
// amortized constant time.
type TrackedMap[K comparable, V any] struct {
	*GrowableMap[K, V]
	size int
}

// NewTrackedMap returns a new TrackedMap with at least size buckets and the
// default load factor
func NewTrackedMap[K comparable, V any](size uint, hash HashFunc[K]) *TrackedMap[K, V] {
	return newTrackedMap[K, V](size, hash, defaultLoadFactor)
}

// newTrackedMap is the internal variant of the previous function
// and is mainly used by the tests
func newTrackedMap[K comparable, V any](size uint, hash HashFunc[K], factor float64) *TrackedMap[K, V] {
	return &TrackedMap[K, V]{
		GrowableMap: newGrowableMap[K, V](size, hash, factor),
	}
}

// adjust runs a bucket level mutation and folds the routed bucket's size
// delta into the running count. Measuring the one affected bucket before and
// after keeps the count right whether or not the key was present, without a
// separate lookup to find out, and without ever scanning the whole table.
func (t *TrackedMap[K, V]) adjust(key K, mutate func(buk *LinearMap[K, V]) (V, bool)) (V, bool) {
	buk := t.bucketFor(key)
	t.size -= buk.Len()
	val, ok := mutate(buk)
	t.size += buk.Len()
	return val, ok
}

// Put inserts a key value entry and returns the previous value and whether
// the key existed. The count moves by +1 for a fresh key and 0 for an
// overwrite; the growth check then compares the tracked count, not a scan.
func (t *TrackedMap[K, V]) Put(key K, value V) (V, bool) {
	prev, ok := t.adjust(key, func(buk *LinearMap[K, V]) (V, bool) {
		return buk.Put(key, value)
	})
	if t.size > t.expand {
		// rehash redistributes through bucket level puts, never through
		// this method, so the count carries through unchanged
		t.rehash()
	}
	return prev, ok
}

// Del removes the entry for a given key and returns the removed value, or
// false if none could be found. The count moves by -1 or 0 the same way.
func (t *TrackedMap[K, V]) Del(key K) (V, bool) {
	return t.adjust(key, func(buk *LinearMap[K, V]) (V, bool) {
		return buk.Del(key)
	})
}

// Len returns the number of entries currently in the TrackedMap. O(1).
func (t *TrackedMap[K, V]) Len() int {
	return t.size
}

// Clear empties every bucket and resets the count
func (t *TrackedMap[K, V]) Clear() {
	t.GrowableMap.Clear()
	t.size = 0
}
