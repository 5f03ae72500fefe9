package chained

// entry is a key value pair that is found in each bucket
type entry[K comparable, V any] struct {
	key K
	val V
}

// LinearMap is an unordered association list over key value pairs. Lookup,
// insert and delete are all linear in the entry count, which is fine for its
// one job: being the small sub-container behind each bucket of a BucketedMap.
type LinearMap[K comparable, V any] struct {
	entries []entry[K, V]
}

// NewLinearMap returns an empty LinearMap
func NewLinearMap[K comparable, V any]() *LinearMap[K, V] {
	return &LinearMap[K, V]{}
}

// search returns the index of the entry holding key, or -1
func (l *LinearMap[K, V]) search(key K) int {
	for i := range l.entries {
		if l.entries[i].key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for a given key, or returns false if none could be found
func (l *LinearMap[K, V]) Get(key K) (V, bool) {
	if i := l.search(key); i >= 0 {
		return l.entries[i].val, true
	}
	return *new(V), false
}

// Has reports whether key is present
func (l *LinearMap[K, V]) Has(key K) bool {
	return l.search(key) >= 0
}

// Put inserts a key value entry, overwriting in place if the key is already
// present. It returns the previous value and whether the key existed.
func (l *LinearMap[K, V]) Put(key K, value V) (V, bool) {
	if i := l.search(key); i >= 0 {
		prev := l.entries[i].val
		l.entries[i].val = value
		return prev, true
	}
	l.entries = append(l.entries, entry[K, V]{key: key, val: value})
	return *new(V), false
}

// Del removes the entry for a given key and returns the removed value, or
// false if none could be found. Entry order is not part of the contract, so
// the last entry is swapped into the hole.
func (l *LinearMap[K, V]) Del(key K) (V, bool) {
	i := l.search(key)
	if i < 0 {
		return *new(V), false
	}
	prev := l.entries[i].val
	last := len(l.entries) - 1
	l.entries[i] = l.entries[last]
	l.entries[last] = entry[K, V]{} // release references
	l.entries = l.entries[:last]
	return prev, true
}

// Len returns the number of entries currently in the LinearMap
func (l *LinearMap[K, V]) Len() int {
	return len(l.entries)
}

// Clear empties the LinearMap
func (l *LinearMap[K, V]) Clear() {
	l.entries = nil
}

// scan visits every entry as long as the iterator function continues to
// return true. It reports whether the scan ran to completion.
func (l *LinearMap[K, V]) scan(it Iterator[K, V]) bool {
	for i := range l.entries {
		if !it(l.entries[i].key, l.entries[i].val) {
			return false
		}
	}
	return true
}

// Range takes an iterator function and ranges the LinearMap as long as it
// continues to return true. Range is not safe to use while mutating!
func (l *LinearMap[K, V]) Range(it func(key K, value V) bool) {
	l.scan(it)
}
