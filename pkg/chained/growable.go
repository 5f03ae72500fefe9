package chained

// GrowableMap wraps a BucketedMap with a growth policy: whenever an insert
// pushes the load factor past the configured threshold, the bucket array is
// doubled and every entry is redistributed. Note that the growth check reads
// the summed Len, so every single Put pays a full bucket scan; this is the
// deliberate baseline defect that TrackedMap fixes.
type GrowableMap[K comparable, V any] struct {
	*BucketedMap[K, V]
	factor float64
	expand int // rehash once the entry count exceeds this
}

// NewGrowableMap returns a new GrowableMap with at least size buckets and
// the default load factor
func NewGrowableMap[K comparable, V any](size uint, hash HashFunc[K]) *GrowableMap[K, V] {
	return newGrowableMap[K, V](size, hash, defaultLoadFactor)
}

// newGrowableMap is the internal variant of the previous function; it lets
// the load factor be chosen, which the tests lean on
func newGrowableMap[K comparable, V any](size uint, hash HashFunc[K], factor float64) *GrowableMap[K, V] {
	g := &GrowableMap[K, V]{
		BucketedMap: NewBucketedMap[K, V](size, hash),
		factor:      factor,
	}
	g.expand = g.threshold()
	return g
}

func (g *GrowableMap[K, V]) threshold() int {
	return int(float64(len(g.buckets)) * g.factor)
}

// Put inserts a key value entry and returns the previous value and whether
// the key existed. If the insert leaves more entries than factor times the
// bucket count, the map grows before returning.
func (g *GrowableMap[K, V]) Put(key K, value V) (V, bool) {
	prev, ok := g.BucketedMap.Put(key, value)
	if g.Len() > g.expand {
		g.rehash()
	}
	return prev, ok
}

// rehash doubles the bucket array and re-routes every entry under the new
// mask using bucket level puts. Rehashing is pure redistribution: no entry
// is lost or duplicated and the total entry count is unchanged.
func (g *GrowableMap[K, V]) rehash() {
	old := g.buckets
	bukCnt := uint64(len(old)) * 2
	g.mask = bukCnt - 1
	g.buckets = make([]*LinearMap[K, V], bukCnt)
	for i := range g.buckets {
		g.buckets[i] = NewLinearMap[K, V]()
	}
	for _, buk := range old {
		for i := range buk.entries {
			g.bucketFor(buk.entries[i].key).Put(buk.entries[i].key, buk.entries[i].val)
		}
	}
	g.expand = g.threshold()
}
