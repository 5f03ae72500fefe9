package hashmap

// Map is the interface for the maps in this module. Every layer in
// pkg/chained satisfies it for any comparable key type; "not found" is
// always signaled by the second return value, never by a sentinel value.
type Map[K comparable, V any] interface {
	Has(key K) bool
	Get(key K) (V, bool)
	Put(key K, value V) (V, bool)
	Del(key K) (V, bool)
	Len() int
	Clear()
	Range(it func(key K, value V) bool)
}
