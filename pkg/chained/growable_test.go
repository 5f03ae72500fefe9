package chained

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/scottcagno/hashmap/pkg/util"
)

// 20 words
var words = []string{
	"anthropology",
	"bootstrapped",
	"cartographer",
	"disambiguate",
	"effervescent",
	"fenestration",
	"grandiloquent",
	"heliotropism",
	"impecunious",
	"juxtaposition",
	"kaleidoscope",
	"lexicography",
	"mellifluous",
	"nomenclature",
	"obstreperous",
	"perspicacious",
	"quintessence",
	"recalcitrant",
	"serendipity",
	"tintinnabulation",
}

func Test_StringHash(t *testing.T) {
	set := make(map[uint64]string, len(words))
	var coll int
	for _, word := range words {
		hash := StringHash(word)
		if old, ok := set[hash]; !ok {
			set[hash] = word
		} else {
			coll++
			fmt.Printf(
				"collision: current word: %s, old word: %s, hash: %d\n", word, old, hash)
		}
	}
	util.AssertExpected(t, 0, coll)
}

func TestNewGrowableMap(t *testing.T) {
	gm := NewGrowableMap[string, []byte](128, StringHash)
	util.AssertExpected(t, 0, gm.Len())
	for _, word := range words {
		gm.Put(word, []byte(word))
	}
	util.AssertExpected(t, len(words), gm.Len())
}

func Test_GrowableMap_RehashTrigger(t *testing.T) {
	gm := newGrowableMap[int, string](2, intHash, 1.0)
	util.AssertExpected(t, 2, len(gm.buckets))
	util.AssertExpected(t, 2, gm.expand)

	gm.Put(1, "a")
	gm.Put(2, "b")
	util.AssertExpected(t, 2, len(gm.buckets))

	// the third entry breaches 2 buckets x factor 1.0, doubling to 4
	gm.Put(3, "c")
	util.AssertExpected(t, 4, len(gm.buckets))
	util.AssertExpected(t, 4, gm.expand)
	util.AssertExpected(t, 3, gm.Len())
}

func Test_GrowableMap_RehashPreservesContent(t *testing.T) {
	gm := NewGrowableMap[string, []byte](2, StringHash)
	const n = 500
	for i := 0; i < n; i++ {
		gm.Put(strconv.Itoa(i), []byte(strconv.Itoa(i)))
	}
	// plenty of doublings happened on the way to 500 entries
	util.AssertTrue(t, len(gm.buckets) > 2)
	util.AssertExpected(t, n, gm.Len())

	for i := 0; i < n; i++ {
		val, ok := gm.Get(strconv.Itoa(i))
		util.AssertTrue(t, ok)
		util.AssertExpected(t, []byte(strconv.Itoa(i)), val)
	}
}

func Test_GrowableMap_LoadFactorInvariant(t *testing.T) {
	gm := NewGrowableMap[string, []byte](2, StringHash)
	for i := 0; i < 1000; i++ {
		gm.Put(strconv.Itoa(i), nil)
		// after every mutation the load factor must sit at or below the
		// threshold
		util.AssertTrue(t, gm.Len() <= gm.expand)
	}
}

func Test_GrowableMap_OverwriteDoesNotGrow(t *testing.T) {
	gm := newGrowableMap[int, string](4, intHash, 1.0)
	gm.Put(1, "a")
	gm.Put(2, "b")
	gm.Put(3, "c")
	gm.Put(4, "d")
	buckets := len(gm.buckets)

	// rewriting present keys never changes the entry count, so it must
	// never trigger growth either
	for i := 0; i < 10; i++ {
		gm.Put(1, "a")
	}
	util.AssertExpected(t, buckets, len(gm.buckets))
	util.AssertExpected(t, 4, gm.Len())
}
