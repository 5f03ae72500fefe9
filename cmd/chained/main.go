package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scottcagno/hashmap/pkg/chained"
)

// Inserts n sequential keys into the tracked map and into the naive growable
// baseline, logging elapsed time per batch. The growable map's batches slow
// down as the table grows (its growth check sums every bucket on every
// insert); the tracked map's batches stay flat.
func main() {
	n := flag.Int("n", 100000, "number of sequential keys to insert")
	batches := flag.Int("batches", 10, "number of timing batches to report")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	log.Info().Int("keys", *n).Msg("inserting into tracked map...")
	tracked := chained.NewTrackedMap[string, []byte](0, chained.StringHash)
	run(*n, *batches, "tracked", func(key string) {
		tracked.Put(key, nil)
	})
	log.Info().Int("len", tracked.Len()).Msg("tracked map done")

	log.Info().Int("keys", *n).Msg("inserting into growable map (summed size check per insert)...")
	growable := chained.NewGrowableMap[string, []byte](0, chained.StringHash)
	run(*n, *batches, "growable", func(key string) {
		growable.Put(key, nil)
	})
	log.Info().Int("len", growable.Len()).Msg("growable map done")
}

func run(n, batches int, name string, put func(key string)) {
	size := n / batches
	if size < 1 {
		size = 1
	}
	start := time.Now()
	last := start
	for i := 0; i < n; i++ {
		put(strconv.Itoa(i))
		if (i+1)%size == 0 {
			now := time.Now()
			log.Info().
				Str("map", name).
				Int("inserted", i+1).
				Dur("batch", now.Sub(last)).
				Msg("batch complete")
			last = now
		}
	}
	log.Info().Str("map", name).Dur("total", time.Since(start)).Msg("insert complete")
}
