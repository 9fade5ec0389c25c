// Package parallel provides the row-sharding helper shared by the conversion
// and resampling loops.
package parallel

import "sync"

// ShardRows splits [0, n) into one contiguous range per worker and runs fn on
// each concurrently, returning after all ranges complete. Ranges never
// overlap, so callers writing disjoint slices need no synchronization beyond
// the join.
func ShardRows(n, workers int, fn func(lo, hi int)) {
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
