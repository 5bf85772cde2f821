package raster

import (
	"context"
	"fmt"
	"sync"
)

// ConvertParallel is Convert with the per-band work spread over a bounded
// worker pool. Every sample belongs to exactly one band, so each worker
// writes a disjoint region of dst and no locking is needed.
//
// The context is checked between bands; a cancelled conversion returns an
// error and dst must be considered garbage.
func ConvertParallel(ctx context.Context, dst, src []byte, g Geometry, from, to Layout, workers int) error {
	if err := checkConvert(dst, src, g); err != nil {
		return err
	}
	if from == to {
		copy(dst, src)
		return nil
	}
	if workers > g.Bands {
		workers = g.Bands
	}
	if workers <= 1 {
		for b := 0; b < g.Bands; b++ {
			convertBand(dst, src, g, from, to, b)
		}
		return nil
	}

	bands := make(chan int, g.Bands)
	for b := 0; b < g.Bands; b++ {
		bands <- b
	}
	close(bands)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range bands {
				if ctx.Err() != nil {
					return
				}
				convertBand(dst, src, g, from, to, b)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion cancelled: %w", err)
	}
	return nil
}
