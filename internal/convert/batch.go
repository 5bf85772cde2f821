package convert

import (
	"context"
	"sync"
)

// ConvertBatch runs requests through a bounded worker pool. Results are
// positional: results[i] belongs to reqs[i]. Every request is attempted; the
// returned error is the first failure in request order, if any. The progress
// callback, when non-nil, is invoked after each finished job.
func (p *Pipeline) ConvertBatch(ctx context.Context, reqs []Request, progress func(done, total int)) ([]*Result, error) {
	if len(reqs) == 0 {
		return []*Result{}, nil
	}

	type workItem struct {
		index int
		req   Request
	}

	workChan := make(chan workItem, len(reqs))
	results := make([]*Result, len(reqs))
	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i, req := range reqs {
		workChan <- workItem{index: i, req: req}
	}
	close(workChan)

	workers := p.config.MaxConcurrentJobs
	if workers > len(reqs) {
		workers = len(reqs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workChan {
				res, err := p.Convert(ctx, item.req)

				mu.Lock()
				results[item.index] = res
				errs[item.index] = err
				done++
				if progress != nil {
					progress(done, len(reqs))
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
