package checker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Scanner scans a single target. *Pipeline satisfies it.
type Scanner interface {
	Scan(ctx context.Context, target string) (*Report, error)
}

// Result is the outcome of scanning one target. Exactly one of Report and Err is set.
type Result struct {
	Target   string
	Report   *Report
	Err      error
	Duration time.Duration
}

// ResultFunc is called once per finished target; it may be called concurrently.
type ResultFunc func(result Result)

// Runner orchestrates independent scans of several targets with concurrency and rate limiting
type Runner struct {
	Concurrency int           // Maximum number of concurrent scans
	RateLimit   int           // Scans started per second (0 = unlimited)
	Timeout     time.Duration // Timeout for each scan (0 = none)
}

// Run scans every target using a worker pool and returns results in input order.
// Each target's pipeline stays sequential; one failure never affects another target.
func (r *Runner) Run(ctx context.Context, targets []string, scanner Scanner, onResult ResultFunc) []Result {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var limiter *rate.Limiter
	if r.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	results := make([]Result, len(targets))

	for i, target := range targets {
		wg.Add(1)
		go func(i int, t string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			result := Result{Target: t}
			start := time.Now()

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					result.Err = err
					results[i] = result
					if onResult != nil {
						onResult(result)
					}
					return
				}
			}

			scanCtx := ctx
			if r.Timeout > 0 {
				var cancel context.CancelFunc
				scanCtx, cancel = context.WithTimeout(ctx, r.Timeout)
				defer cancel()
			}

			result.Report, result.Err = scanner.Scan(scanCtx, t)
			result.Duration = time.Since(start)

			results[i] = result
			if onResult != nil {
				onResult(result)
			}
		}(i, target)
	}

	wg.Wait()
	return results
}
