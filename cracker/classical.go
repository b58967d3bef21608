// Package cracker defines the password search space, the classical
// brute-force searchers, and the interpretation/reporting of measurement
// results from the quantum executors.
package cracker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ClassicalSearch enumerates the space in lexicographic charset order and
// compares truncated-MD5 digests until the target hash matches. Attempts is
// the 1-based position of the match; an exhaustive search cannot miss a
// target that is in the space, so accuracy is always 1.
func ClassicalSearch(enc *Encoding, targetHash string) *MethodResult {
	start := time.Now()
	n := enc.SearchSpace()
	for i := uint64(0); i < n; i++ {
		guess, _ := enc.Decode(i)
		if SimpleHash(guess) == targetHash {
			return &MethodResult{
				Method:   "Classical",
				Password: guess,
				Found:    true,
				Elapsed:  time.Since(start),
				Attempts: int64(i) + 1,
				Accuracy: 1.0,
			}
		}
	}
	return &MethodResult{
		Method:   "Classical",
		Elapsed:  time.Since(start),
		Attempts: int64(n),
	}
}

// ClassicalSearchParallel splits the space into per-worker ranges and
// cancels the siblings as soon as one finds the target. Attempts counts
// every digest comparison across workers, so it can exceed the sequential
// position but never the space size plus in-flight work.
func ClassicalSearchParallel(ctx context.Context, enc *Encoding, targetHash string, workers int) *MethodResult {
	if workers <= 1 {
		return ClassicalSearch(enc, targetHash)
	}
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := enc.SearchSpace()
	chunk := n / uint64(workers)
	foundChan := make(chan string, 1)
	var attempts int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			searchRange(ctx, enc, targetHash, lo, hi, foundChan, cancel, &attempts)
		}(lo, hi)
	}

	wg.Wait()
	close(foundChan)

	result := &MethodResult{
		Method:   "Classical",
		Elapsed:  time.Since(start),
		Attempts: atomic.LoadInt64(&attempts),
	}
	if guess, ok := <-foundChan; ok {
		result.Password = guess
		result.Found = true
		result.Accuracy = 1.0
	}
	return result
}

func searchRange(ctx context.Context, enc *Encoding, targetHash string, lo, hi uint64, foundChan chan<- string, cancel context.CancelFunc, attempts *int64) {
	for i := lo; i < hi; i++ {
		select {
		case <-ctx.Done():
			return
		default:
			guess, _ := enc.Decode(i)
			atomic.AddInt64(attempts, 1)
			if SimpleHash(guess) == targetHash {
				select {
				case foundChan <- guess:
				default:
				}
				cancel()
				return
			}
		}
	}
}
