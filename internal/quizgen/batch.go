package quizgen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one document of a batch run.
type BatchItem struct {
	Key          string
	DocumentText string
}

// BatchResult pairs an item's key with its run result.
type BatchResult struct {
	Key    string
	Result *Result
}

// RunBatch runs an independent workflow per item with at most concurrency
// runs in flight (unbounded when concurrency <= 0). Results keep the item
// order. The first failure cancels the remaining runs and is returned.
func RunBatch(ctx context.Context, w *Workflow, items []BatchItem, concurrency int) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, item := range items {
		g.Go(func() error {
			res, err := w.RunDetailed(gctx, item.DocumentText)
			if err != nil {
				return &BatchError{Key: item.Key, Err: err}
			}
			results[i] = BatchResult{Key: item.Key, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchError names the item whose run failed.
type BatchError struct {
	Key string
	Err error
}

func (e *BatchError) Error() string {
	return "batch item " + e.Key + ": " + e.Err.Error()
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
