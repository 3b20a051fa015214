package tools

import (
	"context"
	"sync/atomic"

	"github.com/flyingcloud-code/mcp"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of a batch fetch.
type Result struct {
	Fetched int
	Failed  int
	Bytes   int
	Tokens  int
}

// ProgressEvent reports progress during a batch fetch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Events are
// delivered from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// batchResult holds the outcome of processing a single URL.
type batchResult struct {
	position int
	url      string
	content  *mcp.WebContent
	err      error
}

// GetAll fetches every URL through the full content pipeline with
// bounded concurrency. The returned slice is aligned with urls; entries
// that failed are nil and reported through the progress callback and
// the result counters. Per-URL failures do not abort the batch.
func (s *WebContentService) GetAll(ctx context.Context, urls []string, format mcp.Format, progress ProgressFunc) ([]*mcp.WebContent, *Result, error) {
	if err := format.Validate(); err != nil {
		return nil, nil, err
	}

	total := len(urls)
	if total == 0 {
		return nil, &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan batchResult, total)

	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				content, err := s.GetWebContent(gctx, u, format)
				resultCh <- batchResult{position: i, url: u, content: content, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	contents := make([]*mcp.WebContent, total)
	res := &Result{}

	for result := range resultCh {
		completed.Add(1)

		if result.err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
			continue
		}

		contents[result.position] = result.content
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	for _, content := range contents {
		if content == nil {
			continue
		}
		res.Fetched++
		res.Bytes += len(content.Content)
		if s.TokenCounter != nil {
			if tokens, err := s.TokenCounter.CountTokens(ctx, content.Content); err == nil {
				res.Tokens += tokens
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return contents, res, nil
}
