package tools

import (
	"context"
	"time"

	"github.com/flyingcloud-code/mcp"
)

// FetchFunc fetches the raw HTML for a URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives printf-style progress messages during retries.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the standard backoff schedule: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a URL, retrying transient failures with the
// default backoff schedule (up to 4 attempts total).
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is FetchWithRetry with an explicit backoff
// schedule; tests pass zero delays to avoid real sleeps. One extra
// attempt is made per delay. Permanent failures are returned as-is
// without further attempts.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	for attempt := 0; err != nil && attempt < len(delays); attempt++ {
		if !retryable(err) {
			return "", err
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}

		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// retryable reports whether another attempt could plausibly succeed.
// A missing page, a malformed request, or an unsupported format will
// fail the same way every time.
func retryable(err error) bool {
	switch mcp.ErrorCode(err) {
	case mcp.ENOTFOUND, mcp.EINVALID, mcp.EUNSUPPORTED:
		return false
	}
	return true
}
