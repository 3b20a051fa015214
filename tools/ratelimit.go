package tools

import (
	"context"
	"sync"

	"github.com/flyingcloud-code/mcp"
	"golang.org/x/time/rate"
)

var _ mcp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host while letting
// requests to different hosts proceed independently. A token-bucket
// limiter is created lazily for each domain on first use.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second
// to each domain, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the domain's bucket permits a request or the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = b
	}
	return b
}
