package mock

import (
	"context"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter represents a mock of mcp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn != nil {
		return l.WaitFn(ctx, domain)
	}
	return nil
}
