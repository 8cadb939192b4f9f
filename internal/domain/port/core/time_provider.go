package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so retries and timeouts stay testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(ctx context.Context, d time.Duration) error
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
