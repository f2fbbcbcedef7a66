package payroll

import (
	"context"
	"time"
)

// ReportCache memoizes rendered reports. Implementations live in platform/cache.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
