package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts HTTP traffic and calculator outcomes since process start.
type Collector struct {
	totalRequests   atomic.Uint64
	errorRequests   atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64

	calculations atomic.Uint64
	reports      atomic.Uint64
	rejected     atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	if status >= 500 {
		c.errorRequests.Add(1)
	}
	if status == 429 {
		c.rateLimited.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

func (c *Collector) Calculated() {
	c.calculations.Add(1)
}

func (c *Collector) ReportRendered() {
	c.reports.Add(1)
}

func (c *Collector) Rejected() {
	c.rejected.Add(1)
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       c.errorRequests.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"calculationsTotal": c.calculations.Load(),
		"reportsTotal":      c.reports.Load(),
		"rejectedTotal":     c.rejected.Load(),
	}
}
