package payroll

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"piecework/internal/requestctx"
)

type Service struct {
	cache    ReportCache
	cacheTTL time.Duration
	render   func(WageResult) ([]byte, error)
}

// NewService returns a service that renders reports on every call when cache is nil.
func NewService(cache ReportCache, cacheTTL time.Duration) *Service {
	return &Service{cache: cache, cacheTTL: cacheTTL, render: RenderReport}
}

func (s *Service) Calculate(_ context.Context, in WageInput) (WageResult, error) {
	if err := in.Validate(); err != nil {
		return WageResult{}, err
	}
	return Calculate(in), nil
}

func (s *Service) Report(ctx context.Context, in WageInput) (WageResult, []byte, error) {
	result, err := s.Calculate(ctx, in)
	if err != nil {
		return WageResult{}, nil, err
	}

	key := ReportCacheKey(in)
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			return result, data, nil
		}
	}

	data, err := s.render(result)
	if err != nil {
		return WageResult{}, nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			requestctx.Logger(ctx).Warn("report cache set failed", "key", key, "err", err)
		}
	}
	return result, data, nil
}

// ReportCacheKey identifies a report by its inputs and the tax rate it was computed with.
func ReportCacheKey(in WageInput) string {
	parts := []string{
		strconv.FormatFloat(in.Units, 'g', -1, 64),
		strconv.FormatFloat(in.Rate, 'g', -1, 64),
		strconv.FormatFloat(in.Deduction, 'g', -1, 64),
		strconv.FormatFloat(in.Bonus, 'g', -1, 64),
		strconv.FormatFloat(TaxRate, 'g', -1, 64),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "report:" + hex.EncodeToString(sum[:])
}
