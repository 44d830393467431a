package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/socialnet/internal/server/metrics"
)

// Reaper периодически удаляет записи токенов старше времени жизни refresh token.
// Такие токены уже не пройдут проверку подписи, а записи только занимают место.
type Reaper struct {
	logger   *slog.Logger
	tokens   *TokenStore
	metrics  *metrics.Metrics
	now      func() time.Time
	maxAge   time.Duration
	interval time.Duration
}

// NewReaper создает Reaper. maxAge обычно равен RefreshTTL.
func NewReaper(logger *slog.Logger, tokens *TokenStore, maxAge, interval time.Duration, m *metrics.Metrics) *Reaper {
	return &Reaper{
		logger:   logger,
		tokens:   tokens,
		metrics:  m,
		now:      time.Now,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Run удаляет устаревшие записи каждые interval до отмены ctx
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.ReapOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "Failed to reap stale token records", slog.Any("error", err))
			}
		}
	}
}

// ReapOnce выполняет один проход очистки
func (r *Reaper) ReapOnce(ctx context.Context) (int, error) {
	n, err := r.tokens.DeleteCreatedBefore(ctx, r.now().Add(-r.maxAge))
	if err != nil {
		return 0, err
	}

	r.metrics.ObserveReaped(n)
	if n > 0 {
		r.logger.InfoContext(ctx, "Stale token records reaped", slog.Int("count", n))
	}

	return n, nil
}
