package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/muzz-matchmaking/internal/cache"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
	"github.com/oggyb/muzz-matchmaking/internal/utils/keys"
)

// DefaultDailyLikeLimit is the number of likes a user may send per UTC day.
const DefaultDailyLikeLimit = 5

// QuotaLedger tracks and enforces the daily like allowance.
//
// The admission check and the increment are separate store calls, so two
// submissions racing from the same user can both pass admission and push the
// day's count past the limit by the number of concurrent requests. Increments
// themselves are atomic and never lost. This drift is accepted.
//
// Admission always reads the store. The cache only serves RemainingLikes,
// which is display-only and may lag a concurrent increment by up to cacheTTL.
type QuotaLedger struct {
	store    QuotaStore
	cache    CountCache
	limit    int
	cacheTTL time.Duration
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewQuotaLedger creates a ledger over store. cache may be nil.
func NewQuotaLedger(store QuotaStore, countCache CountCache, limit int, cacheTTL time.Duration, m *metrics.Metrics, logger *slog.Logger) *QuotaLedger {
	if limit <= 0 {
		limit = DefaultDailyLikeLimit
	}
	return &QuotaLedger{
		store:    store,
		cache:    countCache,
		limit:    limit,
		cacheTTL: cacheTTL,
		now:      time.Now,
		logger:   logger,
		metrics:  m,
	}
}

// Limit returns the daily allowance.
func (q *QuotaLedger) Limit() int { return q.limit }

// Today is the partition key for the current UTC day.
func (q *QuotaLedger) Today() string { return keys.DayKey(q.now()) }

// RemainingLikes returns limit - today's count, clamped at 0.
func (q *QuotaLedger) RemainingLikes(ctx context.Context, uid string) (int, error) {
	return q.remainingOn(ctx, uid, q.Today())
}

// CanSendLike reports whether uid still has likes left today.
func (q *QuotaLedger) CanSendLike(ctx context.Context, uid string) (bool, error) {
	return q.canSendOn(ctx, uid, q.Today())
}

// RecordLikeSent increments today's counter. Call it only after the like is
// persisted and only if CanSendLike held at admission.
func (q *QuotaLedger) RecordLikeSent(ctx context.Context, uid string) (int, error) {
	return q.recordOn(ctx, uid, q.Today())
}

func (q *QuotaLedger) remainingOn(ctx context.Context, uid, day string) (int, error) {
	count, err := q.countOn(ctx, uid, day)
	if err != nil {
		return 0, err
	}
	return max(0, q.limit-count), nil
}

func (q *QuotaLedger) canSendOn(ctx context.Context, uid, day string) (bool, error) {
	count, err := q.storedCount(ctx, uid, day)
	if err != nil {
		return false, err
	}
	return count < q.limit, nil
}

func (q *QuotaLedger) recordOn(ctx context.Context, uid, day string) (int, error) {
	count, err := q.store.Increment(ctx, uid, day)
	if err != nil {
		return 0, fmt.Errorf("record like sent: %w", err)
	}
	if q.cache != nil {
		if err := q.cache.InvalidateDailyLikes(ctx, uid, day); err != nil {
			q.logger.Warn("invalidate daily like cache failed", "uid", uid, "day", day, "err", err)
		}
	}
	return count, nil
}

// countOn reads the day's count cache-first, falling back to the store.
// Cache failures never fail the read.
func (q *QuotaLedger) countOn(ctx context.Context, uid, day string) (int, error) {
	if q.cache != nil {
		n, err := q.cache.GetDailyLikes(ctx, uid, day)
		if err == nil {
			q.metrics.QuotaCacheReads.WithLabelValues("hit").Inc()
			return n, nil
		}
		if errors.Is(err, cache.ErrMiss) {
			q.metrics.QuotaCacheReads.WithLabelValues("miss").Inc()
		} else {
			q.metrics.QuotaCacheReads.WithLabelValues("error").Inc()
			q.logger.Warn("daily like cache read failed", "uid", uid, "day", day, "err", err)
		}
	}

	count, err := q.storedCount(ctx, uid, day)
	if err != nil {
		return 0, err
	}

	if q.cache != nil {
		if ttl := q.ttlFor(); ttl > 0 {
			if err := q.cache.SetDailyLikes(ctx, uid, day, count, ttl); err != nil {
				q.logger.Warn("daily like cache write failed", "uid", uid, "day", day, "err", err)
			}
		}
	}
	return count, nil
}

func (q *QuotaLedger) storedCount(ctx context.Context, uid, day string) (int, error) {
	count, err := q.store.GetCount(ctx, uid, day)
	if err != nil {
		return 0, fmt.Errorf("read daily like count: %w", err)
	}
	return count, nil
}

// ttlFor caps the cache TTL at the end of the current UTC day.
func (q *QuotaLedger) ttlFor() time.Duration {
	now := q.now()
	return min(q.cacheTTL, keys.EndOfDay(now).Sub(now))
}
