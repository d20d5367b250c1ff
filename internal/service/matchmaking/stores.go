package matchmaking

import (
	"context"
	"time"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

// ProfileStore reads and writes user profiles.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*db.Profile, error)
	Create(ctx context.Context, p *db.Profile) (bool, error)
	Save(ctx context.Context, p *db.Profile) error
	ListCandidates(ctx context.Context, intent string, exclude []string, limit int) ([]db.Profile, error)
}

// LikeStore persists directed likes keyed by (from, to).
type LikeStore interface {
	Upsert(ctx context.Context, like *db.Like) error
	Get(ctx context.Context, fromUID, toUID string) (*db.Like, error)
	Exists(ctx context.Context, fromUID, toUID string) (bool, error)
	ListRecipients(ctx context.Context, fromUID string) ([]string, error)
	ListIncoming(ctx context.Context, toUID string, paginationToken *string, limit int) ([]db.Like, *string, error)
}

// MatchStore persists matches. CreateConsumingLikes must insert the match and
// delete both originating likes atomically.
type MatchStore interface {
	CreateConsumingLikes(ctx context.Context, match *db.Match) (*db.Match, bool, error)
	Get(ctx context.Context, matchID string) (*db.Match, error)
	Exists(ctx context.Context, matchID string) (bool, error)
	ListForUser(ctx context.Context, uid string) ([]db.Match, error)
	ListPartners(ctx context.Context, uid string) ([]string, error)
}

// BlockStore answers directional block queries.
type BlockStore interface {
	Create(ctx context.Context, blockerUID, blockedUID string) error
	Exists(ctx context.Context, blockerUID, blockedUID string) (bool, error)
	ListBlockedBy(ctx context.Context, uid string) ([]string, error)
	ListBlockersOf(ctx context.Context, uid string) ([]string, error)
}

// QuotaStore is the durable per-day like counter.
type QuotaStore interface {
	GetCount(ctx context.Context, uid, day string) (int, error)
	Increment(ctx context.Context, uid, day string) (int, error)
}

// CountCache is a best-effort cache in front of QuotaStore.
type CountCache interface {
	GetDailyLikes(ctx context.Context, uid, day string) (int, error)
	SetDailyLikes(ctx context.Context, uid, day string, count int, ttl time.Duration) error
	InvalidateDailyLikes(ctx context.Context, uid, day string) error
}
