package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
	"github.com/oggyb/muzz-matchmaking/internal/utils/keys"
)

// MatchEngine turns a reciprocated like into a match.
//
// Pair lifecycle: no likes → one like → match (both likes retired). A match
// is never removed here, and a retired like only comes back through a fresh
// submission.
type MatchEngine struct {
	likes    LikeStore
	matches  MatchStore
	profiles ProfileStore
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewMatchEngine(likes LikeStore, matches MatchStore, profiles ProfileStore, m *metrics.Metrics, logger *slog.Logger) *MatchEngine {
	return &MatchEngine{
		likes:    likes,
		matches:  matches,
		profiles: profiles,
		now:      time.Now,
		logger:   logger,
		metrics:  m,
	}
}

// TryFormMatch checks whether like is reciprocated and, if so, creates the
// pair's match and retires both likes. It returns nil when there is no
// reciprocal like.
//
// Behavior:
//   - Match id is keys.MatchID(from, to), identical for both participants.
//   - The snapshot of the liked element is best effort: a failed or empty
//     profile lookup yields an empty snapshot, never a dropped match.
//   - The match insert and both like deletions commit together. If the insert
//     fails the likes stay, so the next trigger detects reciprocity again.
//   - Two concurrent callers for the same pair converge on one match row; the
//     loser gets the winner's row back.
func (e *MatchEngine) TryFormMatch(ctx context.Context, like *db.Like) (*db.Match, error) {
	reciprocal, err := e.likes.Get(ctx, like.ToUID, like.FromUID)
	if err != nil {
		return nil, fmt.Errorf("lookup reciprocal like: %w", err)
	}
	if reciprocal == nil {
		return nil, nil
	}

	match := &db.Match{
		MatchID:       keys.MatchID(like.FromUID, like.ToUID),
		UserA:         like.FromUID,
		UserB:         like.ToUID,
		MatchedAt:     e.now().UTC().Truncate(time.Millisecond),
		TargetType:    like.TargetType,
		TargetID:      like.TargetID,
		TargetContent: e.snapshot(ctx, like),
	}

	stored, created, err := e.matches.CreateConsumingLikes(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("create match %s: %w", match.MatchID, err)
	}

	if created {
		e.metrics.MatchesFormed.Inc()
		e.logger.Info("match formed", "match_id", stored.MatchID, "user_a", stored.UserA, "user_b", stored.UserB)
	} else {
		e.metrics.MatchRaceLost.Inc()
		e.logger.Debug("match already existed", "match_id", stored.MatchID)
	}
	return stored, nil
}

// snapshot resolves the liked element on the recipient's current profile into
// display text.
func (e *MatchEngine) snapshot(ctx context.Context, like *db.Like) string {
	target, err := ParseTarget(like.TargetType, like.TargetID)
	if err != nil {
		e.logger.Warn("unresolvable like target", "from", like.FromUID, "to", like.ToUID, "err", err)
		return ""
	}

	switch t := target.(type) {
	case PhotoTarget:
		return photoSnapshot
	case PromptTarget:
		profile, err := e.profiles.Get(ctx, like.ToUID)
		if err != nil {
			e.logger.Warn("profile lookup for match snapshot failed", "uid", like.ToUID, "err", err)
			return ""
		}
		if profile == nil {
			return ""
		}
		for _, p := range profile.Prompts {
			if p.ID == t.PromptID {
				return p.Question + "\n" + p.Answer
			}
		}
		return ""
	default:
		return ""
	}
}
