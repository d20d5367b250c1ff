package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
	"github.com/oggyb/muzz-matchmaking/internal/utils/keys"
)

const maxCommentLength = 500

// LikeRequest is a like submission.
type LikeRequest struct {
	FromUID string
	ToUID   string
	Target  Target
	Comment *string
}

// SendLikeResult reports whether the like was accepted and the match it
// completed, if any.
type SendLikeResult struct {
	Success bool
	Match   *db.Match
}

// LikeLedger admits, persists and follows up on like submissions.
type LikeLedger struct {
	likes   LikeStore
	quota   *QuotaLedger
	engine  *MatchEngine
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewLikeLedger(likes LikeStore, quota *QuotaLedger, engine *MatchEngine, m *metrics.Metrics, logger *slog.Logger) *LikeLedger {
	return &LikeLedger{
		likes:   likes,
		quota:   quota,
		engine:  engine,
		now:     time.Now,
		logger:  logger,
		metrics: m,
	}
}

// RecordLike runs a submission end to end.
//
// Behavior:
//   - Quota exhausted → {Success: false}, nothing written.
//   - Otherwise the like is upserted under (from, to), then today's counter is
//     incremented, then reciprocity is checked. Each step runs only if the
//     previous one succeeded.
//   - The day partition is fixed once, at admission.
//   - The liked target is not checked against the recipient's profile.
func (l *LikeLedger) RecordLike(ctx context.Context, req LikeRequest) (SendLikeResult, error) {
	if err := validateLike(req); err != nil {
		return SendLikeResult{}, err
	}

	now := l.now().UTC()
	day := keys.DayKey(now)

	ok, err := l.quota.canSendOn(ctx, req.FromUID, day)
	if err != nil {
		return SendLikeResult{}, err
	}
	if !ok {
		l.metrics.LikesRejected.Inc()
		l.logger.Debug("like rejected: daily quota used up", "from", req.FromUID, "day", day)
		return SendLikeResult{Success: false}, nil
	}

	like := &db.Like{
		FromUID:    req.FromUID,
		ToUID:      req.ToUID,
		TargetType: string(req.Target.Kind()),
		TargetID:   req.Target.ID(),
		Comment:    normalizeComment(req.Comment),
		CreatedAt:  now.Truncate(time.Millisecond),
	}
	if err := l.likes.Upsert(ctx, like); err != nil {
		return SendLikeResult{}, fmt.Errorf("persist like: %w", err)
	}
	l.metrics.LikesSent.Inc()

	if _, err := l.quota.recordOn(ctx, req.FromUID, day); err != nil {
		return SendLikeResult{}, err
	}

	match, err := l.engine.TryFormMatch(ctx, like)
	if err != nil {
		return SendLikeResult{}, err
	}
	return SendLikeResult{Success: true, Match: match}, nil
}

func validateLike(req LikeRequest) error {
	if err := validateUID("from_uid", req.FromUID); err != nil {
		return err
	}
	if err := validateUID("to_uid", req.ToUID); err != nil {
		return err
	}
	if req.FromUID == req.ToUID {
		return svcErr.Invalid("cannot like yourself")
	}
	if req.Target == nil {
		return svcErr.Invalid("target is required")
	}
	if req.Target.ID() == "" {
		return svcErr.Invalid("target_id is required")
	}
	if req.Comment != nil && len([]rune(*req.Comment)) > maxCommentLength {
		return svcErr.Invalid("comment longer than %d characters", maxCommentLength)
	}
	return nil
}

// normalizeComment drops blank comments.
func normalizeComment(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateUID(field, uid string) error {
	if err := keys.ValidateUserID(uid); err != nil {
		return svcErr.Invalid("%s: %v", field, err)
	}
	return nil
}
