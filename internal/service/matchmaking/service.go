package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/muzz-matchmaking/internal/app"
	"github.com/oggyb/muzz-matchmaking/internal/db"
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
	"github.com/oggyb/muzz-matchmaking/internal/logger"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
	"github.com/oggyb/muzz-matchmaking/internal/repository"
	"github.com/oggyb/muzz-matchmaking/internal/utils/keys"
	"github.com/oggyb/muzz-matchmaking/internal/utils/pagination"
)

const (
	defaultIncomingLimit = 20
	maxIncomingLimit     = 50
)

// Service is the matchmaking core: quota, discovery, likes and matches.
// UI and chat collaborators call into it; the gRPC Handler is one such caller.
type Service struct {
	profiles ProfileStore
	likes    LikeStore
	matches  MatchStore
	blocks   BlockStore

	Quota     *QuotaLedger
	Exclusion *ExclusionResolver
	Discovery *DiscoverySelector
	Likes     *LikeLedger
	Engine    *MatchEngine

	logger *slog.Logger
}

// Stores bundles the persistence collaborators.
type Stores struct {
	Profiles ProfileStore
	Likes    LikeStore
	Matches  MatchStore
	Blocks   BlockStore
	Quota    QuotaStore
	Cache    CountCache // optional
}

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	DailyLikeLimit int
	QuotaCacheTTL  time.Duration
	PageSize       int
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// NewMatchmakingService wires the service from AppContext: gorm repositories
// over AppContext.DB and the Redis counter cache.
func NewMatchmakingService(appCtx *app.AppContext) *Service {
	stores := Stores{
		Profiles: repository.NewProfileRepository(appCtx.DB),
		Likes:    repository.NewLikeRepository(appCtx.DB),
		Matches:  repository.NewMatchRepository(appCtx.DB),
		Blocks:   repository.NewBlockRepository(appCtx.DB),
		Quota:    repository.NewQuotaRepository(appCtx.DB),
	}
	if appCtx.RedisCache != nil {
		stores.Cache = appCtx.RedisCache
	}

	opts := Options{Metrics: appCtx.Metrics, Logger: appCtx.Logger}
	if appCtx.Config != nil {
		opts.DailyLikeLimit = appCtx.Config.Likes.DailyLimit
		opts.QuotaCacheTTL = appCtx.Config.Likes.CacheTTL
		opts.PageSize = appCtx.Config.Discovery.PageSize
	}
	return NewService(stores, opts)
}

// NewService wires the components over the given stores.
func NewService(stores Stores, opts Options) *Service {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Logger == nil {
		opts.Logger = logger.L()
	}

	quota := NewQuotaLedger(stores.Quota, stores.Cache, opts.DailyLikeLimit, opts.QuotaCacheTTL, opts.Metrics, opts.Logger)
	exclusion := NewExclusionResolver(stores.Likes, stores.Blocks, stores.Matches)
	engine := NewMatchEngine(stores.Likes, stores.Matches, stores.Profiles, opts.Metrics, opts.Logger)

	return &Service{
		profiles:  stores.Profiles,
		likes:     stores.Likes,
		matches:   stores.Matches,
		blocks:    stores.Blocks,
		Quota:     quota,
		Exclusion: exclusion,
		Discovery: NewDiscoverySelector(stores.Profiles, exclusion, opts.PageSize),
		Likes:     NewLikeLedger(stores.Likes, quota, engine, opts.Metrics, opts.Logger),
		Engine:    engine,
		logger:    opts.Logger,
	}
}

// SetClock replaces the time source of every component.
func (s *Service) SetClock(now func() time.Time) {
	s.Quota.now = now
	s.Likes.now = now
	s.Engine.now = now
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx, s.logger)
}

// GetRemainingLikes returns how many likes uid may still send today.
func (s *Service) GetRemainingLikes(ctx context.Context, uid string) (int, error) {
	if err := validateUID("uid", uid); err != nil {
		return 0, err
	}
	return s.Quota.RemainingLikes(ctx, uid)
}

// CanSendLike reports whether uid has likes left today.
func (s *Service) CanSendLike(ctx context.Context, uid string) (bool, error) {
	if err := validateUID("uid", uid); err != nil {
		return false, err
	}
	return s.Quota.CanSendLike(ctx, uid)
}

// SendLike submits a like. Success is false when the daily quota is used up;
// that is not an error.
func (s *Service) SendLike(ctx context.Context, req LikeRequest) (SendLikeResult, error) {
	s.log(ctx).Debug("SendLike called", "from", req.FromUID, "to", req.ToUID)

	res, err := s.Likes.RecordLike(ctx, req)
	if err != nil {
		s.log(ctx).Error("SendLike failed", "from", req.FromUID, "to", req.ToUID, "err", err)
		return SendLikeResult{}, err
	}
	return res, nil
}

// GetDiscoveryProfiles returns the next candidates for uid with intent.
func (s *Service) GetDiscoveryProfiles(ctx context.Context, uid, intent string) ([]db.Profile, error) {
	if err := validateUID("uid", uid); err != nil {
		return nil, err
	}
	profiles, err := s.Discovery.NextProfiles(ctx, uid, intent)
	if err != nil {
		return nil, err
	}
	s.log(ctx).Debug("discovery profiles", "uid", uid, "intent", intent, "count", len(profiles))
	return profiles, nil
}

// DiscoveryFeed is what a discovery screen loads: candidates for the user's
// own intent plus the remaining likes counter.
type DiscoveryFeed struct {
	Profiles       []db.Profile
	RemainingLikes int
}

// GetDiscoveryFeed loads uid's own profile and its feed. A missing or
// incomplete profile returns ErrProfileIncomplete: the caller must send the
// user back to onboarding.
func (s *Service) GetDiscoveryFeed(ctx context.Context, uid string) (DiscoveryFeed, error) {
	if err := validateUID("uid", uid); err != nil {
		return DiscoveryFeed{}, err
	}

	me, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return DiscoveryFeed{}, fmt.Errorf("load own profile: %w", err)
	}
	if me == nil || !me.ProfileComplete {
		return DiscoveryFeed{}, svcErr.ErrProfileIncomplete
	}

	var feed DiscoveryFeed
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		feed.Profiles, err = s.Discovery.NextProfiles(gCtx, uid, me.Intent)
		return err
	})
	g.Go(func() (err error) {
		feed.RemainingLikes, err = s.Quota.RemainingLikes(gCtx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return DiscoveryFeed{}, err
	}
	return feed, nil
}

// GetUserMatches returns every match uid is in, newest first.
func (s *Service) GetUserMatches(ctx context.Context, uid string) ([]db.Match, error) {
	if err := validateUID("uid", uid); err != nil {
		return nil, err
	}
	matches, err := s.matches.ListForUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// GetMatch returns the match with matchID, or nil when it does not exist.
func (s *Service) GetMatch(ctx context.Context, matchID string) (*db.Match, error) {
	if _, _, ok := keys.SplitMatchID(matchID); !ok {
		return nil, svcErr.Invalid("malformed match id %q", matchID)
	}
	return s.matches.Get(ctx, matchID)
}

// IsMatchedWith checks whether uid and other share a match.
func (s *Service) IsMatchedWith(ctx context.Context, uid, other string) (bool, error) {
	if err := validatePair(uid, other); err != nil {
		return false, err
	}
	return s.matches.Exists(ctx, keys.MatchID(uid, other))
}

// HasLikedUser checks whether from has a live (unmatched) like on to.
func (s *Service) HasLikedUser(ctx context.Context, from, to string) (bool, error) {
	if err := validatePair(from, to); err != nil {
		return false, err
	}
	return s.likes.Exists(ctx, from, to)
}

// HasBlockedUser checks whether uid has blocked target.
func (s *Service) HasBlockedUser(ctx context.Context, uid, target string) (bool, error) {
	if err := validatePair(uid, target); err != nil {
		return false, err
	}
	return s.blocks.Exists(ctx, uid, target)
}

// BlockUser records blocker -> blocked. Repeating a block is a no-op.
func (s *Service) BlockUser(ctx context.Context, blocker, blocked string) error {
	if err := validatePair(blocker, blocked); err != nil {
		return err
	}
	if err := s.blocks.Create(ctx, blocker, blocked); err != nil {
		return fmt.Errorf("block user: %w", err)
	}
	s.log(ctx).Info("user blocked", "blocker", blocker, "blocked", blocked)
	return nil
}

// ListIncomingLikes returns live likes addressed to uid, newest first,
// skipping senders uid has blocked.
//
// Example:
//
//	likes, next, err := svc.ListIncomingLikes(ctx, "alice", nil, 20)
func (s *Service) ListIncomingLikes(ctx context.Context, uid string, paginationToken *string, limit int) ([]db.Like, *string, error) {
	if err := validateUID("uid", uid); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultIncomingLimit
	}
	limit = min(limit, maxIncomingLimit)

	likes, next, err := s.likes.ListIncoming(ctx, uid, paginationToken, limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, nil, svcErr.Invalid("pagination_token is invalid")
		}
		return nil, nil, fmt.Errorf("list incoming likes: %w", err)
	}
	return likes, next, nil
}

func validatePair(a, b string) error {
	if err := validateUID("uid", a); err != nil {
		return err
	}
	if err := validateUID("other_uid", b); err != nil {
		return err
	}
	if a == b {
		return svcErr.Invalid("user ids must differ")
	}
	return nil
}
