package matchmaking

import (
	"context"
	"fmt"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
	"github.com/oggyb/muzz-matchmaking/internal/logger"
	rpc "github.com/oggyb/muzz-matchmaking/internal/rpc/matchmakingrpc"
)

// Handler implements the Matchmaking gRPC API on top of Service.
// It only converts messages and maps errors; rules live in Service.
type Handler struct {
	svc *Service

	rpc.UnimplementedMatchmakingServer
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// fail logs err on the request logger and converts it to a status error.
func (h *Handler) fail(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx, h.svc.logger).Debug(op+" failed", "err", err)
	return svcErr.Map(err)
}

func (h *Handler) GetRemainingLikes(ctx context.Context, req *rpc.UserRequest) (*rpc.RemainingLikesResponse, error) {
	n, err := h.svc.GetRemainingLikes(ctx, req.UID)
	if err != nil {
		return nil, h.fail(ctx, "GetRemainingLikes", err)
	}
	return &rpc.RemainingLikesResponse{Remaining: n, Limit: h.svc.Quota.Limit()}, nil
}

func (h *Handler) CanSendLike(ctx context.Context, req *rpc.UserRequest) (*rpc.CanSendLikeResponse, error) {
	ok, err := h.svc.CanSendLike(ctx, req.UID)
	if err != nil {
		return nil, h.fail(ctx, "CanSendLike", err)
	}
	return &rpc.CanSendLikeResponse{CanSend: ok}, nil
}

// SendLike returns success=false, not an error, when the quota is used up.
func (h *Handler) SendLike(ctx context.Context, req *rpc.SendLikeRequest) (*rpc.SendLikeResponse, error) {
	target, err := ParseTarget(req.TargetType, req.TargetID)
	if err != nil {
		return nil, h.fail(ctx, "SendLike", err)
	}

	res, err := h.svc.SendLike(ctx, LikeRequest{
		FromUID: req.FromUID,
		ToUID:   req.ToUID,
		Target:  target,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, h.fail(ctx, "SendLike", err)
	}

	resp := &rpc.SendLikeResponse{Success: res.Success}
	if res.Match != nil {
		m := toMatchMsg(*res.Match)
		resp.Match = &m
	}
	return resp, nil
}

func (h *Handler) GetDiscoveryProfiles(ctx context.Context, req *rpc.DiscoveryRequest) (*rpc.ProfilesResponse, error) {
	profiles, err := h.svc.GetDiscoveryProfiles(ctx, req.UID, req.Intent)
	if err != nil {
		return nil, h.fail(ctx, "GetDiscoveryProfiles", err)
	}
	return &rpc.ProfilesResponse{Profiles: toProfileMsgs(profiles)}, nil
}

func (h *Handler) GetDiscoveryFeed(ctx context.Context, req *rpc.UserRequest) (*rpc.DiscoveryFeedResponse, error) {
	feed, err := h.svc.GetDiscoveryFeed(ctx, req.UID)
	if err != nil {
		return nil, h.fail(ctx, "GetDiscoveryFeed", err)
	}
	return &rpc.DiscoveryFeedResponse{
		Profiles:       toProfileMsgs(feed.Profiles),
		RemainingLikes: feed.RemainingLikes,
	}, nil
}

func (h *Handler) GetUserMatches(ctx context.Context, req *rpc.UserRequest) (*rpc.MatchesResponse, error) {
	matches, err := h.svc.GetUserMatches(ctx, req.UID)
	if err != nil {
		return nil, h.fail(ctx, "GetUserMatches", err)
	}
	resp := &rpc.MatchesResponse{Matches: make([]rpc.Match, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toMatchMsg(m))
	}
	return resp, nil
}

func (h *Handler) GetMatch(ctx context.Context, req *rpc.GetMatchRequest) (*rpc.MatchResponse, error) {
	m, err := h.svc.GetMatch(ctx, req.MatchID)
	if err != nil {
		return nil, h.fail(ctx, "GetMatch", err)
	}
	if m == nil {
		return nil, h.fail(ctx, "GetMatch", fmt.Errorf("match %s: %w", req.MatchID, svcErr.ErrNotFound))
	}
	return &rpc.MatchResponse{Match: toMatchMsg(*m)}, nil
}

func (h *Handler) IsMatchedWith(ctx context.Context, req *rpc.PairRequest) (*rpc.BoolResponse, error) {
	ok, err := h.svc.IsMatchedWith(ctx, req.UID, req.OtherUID)
	if err != nil {
		return nil, h.fail(ctx, "IsMatchedWith", err)
	}
	return &rpc.BoolResponse{Value: ok}, nil
}

func (h *Handler) HasLikedUser(ctx context.Context, req *rpc.PairRequest) (*rpc.BoolResponse, error) {
	ok, err := h.svc.HasLikedUser(ctx, req.UID, req.OtherUID)
	if err != nil {
		return nil, h.fail(ctx, "HasLikedUser", err)
	}
	return &rpc.BoolResponse{Value: ok}, nil
}

func (h *Handler) HasBlockedUser(ctx context.Context, req *rpc.PairRequest) (*rpc.BoolResponse, error) {
	ok, err := h.svc.HasBlockedUser(ctx, req.UID, req.OtherUID)
	if err != nil {
		return nil, h.fail(ctx, "HasBlockedUser", err)
	}
	return &rpc.BoolResponse{Value: ok}, nil
}

func (h *Handler) BlockUser(ctx context.Context, req *rpc.PairRequest) (*rpc.Empty, error) {
	if err := h.svc.BlockUser(ctx, req.UID, req.OtherUID); err != nil {
		return nil, h.fail(ctx, "BlockUser", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) ListIncomingLikes(ctx context.Context, req *rpc.ListIncomingLikesRequest) (*rpc.ListIncomingLikesResponse, error) {
	likes, next, err := h.svc.ListIncomingLikes(ctx, req.UID, req.PaginationToken, req.Limit)
	if err != nil {
		return nil, h.fail(ctx, "ListIncomingLikes", err)
	}
	resp := &rpc.ListIncomingLikesResponse{
		Likes:               make([]rpc.IncomingLike, 0, len(likes)),
		NextPaginationToken: next,
	}
	for _, l := range likes {
		resp.Likes = append(resp.Likes, rpc.IncomingLike{
			FromUID:    l.FromUID,
			TargetType: l.TargetType,
			TargetID:   l.TargetID,
			Comment:    l.Comment,
			CreatedAt:  l.CreatedAt.UnixMilli(),
		})
	}
	return resp, nil
}

func (h *Handler) CreateProfile(ctx context.Context, req *rpc.CreateProfileRequest) (*rpc.ProfileResponse, error) {
	p, err := h.svc.CreateProfile(ctx, fromProfileMsg(req.Profile))
	if err != nil {
		return nil, h.fail(ctx, "CreateProfile", err)
	}
	return &rpc.ProfileResponse{Profile: toProfileMsg(*p)}, nil
}

func (h *Handler) UpdateProfile(ctx context.Context, req *rpc.UpdateProfileRequest) (*rpc.ProfileResponse, error) {
	p, err := h.svc.UpdateProfile(ctx, fromProfileMsg(req.Profile))
	if err != nil {
		return nil, h.fail(ctx, "UpdateProfile", err)
	}
	return &rpc.ProfileResponse{Profile: toProfileMsg(*p)}, nil
}

func (h *Handler) GetProfile(ctx context.Context, req *rpc.UserRequest) (*rpc.ProfileResponse, error) {
	p, err := h.svc.GetProfile(ctx, req.UID)
	if err != nil {
		return nil, h.fail(ctx, "GetProfile", err)
	}
	if p == nil {
		return nil, h.fail(ctx, "GetProfile", fmt.Errorf("profile %s: %w", req.UID, svcErr.ErrNotFound))
	}
	return &rpc.ProfileResponse{Profile: toProfileMsg(*p)}, nil
}

// --- conversions ---

func fromProfileMsg(in rpc.Profile) ProfileInput {
	return ProfileInput{
		UID:          in.UID,
		Name:         in.Name,
		Age:          in.Age,
		Gender:       in.Gender,
		Intent:       in.Intent,
		City:         in.City,
		Neighborhood: in.Neighborhood,
		Photos:       fromPhotoMsgs(in.Photos),
		Prompts:      fromPromptMsgs(in.Prompts),
		Places:       fromPlaceMsgs(in.Places),
	}
}

func toMatchMsg(m db.Match) rpc.Match {
	return rpc.Match{
		MatchID:       m.MatchID,
		UserA:         m.UserA,
		UserB:         m.UserB,
		MatchedAt:     m.MatchedAt.UnixMilli(),
		TargetType:    m.TargetType,
		TargetID:      m.TargetID,
		TargetContent: m.TargetContent,
	}
}

func toProfileMsgs(profiles []db.Profile) []rpc.Profile {
	out := make([]rpc.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileMsg(p))
	}
	return out
}

func toProfileMsg(p db.Profile) rpc.Profile {
	msg := rpc.Profile{
		UID:             p.UID,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		Intent:          p.Intent,
		City:            p.City,
		Neighborhood:    p.Neighborhood,
		ProfileComplete: p.ProfileComplete,
		ReplyRate:       p.ReplyRate,
		GhostingCount:   p.GhostingCount,
	}
	for _, ph := range p.Photos {
		msg.Photos = append(msg.Photos, rpc.Photo{ID: ph.ID, URL: ph.URL, Order: ph.Order})
	}
	for _, pr := range p.Prompts {
		msg.Prompts = append(msg.Prompts, rpc.Prompt{ID: pr.ID, Question: pr.Question, Answer: pr.Answer})
	}
	for _, pl := range p.Places {
		msg.Places = append(msg.Places, rpc.Place{Name: pl.Name, Category: pl.Category})
	}
	return msg
}

func fromPhotoMsgs(in []rpc.Photo) []db.Photo {
	var out []db.Photo
	for _, p := range in {
		out = append(out, db.Photo{ID: p.ID, URL: p.URL, Order: p.Order})
	}
	return out
}

func fromPromptMsgs(in []rpc.Prompt) []db.Prompt {
	var out []db.Prompt
	for _, p := range in {
		out = append(out, db.Prompt{ID: p.ID, Question: p.Question, Answer: p.Answer})
	}
	return out
}

func fromPlaceMsgs(in []rpc.Place) []db.Place {
	var out []db.Place
	for _, p := range in {
		out = append(out, db.Place{Name: p.Name, Category: p.Category})
	}
	return out
}
