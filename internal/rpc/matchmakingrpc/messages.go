package matchmakingrpc

// Wire messages for matchmaking.v1.Matchmaking. Timestamps are unix millis.

type Photo struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type Prompt struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Place struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type Profile struct {
	UID             string   `json:"uid"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Intent          string   `json:"intent"`
	City            string   `json:"city"`
	Neighborhood    string   `json:"neighborhood,omitempty"`
	Photos          []Photo  `json:"photos,omitempty"`
	Prompts         []Prompt `json:"prompts,omitempty"`
	Places          []Place  `json:"places,omitempty"`
	ProfileComplete bool     `json:"profile_complete"`
	ReplyRate       float64  `json:"reply_rate"`
	GhostingCount   int      `json:"ghosting_count"`
}

type Match struct {
	MatchID       string `json:"match_id"`
	UserA         string `json:"user_a"`
	UserB         string `json:"user_b"`
	MatchedAt     int64  `json:"matched_at"`
	TargetType    string `json:"target_type"`
	TargetID      string `json:"target_id"`
	TargetContent string `json:"target_content"`
}

type IncomingLike struct {
	FromUID    string  `json:"from_uid"`
	TargetType string  `json:"target_type"`
	TargetID   string  `json:"target_id"`
	Comment    *string `json:"comment,omitempty"`
	CreatedAt  int64   `json:"created_at"`
}

// UserRequest addresses a single user.
type UserRequest struct {
	UID string `json:"uid"`
}

// PairRequest addresses an ordered pair of users.
type PairRequest struct {
	UID      string `json:"uid"`
	OtherUID string `json:"other_uid"`
}

type BoolResponse struct {
	Value bool `json:"value"`
}

type Empty struct{}

type RemainingLikesResponse struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

type CanSendLikeResponse struct {
	CanSend bool `json:"can_send"`
}

type SendLikeRequest struct {
	FromUID    string  `json:"from_uid"`
	ToUID      string  `json:"to_uid"`
	TargetType string  `json:"target_type"`
	TargetID   string  `json:"target_id"`
	Comment    *string `json:"comment,omitempty"`
}

// SendLikeResponse carries success=false when the daily quota is used up.
type SendLikeResponse struct {
	Success bool   `json:"success"`
	Match   *Match `json:"match,omitempty"`
}

type DiscoveryRequest struct {
	UID    string `json:"uid"`
	Intent string `json:"intent"`
}

type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

type DiscoveryFeedResponse struct {
	Profiles       []Profile `json:"profiles"`
	RemainingLikes int       `json:"remaining_likes"`
}

type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

type GetMatchRequest struct {
	MatchID string `json:"match_id"`
}

type MatchResponse struct {
	Match Match `json:"match"`
}

type ListIncomingLikesRequest struct {
	UID             string  `json:"uid"`
	PaginationToken *string `json:"pagination_token,omitempty"`
	Limit           int     `json:"limit,omitempty"`
}

type ListIncomingLikesResponse struct {
	Likes               []IncomingLike `json:"likes"`
	NextPaginationToken *string        `json:"next_pagination_token,omitempty"`
}

type CreateProfileRequest struct {
	Profile Profile `json:"profile"`
}

// UpdateProfileRequest replaces the editable fields of Profile.UID's profile.
type UpdateProfileRequest struct {
	Profile Profile `json:"profile"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}
