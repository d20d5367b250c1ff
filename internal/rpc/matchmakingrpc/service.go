// Package matchmakingrpc is the gRPC surface of the matchmaking service:
// service descriptor, server interface and client, carried by a JSON codec.
package matchmakingrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "matchmaking.v1.Matchmaking"

// FullMethod returns the "/service/method" path for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// MatchmakingServer is the server API for matchmaking.v1.Matchmaking.
// Implementations must embed UnimplementedMatchmakingServer.
type MatchmakingServer interface {
	GetRemainingLikes(context.Context, *UserRequest) (*RemainingLikesResponse, error)
	CanSendLike(context.Context, *UserRequest) (*CanSendLikeResponse, error)
	SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error)
	GetDiscoveryProfiles(context.Context, *DiscoveryRequest) (*ProfilesResponse, error)
	GetDiscoveryFeed(context.Context, *UserRequest) (*DiscoveryFeedResponse, error)
	GetUserMatches(context.Context, *UserRequest) (*MatchesResponse, error)
	GetMatch(context.Context, *GetMatchRequest) (*MatchResponse, error)
	IsMatchedWith(context.Context, *PairRequest) (*BoolResponse, error)
	HasLikedUser(context.Context, *PairRequest) (*BoolResponse, error)
	HasBlockedUser(context.Context, *PairRequest) (*BoolResponse, error)
	BlockUser(context.Context, *PairRequest) (*Empty, error)
	ListIncomingLikes(context.Context, *ListIncomingLikesRequest) (*ListIncomingLikesResponse, error)
	CreateProfile(context.Context, *CreateProfileRequest) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
	GetProfile(context.Context, *UserRequest) (*ProfileResponse, error)
	mustEmbedUnimplementedMatchmakingServer()
}

// UnimplementedMatchmakingServer answers every method with Unimplemented.
type UnimplementedMatchmakingServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedMatchmakingServer) GetRemainingLikes(context.Context, *UserRequest) (*RemainingLikesResponse, error) {
	return nil, unimplemented("GetRemainingLikes")
}
func (UnimplementedMatchmakingServer) CanSendLike(context.Context, *UserRequest) (*CanSendLikeResponse, error) {
	return nil, unimplemented("CanSendLike")
}
func (UnimplementedMatchmakingServer) SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error) {
	return nil, unimplemented("SendLike")
}
func (UnimplementedMatchmakingServer) GetDiscoveryProfiles(context.Context, *DiscoveryRequest) (*ProfilesResponse, error) {
	return nil, unimplemented("GetDiscoveryProfiles")
}
func (UnimplementedMatchmakingServer) GetDiscoveryFeed(context.Context, *UserRequest) (*DiscoveryFeedResponse, error) {
	return nil, unimplemented("GetDiscoveryFeed")
}
func (UnimplementedMatchmakingServer) GetUserMatches(context.Context, *UserRequest) (*MatchesResponse, error) {
	return nil, unimplemented("GetUserMatches")
}
func (UnimplementedMatchmakingServer) GetMatch(context.Context, *GetMatchRequest) (*MatchResponse, error) {
	return nil, unimplemented("GetMatch")
}
func (UnimplementedMatchmakingServer) IsMatchedWith(context.Context, *PairRequest) (*BoolResponse, error) {
	return nil, unimplemented("IsMatchedWith")
}
func (UnimplementedMatchmakingServer) HasLikedUser(context.Context, *PairRequest) (*BoolResponse, error) {
	return nil, unimplemented("HasLikedUser")
}
func (UnimplementedMatchmakingServer) HasBlockedUser(context.Context, *PairRequest) (*BoolResponse, error) {
	return nil, unimplemented("HasBlockedUser")
}
func (UnimplementedMatchmakingServer) BlockUser(context.Context, *PairRequest) (*Empty, error) {
	return nil, unimplemented("BlockUser")
}
func (UnimplementedMatchmakingServer) ListIncomingLikes(context.Context, *ListIncomingLikesRequest) (*ListIncomingLikesResponse, error) {
	return nil, unimplemented("ListIncomingLikes")
}
func (UnimplementedMatchmakingServer) CreateProfile(context.Context, *CreateProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("CreateProfile")
}
func (UnimplementedMatchmakingServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedMatchmakingServer) GetProfile(context.Context, *UserRequest) (*ProfileResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedMatchmakingServer) mustEmbedUnimplementedMatchmakingServer() {}

// unary builds the method descriptor for one unary RPC: decode the request,
// then run call through the server's interceptor chain.
func unary[Req, Resp any](method string, call func(MatchmakingServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MatchmakingServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MatchmakingServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for matchmaking.v1.Matchmaking.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MatchmakingServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetRemainingLikes", MatchmakingServer.GetRemainingLikes),
		unary("CanSendLike", MatchmakingServer.CanSendLike),
		unary("SendLike", MatchmakingServer.SendLike),
		unary("GetDiscoveryProfiles", MatchmakingServer.GetDiscoveryProfiles),
		unary("GetDiscoveryFeed", MatchmakingServer.GetDiscoveryFeed),
		unary("GetUserMatches", MatchmakingServer.GetUserMatches),
		unary("GetMatch", MatchmakingServer.GetMatch),
		unary("IsMatchedWith", MatchmakingServer.IsMatchedWith),
		unary("HasLikedUser", MatchmakingServer.HasLikedUser),
		unary("HasBlockedUser", MatchmakingServer.HasBlockedUser),
		unary("BlockUser", MatchmakingServer.BlockUser),
		unary("ListIncomingLikes", MatchmakingServer.ListIncomingLikes),
		unary("CreateProfile", MatchmakingServer.CreateProfile),
		unary("UpdateProfile", MatchmakingServer.UpdateProfile),
		unary("GetProfile", MatchmakingServer.GetProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "matchmaking/v1/matchmaking.json",
}

// RegisterMatchmakingServer attaches srv to s.
func RegisterMatchmakingServer(s grpc.ServiceRegistrar, srv MatchmakingServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls matchmaking.v1.Matchmaking over cc using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRemainingLikes(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*RemainingLikesResponse, error) {
	return invoke[RemainingLikesResponse](ctx, c, "GetRemainingLikes", in, opts)
}

func (c *Client) CanSendLike(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*CanSendLikeResponse, error) {
	return invoke[CanSendLikeResponse](ctx, c, "CanSendLike", in, opts)
}

func (c *Client) SendLike(ctx context.Context, in *SendLikeRequest, opts ...grpc.CallOption) (*SendLikeResponse, error) {
	return invoke[SendLikeResponse](ctx, c, "SendLike", in, opts)
}

func (c *Client) GetDiscoveryProfiles(ctx context.Context, in *DiscoveryRequest, opts ...grpc.CallOption) (*ProfilesResponse, error) {
	return invoke[ProfilesResponse](ctx, c, "GetDiscoveryProfiles", in, opts)
}

func (c *Client) GetDiscoveryFeed(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*DiscoveryFeedResponse, error) {
	return invoke[DiscoveryFeedResponse](ctx, c, "GetDiscoveryFeed", in, opts)
}

func (c *Client) GetUserMatches(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*MatchesResponse, error) {
	return invoke[MatchesResponse](ctx, c, "GetUserMatches", in, opts)
}

func (c *Client) GetMatch(ctx context.Context, in *GetMatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	return invoke[MatchResponse](ctx, c, "GetMatch", in, opts)
}

func (c *Client) IsMatchedWith(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	return invoke[BoolResponse](ctx, c, "IsMatchedWith", in, opts)
}

func (c *Client) HasLikedUser(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	return invoke[BoolResponse](ctx, c, "HasLikedUser", in, opts)
}

func (c *Client) HasBlockedUser(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	return invoke[BoolResponse](ctx, c, "HasBlockedUser", in, opts)
}

func (c *Client) BlockUser(ctx context.Context, in *PairRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "BlockUser", in, opts)
}

func (c *Client) ListIncomingLikes(ctx context.Context, in *ListIncomingLikesRequest, opts ...grpc.CallOption) (*ListIncomingLikesResponse, error) {
	return invoke[ListIncomingLikesResponse](ctx, c, "ListIncomingLikes", in, opts)
}

func (c *Client) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c, "CreateProfile", in, opts)
}

func (c *Client) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c, "UpdateProfile", in, opts)
}

func (c *Client) GetProfile(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c, "GetProfile", in, opts)
}
