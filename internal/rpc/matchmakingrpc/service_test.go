package matchmakingrpc_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	rpc "github.com/oggyb/muzz-matchmaking/internal/rpc/matchmakingrpc"
)

type echoServer struct {
	rpc.UnimplementedMatchmakingServer
}

func (echoServer) CanSendLike(_ context.Context, req *rpc.UserRequest) (*rpc.CanSendLikeResponse, error) {
	return &rpc.CanSendLikeResponse{CanSend: req.UID == "yes"}, nil
}

func dial(t *testing.T, srv rpc.MatchmakingServer) *rpc.Client {
	t.Helper()
	lis := bufconn.Listen(1 << 16)
	gs := grpc.NewServer()
	rpc.RegisterMatchmakingServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return rpc.NewClient(conn)
}

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(rpc.CodecName)
	require.NotNil(t, codec)

	b, err := codec.Marshal(&rpc.SendLikeRequest{FromUID: "a", ToUID: "b", TargetType: "photo", TargetID: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from_uid":"a","to_uid":"b","target_type":"photo","target_id":"p"}`, string(b))

	var out rpc.SendLikeRequest
	require.NoError(t, codec.Unmarshal(b, &out))
	assert.Equal(t, "b", out.ToUID)
}

func TestClientRoundTrip(t *testing.T) {
	client := dial(t, echoServer{})

	resp, err := client.CanSendLike(context.Background(), &rpc.UserRequest{UID: "yes"})
	require.NoError(t, err)
	assert.True(t, resp.CanSend)
}

func TestUnimplementedMethods(t *testing.T) {
	client := dial(t, echoServer{})

	_, err := client.SendLike(context.Background(), &rpc.SendLikeRequest{FromUID: "a"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestFullMethod(t *testing.T) {
	assert.Equal(t, "/matchmaking.v1.Matchmaking/GetMatch", rpc.FullMethod("GetMatch"))
}
