package server_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/muzz-matchmaking/internal/logger"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
	"github.com/oggyb/muzz-matchmaking/internal/server"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/matchmaking.v1.Matchmaking/SendLike"}

func TestUnaryLogging_ScopesLoggerAndRecordsMetric(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	m := metrics.New()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(server.RequestIDHeader, "abc"))
	var scoped *slog.Logger
	_, err := server.UnaryLogging(base, m)(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		scoped = logger.FromContext(ctx, nil)
		return "ok", nil
	})
	require.NoError(t, err)
	require.NotNil(t, scoped)
	assert.NotSame(t, base, scoped)

	out := buf.String()
	assert.Contains(t, out, "req_id=abc")
	assert.Contains(t, out, "code=OK")
	assert.Equal(t, 1, testutil.CollectAndCount(m.RPCDuration))
}

func TestUnaryLogging_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := server.UnaryLogging(base, nil)(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad")
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Regexp(t, `req_id=[0-9a-f-]{36}`, buf.String())
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestUnaryRateLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.0001), 1)
	interceptor := server.UnaryRateLimit(limiter)
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	resp, err := interceptor(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = interceptor(context.Background(), nil, info, handler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestUnaryRecovery(t *testing.T) {
	var buf bytes.Buffer
	interceptor := server.UnaryRecovery(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, buf.String(), "panic in handler")
}
