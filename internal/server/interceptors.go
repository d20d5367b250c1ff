package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/muzz-matchmaking/internal/logger"
	"github.com/oggyb/muzz-matchmaking/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

// UnaryLogging tags each call with a request id, puts a request-scoped logger
// into the context and records one log line plus a latency sample per call.
// An incoming x-request-id is reused; otherwise a uuid is generated.
func UnaryLogging(base *slog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	if base == nil {
		base = logger.L()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := incomingRequestID(ctx)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, reqID))

		l := base.With("req_id", reqID, "method", info.FullMethod)
		ctx = logger.IntoContext(ctx, l)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)
		code := status.Code(err)

		if m != nil {
			m.RPCDuration.WithLabelValues(info.FullMethod, code.String()).Observe(elapsed.Seconds())
		}

		switch code {
		case codes.OK:
			l.Info("rpc", "code", code.String(), "duration", elapsed)
		case codes.Internal, codes.Unknown, codes.DataLoss:
			l.Error("rpc", "code", code.String(), "duration", elapsed, "err", err)
		default:
			l.Warn("rpc", "code", code.String(), "duration", elapsed, "err", err)
		}
		return resp, err
	}
}

// UnaryRateLimit sheds calls beyond the limiter's rate with ResourceExhausted.
func UnaryRateLimit(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow() {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

// UnaryRecovery turns a handler panic into an Internal error.
func UnaryRecovery(base *slog.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = logger.L()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				base.Error("panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get(RequestIDHeader); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
