package server

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/muzz-matchmaking/internal/app"
)

// NewGRPCServer builds a gRPC server with the interceptor chain and registers
// all provided services.
//
// Chain order: recovery, request logging + metrics, then throttling when
// GRPC_RATE_LIMIT is set.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		UnaryRecovery(appCtx.Logger),
		UnaryLogging(appCtx.Logger, appCtx.Metrics),
	}
	if cfg := appCtx.Config; cfg != nil && cfg.GRPC.RateLimit > 0 {
		burst := max(cfg.GRPC.RateBurst, 1)
		interceptors = append(interceptors, UnaryRateLimit(rate.NewLimiter(rate.Limit(cfg.GRPC.RateLimit), burst)))
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return grpcServer
}

// StartGRPCServer listens on GRPC_HOST:GRPC_PORT and serves until ctx is
// cancelled, then drains in-flight calls.
func StartGRPCServer(ctx context.Context, appCtx *app.AppContext, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", appCtx.Config.GRPC.Host, appCtx.Config.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(appCtx, registrars...)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	return grpcServer.Serve(lis)
}
