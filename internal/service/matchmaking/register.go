package matchmaking

import (
	"google.golang.org/grpc"

	"github.com/oggyb/muzz-matchmaking/internal/app"
	rpc "github.com/oggyb/muzz-matchmaking/internal/rpc/matchmakingrpc"
)

// Registrar ties the Matchmaking service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Matchmaking service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Matchmaking handler to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	rpc.RegisterMatchmakingServer(s, NewHandler(NewMatchmakingService(r.appCtx)))
}
