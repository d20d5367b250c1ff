package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oggyb/muzz-matchmaking/internal/app"
)

// NewAdminRouter serves the operational endpoints:
//
//	GET /healthz  DB and Redis reachability
//	GET /metrics  prometheus exposition of the service registry
func NewAdminRouter(appCtx *app.AppContext) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	r.Get("/healthz", healthHandler(appCtx))
	r.Handle("/metrics", promhttp.HandlerFor(appCtx.Metrics.Registry, promhttp.HandlerOpts{}))
	return r
}

func healthHandler(appCtx *app.AppContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if appCtx.DB != nil {
			checks["db"] = "ok"
			sqlDB, err := appCtx.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				checks["db"] = err.Error()
				healthy = false
			}
		}
		if appCtx.RedisCache != nil {
			checks["redis"] = "ok"
			if err := appCtx.RedisCache.Ping(ctx); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{"healthy": healthy, "checks": checks})
	}
}

// StartHTTPServer serves the admin router on HTTP_HOST:HTTP_PORT until ctx is
// cancelled.
func StartHTTPServer(ctx context.Context, appCtx *app.AppContext) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appCtx.Config.HTTP.Host, appCtx.Config.HTTP.Port),
		Handler:           NewAdminRouter(appCtx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("admin http server: %w", err)
	}
	return nil
}
