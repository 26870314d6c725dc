package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/trailmarket/checkout-backend/api/responses"
	"github.com/trailmarket/checkout-backend/pkg/config"
	"github.com/trailmarket/checkout-backend/pkg/db"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/logger"
	"github.com/trailmarket/checkout-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TrailMarket-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis. Redis being
// down degrades idempotency replay only, so it reports as a warning field
// rather than failing readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-TrailMarket-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not configured"))
			return
		}
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database ping"))
			return
		}

		status := map[string]string{"status": "ready"}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "redis ping failed", err)
				}
				status["redis"] = "unavailable"
			}
		}

		responses.WriteSuccess(w, status)
	}
}
