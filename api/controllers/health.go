package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/pradom/storefront/api/responses"
	"github.com/pradom/storefront/pkg/config"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
	pkgredis "github.com/pradom/storefront/pkg/redis"
)

const (
	envHeader          = "X-Storefront-Env"
	readinessPingLimit = 2 * time.Second
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the session store answers. A nil pinger means sessions
// live in memory and there is nothing to check.
func HealthReady(cfg *config.Config, redis pkgredis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessPingLimit)
			defer cancel()
			if err := redis.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable").
						WithDetails(map[string]any{"dependency": "redis"}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
