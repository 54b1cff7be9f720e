package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is satisfied by any store connection that can verify reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness probes. It reports 200 whenever the
// process is up, regardless of database state.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "mf-api",
		"version": "1.0.0",
	})
}

// ReadyHandler verifies database connectivity before reporting readiness.
func ReadyHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := pinger.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{
				"status":   "not ready",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]string{
			"status":   "ready",
			"database": "connected",
		})
	}
}

// RootHandler serves the API banner.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service": "Mutual Fund API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": map[string]string{
			"health": "/health",
			"ready":  "/ready",
			"docs":   "See README.md",
		},
	})
}
