package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/pkg/httpx"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Pings the configured store and reports 503 when it is unreachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	scholarsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	scholarsdk.HealthResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &scholarsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, scholarsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
