package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

// healthHandler reports liveness under the service's public name, e.g.
// "auth-service".
func healthHandler(service string, now func() time.Time) http.HandlerFunc {
	name := service + "-service"
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Service:   name,
			Timestamp: now().UTC(),
		})
	}
}
