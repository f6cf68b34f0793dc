package misc

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/pkg"
)

type HealthcheckResponse struct {
	Uptime float64 `json:"uptime"`
}

type Handler struct {
	startedAt time.Time
	now       func() time.Time
}

func NewHandler(startedAt time.Time) *Handler {
	return &Handler{
		startedAt: startedAt,
		now:       time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/trainings/healthcheck/", handler.handleHealthcheck).Methods("GET").Name("healthcheck")
}

// handleHealthcheck reports the seconds elapsed since the service started.
func (handler *Handler) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.healthcheck")
	defer span.End()

	pkg.WriteJSONResponse(w, HealthcheckResponse{
		Uptime: handler.now().Sub(handler.startedAt).Seconds(),
	}, http.StatusOK)
}
