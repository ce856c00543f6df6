package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/service"
)

// SystemHandlers serves health and metrics
type SystemHandlers struct {
	service *service.Service
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Store   string `json:"store"`
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} errors.APIError
// @Router /health [get]
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Health(r.Context()); err != nil {
		failWith(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: nuts.GetVersion(),
		Store:   "reachable",
	})
}

// @Summary Event metrics
// @Description Counts of generation and snapshot events since start
// @Tags system
// @Produce json
// @Success 200 {object} monitoring.EventMetrics
// @Router /metrics [get]
func (h *SystemHandlers) Metrics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Monitoring.GetEventMetrics())
}
