package resources

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/service"
)

// GenerateHandlers serves freshly generated collections
type GenerateHandlers struct {
	service *service.Service
}

// @Summary Generate records
// @Description Generate one collection of synthetic records. Parent records are generated on the fly and not returned.
// @Tags generate
// @Produce json
// @Param kind path string true "Collection" Enums(users, farms, sensor-data, pest-detections, livestock, livestock-health, products, orders)
// @Param count query int false "Number of records (farms for sensor-data, animals for livestock-health)"
// @Param days query int false "Days of history for sensor-data and livestock-health"
// @Param parents query int false "Size of the generated parent pool"
// @Param seed query int false "Seed for reproducible output"
// @Param as query string false "Viewer role" Enums(farmer, buyer, vendor, admin)
// @Success 200 {object} service.GenerateResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /generate/{kind} [get]
func (h *GenerateHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	collection, err := service.ParseCollection(mux.Vars(r)["kind"])
	if err != nil {
		failWith(w, r, err)
		return
	}

	var params models.GenerateParams
	if apiErr := decodeQuery(r, &params); apiErr != nil {
		failWith(w, r, apiErr)
		return
	}

	result, err := h.service.Generate(r.Context(), collection, params)
	if err != nil {
		failWith(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
