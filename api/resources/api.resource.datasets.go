// FilePath: api/resources/api.resource.datasets.go
package resources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/export"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/service"
)

// DatasetHandlers encapsulates the dataset snapshot HTTP handlers
type DatasetHandlers struct {
	service *service.Service
}

// @Summary Create a dataset snapshot
// @Description Generate a complete, referentially consistent dataset and store it. Omitted sizes use the configured defaults.
// @Tags datasets
// @Accept json
// @Produce json
// @Param params body models.DatasetParams false "Collection sizes and seed"
// @Success 201 {object} models.DatasetInfo
// @Failure 400 {object} errors.APIError
// @Router /datasets [post]
func (h *DatasetHandlers) CreateDataset(w http.ResponseWriter, r *http.Request) {
	var params models.DatasetParams
	// an empty body asks for the configured sizes
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && err != io.EOF {
		failWith(w, r, errors.NewValidationError("invalid request body", err))
		return
	}

	info, err := h.service.CreateSnapshot(r.Context(), params)
	if err != nil {
		failWith(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/datasets/"+info.ID)
	respondWithJSON(w, http.StatusCreated, info)
}

// @Summary List dataset snapshots
// @Description Get a paginated list of stored datasets, newest first
// @Tags datasets
// @Produce json
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} models.DatasetInfo
// @Router /datasets [get]
func (h *DatasetHandlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	var view models.ViewParams
	if apiErr := decodeQuery(r, &view); apiErr != nil {
		failWith(w, r, apiErr)
		return
	}

	infos, err := h.service.ListSnapshots(r.Context(), view.Offset, view.Limit)
	if err != nil {
		failWith(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, infos)
}

// @Summary Get a dataset snapshot
// @Description Get every collection of a stored dataset. Contact details of users are only included for admin viewers.
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Param as query string false "Viewer role" Enums(farmer, buyer, vendor, admin)
// @Success 200 {object} models.Dataset
// @Failure 404 {object} errors.APIError
// @Router /datasets/{id} [get]
func (h *DatasetHandlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx, apiErr := viewerContext(r)
	if apiErr != nil {
		failWith(w, r, apiErr)
		return
	}

	ds, err := h.service.GetSnapshot(ctx, id)
	if err != nil {
		failWith(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ds)
}

// @Summary Get dataset summary
// @Description Headline figures of a stored dataset as shown on the dashboards
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} models.DatasetSummary
// @Failure 404 {object} errors.APIError
// @Router /datasets/{id}/summary [get]
func (h *DatasetHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.SnapshotSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		failWith(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// @Summary Get one collection of a dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Param collection path string true "Collection" Enums(users, farms, sensor-data, pest-detections, livestock, livestock-health, products, orders)
// @Param as query string false "Viewer role" Enums(farmer, buyer, vendor, admin)
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} object
// @Failure 404 {object} errors.APIError
// @Router /datasets/{id}/{collection} [get]
func (h *DatasetHandlers) GetCollection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection, err := service.ParseCollection(vars["collection"])
	if err != nil {
		failWith(w, r, err)
		return
	}

	var view models.ViewParams
	if apiErr := decodeQuery(r, &view); apiErr != nil {
		failWith(w, r, apiErr)
		return
	}

	items, err := h.service.SnapshotCollection(r.Context(), vars["id"], collection, view)
	if err != nil {
		failWith(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

// @Summary Export a dataset
// @Description Download a stored dataset as an XLSX workbook with one sheet per collection
// @Tags datasets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Dataset ID"
// @Param as query string false "Viewer role" Enums(farmer, buyer, vendor, admin)
// @Success 200 {file} file
// @Failure 404 {object} errors.APIError
// @Router /datasets/{id}/export [get]
func (h *DatasetHandlers) ExportDataset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx, apiErr := viewerContext(r)
	if apiErr != nil {
		failWith(w, r, apiErr)
		return
	}

	// render fully before writing headers so failures still get a JSON error
	var buf bytes.Buffer
	if err := h.service.ExportSnapshot(ctx, id, &buf); err != nil {
		failWith(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// @Summary Delete a dataset
// @Tags datasets
// @Param id path string true "Dataset ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /datasets/{id} [delete]
func (h *DatasetHandlers) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSnapshot(r.Context(), mux.Vars(r)["id"]); err != nil {
		failWith(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// viewerContext applies the ?as= role on top of the X-Viewer-Role header
func viewerContext(r *http.Request) (context.Context, *errors.APIError) {
	var view models.ViewParams
	if apiErr := decodeQuery(r, &view); apiErr != nil {
		return nil, apiErr
	}
	if view.As != "" && !view.As.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown role %q", view.As), nil)
	}
	return service.WithViewerRole(r.Context(), view.As), nil
}
