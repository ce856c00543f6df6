package resources

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/api/middleware"
	"github.com/itsatony/agrisynth/internal/errors"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeQuery fills dst from the URL query using its schema tags
func decodeQuery(r *http.Request, dst interface{}) *errors.APIError {
	if err := queryDecoder.Decode(dst, r.URL.Query()); err != nil {
		return errors.NewValidationError("invalid query parameters", err)
	}
	return nil
}

// failWith renders err, keeping its API error type when it carries one
func failWith(w http.ResponseWriter, r *http.Request, err error) {
	respondWithError(w, errors.AsAPIError(err).WithRequestID(middleware.GetRequestID(r.Context())))
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	if err.Code >= http.StatusInternalServerError {
		nuts.L.Errorf("[API] %s", err.Error())
		return
	}
	nuts.L.Warnf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
