package api

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/itsatony/agrisynth/api/middleware"
	"github.com/itsatony/agrisynth/api/resources"
	"github.com/itsatony/agrisynth/internal/service"
)

// RouterConfig holds the HTTP concerns that wrap the API routes
type RouterConfig struct {
	CORSOrigins []string
	AccessLog   io.Writer // combined access log; nil disables it
}

type Router struct {
	router    *mux.Router
	handler   http.Handler
	resources *resources.Resources
}

func NewRouter(svc *service.Service, cfg RouterConfig) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	r.handler = r.wrap(cfg)
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID, middleware.ViewerRole)

	// System
	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	api.HandleFunc("/metrics", r.resources.Metrics).Methods(http.MethodGet)

	// Generation
	api.HandleFunc("/generate/{kind}", r.resources.Generate.Generate).Methods(http.MethodGet)

	// Dataset snapshots
	datasets := api.PathPrefix("/datasets").Subrouter()
	datasets.HandleFunc("", r.resources.Datasets.ListDatasets).Methods(http.MethodGet)
	datasets.HandleFunc("", r.resources.Datasets.CreateDataset).Methods(http.MethodPost)
	datasets.HandleFunc("/{id}", r.resources.Datasets.GetDataset).Methods(http.MethodGet)
	datasets.HandleFunc("/{id}", r.resources.Datasets.DeleteDataset).Methods(http.MethodDelete)
	datasets.HandleFunc("/{id}/summary", r.resources.Datasets.GetSummary).Methods(http.MethodGet)
	datasets.HandleFunc("/{id}/export", r.resources.Datasets.ExportDataset).Methods(http.MethodGet)
	datasets.HandleFunc("/{id}/{collection}", r.resources.Datasets.GetCollection).Methods(http.MethodGet)
}

// wrap applies compression, CORS, access logging and panic recovery, outermost last
func (r *Router) wrap(cfg RouterConfig) http.Handler {
	var h http.Handler = handlers.CompressHandler(r.router)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	h = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID, middleware.HeaderViewerRole}),
		handlers.ExposedHeaders([]string{middleware.HeaderRequestID}),
	)(h)

	if cfg.AccessLog != nil {
		h = handlers.CombinedLoggingHandler(cfg.AccessLog, h)
	}
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
