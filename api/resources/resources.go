// FilePath: api/resources/resources.go
package resources

import (
	"net/http"

	"github.com/itsatony/agrisynth/internal/service"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Generate    *GenerateHandlers
	Datasets    *DatasetHandlers
	System      *SystemHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Metrics     func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *service.Service) *Resources {
	system := &SystemHandlers{service: svc}
	return &Resources{
		Generate:    &GenerateHandlers{service: svc},
		Datasets:    &DatasetHandlers{service: svc},
		System:      system,
		HealthCheck: system.Health,
		Metrics:     system.Metrics,
	}
}
