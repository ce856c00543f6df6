package service

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/itsatony/agrisynth/internal/cleanup"
	"github.com/itsatony/agrisynth/internal/envmodel"
	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/generator"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/monitoring"
	"github.com/itsatony/agrisynth/internal/repository"
	"github.com/itsatony/agrisynth/internal/schema"
)

// Monitoring events recorded by the service
const (
	EventGenerated       = "records.generated"
	EventSnapshotCreated = "snapshot.created"
	EventSnapshotRead    = "snapshot.read"
	EventSnapshotExport  = "snapshot.exported"
)

// Request defaults for the generate endpoints
const (
	DefaultCount   = 10
	DefaultDays    = 7
	DefaultParents = 3
	DefaultLimit   = 50
	MaxLimit       = 1000
)

// Options holds the generation and snapshot limits of the service
type Options struct {
	DefaultSeed    uint64 // 0 draws a fresh seed per request
	Clamp          bool
	MaxCount       int
	MaxDays        int
	MaxRecords     int           // records produced by one generate call or snapshot
	SnapshotTTL    time.Duration // 0 keeps snapshots until deleted
	MaxSnapshots   int
	Dataset        generator.DatasetConfig
	ValidateOnRead bool // re-check snapshots against the dataset schema when read back
}

// DefaultOptions returns the limits used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Clamp:        true,
		MaxCount:     10000,
		MaxDays:      366,
		MaxRecords:   200000,
		SnapshotTTL:  24 * time.Hour,
		MaxSnapshots: 100,
		Dataset:      generator.DefaultDatasetConfig(),
	}
}

// Service contains the snapshot store and service-wide dependencies
type Service struct {
	Snapshots  repository.SnapshotRepository
	Janitor    *cleanup.Janitor
	Monitoring *monitoring.Service
	Validator  *schema.Validator

	opts Options
	now  func() time.Time

	// createMu makes the snapshot limit check and the save atomic within this
	// process. Instances sharing one redis store can still overshoot the limit.
	createMu sync.Mutex
}

// New creates a new service instance and routes cleanup events into monitoring
func New(
	snapshots repository.SnapshotRepository,
	janitor *cleanup.Janitor,
	mon *monitoring.Service,
	validator *schema.Validator,
	opts Options,
) *Service {
	svc := &Service{
		Snapshots:  snapshots,
		Janitor:    janitor,
		Monitoring: mon,
		Validator:  validator,
		opts:       opts,
		now:        time.Now,
	}
	if janitor != nil && mon != nil {
		for _, event := range []string{cleanup.EventSnapshotExpired, cleanup.EventSnapshotDeleted} {
			janitor.OnCleanup(event, func(id string) {
				mon.RecordEvent(event, map[string]string{"id": id})
			})
		}
	}
	return svc
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.Snapshots == nil {
		return ErrMissingRepository("snapshots")
	}
	if s.Janitor == nil {
		return ErrMissingDependency("janitor")
	}
	if s.Monitoring == nil {
		return ErrMissingDependency("monitoring")
	}
	if s.Validator == nil {
		return ErrMissingDependency("validator")
	}
	return nil
}

// Options returns the configured limits
func (s *Service) Options() Options {
	return s.opts
}

// Health reports whether the snapshot store is reachable
func (s *Service) Health(ctx context.Context) error {
	if err := s.Snapshots.Ping(ctx); err != nil {
		return errors.NewUnavailableError("snapshot store unreachable", err)
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

// newGenerator builds a per-request generator. A nil seed falls back to the
// configured default seed, and to an unseeded generator when that is 0.
func (s *Service) newGenerator(seed *uint64) *generator.Generator {
	opts := []generator.Option{
		generator.WithClock(s.now),
		generator.WithModel(envmodel.Model{Clamp: s.opts.Clamp}),
	}
	switch {
	case seed != nil:
		opts = append(opts, generator.WithSeed(*seed))
	case s.opts.DefaultSeed != 0:
		opts = append(opts, generator.WithSeed(s.opts.DefaultSeed))
	}
	return generator.New(opts...)
}

// generatorError maps generator failures onto API errors
func generatorError(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, generator.ErrInvalidArgument) {
		return errors.NewValidationError(err.Error(), err)
	}
	return errors.NewInternalError("generation failed", err)
}

func (s *Service) record(event string, labels map[string]string) {
	if s.Monitoring != nil {
		s.Monitoring.RecordEvent(event, labels)
	}
}

// clampPage normalizes offset and limit the way list endpoints expect
func clampPage(offset, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// roleKey is the context key of the viewer roles
type roleKey struct{}

// WithViewerRole stores the role a response is rendered for
func WithViewerRole(ctx context.Context, role models.Role) context.Context {
	if role == "" {
		return ctx
	}
	return context.WithValue(ctx, roleKey{}, []string{string(role)})
}

// GetViewerRoles extracts the viewer roles from context, defaulting to guest
func GetViewerRoles(ctx context.Context) []string {
	if roles, ok := ctx.Value(roleKey{}).([]string); ok && len(roles) > 0 {
		return roles
	}
	return []string{"guest"}
}
