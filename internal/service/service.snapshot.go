package service

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/export"
	"github.com/itsatony/agrisynth/internal/generator"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/schema"
)

// datasetConfig applies the configured sizes to unset params
func (s *Service) datasetConfig(p models.DatasetParams) (generator.DatasetConfig, error) {
	def := s.opts.Dataset
	cfg := generator.DatasetConfig{
		Users:               intOr(p.Users, def.Users),
		Farms:               intOr(p.Farms, def.Farms),
		SensorDays:          intOr(p.SensorDays, def.SensorDays),
		PestDetections:      intOr(p.PestDetections, def.PestDetections),
		Livestock:           intOr(p.Livestock, def.Livestock),
		LivestockHealthDays: intOr(p.LivestockHealthDays, def.LivestockHealthDays),
		Products:            intOr(p.Products, def.Products),
		Orders:              intOr(p.Orders, def.Orders),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, generatorError(err)
	}
	for name, n := range map[string]int{
		"users": cfg.Users, "farms": cfg.Farms, "pestDetections": cfg.PestDetections,
		"livestock": cfg.Livestock, "products": cfg.Products, "orders": cfg.Orders,
	} {
		if n > s.opts.MaxCount {
			return cfg, errors.NewValidationError(fmt.Sprintf("%s must not exceed %d", name, s.opts.MaxCount), nil)
		}
	}
	if cfg.SensorDays > s.opts.MaxDays || cfg.LivestockHealthDays > s.opts.MaxDays {
		return cfg, errors.NewValidationError(fmt.Sprintf("days must not exceed %d", s.opts.MaxDays), nil)
	}
	if n := datasetRecords(cfg); n > s.opts.MaxRecords {
		return cfg, errors.NewValidationError(fmt.Sprintf("dataset would hold %d records, limit is %d", n, s.opts.MaxRecords), nil)
	}
	return cfg, nil
}

// datasetRecords totals the records GenerateDataset produces for cfg
func datasetRecords(cfg generator.DatasetConfig) int {
	return cfg.Users + cfg.Farms + cfg.Farms*(cfg.SensorDays+1) + cfg.PestDetections +
		cfg.Livestock + cfg.Livestock*(cfg.LivestockHealthDays+1) + cfg.Products + cfg.Orders
}

// CreateSnapshot generates a full dataset and stores it. Snapshots are always
// seeded so a stored dataset can be regenerated from its seed.
func (s *Service) CreateSnapshot(ctx context.Context, p models.DatasetParams) (*models.DatasetInfo, error) {
	cfg, err := s.datasetConfig(p)
	if err != nil {
		return nil, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	count, err := s.Snapshots.Count(ctx)
	if err != nil {
		return nil, errors.NewStorageError("failed to count snapshots", err)
	}
	if count >= s.opts.MaxSnapshots {
		return nil, errors.NewValidationError(fmt.Sprintf("snapshot limit of %d reached", s.opts.MaxSnapshots), nil)
	}

	seed := p.Seed
	if seed == nil && s.opts.DefaultSeed == 0 {
		drawn := rand.Uint64()
		seed = &drawn
	}
	g := s.newGenerator(seed)
	ds, err := g.GenerateDataset(cfg)
	if err != nil {
		return nil, generatorError(err)
	}
	if s.opts.SnapshotTTL > 0 {
		ds.ExpiresAt = ds.GeneratedAt.Add(s.opts.SnapshotTTL)
	}

	if err := s.Snapshots.Save(ctx, ds); err != nil {
		nuts.L.Errorf("[Service] Failed to store snapshot %s: %v", ds.ID, err)
		return nil, err
	}

	info := ds.Info()
	s.record(EventSnapshotCreated, map[string]string{
		"id":   ds.ID,
		"seed": strconv.FormatUint(ds.Seed, 10),
	})
	nuts.L.Infof("[Service] Created snapshot %s (seed %d, %d users, %d farms)", ds.ID, ds.Seed, len(ds.Users), len(ds.Farms))
	return &info, nil
}

// loadSnapshot reads a snapshot and checks its shape when configured to
func (s *Service) loadSnapshot(ctx context.Context, id string) (*models.Dataset, error) {
	ds, err := s.Snapshots.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.opts.ValidateOnRead && s.Validator != nil {
		if err := s.Validator.Validate(schema.KindDataset, ds); err != nil {
			nuts.L.Errorf("[Service] Snapshot %s failed schema validation: %v", id, err)
			return nil, errors.NewInternalError("stored snapshot is malformed", err)
		}
	}
	return ds, nil
}

// GetSnapshot returns a stored dataset rendered for the viewer roles in ctx
func (s *Service) GetSnapshot(ctx context.Context, id string) (*models.Dataset, error) {
	ds, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	users, err := ViewUsers(ds.Users, GetViewerRoles(ctx))
	if err != nil {
		return nil, err
	}
	view := *ds
	view.Users = users

	s.record(EventSnapshotRead, map[string]string{"id": id})
	return &view, nil
}

// ListSnapshots returns stored dataset infos, newest first
func (s *Service) ListSnapshots(ctx context.Context, offset, limit int) ([]models.DatasetInfo, error) {
	offset, limit = clampPage(offset, limit)
	return s.Snapshots.List(ctx, offset, limit)
}

// SnapshotSummary computes the dashboard figures of a stored dataset
func (s *Service) SnapshotSummary(ctx context.Context, id string) (*models.DatasetSummary, error) {
	ds, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := ds.Summary()
	return &summary, nil
}

// SnapshotCollection returns one page of a stored dataset's collection
func (s *Service) SnapshotCollection(ctx context.Context, id string, collection Collection, view models.ViewParams) (interface{}, error) {
	if view.As != "" && !view.As.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown role %q", view.As), nil)
	}
	ds, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	offset, limit := clampPage(view.Offset, view.Limit)

	switch collection {
	case CollectionUsers:
		roles := GetViewerRoles(ctx)
		if view.As != "" {
			roles = []string{string(view.As)}
		}
		return ViewUsers(page(ds.Users, offset, limit), roles)
	case CollectionFarms:
		return page(ds.Farms, offset, limit), nil
	case CollectionSensorData:
		return page(ds.SensorReadings, offset, limit), nil
	case CollectionPestDetections:
		return page(ds.PestDetections, offset, limit), nil
	case CollectionLivestock:
		return page(ds.Livestock, offset, limit), nil
	case CollectionLivestockHealth:
		return page(ds.LivestockHealth, offset, limit), nil
	case CollectionProducts:
		return page(ds.Products, offset, limit), nil
	case CollectionOrders:
		return page(ds.Orders, offset, limit), nil
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("unknown collection %q", collection), nil)
}

// DeleteSnapshot removes a stored dataset
func (s *Service) DeleteSnapshot(ctx context.Context, id string) error {
	if err := s.Janitor.DeleteSnapshot(ctx, id); err != nil {
		return err
	}
	nuts.L.Infof("[Service] Deleted snapshot %s", id)
	return nil
}

// ExportSnapshot writes a stored dataset as an XLSX workbook, rendered for the
// viewer roles in ctx
func (s *Service) ExportSnapshot(ctx context.Context, id string, w io.Writer) error {
	ds, err := s.GetSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if err := export.WriteWorkbook(w, ds); err != nil {
		return errors.NewInternalError("failed to export snapshot", err)
	}
	s.record(EventSnapshotExport, map[string]string{"id": id})
	return nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
