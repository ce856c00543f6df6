// FilePath: internal/repository/memory/memory.snapshot.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/repository"
)

// SnapshotRepo keeps datasets in process memory
type SnapshotRepo struct {
	mu        sync.RWMutex
	snapshots map[string]*models.Dataset
	now       func() time.Time
}

// NewSnapshotRepository creates an empty in-memory snapshot store.
// now defaults to time.Now.
func NewSnapshotRepository(now func() time.Time) *SnapshotRepo {
	if now == nil {
		now = time.Now
	}
	return &SnapshotRepo{
		snapshots: make(map[string]*models.Dataset),
		now:       now,
	}
}

func (r *SnapshotRepo) expired(ds *models.Dataset, now time.Time) bool {
	return !ds.ExpiresAt.IsZero() && !now.Before(ds.ExpiresAt)
}

func (r *SnapshotRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *SnapshotRepo) Save(ctx context.Context, ds *models.Dataset) error {
	if ds == nil || ds.ID == "" {
		return errors.NewValidationError("snapshot needs an id", repository.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[ds.ID] = ds
	return nil
}

func (r *SnapshotRepo) Get(ctx context.Context, id string) (*models.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ds, ok := r.snapshots[id]
	if !ok || r.expired(ds, r.now()) {
		return nil, errors.NewNotFoundError("snapshot not found", repository.ErrNotFound)
	}
	return ds, nil
}

func (r *SnapshotRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.snapshots[id]
	if !ok {
		return errors.NewNotFoundError("snapshot not found", repository.ErrNotFound)
	}
	delete(r.snapshots, id)
	if r.expired(ds, r.now()) {
		return errors.NewNotFoundError("snapshot not found", repository.ErrNotFound)
	}
	return nil
}

func (r *SnapshotRepo) List(ctx context.Context, offset, limit int) ([]models.DatasetInfo, error) {
	r.mu.RLock()
	now := r.now()
	infos := make([]models.DatasetInfo, 0, len(r.snapshots))
	for _, ds := range r.snapshots {
		if !r.expired(ds, now) {
			infos = append(infos, ds.Info())
		}
	}
	r.mu.RUnlock()

	repository.SortInfos(infos)
	return repository.Page(infos, offset, limit), nil
}

func (r *SnapshotRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	now := r.now()
	n := 0
	for _, ds := range r.snapshots {
		if !r.expired(ds, now) {
			n++
		}
	}
	return n, nil
}

// DeleteExpired removes every expired snapshot and returns their ids
func (r *SnapshotRepo) DeleteExpired(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	var ids []string
	for id, ds := range r.snapshots {
		if r.expired(ds, now) {
			delete(r.snapshots, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *SnapshotRepo) Close() error {
	return nil
}
