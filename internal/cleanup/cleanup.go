// FilePath: internal/cleanup/cleanup.go
package cleanup

import (
	"context"
	"fmt"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/repository"
)

// Cleanup events, emitted with the snapshot id as first argument
const (
	EventSnapshotExpired = "snapshot.expired"
	EventSnapshotDeleted = "snapshot.deleted"
)

// Janitor removes expired snapshots and coordinates snapshot deletion
type Janitor struct {
	snapshots repository.SnapshotRepository
	interval  time.Duration
	events    *nuts.EventEmitter
	handlers  int
}

// New creates a new Janitor sweeping every interval
func New(snapshots repository.SnapshotRepository, interval time.Duration) *Janitor {
	return &Janitor{
		snapshots: snapshots,
		interval:  interval,
		events:    nuts.NewEventEmitter(),
	}
}

// Run sweeps until ctx is cancelled
func (j *Janitor) Run(ctx context.Context) {
	nuts.L.Infof("[Janitor] Sweeping expired snapshots every %v", j.interval)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			nuts.L.Infof("[Janitor] Stopped")
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				nuts.L.Errorf("[Janitor] Sweep failed: %v", err)
			}
		}
	}
}

// Sweep deletes expired snapshots once and returns their ids
func (j *Janitor) Sweep(ctx context.Context) ([]string, error) {
	ids, err := j.snapshots.DeleteExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired snapshots: %w", err)
	}
	for _, id := range ids {
		j.emit(EventSnapshotExpired, id)
	}
	if len(ids) > 0 {
		nuts.L.Infof("[Janitor] Removed %d expired snapshots", len(ids))
	}
	return ids, nil
}

// DeleteSnapshot deletes a snapshot and emits EventSnapshotDeleted
func (j *Janitor) DeleteSnapshot(ctx context.Context, id string) error {
	if err := j.snapshots.Delete(ctx, id); err != nil {
		return err
	}

	// Emit event after successful deletion
	j.emit(EventSnapshotDeleted, id)
	return nil
}

func (j *Janitor) emit(event, id string) {
	if err := j.events.Emit(event, id); err != nil {
		nuts.L.Errorf("[Janitor] Failed to emit %s for %s: %v", event, id, err)
	}
}

// OnCleanup registers a callback for cleanup events
func (j *Janitor) OnCleanup(event string, handler func(id string)) {
	j.handlers++
	// the listener signature must match the emitted arguments
	j.events.On(event, fmt.Sprintf("cleanup_handler_%d", j.handlers), func(id string) {
		handler(id)
	})
}
