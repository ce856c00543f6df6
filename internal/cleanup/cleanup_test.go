package cleanup_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/agrisynth/internal/cleanup"
	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/repository/memory"
)

type recorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *recorder) add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func TestSweepEmitsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := memory.NewSnapshotRepository(func() time.Time { return now })
	require.NoError(t, repo.Save(ctx, &models.Dataset{ID: "ds_a", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.Save(ctx, &models.Dataset{ID: "ds_b"}))

	j := cleanup.New(repo, time.Minute)
	expired := &recorder{}
	j.OnCleanup(cleanup.EventSnapshotExpired, expired.add)

	ids, err := j.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ds_a"}, ids)
	require.Eventually(t, func() bool { return len(expired.get()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"ds_a"}, expired.get())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSnapshotRepository(nil)
	require.NoError(t, repo.Save(ctx, &models.Dataset{ID: "ds_x"}))

	j := cleanup.New(repo, time.Minute)
	deleted := &recorder{}
	j.OnCleanup(cleanup.EventSnapshotDeleted, deleted.add)

	require.NoError(t, j.DeleteSnapshot(ctx, "ds_x"))
	require.Eventually(t, func() bool { return len(deleted.get()) == 1 }, time.Second, 10*time.Millisecond)

	err := j.DeleteSnapshot(ctx, "ds_x")
	assert.True(t, errors.IsNotFound(err))
}

func TestRunStopsOnCancel(t *testing.T) {
	now := time.Now()
	repo := memory.NewSnapshotRepository(nil)
	require.NoError(t, repo.Save(context.Background(), &models.Dataset{ID: "ds_old", ExpiresAt: now.Add(20 * time.Millisecond)}))

	j := cleanup.New(repo, 10*time.Millisecond)
	expired := &recorder{}
	j.OnCleanup(cleanup.EventSnapshotExpired, expired.add)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(expired.get()) == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
