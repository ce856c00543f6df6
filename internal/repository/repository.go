// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/itsatony/agrisynth/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SnapshotRepository stores generated datasets so they can be served repeatedly.
// A dataset with a zero ExpiresAt never expires.
type SnapshotRepository interface {
	Pinger
	Save(ctx context.Context, ds *models.Dataset) error
	Get(ctx context.Context, id string) (*models.Dataset, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]models.DatasetInfo, error)
	Count(ctx context.Context) (int, error)
	DeleteExpired(ctx context.Context) ([]string, error)
	Close() error
}

// SortInfos orders listings newest first
func SortInfos(infos []models.DatasetInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].GeneratedAt.Equal(infos[j].GeneratedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].GeneratedAt.After(infos[j].GeneratedAt)
	})
}

// Page applies offset and limit to a listing; limit <= 0 means no limit
func Page(infos []models.DatasetInfo, offset, limit int) []models.DatasetInfo {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(infos) {
		return []models.DatasetInfo{}
	}
	infos = infos[offset:]
	if limit > 0 && limit < len(infos) {
		infos = infos[:limit]
	}
	return infos
}
