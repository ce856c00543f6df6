// FilePath: internal/repository/redis/redis.snapshot.go
package redis

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/repository"
)

// index score of snapshots without expiry
const neverExpires = float64(1 << 53)

// SnapshotRepo stores datasets as JSON values with native TTLs. A sorted set
// keyed by expiry time indexes the stored ids so listings and expiry sweeps
// need no SCAN.
type SnapshotRepo struct {
	RedisBaseRepo
	now func() time.Time
}

// NewSnapshotRepository wraps an open client. An empty prefix uses DefaultKeyPrefix.
func NewSnapshotRepository(client *goredis.Client, prefix string) *SnapshotRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &SnapshotRepo{
		RedisBaseRepo: RedisBaseRepo{client: client, prefix: prefix},
		now:           time.Now,
	}
}

func (r *SnapshotRepo) dataKey(id string) string { return r.key("snapshot", id) }
func (r *SnapshotRepo) infoKey(id string) string { return r.key("snapshot-info", id) }
func (r *SnapshotRepo) indexKey() string         { return r.key("snapshots") }

func (r *SnapshotRepo) Save(ctx context.Context, ds *models.Dataset) error {
	if ds == nil || ds.ID == "" {
		return errors.NewValidationError("snapshot needs an id", repository.ErrInvalidInput)
	}

	var ttl time.Duration
	score := neverExpires
	if !ds.ExpiresAt.IsZero() {
		ttl = ds.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return errors.NewValidationError("snapshot already expired", repository.ErrInvalidInput)
		}
		score = float64(ds.ExpiresAt.Unix())
	}

	data, err := json.Marshal(ds)
	if err != nil {
		return errors.NewInternalError("failed to encode snapshot", err)
	}
	info, err := json.Marshal(ds.Info())
	if err != nil {
		return errors.NewInternalError("failed to encode snapshot info", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, r.dataKey(ds.ID), data, ttl)
		pipe.Set(ctx, r.infoKey(ds.ID), info, ttl)
		pipe.ZAdd(ctx, r.indexKey(), goredis.Z{Score: score, Member: ds.ID})
		return nil
	})
	if err != nil {
		return errors.NewStorageError("failed to store snapshot", err)
	}
	return nil
}

func (r *SnapshotRepo) Get(ctx context.Context, id string) (*models.Dataset, error) {
	data, err := r.client.Get(ctx, r.dataKey(id)).Bytes()
	if err != nil {
		if stderrors.Is(err, goredis.Nil) {
			return nil, errors.NewNotFoundError("snapshot not found", repository.ErrNotFound)
		}
		return nil, errors.NewStorageError("failed to get snapshot", err)
	}

	ds := &models.Dataset{}
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, errors.NewInternalError("failed to decode snapshot", err)
	}
	return ds, nil
}

func (r *SnapshotRepo) Delete(ctx context.Context, id string) error {
	var del *goredis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		del = pipe.Del(ctx, r.dataKey(id), r.infoKey(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return errors.NewStorageError("failed to delete snapshot", err)
	}
	if del.Val() == 0 {
		return errors.NewNotFoundError("snapshot not found", repository.ErrNotFound)
	}
	return nil
}

// liveIDs returns the indexed ids that have not expired yet
func (r *SnapshotRepo) liveIDs(ctx context.Context) ([]string, error) {
	lo := "(" + strconv.FormatInt(r.now().Unix(), 10)
	return r.client.ZRangeByScore(ctx, r.indexKey(), &goredis.ZRangeBy{Min: lo, Max: "+inf"}).Result()
}

func (r *SnapshotRepo) List(ctx context.Context, offset, limit int) ([]models.DatasetInfo, error) {
	ids, err := r.liveIDs(ctx)
	if err != nil {
		return nil, errors.NewStorageError("failed to list snapshots", err)
	}
	if len(ids) == 0 {
		return []models.DatasetInfo{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.infoKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.NewStorageError("failed to list snapshots", err)
	}

	infos := make([]models.DatasetInfo, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// expired between the index read and MGET
			continue
		}
		var info models.DatasetInfo
		if err := json.Unmarshal([]byte(s), &info); err != nil {
			return nil, errors.NewInternalError("failed to decode snapshot info", err)
		}
		infos = append(infos, info)
	}
	repository.SortInfos(infos)
	return repository.Page(infos, offset, limit), nil
}

func (r *SnapshotRepo) Count(ctx context.Context) (int, error) {
	lo := "(" + strconv.FormatInt(r.now().Unix(), 10)
	n, err := r.client.ZCount(ctx, r.indexKey(), lo, "+inf").Result()
	if err != nil {
		return 0, errors.NewStorageError("failed to count snapshots", err)
	}
	return int(n), nil
}

// DeleteExpired drops index entries whose TTL has passed. Redis already evicted
// the values; the returned ids let callers emit expiry events.
func (r *SnapshotRepo) DeleteExpired(ctx context.Context) ([]string, error) {
	hi := strconv.FormatInt(r.now().Unix(), 10)
	ids, err := r.client.ZRangeByScore(ctx, r.indexKey(), &goredis.ZRangeBy{Min: "-inf", Max: hi}).Result()
	if err != nil {
		return nil, errors.NewStorageError("failed to read expired snapshots", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	members := make([]interface{}, len(ids))
	keys := make([]string, 0, 2*len(ids))
	for i, id := range ids {
		members[i] = id
		keys = append(keys, r.dataKey(id), r.infoKey(id))
	}
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, r.indexKey(), members...)
		return nil
	})
	if err != nil {
		return nil, errors.NewStorageError("failed to delete expired snapshots", err)
	}
	return ids, nil
}
