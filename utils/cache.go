package utils

import (
	"context"
	"encoding/json"
	"time"

	"smartslot/config"
	"smartslot/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	createdDatesKey = "smartslot:snapshot:created-dates"
	bookingsKey     = "smartslot:snapshot:bookings"
)

// SnapshotCache warms the admin view after a restart with the last backend
// snapshot. It is never authoritative; a nil cache is a no-op.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache connects to redis per AppConfig. Returns nil (cache
// disabled) when no address is configured or the server is unreachable.
func NewSnapshotCache() *SnapshotCache {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Snapshot cache disabled: redis unreachable", zap.Error(err))
		return nil
	}
	return &SnapshotCache{
		client: client,
		ttl:    time.Duration(config.AppConfig.SnapshotTTLMin) * time.Minute,
	}
}

// StoreCreatedDates caches the created-dates snapshot. Failures are logged only.
func (sc *SnapshotCache) StoreCreatedDates(ctx context.Context, dates []models.CreatedDate) {
	sc.store(ctx, createdDatesKey, dates)
}

// LoadCreatedDates returns the cached snapshot, or ok=false when absent.
func (sc *SnapshotCache) LoadCreatedDates(ctx context.Context) ([]models.CreatedDate, bool) {
	var dates []models.CreatedDate
	if !sc.load(ctx, createdDatesKey, &dates) {
		return nil, false
	}
	return dates, true
}

// StoreBookings caches the bookings snapshot. Failures are logged only.
func (sc *SnapshotCache) StoreBookings(ctx context.Context, summary models.BookingsSummary) {
	sc.store(ctx, bookingsKey, summary)
}

// LoadBookings returns the cached summary, or ok=false when absent.
func (sc *SnapshotCache) LoadBookings(ctx context.Context) (models.BookingsSummary, bool) {
	var summary models.BookingsSummary
	if !sc.load(ctx, bookingsKey, &summary) {
		return models.BookingsSummary{}, false
	}
	return summary, true
}

func (sc *SnapshotCache) store(ctx context.Context, key string, value any) {
	if sc == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		GetLogger().Warn("Failed to encode snapshot for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := sc.client.Set(ctx, key, payload, sc.ttl).Err(); err != nil {
		GetLogger().Warn("Failed to cache snapshot", zap.String("key", key), zap.Error(err))
	}
}

func (sc *SnapshotCache) load(ctx context.Context, key string, out any) bool {
	if sc == nil {
		return false
	}
	payload, err := sc.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Warn("Failed to read cached snapshot", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		GetLogger().Warn("Failed to decode cached snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
