package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/inspection-scheduler/internal/dto"
)

const (
	feedTTL        = 60 * time.Second
	feedVersionKey = "calendar:version"
)

// CalendarCache keeps shaped calendar-feed responses in Redis for a short
// TTL. Every mutation bumps a version counter, which invalidates all
// cached ranges at once without tracking keys. A nil cache is a no-op, so
// the feed works with Redis disabled.
type CalendarCache struct {
	rdb *redis.Client
}

func NewCalendarCache(rdb *redis.Client) *CalendarCache {
	if rdb == nil {
		return nil
	}
	return &CalendarCache{rdb: rdb}
}

func (c *CalendarCache) Get(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]dto.CalendarEventDTO, bool) {

	if c == nil {
		return nil, false
	}

	key, err := c.feedKey(ctx, start, end)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("calendar cache read failed", "err", err)
		}
		return nil, false
	}

	var events []dto.CalendarEventDTO
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false
	}
	return events, true
}

func (c *CalendarCache) Set(
	ctx context.Context,
	start time.Time,
	end time.Time,
	events []dto.CalendarEventDTO,
) {

	if c == nil {
		return
	}

	key, err := c.feedKey(ctx, start, end)
	if err != nil {
		return
	}

	raw, err := json.Marshal(events)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, feedTTL).Err(); err != nil {
		slog.Warn("calendar cache write failed", "err", err)
	}
}

// Invalidate bumps the feed version; older keys simply expire.
func (c *CalendarCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, feedVersionKey).Err(); err != nil {
		slog.Warn("calendar cache invalidate failed", "err", err)
	}
}

func (c *CalendarCache) feedKey(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (string, error) {

	version, err := c.rdb.Get(ctx, feedVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	return fmt.Sprintf(
		"calendar:feed:v%d:%d:%d",
		version,
		start.Unix(),
		end.Unix(),
	), nil
}
