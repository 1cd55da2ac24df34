package inspection

import (
	"context"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/dto"
)

// CalendarFeed produces the event list the calendar widget renders for a
// visible date range. Responses are served from the Redis cache when the
// same range was shaped recently and nothing mutated since.
type CalendarFeed struct {
	repo  domain.Repository
	cache *cache.CalendarCache
}

func NewCalendarFeed(repo domain.Repository, feedCache *cache.CalendarCache) *CalendarFeed {
	return &CalendarFeed{repo: repo, cache: feedCache}
}

func (uc *CalendarFeed) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]dto.CalendarEventDTO, error) {

	if events, ok := uc.cache.Get(ctx, start, end); ok {
		return events, nil
	}

	inspections, err := uc.repo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	events := make([]dto.CalendarEventDTO, 0, len(inspections))
	for _, ins := range inspections {
		events = append(events, dto.CalendarEventFromModel(ins))
	}

	uc.cache.Set(ctx, start, end, events)

	return events, nil
}
