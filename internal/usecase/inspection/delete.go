package inspection

import (
	"context"

	"github.com/BruksfildServices01/inspection-scheduler/internal/audit"
	"github.com/BruksfildServices01/inspection-scheduler/internal/cache"
	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
)

type DeleteInspection struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.CalendarCache
	clock clock.Clock
}

func NewDeleteInspection(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	feedCache *cache.CalendarCache,
	clk clock.Clock,
) *DeleteInspection {
	return &DeleteInspection{
		repo:  repo,
		audit: auditor,
		cache: feedCache,
		clock: clk,
	}
}

func (uc *DeleteInspection) Execute(
	ctx context.Context,
	id uint,
	actorID uint,
	requestID string,
) error {

	ins, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("inspection_not_found")
	}

	if ins.IsPast(uc.clock.Now()) {
		return httperr.ErrBusiness("past_inspection_readonly")
	}

	if err := uc.repo.Delete(ctx, ins.ID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    "inspection_deleted",
		Entity:    "inspection",
		EntityID:  &ins.ID,
		RequestID: requestID,
	})

	return nil
}
