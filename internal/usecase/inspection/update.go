package inspection

import (
	"context"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/audit"
	"github.com/BruksfildServices01/inspection-scheduler/internal/cache"
	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

type UpdateInspectionInput struct {
	ID uint

	VehicleMake  string
	VehicleModel string
	LicensePlate string
	ClientName   string
	PhoneNumber  string

	Date string
	Time string

	ActorID   uint
	RequestID string
}

type UpdateInspection struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.CalendarCache
	clock clock.Clock
}

func NewUpdateInspection(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	feedCache *cache.CalendarCache,
	clk clock.Clock,
) *UpdateInspection {
	return &UpdateInspection{
		repo:  repo,
		audit: auditor,
		cache: feedCache,
		clock: clk,
	}
}

func (uc *UpdateInspection) Execute(
	ctx context.Context,
	in UpdateInspectionInput,
) (*models.Inspection, error) {

	ins, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("inspection_not_found")
	}

	now := uc.clock.Now()

	// past inspections are frozen; rescheduling history is not allowed
	if ins.IsPast(now) {
		return nil, httperr.ErrBusiness("past_inspection_readonly")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		time.Local,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	violations, err := domain.ValidateSlot(ctx, start, now, uc.repo, &ins.ID)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:    &in.ActorID,
			Action:    "inspection_rejected",
			Entity:    "inspection",
			EntityID:  &ins.ID,
			RequestID: in.RequestID,
			Metadata:  map[string]any{"start": start, "violations": violations},
		})
		return nil, domain.NewValidationError(violations)
	}

	ins.VehicleMake = in.VehicleMake
	ins.VehicleModel = in.VehicleModel
	ins.LicensePlate = in.LicensePlate
	ins.ClientName = in.ClientName
	ins.PhoneNumber = in.PhoneNumber
	ins.SetStartTime(start)

	if err := uc.repo.Update(ctx, ins); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.ActorID,
		Action:    "inspection_updated",
		Entity:    "inspection",
		EntityID:  &ins.ID,
		RequestID: in.RequestID,
	})

	return ins, nil
}
