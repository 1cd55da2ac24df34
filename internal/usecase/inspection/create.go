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

// ======================================================
// INPUT
// ======================================================

type CreateInspectionInput struct {
	VehicleMake  string
	VehicleModel string
	LicensePlate string
	ClientName   string
	PhoneNumber  string

	Date string
	Time string

	CreatedByUserID uint
	RequestID       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInspection struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.CalendarCache
	clock clock.Clock
}

func NewCreateInspection(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	feedCache *cache.CalendarCache,
	clk clock.Clock,
) *CreateInspection {
	return &CreateInspection{
		repo:  repo,
		audit: auditor,
		cache: feedCache,
		clock: clk,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateInspection) Execute(
	ctx context.Context,
	in CreateInspectionInput,
) (*models.Inspection, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		time.Local,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.clock.Now()

	violations, err := domain.ValidateSlot(ctx, start, now, uc.repo, nil)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:    &in.CreatedByUserID,
			Action:    "inspection_rejected",
			Entity:    "inspection",
			RequestID: in.RequestID,
			Metadata:  map[string]any{"start": start, "violations": violations},
		})
		return nil, domain.NewValidationError(violations)
	}

	ins := &models.Inspection{
		VehicleMake:     in.VehicleMake,
		VehicleModel:    in.VehicleModel,
		LicensePlate:    in.LicensePlate,
		ClientName:      in.ClientName,
		PhoneNumber:     in.PhoneNumber,
		CreatedByUserID: in.CreatedByUserID,
	}
	ins.SetStartTime(start)

	if err := uc.repo.Insert(ctx, ins); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.CreatedByUserID,
		Action:    "inspection_created",
		Entity:    "inspection",
		EntityID:  &ins.ID,
		RequestID: in.RequestID,
	})

	return ins, nil
}
