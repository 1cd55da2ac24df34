package inspection

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

type NextSlotResult struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NextAvailableSlot walks a day's schedule front to back and returns the
// first 30-minute slot that fits between existing inspections with the
// 15-minute buffer intact, or nil when the day is full.
type NextAvailableSlot struct {
	repo domain.Repository
}

func NewNextAvailableSlot(repo domain.Repository) *NextAvailableSlot {
	return &NextAvailableSlot{repo: repo}
}

func (uc *NextAvailableSlot) Execute(
	ctx context.Context,
	date time.Time,
) (*NextSlotResult, error) {

	inspections, err := uc.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	workEnd := time.Date(
		date.Year(), date.Month(), date.Day(),
		domain.WorkEndHour, 0, 0, 0,
		date.Location(),
	)

	cur := time.Date(
		date.Year(), date.Month(), date.Day(),
		domain.WorkStartHour, 0, 0, 0,
		date.Location(),
	)

	for _, ins := range inspections {
		proposedEnd := cur.Add(models.InspectionDuration)

		// the candidate plus its trailing buffer must clear the next slot
		if !proposedEnd.Add(domain.Buffer).After(ins.StartTime) {
			return &NextSlotResult{Start: cur, End: proposedEnd}, nil
		}

		cur = ins.EndTime.Add(domain.Buffer)
	}

	proposedEnd := cur.Add(models.InspectionDuration)
	if !proposedEnd.After(workEnd) {
		return &NextSlotResult{Start: cur, End: proposedEnd}, nil
	}

	return nil, nil
}
