package inspection

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

// ===============================
// Scheduling rules
// ===============================

const (
	// Buffer is the exclusion zone added on both sides of every slot.
	// Two slots conflict when their buffered windows intersect.
	Buffer = 15 * time.Minute

	WorkStartHour = 7
	WorkEndHour   = 16

	MaxDaysAhead = 14
)

const (
	CodeQuarterHourStart  = "quarter_hour_start"
	CodeNotWeekend        = "not_weekend"
	CodeFutureDate        = "future_date"
	CodeMaxTwoWeeksAhead  = "max_two_weeks_ahead"
	CodeWorkingHoursStart = "working_hours_start"
	CodeWorkingHoursEnd   = "working_hours_end"
	CodeTimeConflict      = "time_conflict"
)

type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Code)
}

// BufferedWindow expands a slot by the exclusion buffer on both sides.
func BufferedWindow(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-Buffer), end.Add(Buffer)
}

// EndOf derives the slot end from its start.
func EndOf(start time.Time) time.Time {
	return start.Add(models.InspectionDuration)
}

func checkQuarterHourStart(start time.Time) *Violation {
	switch start.Minute() {
	case 0, 15, 30, 45:
		return nil
	}
	return &Violation{
		Field:   "start_time",
		Code:    CodeQuarterHourStart,
		Message: "Start time must fall on a quarter-hour boundary (:00, :15, :30, :45).",
	}
}

func checkNotWeekend(start time.Time) *Violation {
	wd := start.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return nil
	}
	return &Violation{
		Field:   "start_time",
		Code:    CodeNotWeekend,
		Message: "Inspections can only be scheduled Monday to Friday.",
	}
}

func checkFutureDate(start, now time.Time) *Violation {
	// strictly after now; a slot starting exactly at now is rejected
	if start.After(now) {
		return nil
	}
	return &Violation{
		Field:   "start_time",
		Code:    CodeFutureDate,
		Message: "Start time must be in the future.",
	}
}

func checkMaxTwoWeeksAhead(start, now time.Time) *Violation {
	// exactly 14 days ahead is still allowed
	max := now.AddDate(0, 0, MaxDaysAhead)
	if !start.After(max) {
		return nil
	}
	return &Violation{
		Field:   "start_time",
		Code:    CodeMaxTwoWeeksAhead,
		Message: fmt.Sprintf("Inspections can be scheduled at most %d days ahead.", MaxDaysAhead),
	}
}

// checkWorkingHours evaluates the start and end side of the business-hours
// window independently, so both can be reported at once.
func checkWorkingHours(start, end time.Time) []Violation {
	var out []Violation

	if h := start.Hour(); h < WorkStartHour || h >= WorkEndHour {
		out = append(out, Violation{
			Field:   "start_time",
			Code:    CodeWorkingHoursStart,
			Message: fmt.Sprintf("Start time must be between %02d:00 and %02d:00.", WorkStartHour, WorkEndHour),
		})
	}

	// end may land exactly on the closing hour of the same day
	dayClose := time.Date(
		start.Year(), start.Month(), start.Day(),
		WorkEndHour, 0, 0, 0,
		start.Location(),
	)
	if end.After(dayClose) {
		out = append(out, Violation{
			Field:   "end_time",
			Code:    CodeWorkingHoursEnd,
			Message: fmt.Sprintf("Inspection must finish by %02d:00.", WorkEndHour),
		})
	}

	return out
}
