package inspection

import (
	"context"
	"time"
)

// ConflictLookup is the one read the validator performs against the
// inspection store.
type ConflictLookup interface {
	FindOverlapping(
		ctx context.Context,
		bufferedStart time.Time,
		bufferedEnd time.Time,
		excludeID *uint,
	) (int64, error)
}

// ValidateSlot decides whether a candidate start time is an acceptable
// inspection slot. Every rule runs; all violations are collected so the
// caller can show the user everything that is wrong at once.
//
// excludeID skips one existing inspection in the conflict check, which is
// how updates avoid colliding with themselves.
func ValidateSlot(
	ctx context.Context,
	start time.Time,
	now time.Time,
	lookup ConflictLookup,
	excludeID *uint,
) ([]Violation, error) {

	end := EndOf(start)

	var violations []Violation

	if v := checkQuarterHourStart(start); v != nil {
		violations = append(violations, *v)
	}
	if v := checkNotWeekend(start); v != nil {
		violations = append(violations, *v)
	}
	if v := checkFutureDate(start, now); v != nil {
		violations = append(violations, *v)
	}
	if v := checkMaxTwoWeeksAhead(start, now); v != nil {
		violations = append(violations, *v)
	}
	violations = append(violations, checkWorkingHours(start, end)...)

	bufStart, bufEnd := BufferedWindow(start, end)
	count, err := lookup.FindOverlapping(ctx, bufStart, bufEnd, excludeID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		violations = append(violations, Violation{
			Field:   "start_time",
			Code:    CodeTimeConflict,
			Message: "The selected slot conflicts with an existing inspection.",
		})
	}

	return violations, nil
}
