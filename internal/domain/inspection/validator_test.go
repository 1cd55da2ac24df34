package inspection

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

// fakeLookup mirrors the store-side overlap query: an existing slot
// conflicts when its buffered window intersects the candidate's buffered
// window, half-open on both ends.
type fakeLookup struct {
	existing []models.Inspection
}

func (f *fakeLookup) FindOverlapping(
	_ context.Context,
	bufferedStart time.Time,
	bufferedEnd time.Time,
	excludeID *uint,
) (int64, error) {
	var count int64
	for _, ins := range f.existing {
		if excludeID != nil && ins.ID == *excludeID {
			continue
		}
		exStart, exEnd := BufferedWindow(ins.StartTime, ins.EndTime)
		if exStart.Before(bufferedEnd) && exEnd.After(bufferedStart) {
			count++
		}
	}
	return count, nil
}

func slotAt(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}

func existingSlot(t *testing.T, id uint, start string) models.Inspection {
	t.Helper()
	ins := models.Inspection{ID: id}
	ins.SetStartTime(slotAt(t, start))
	return ins
}

func hasCode(violations []Violation, code string) bool {
	for _, v := range violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

func TestValidateSlot_AcceptsFreeWeekdaySlot(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")
	start := slotAt(t, "2025-10-20 10:00:00") // Monday

	violations, err := ValidateSlot(context.Background(), start, now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
	if got := EndOf(start); !got.Equal(slotAt(t, "2025-10-20 10:30:00")) {
		t.Fatalf("expected end 10:30:00, got %s", got)
	}
}

func TestValidateSlot_RejectsWeekend(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")
	start := slotAt(t, "2025-10-25 10:00:00") // Saturday

	violations, err := ValidateSlot(context.Background(), start, now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(violations, CodeNotWeekend) {
		t.Fatalf("expected %s violation, got %v", CodeNotWeekend, violations)
	}
}

func TestValidateSlot_BufferedConflicts(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")
	lookup := &fakeLookup{existing: []models.Inspection{
		existingSlot(t, 1, "2025-10-20 10:00:00"), // buffered [09:45, 10:45)
	}}

	cases := []struct {
		start    string
		conflict bool
	}{
		{"2025-10-20 10:40:00", true},  // buffered windows clearly intersect
		{"2025-10-20 10:45:00", true},  // candidate buffer reaches back to 10:30
		{"2025-10-20 11:00:00", false}, // buffers touch at 10:45; half-open, no overlap
	}

	for _, tc := range cases {
		violations, err := ValidateSlot(context.Background(), slotAt(t, tc.start), now, lookup, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.start, err)
		}
		if got := hasCode(violations, CodeTimeConflict); got != tc.conflict {
			t.Fatalf("%s: conflict=%v, expected %v (violations: %v)", tc.start, got, tc.conflict, violations)
		}
	}
}

func TestValidateSlot_ExcludeIDSkipsSelf(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")
	lookup := &fakeLookup{existing: []models.Inspection{
		existingSlot(t, 7, "2025-10-20 10:00:00"),
	}}

	self := uint(7)
	violations, err := ValidateSlot(context.Background(), slotAt(t, "2025-10-20 10:00:00"), now, lookup, &self)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasCode(violations, CodeTimeConflict) {
		t.Fatalf("update against its own slot must not conflict, got %v", violations)
	}
}

func TestValidateSlot_WorkingHoursEndBoundary(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")

	// 15:45 runs to 16:15, past closing
	violations, err := ValidateSlot(context.Background(), slotAt(t, "2025-10-20 15:45:00"), now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(violations, CodeWorkingHoursEnd) {
		t.Fatalf("expected %s violation, got %v", CodeWorkingHoursEnd, violations)
	}

	// 15:30 ends exactly at 16:00, which is allowed
	violations, err = ValidateSlot(context.Background(), slotAt(t, "2025-10-20 15:30:00"), now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations for slot ending at closing, got %v", violations)
	}
}

func TestValidateSlot_FutureDateBoundaries(t *testing.T) {
	now := slotAt(t, "2025-10-20 09:00:00") // Monday

	// starting exactly at now is rejected
	violations, err := ValidateSlot(context.Background(), now, now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(violations, CodeFutureDate) {
		t.Fatalf("expected %s violation, got %v", CodeFutureDate, violations)
	}

	// exactly 14 days ahead is still accepted
	violations, err = ValidateSlot(context.Background(), slotAt(t, "2025-11-03 09:00:00"), now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasCode(violations, CodeMaxTwoWeeksAhead) {
		t.Fatalf("14 days ahead must be accepted, got %v", violations)
	}

	// one second past the horizon is rejected
	violations, err = ValidateSlot(context.Background(), slotAt(t, "2025-11-03 09:00:01"), now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(violations, CodeMaxTwoWeeksAhead) {
		t.Fatalf("expected %s violation, got %v", CodeMaxTwoWeeksAhead, violations)
	}
}

func TestValidateSlot_CollectsAllViolations(t *testing.T) {
	now := slotAt(t, "2025-10-20 09:00:00")
	// Saturday, in the past, 05:50 start: bad minute, weekend, not future,
	// outside working hours on the start side
	start := slotAt(t, "2025-10-18 05:50:00")

	violations, err := ValidateSlot(context.Background(), start, now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, code := range []string{
		CodeQuarterHourStart,
		CodeNotWeekend,
		CodeFutureDate,
		CodeWorkingHoursStart,
	} {
		if !hasCode(violations, code) {
			t.Fatalf("expected %s among violations, got %v", code, violations)
		}
	}
}

func TestValidateSlot_QuarterHourMinutes(t *testing.T) {
	now := slotAt(t, "2025-10-19 00:00:00")

	for _, minute := range []int{0, 15, 30, 45} {
		start := time.Date(2025, 10, 20, 10, minute, 0, 0, time.UTC)
		violations, err := ValidateSlot(context.Background(), start, now, &fakeLookup{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hasCode(violations, CodeQuarterHourStart) {
			t.Fatalf("minute %d must be accepted", minute)
		}
	}

	start := time.Date(2025, 10, 20, 10, 20, 0, 0, time.UTC)
	violations, err := ValidateSlot(context.Background(), start, now, &fakeLookup{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(violations, CodeQuarterHourStart) {
		t.Fatalf("minute 20 must be rejected, got %v", violations)
	}
}
