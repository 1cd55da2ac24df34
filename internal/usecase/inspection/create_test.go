package inspection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/audit"
	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

func consultantRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addUser(models.User{ID: 1, Username: "konsultant1", Name: "Anna Nowak", Role: models.RoleConsultant})
	return repo
}

func validCreateInput(date, hhmm string) CreateInspectionInput {
	return CreateInspectionInput{
		VehicleMake:     "Skoda",
		VehicleModel:    "Octavia",
		LicensePlate:    "KR4321A",
		ClientName:      "Piotr Lewandowski",
		PhoneNumber:     "+48 512 300 400",
		Date:            date,
		Time:            hhmm,
		CreatedByUserID: 1,
	}
}

func TestCreateInspection_Accepted(t *testing.T) {
	repo := consultantRepo()
	now := time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
	uc := NewCreateInspection(repo, nil, nil, clock.Fixed(now))

	ins, err := uc.Execute(context.Background(), validCreateInput("2025-10-20", "10:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ins.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if got := ins.EndTime.Sub(ins.StartTime); got != models.InspectionDuration {
		t.Fatalf("expected 30-minute slot, got %s", got)
	}
	if !ins.EndTime.Equal(time.Date(2025, 10, 20, 10, 30, 0, 0, time.Local)) {
		t.Fatalf("expected end 10:30, got %s", ins.EndTime)
	}
}

func TestCreateInspection_BadDateInput(t *testing.T) {
	repo := consultantRepo()
	now := time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
	uc := NewCreateInspection(repo, nil, nil, clock.Fixed(now))

	_, err := uc.Execute(context.Background(), validCreateInput("20-10-2025", "10:00"))
	if !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}

func TestCreateInspection_CollectsViolations(t *testing.T) {
	repo := consultantRepo()
	now := time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
	uc := NewCreateInspection(repo, nil, nil, clock.Fixed(now))

	// Saturday at 05:50: weekend, off-grid minute, before opening
	_, err := uc.Execute(context.Background(), validCreateInput("2025-10-25", "05:50"))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) < 3 {
		t.Fatalf("expected all broken rules reported together, got %v", verr.Violations)
	}
}

func TestCreateInspection_ConflictReported(t *testing.T) {
	repo := consultantRepo()
	repo.addInspection(time.Date(2025, 10, 20, 10, 0, 0, 0, time.Local), 1)

	now := time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
	uc := NewCreateInspection(repo, nil, nil, clock.Fixed(now))

	_, err := uc.Execute(context.Background(), validCreateInput("2025-10-20", "10:45"))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Code != domain.CodeTimeConflict {
		t.Fatalf("expected single time_conflict violation, got %v", verr.Violations)
	}

	// one slot later the buffers only touch, which is allowed
	ins, err := uc.Execute(context.Background(), validCreateInput("2025-10-20", "11:00"))
	if err != nil {
		t.Fatalf("buffer-adjacent slot must be accepted: %v", err)
	}
	if ins == nil || ins.ID == 0 {
		t.Fatalf("expected created inspection")
	}
}

func TestUpdateInspection_MoveOwnSlot(t *testing.T) {
	repo := consultantRepo()
	existing := repo.addInspection(time.Date(2025, 10, 21, 10, 0, 0, 0, time.Local), 1)

	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local)
	uc := NewUpdateInspection(repo, nil, nil, clock.Fixed(now))

	in := UpdateInspectionInput{
		ID:           existing.ID,
		VehicleMake:  "Skoda",
		VehicleModel: "Fabia",
		LicensePlate: "PO1111B",
		ClientName:   "Ewa Kowalczyk",
		PhoneNumber:  "+48 700 200 300",
		Date:         "2025-10-21",
		Time:         "10:15",
		ActorID:      1,
	}

	ins, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("moving a slot over its own window must succeed: %v", err)
	}
	if !ins.StartTime.Equal(time.Date(2025, 10, 21, 10, 15, 0, 0, time.Local)) {
		t.Fatalf("start not updated: %s", ins.StartTime)
	}
	if !ins.EndTime.Equal(time.Date(2025, 10, 21, 10, 45, 0, 0, time.Local)) {
		t.Fatalf("end not re-derived: %s", ins.EndTime)
	}
	if ins.VehicleModel != "Fabia" {
		t.Fatalf("fields not updated: %+v", ins)
	}
}

func TestUpdateInspection_PastIsReadonly(t *testing.T) {
	repo := consultantRepo()
	existing := repo.addInspection(time.Date(2025, 10, 15, 10, 0, 0, 0, time.Local), 1)

	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local)
	uc := NewUpdateInspection(repo, nil, nil, clock.Fixed(now))

	_, err := uc.Execute(context.Background(), UpdateInspectionInput{
		ID:   existing.ID,
		Date: "2025-10-21",
		Time: "10:00",
	})
	if !httperr.IsBusiness(err, "past_inspection_readonly") {
		t.Fatalf("expected past_inspection_readonly, got %v", err)
	}
}

type recordingAuditWriter struct {
	mu      sync.Mutex
	actions []string
}

func (w *recordingAuditWriter) Log(_ *uint, action, _ string, _ *uint, _ any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actions = append(w.actions, action)
	return nil
}

func TestUpdateInspection_RejectionAudited(t *testing.T) {
	repo := consultantRepo()
	existing := repo.addInspection(time.Date(2025, 10, 21, 10, 0, 0, 0, time.Local), 1)

	writer := &recordingAuditWriter{}
	dispatcher := audit.NewDispatcher(writer)

	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local)
	uc := NewUpdateInspection(repo, dispatcher, nil, clock.Fixed(now))

	// Saturday, so validation rejects the move
	_, err := uc.Execute(context.Background(), UpdateInspectionInput{
		ID:      existing.ID,
		Date:    "2025-10-25",
		Time:    "10:00",
		ActorID: 1,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	dispatcher.Close()

	if len(writer.actions) != 1 || writer.actions[0] != "inspection_rejected" {
		t.Fatalf("expected one inspection_rejected audit event, got %v", writer.actions)
	}
}

func TestDeleteInspection(t *testing.T) {
	repo := consultantRepo()
	future := repo.addInspection(time.Date(2025, 10, 21, 10, 0, 0, 0, time.Local), 1)
	past := repo.addInspection(time.Date(2025, 10, 15, 10, 0, 0, 0, time.Local), 1)

	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local)
	uc := NewDeleteInspection(repo, nil, nil, clock.Fixed(now))

	if err := uc.Execute(context.Background(), future.ID, 1, ""); err != nil {
		t.Fatalf("deleting a future inspection must succeed: %v", err)
	}

	if err := uc.Execute(context.Background(), past.ID, 1, ""); !httperr.IsBusiness(err, "past_inspection_readonly") {
		t.Fatalf("expected past_inspection_readonly, got %v", err)
	}

	if err := uc.Execute(context.Background(), 999, 1, ""); !httperr.IsBusiness(err, "inspection_not_found") {
		t.Fatalf("expected inspection_not_found, got %v", err)
	}
}
