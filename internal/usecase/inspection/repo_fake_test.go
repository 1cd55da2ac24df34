package inspection

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

var errFakeNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository for use-case tests.
type fakeRepo struct {
	inspections []models.Inspection
	users       map[uint]models.User
	nextID      uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  map[uint]models.User{},
		nextID: 1,
	}
}

func (f *fakeRepo) addUser(u models.User) {
	f.users[u.ID] = u
}

func (f *fakeRepo) addInspection(start time.Time, createdBy uint) models.Inspection {
	ins := models.Inspection{
		ID:              f.nextID,
		VehicleMake:     "Toyota",
		VehicleModel:    "Corolla",
		LicensePlate:    "WA12345",
		ClientName:      "Jan Kowalski",
		PhoneNumber:     "+48 600 100 200",
		CreatedByUserID: createdBy,
		CreatedByUser:   f.users[createdBy],
	}
	ins.SetStartTime(start)
	f.nextID++
	f.inspections = append(f.inspections, ins)
	return ins
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*models.Inspection, error) {
	for i := range f.inspections {
		if f.inspections[i].ID == id {
			ins := f.inspections[i]
			return &ins, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeRepo) FindInRange(_ context.Context, start, end time.Time) ([]models.Inspection, error) {
	var out []models.Inspection
	for _, ins := range f.inspections {
		if !ins.StartTime.Before(start) && !ins.StartTime.After(end) {
			out = append(out, ins)
		}
	}
	sortByStart(out)
	return out, nil
}

func (f *fakeRepo) FindByDate(ctx context.Context, date time.Time) ([]models.Inspection, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
	return f.FindInRange(ctx, dayStart, dayEnd)
}

func (f *fakeRepo) FindOverlapping(
	_ context.Context,
	bufferedStart time.Time,
	bufferedEnd time.Time,
	excludeID *uint,
) (int64, error) {
	var count int64
	for _, ins := range f.inspections {
		if excludeID != nil && ins.ID == *excludeID {
			continue
		}
		exStart, exEnd := domain.BufferedWindow(ins.StartTime, ins.EndTime)
		if exStart.Before(bufferedEnd) && exEnd.After(bufferedStart) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) List(
	_ context.Context,
	filter domain.ListFilter,
) ([]models.Inspection, int64, error) {

	var matched []models.Inspection
	for _, ins := range f.inspections {
		if filter.Start != nil && ins.StartTime.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && ins.StartTime.After(*filter.End) {
			continue
		}
		if filter.CreatedByUserID != nil && ins.CreatedByUserID != *filter.CreatedByUserID {
			continue
		}
		matched = append(matched, ins)
	}
	sortByStart(matched)

	total := int64(len(matched))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepo) Insert(_ context.Context, ins *models.Inspection) error {
	ins.ID = f.nextID
	f.nextID++
	ins.CreatedByUser = f.users[ins.CreatedByUserID]
	f.inspections = append(f.inspections, *ins)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, ins *models.Inspection) error {
	for i := range f.inspections {
		if f.inspections[i].ID == ins.ID {
			f.inspections[i] = *ins
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	for i := range f.inspections {
		if f.inspections[i].ID == id {
			f.inspections = append(f.inspections[:i], f.inspections[i+1:]...)
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.inspections)), nil
}

func (f *fakeRepo) CountByConsultant(_ context.Context) ([]domain.ConsultantCount, error) {
	totals := map[uint]int64{}
	for _, ins := range f.inspections {
		totals[ins.CreatedByUserID]++
	}

	var out []domain.ConsultantCount
	for id, total := range totals {
		out = append(out, domain.ConsultantCount{
			UserID: id,
			Name:   f.users[id].Name,
			Total:  total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

func (f *fakeRepo) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return &u, nil
}

func (f *fakeRepo) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, errFakeNotFound
}

func sortByStart(list []models.Inspection) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].StartTime.Before(list[j].StartTime)
	})
}

var _ domain.Repository = (*fakeRepo)(nil)
