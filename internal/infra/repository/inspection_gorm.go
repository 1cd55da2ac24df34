package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

type InspectionGormRepository struct {
	db *gorm.DB
}

func NewInspectionGormRepository(db *gorm.DB) *InspectionGormRepository {
	return &InspectionGormRepository{db: db}
}

// --------------------------------------------------
// Inspection (read)
// --------------------------------------------------

func (r *InspectionGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Inspection, error) {

	var ins models.Inspection
	if err := r.db.WithContext(ctx).
		Preload("CreatedByUser").
		First(&ins, id).Error; err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *InspectionGormRepository) FindInRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Inspection, error) {

	var out []models.Inspection
	if err := r.db.WithContext(ctx).
		Preload("CreatedByUser").
		Where("start_time >= ? AND start_time <= ?", start, end).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InspectionGormRepository) FindByDate(
	ctx context.Context,
	date time.Time,
) ([]models.Inspection, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())

	return r.FindInRange(ctx, dayStart, dayEnd)
}

// FindOverlapping counts existing inspections whose buffered window
// intersects [bufferedStart, bufferedEnd). Both sides are buffered, so on
// raw columns the test widens by one more buffer:
//
//	start_time - buffer < bufferedEnd   AND   end_time + buffer > bufferedStart
//
// Strict comparisons keep the intervals half-open; buffer-adjacent slots
// do not conflict.
func (r *InspectionGormRepository) FindOverlapping(
	ctx context.Context,
	bufferedStart time.Time,
	bufferedEnd time.Time,
	excludeID *uint,
) (int64, error) {
	return r.countOverlapping(r.db.WithContext(ctx), bufferedStart, bufferedEnd, excludeID, false)
}

func (r *InspectionGormRepository) countOverlapping(
	tx *gorm.DB,
	bufferedStart time.Time,
	bufferedEnd time.Time,
	excludeID *uint,
	lock bool,
) (int64, error) {

	q := tx.Model(&models.Inspection{}).
		Where(
			"start_time < ? AND end_time > ?",
			bufferedEnd.Add(domain.Buffer),
			bufferedStart.Add(-domain.Buffer),
		)

	if excludeID != nil {
		q = q.Where("id != ?", *excludeID)
	}
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Inspection (write)
// --------------------------------------------------

// Insert re-checks the slot under a row lock and writes inside one
// transaction. The database exclusion constraint on the buffered window
// catches the concurrent-insert case no row lock can see; both paths
// surface as the retryable slot_taken error.
func (r *InspectionGormRepository) Insert(
	ctx context.Context,
	ins *models.Inspection,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bufStart, bufEnd := domain.BufferedWindow(ins.StartTime, ins.EndTime)

		count, err := r.countOverlapping(tx, bufStart, bufEnd, nil, true)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ins).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *InspectionGormRepository) Update(
	ctx context.Context,
	ins *models.Inspection,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bufStart, bufEnd := domain.BufferedWindow(ins.StartTime, ins.EndTime)

		count, err := r.countOverlapping(tx, bufStart, bufEnd, &ins.ID, true)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Save(ins).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *InspectionGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Inspection{}, id).Error
}

// --------------------------------------------------
// Listing with filters + pagination
// --------------------------------------------------

func (r *InspectionGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Inspection, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Inspection{})

	if filter.Start != nil {
		q = q.Where("start_time >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("start_time <= ?", *filter.End)
	}
	if filter.CreatedByUserID != nil {
		q = q.Where("created_by_user_id = ?", *filter.CreatedByUserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var out []models.Inspection
	if err := q.
		Preload("CreatedByUser").
		Order("start_time ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *InspectionGormRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Inspection{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InspectionGormRepository) CountByConsultant(
	ctx context.Context,
) ([]domain.ConsultantCount, error) {

	var out []domain.ConsultantCount
	if err := r.db.WithContext(ctx).
		Model(&models.Inspection{}).
		Select("users.id AS user_id, users.name AS name, COUNT(inspections.id) AS total").
		Joins("JOIN users ON users.id = inspections.created_by_user_id").
		Group("users.id, users.name").
		Order("total DESC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *InspectionGormRepository) FindUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *InspectionGormRepository) FindUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*InspectionGormRepository)(nil)
