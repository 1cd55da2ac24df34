package inspection

import (
	"context"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
)

// ListFilter narrows the paginated listing. Nil bounds are open.
type ListFilter struct {
	Start           *time.Time
	End             *time.Time
	CreatedByUserID *uint

	Page  int
	Limit int
}

type ConsultantCount struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Total  int64  `json:"total"`
}

type Repository interface {
	// -------- Inspection (read) --------
	FindByID(ctx context.Context, id uint) (*models.Inspection, error)

	FindInRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Inspection, error)

	FindByDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Inspection, error)

	FindOverlapping(
		ctx context.Context,
		bufferedStart time.Time,
		bufferedEnd time.Time,
		excludeID *uint,
	) (int64, error)

	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Inspection, int64, error)

	// -------- Inspection (write) --------
	// Insert and Update re-run the conflict check under a row lock inside
	// one transaction, so two near-simultaneous writes for overlapping
	// slots cannot both land.
	Insert(ctx context.Context, ins *models.Inspection) error

	Update(ctx context.Context, ins *models.Inspection) error

	Delete(ctx context.Context, id uint) error

	// -------- Stats --------
	CountAll(ctx context.Context) (int64, error)

	CountByConsultant(ctx context.Context) ([]ConsultantCount, error)

	// -------- Users --------
	FindUserByID(ctx context.Context, id uint) (*models.User, error)

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}
