package inspection

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/dto"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// ======================================================
// INPUT
// ======================================================

type ListInspectionsInput struct {
	StartDate       string
	EndDate         string
	CreatedByUserID *uint

	Page  int
	Limit int
}

// ======================================================
// USE CASE
// ======================================================

// ListInspections translates raw filter parameters into a validated query
// range and a paginated, transport-shaped result.
type ListInspections struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListInspections(repo domain.Repository, clk clock.Clock) *ListInspections {
	return &ListInspections{repo: repo, clock: clk}
}

func (uc *ListInspections) Execute(
	ctx context.Context,
	in ListInspectionsInput,
) (*dto.InspectionListDTO, error) {

	if in.Page < 1 {
		return nil, httperr.ErrBusiness("invalid_page")
	}
	if in.Limit < 1 || in.Limit > MaxLimit {
		return nil, httperr.ErrBusiness("invalid_limit")
	}

	filter := domain.ListFilter{
		Page:            in.Page,
		Limit:           in.Limit,
		CreatedByUserID: in.CreatedByUserID,
	}

	if in.StartDate != "" {
		day, err := time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_format")
		}
		lower := day // inclusive lower bound at 00:00:00
		filter.Start = &lower
	}

	if in.EndDate != "" {
		day, err := time.ParseInLocation("2006-01-02", in.EndDate, time.Local)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_format")
		}
		// inclusive upper bound at local 23:59:59, stable across DST days
		upper := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
		filter.End = &upper
	}

	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	if in.CreatedByUserID != nil {
		if _, err := uc.repo.FindUserByID(ctx, *in.CreatedByUserID); err != nil {
			return nil, httperr.ErrBusiness("user_not_found")
		}
	}

	inspections, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	items := make([]dto.InspectionDTO, 0, len(inspections))
	for _, ins := range inspections {
		items = append(items, dto.InspectionFromModel(ins, now))
	}

	totalPages := int(math.Ceil(float64(total) / float64(in.Limit)))

	slog.Info("inspections list fetched",
		"start_date", in.StartDate,
		"end_date", in.EndDate,
		"created_by", in.CreatedByUserID,
		"page", in.Page,
		"limit", in.Limit,
		"total", total,
		"returned", len(items),
	)

	return &dto.InspectionListDTO{
		Data: items,
		Meta: dto.PaginationMetaDTO{
			CurrentPage: in.Page,
			PerPage:     in.Limit,
			Total:       total,
			TotalPages:  totalPages,
		},
	}, nil
}
