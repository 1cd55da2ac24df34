package inspection

import (
	"context"

	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
	"github.com/BruksfildServices01/inspection-scheduler/internal/dto"
	"github.com/BruksfildServices01/inspection-scheduler/internal/httperr"
)

type GetInspection struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetInspection(repo domain.Repository, clk clock.Clock) *GetInspection {
	return &GetInspection{repo: repo, clock: clk}
}

func (uc *GetInspection) Execute(
	ctx context.Context,
	id uint,
) (*dto.InspectionDTO, error) {

	ins, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("inspection_not_found")
	}

	out := dto.InspectionFromModel(*ins, uc.clock.Now())
	return &out, nil
}
