package inspection

import (
	"context"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
)

type StatsResult struct {
	Total        int64                    `json:"total"`
	ByConsultant []domain.ConsultantCount `json:"by_consultant"`
}

type Stats struct {
	repo domain.Repository
}

func NewStats(repo domain.Repository) *Stats {
	return &Stats{repo: repo}
}

func (uc *Stats) Execute(ctx context.Context) (*StatsResult, error) {
	total, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byConsultant, err := uc.repo.CountByConsultant(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Total:        total,
		ByConsultant: byConsultant,
	}, nil
}
