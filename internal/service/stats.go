package service

import (
	"context"

	"go.uber.org/zap"

	"propfolio/internal/engine"
	"propfolio/internal/models"
	"propfolio/internal/repository"
)

// StatsService feeds the dashboard's derived views. Every call refetches the
// account list and recomputes from scratch; at personal-tracker scale there is
// nothing worth caching.
type StatsService struct {
	Repo      repository.Repository
	Projector engine.ProjectorConfig
	Logger    *zap.Logger
}

func (s *StatsService) filtered(ctx context.Context, f engine.Filter) ([]*models.Account, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	accounts, err := s.Repo.ListAccounts(ctx, repository.ListAccountsParams{})
	if err != nil {
		return nil, err
	}
	return engine.ApplyFilter(accounts, f), nil
}

func (s *StatsService) Overview(ctx context.Context, f engine.Filter) (engine.FinanceStats, error) {
	accounts, err := s.filtered(ctx, f)
	if err != nil {
		return engine.FinanceStats{}, err
	}
	return engine.ComputeFinanceStats(accounts), nil
}

func (s *StatsService) FirmRollups(ctx context.Context, f engine.Filter) ([]engine.FirmRollup, error) {
	accounts, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return engine.FirmRollups(accounts), nil
}

func (s *StatsService) Charts(ctx context.Context, f engine.Filter) (engine.ChartStats, error) {
	accounts, err := s.filtered(ctx, f)
	if err != nil {
		return engine.ChartStats{}, err
	}
	return engine.ComputeChartStats(accounts), nil
}

func (s *StatsService) Phases(ctx context.Context, f engine.Filter) (engine.PhaseProjection, error) {
	accounts, err := s.filtered(ctx, f)
	if err != nil {
		return engine.PhaseProjection{}, err
	}
	return engine.ProjectPhases(accounts, s.Projector), nil
}
