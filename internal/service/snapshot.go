package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"propfolio/internal/engine"
	"propfolio/internal/models"
	"propfolio/internal/repository"
)

// SnapshotService materializes a daily KPI rollup so the dashboard can chart
// totals over time; the live endpoints always recompute and never read these
// rows back.
type SnapshotService struct {
	Repo          repository.Repository
	Logger        *zap.Logger
	RetentionDays int
}

func (s *SnapshotService) Snapshot(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	accounts, err := s.Repo.ListAccounts(ctx, repository.ListAccountsParams{})
	if err != nil {
		return err
	}
	stats := engine.ComputeFinanceStats(accounts)
	detail, err := json.Marshal(engine.FirmRollups(accounts))
	if err != nil {
		return err
	}
	snap := &models.StatsSnapshot{
		TakenAt:       time.Now().UTC(),
		AccountCount:  len(accounts),
		TotalExpenses: stats.TotalExpenses,
		TotalRevenue:  stats.TotalRevenue,
		NetProfit:     stats.NetProfit,
		ROI:           stats.ROI,
		Detail:        datatypes.JSON(detail),
	}
	if err := s.Repo.InsertStatsSnapshot(ctx, snap); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("stats snapshot taken",
			zap.Int("accounts", snap.AccountCount),
			zap.String("net_profit", snap.NetProfit.String()),
		)
	}
	return nil
}

func (s *SnapshotService) Cleanup(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.RetentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.RetentionDays)
	n, err := s.Repo.DeleteStatsSnapshotsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if n > 0 && s.Logger != nil {
		s.Logger.Info("pruned old stats snapshots", zap.Int64("count", n))
	}
	return nil
}
