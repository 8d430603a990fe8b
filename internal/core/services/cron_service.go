package services

import (
	"context"

	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CronService runs periodic maintenance jobs
type CronService struct {
	cron      *cron.Cron
	resetRepo repositories.PasswordResetRepository
}

// NewCronService creates a new cron service
func NewCronService(resetRepo repositories.PasswordResetRepository) *CronService {
	return &CronService{
		cron:      cron.New(),
		resetRepo: resetRepo,
	}
}

// Start schedules the jobs and starts the scheduler. Used and expired
// password reset tokens are purged daily at 03:00.
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("0 3 * * *", s.purgeResetTokens)
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to schedule reset token purge")
		return
	}

	s.cron.Start()
	logger.Get().Info().Msg("cron service started")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	logger.Get().Info().Msg("cron service stopped")
}

func (s *CronService) purgeResetTokens() {
	deleted, err := s.resetRepo.DeleteExpired(context.Background())
	if err != nil {
		logger.Get().Error().Err(err).Msg("reset token purge failed")
		return
	}

	logger.Get().Info().Int64("deleted", deleted).Msg("purged stale reset tokens")
}
