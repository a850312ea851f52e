package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/dashboard"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const resetTimeout = time.Minute

// CreditResetter refills free-tier credit balances.
type CreditResetter interface {
	ResetMonthlyCredits(ctx context.Context, allotment int) (int64, error)
}

// Scheduler runs the monthly credit reset.
type Scheduler struct {
	scheduler *gocron.Scheduler
	resetter  CreditResetter
	log       *zap.Logger
}

func New(resetter CreditResetter, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		resetter:  resetter,
		log:       log,
	}
}

// Start registers the reset job on cronSpec and starts the scheduler
// without blocking.
func (s *Scheduler) Start(cronSpec string) error {
	if _, err := s.scheduler.Cron(cronSpec).Do(s.ResetCredits); err != nil {
		return fmt.Errorf("failed to schedule credit reset: %w", err)
	}

	s.scheduler.StartAsync()
	s.log.Info("scheduler started", zap.String("credit_reset_cron", cronSpec))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// ResetCredits gives every free account a fresh monthly allotment.
func (s *Scheduler) ResetCredits() {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	n, err := s.resetter.ResetMonthlyCredits(ctx, dashboard.MonthlyCreditAllotment)
	if err != nil {
		s.log.Error("monthly credit reset failed", zap.Error(err))
		return
	}

	s.log.Info("monthly credits reset", zap.Int64("profiles", n), zap.Int("allotment", dashboard.MonthlyCreditAllotment))
}
