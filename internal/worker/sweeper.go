package worker

import (
	"context"
	"log"
	"time"

	"lenme-backend/internal/usecase/sweep"
)

// Runner is the sweep surface the worker drives.
type Runner interface {
	Run(ctx context.Context) (*sweep.Summary, error)
}

// Sweeper runs the repayment sweep on an interval. Failed settlements are
// left for the next cycle; the sweep itself re-selects due payments each run.
type Sweeper struct {
	runner   Runner
	interval time.Duration
}

func NewSweeper(runner Runner, interval time.Duration) *Sweeper {
	return &Sweeper{runner: runner, interval: interval}
}

// Start launches the loop in its own goroutine; cancel ctx to stop it.
// A sweep runs immediately on start, then on every tick.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweepOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweepOnce(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	sum, err := s.runner.Run(ctx)
	if err != nil {
		log.Printf("sweeper: run failed: %v", err)
		return
	}
	log.Printf("sweeper: %d due, %d processed, %d failed, %d loans completed",
		sum.TotalDue, sum.Processed, sum.Failed, len(sum.CompletedLoanIDs))
}
