package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=scheduler_test

const (
	// a sweep handles at most this many users, the rest wait for the next tick
	sweepBatchSize = 500
	sweepTimeout   = 30 * time.Minute
	cleanupTimeout = 5 * time.Minute
)

type dueLister interface {
	ListDueUserIDs(ctx context.Context, now time.Time, limit int) ([]int, error)
}

type renewer interface {
	CheckAndRenew(ctx context.Context, userID int) ([]plans.RenewalOutcome, error)
}

type sessionCleaner interface {
	ScanAndClean(ctx context.Context, now time.Time) int
}

type SweepResult struct {
	Users   int
	Renewed int
	Skipped int
	Failed  int
}

// Scheduler runs the periodic background jobs: plan renewal and expired
// session cleanup.
type Scheduler struct {
	cron           *cron.Cron
	due            dueLister
	renewer        renewer
	sessions       sessionCleaner
	metricsManager *metrics.Manager
	renewalSpec    string
	cleanupSpec    string

	Now func() time.Time
}

func NewScheduler(
	due dueLister,
	renewer renewer,
	sessions sessionCleaner,
	metricsManager *metrics.Manager,
	renewalSpec, cleanupSpec string,
) *Scheduler {
	cronLogger := cron.PrintfLogger(log.StandardLogger())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		due:            due,
		renewer:        renewer,
		sessions:       sessions,
		metricsManager: metricsManager,
		renewalSpec:    renewalSpec,
		cleanupSpec:    cleanupSpec,
		Now:            time.Now,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.renewalSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		result, err := s.RunRenewalSweep(ctx)
		if err != nil {
			log.Errorf("renewal sweep: %s", err)
			return
		}
		log.Infof("renewal sweep done: users %d, renewed %d, skipped %d, failed %d",
			result.Users, result.Renewed, result.Skipped, result.Failed)
	}); err != nil {
		return fmt.Errorf("schedule renewal sweep [%s]: %w", s.renewalSpec, err)
	}

	if _, err := s.cron.AddFunc(s.cleanupSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		cleaned := s.sessions.ScanAndClean(ctx, s.Now())
		log.Infof("session cleanup done, removed %d sessions", cleaned)
	}); err != nil {
		return fmt.Errorf("schedule session cleanup [%s]: %w", s.cleanupSpec, err)
	}

	s.cron.Start()
	log.Printf("scheduler started, renewal: %s, session cleanup: %s", s.renewalSpec, s.cleanupSpec)
	return nil
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	jobsDone := s.cron.Stop()
	select {
	case <-jobsDone.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for scheduled jobs: %w", ctx.Err())
	}
}

// RunRenewalSweep renews every due plan of up to sweepBatchSize users.
// A failure for one user never stops the sweep.
func (s *Scheduler) RunRenewalSweep(ctx context.Context) (_ SweepResult, err error) {
	start := time.Now()
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduler.renewalSweep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		if s.metricsManager != nil {
			s.metricsManager.HistRenewalSweepDuration.Observe(time.Since(start).Seconds())
		}
	}()

	var result SweepResult
	userIDs, err := s.due.ListDueUserIDs(ctx, s.Now(), sweepBatchSize)
	if err != nil {
		return result, fmt.Errorf("list due users: %w", err)
	}
	result.Users = len(userIDs)
	span.SetAttributes(attribute.Int("sweep.users", result.Users))

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			log.Warnf("renewal sweep interrupted after %d users: %s", result.Renewed+result.Skipped+result.Failed, ctx.Err())
			return result, ctx.Err()
		}

		outcomes, err := s.renewer.CheckAndRenew(ctx, userID)
		if err != nil {
			log.Errorf("renewal sweep [%d]: %s", userID, err)
			result.Failed++
			continue
		}
		for _, o := range outcomes {
			switch o.Status {
			case plans.RenewalRenewed:
				result.Renewed++
			case plans.RenewalFailed:
				log.Warnf("renewal sweep [%d]: %s plan: %s", userID, o.Type, o.Reason)
				result.Failed++
			default:
				result.Skipped++
			}
		}
	}

	return result, nil
}
