package plans

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=renewal_mocks_test.go -package=plans_test

type renewalStore interface {
	Get(ctx context.Context, userID int, planType PlanType) (*Plan, error)
	GetMetadata(ctx context.Context, userID int, planType PlanType) (*Metadata, error)
	Renew(ctx context.Context, params RenewParams) error
}

type planBuilder interface {
	Build(ctx context.Context, params PromptParams) (*Plan, error)
}

type renewalLocker interface {
	Acquire(ctx context.Context, userID int, planType PlanType) (func(), bool, error)
}

// RenewalNotifier is told about every committed renewal.
type RenewalNotifier interface {
	PlanRenewed(ctx context.Context, userID int, planType PlanType, week, totalWeeks int)
}

type RenewalStatus string

const (
	RenewalRenewed RenewalStatus = "renewed"
	RenewalSkipped RenewalStatus = "skipped"
	RenewalFailed  RenewalStatus = "failed"
)

type RenewalOutcome struct {
	Type   PlanType      `json:"type"`
	Status RenewalStatus `json:"status"`
	Week   int           `json:"week,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

type RenewalService struct {
	store             renewalStore
	builder           planBuilder
	locker            renewalLocker
	notifier          RenewalNotifier
	metricsManager    *metrics.Manager
	defaultTotalWeeks int

	Now func() time.Time
}

func NewRenewalService(
	store renewalStore,
	builder planBuilder,
	locker renewalLocker,
	notifier RenewalNotifier,
	metricsManager *metrics.Manager,
	defaultTotalWeeks int,
) *RenewalService {
	return &RenewalService{
		store:             store,
		builder:           builder,
		locker:            locker,
		notifier:          notifier,
		metricsManager:    metricsManager,
		defaultTotalWeeks: defaultTotalWeeks,
		Now:               time.Now,
	}
}

// InitializeMetadata starts a program at week 1. Non-positive totalWeeks falls back to the default.
func (s *RenewalService) InitializeMetadata(userID int, planType PlanType, totalWeeks int) *Metadata {
	if totalWeeks <= 0 {
		totalWeeks = s.defaultTotalWeeks
	}
	now := s.Now()
	return &Metadata{
		UserID:      userID,
		Type:        planType,
		StartDate:   now,
		CurrentWeek: 1,
		TotalWeeks:  totalWeeks,
		RenewalDate: now.Add(planType.RenewalPeriod()),
		UpdatedAt:   now,
	}
}

// ShouldRenew is true once the renewal date has passed and the program has weeks left.
func ShouldRenew(meta *Metadata, now time.Time) bool {
	if meta == nil {
		return false
	}
	return !now.Before(meta.RenewalDate) && meta.CurrentWeek < meta.TotalWeeks
}

// CheckAndRenew renews every plan type of the user that is due.
// Failures never propagate: they are logged, counted and reported in the outcome.
func (s *RenewalService) CheckAndRenew(ctx context.Context, userID int, p *profile.Profile) []RenewalOutcome {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.renewal.check")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	outcomes := make([]RenewalOutcome, 0, len(AllPlanTypes))
	for _, planType := range AllPlanTypes {
		outcome := s.renew(ctx, userID, p, planType)
		s.countOutcome(outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *RenewalService) renew(ctx context.Context, userID int, p *profile.Profile, planType PlanType) RenewalOutcome {
	outcome := RenewalOutcome{Type: planType, Status: RenewalSkipped}

	meta, err := s.store.GetMetadata(ctx, userID, planType)
	if err != nil {
		if errors.Is(err, ErrMetadataNotFound) {
			outcome.Reason = "no plan"
			return outcome
		}
		log.Errorf("renewal [%d/%s]: get metadata: %s", userID, planType, err)
		return failed(outcome, "metadata unavailable")
	}
	outcome.Week = meta.CurrentWeek

	now := s.Now()
	if !ShouldRenew(meta, now) {
		if meta.CurrentWeek >= meta.TotalWeeks {
			outcome.Reason = "program completed"
		} else {
			outcome.Reason = "not due"
		}
		return outcome
	}

	if p == nil {
		log.Warnf("renewal [%d/%s]: due, but user has no profile", userID, planType)
		return failed(outcome, "profile missing")
	}

	release, acquired, err := s.lockPlan(ctx, userID, planType)
	if err != nil {
		log.Errorf("renewal [%d/%s]: %s", userID, planType, err)
		return failed(outcome, "lock unavailable")
	}
	if !acquired {
		outcome.Reason = "renewal in progress"
		return outcome
	}
	defer release()

	// context for the prompt only, a missing plan is fine
	previous, err := s.store.Get(ctx, userID, planType)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		log.Warnf("renewal [%d/%s]: get previous plan: %s", userID, planType, err)
	}

	nextWeek := meta.CurrentWeek + 1
	newPlan, err := s.builder.Build(ctx, PromptParams{
		Profile:    p,
		Type:       planType,
		Week:       nextWeek,
		TotalWeeks: meta.TotalWeeks,
		Previous:   previous,
	})
	if err != nil {
		log.Errorf("renewal [%d/%s]: build week %d: %s", userID, planType, nextWeek, err)
		return failed(outcome, "generation failed")
	}
	newPlan.ResetCompletion()

	err = s.store.Renew(ctx, RenewParams{
		UserID:      userID,
		Type:        planType,
		FromWeek:    meta.CurrentWeek,
		StartDate:   meta.StartDate,
		NewPlan:     newPlan,
		RenewalDate: now.Add(planType.RenewalPeriod()),
		Now:         now,
	})
	if err != nil {
		if errors.Is(err, ErrRenewalConflict) {
			outcome.Reason = "already renewed"
			return outcome
		}
		log.Errorf("renewal [%d/%s]: store week %d: %s", userID, planType, nextWeek, err)
		return failed(outcome, "store failed")
	}

	log.Infof("renewal [%d/%s]: renewed to week %d/%d", userID, planType, nextWeek, meta.TotalWeeks)
	if s.notifier != nil {
		s.notifier.PlanRenewed(ctx, userID, planType, nextWeek, meta.TotalWeeks)
	}

	return RenewalOutcome{Type: planType, Status: RenewalRenewed, Week: nextWeek}
}

// lockPlan takes the per user and type lock shared by renewals and new programs.
func (s *RenewalService) lockPlan(ctx context.Context, userID int, planType PlanType) (func(), bool, error) {
	if s.locker == nil {
		return func() {}, true, nil
	}
	return s.locker.Acquire(ctx, userID, planType)
}

func failed(outcome RenewalOutcome, reason string) RenewalOutcome {
	outcome.Status = RenewalFailed
	outcome.Reason = reason
	return outcome
}

func (s *RenewalService) countOutcome(outcome RenewalOutcome) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterPlanRenewals.With(prometheus.Labels{
		"type":   string(outcome.Type),
		"result": string(outcome.Status),
	}).Inc()
}
