package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

type planRepo interface {
	Create(ctx context.Context, plan *Plan, meta *Metadata) error
	Get(ctx context.Context, userID int, planType PlanType) (*Plan, error)
	GetMetadata(ctx context.Context, userID int, planType PlanType) (*Metadata, error)
	ToggleItem(ctx context.Context, userID int, planType PlanType, day string, index int, now time.Time) (*Plan, error)
	Delete(ctx context.Context, userID int, planType PlanType) error
	ListArchive(ctx context.Context, userID int, planType PlanType) ([]ArchivedPlan, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type Generated struct {
	Plan     *Plan     `json:"plan"`
	Metadata *Metadata `json:"metadata"`
}

type Service struct {
	repo           planRepo
	profiles       profileGetter
	builder        planBuilder
	renewal        *RenewalService
	metricsManager *metrics.Manager
	generateGroup  singleflight.Group

	Now func() time.Time
}

func NewService(
	repo planRepo,
	profiles profileGetter,
	builder planBuilder,
	renewal *RenewalService,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		builder:        builder,
		renewal:        renewal,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// Generate creates week 1 of a new program, replacing the active plan of that type.
// Concurrent calls for the same user and type share a single model request. The shared
// request outlives a caller that goes away, the others still get its result.
func (s *Service) Generate(ctx context.Context, userID int, planType PlanType, totalWeeks int) (*Generated, error) {
	key := fmt.Sprintf("%d::%s", userID, planType)
	detachedCtx := context.WithoutCancel(ctx)
	resCh := s.generateGroup.DoChan(key, func() (any, error) {
		return s.generate(detachedCtx, userID, planType, totalWeeks)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resCh:
		if res.Shared {
			log.Debugf("plan generation for %s shared with a concurrent request", key)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Generated), nil
	}
}

func (s *Service) generate(ctx context.Context, userID int, planType PlanType, totalWeeks int) (_ *Generated, err error) {
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		if s.metricsManager != nil {
			s.metricsManager.CounterPlansGenerated.With(prometheus.Labels{
				"type":   string(planType),
				"result": result,
			}).Inc()
		}
	}()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	release, acquired, err := s.renewal.lockPlan(ctx, userID, planType)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrPlanBusy
	}
	defer release()

	meta := s.renewal.InitializeMetadata(userID, planType, totalWeeks)
	plan, err := s.builder.Build(ctx, PromptParams{
		Profile:    p,
		Type:       planType,
		Week:       meta.CurrentWeek,
		TotalWeeks: meta.TotalWeeks,
	})
	if err != nil {
		return nil, err
	}
	plan.UserID = userID
	plan.Type = planType
	plan.Week = meta.CurrentWeek
	plan.CreatedAt = meta.StartDate
	plan.UpdatedAt = meta.StartDate

	if err := s.repo.Create(ctx, plan, meta); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	log.Debugf("user %d: new %s plan generated, %d weeks", userID, planType, meta.TotalWeeks)
	return &Generated{Plan: plan, Metadata: meta}, nil
}

func (s *Service) Get(ctx context.Context, userID int, planType PlanType) (*Plan, error) {
	return s.repo.Get(ctx, userID, planType)
}

func (s *Service) Metadata(ctx context.Context, userID int, planType PlanType) (*Metadata, error) {
	return s.repo.GetMetadata(ctx, userID, planType)
}

func (s *Service) Delete(ctx context.Context, userID int, planType PlanType) error {
	return s.repo.Delete(ctx, userID, planType)
}

func (s *Service) Archive(ctx context.Context, userID int, planType PlanType) ([]ArchivedPlan, error) {
	return s.repo.ListArchive(ctx, userID, planType)
}

// DayAccessible resolves the plan week start and checks day against today in loc.
func (s *Service) DayAccessible(
	ctx context.Context,
	userID int,
	planType PlanType,
	day string,
	loc *time.Location,
) (bool, time.Weekday, error) {
	if _, ok := ParseWeekday(day); !ok {
		return false, 0, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}

	meta, err := s.repo.GetMetadata(ctx, userID, planType)
	if err != nil && !errors.Is(err, ErrMetadataNotFound) {
		return false, 0, err
	}

	if loc == nil {
		loc = time.UTC
	}
	weekStart := WeekStart(meta, loc)
	today := s.Now().In(loc).Weekday()
	return IsDayAccessible(day, weekStart, today), weekStart, nil
}

// ToggleItem flips the completion of one meal or exercise. Future days are locked.
func (s *Service) ToggleItem(
	ctx context.Context,
	userID int,
	planType PlanType,
	day string,
	index int,
	loc *time.Location,
) (*Plan, error) {
	accessible, _, err := s.DayAccessible(ctx, userID, planType, day, loc)
	if err != nil {
		return nil, err
	}
	if !accessible {
		return nil, fmt.Errorf("%w: %s", ErrDayLocked, day)
	}

	return s.repo.ToggleItem(ctx, userID, planType, day, index, s.Now())
}

// CheckAndRenew runs the renewal check for one user on demand.
func (s *Service) CheckAndRenew(ctx context.Context, userID int) ([]RenewalOutcome, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.renewal.CheckAndRenew(ctx, userID, p), nil
}
