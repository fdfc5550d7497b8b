package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type planReader interface {
	Get(ctx context.Context, userID int, planType plans.PlanType) (*plans.Plan, error)
	GetMetadata(ctx context.Context, userID int, planType plans.PlanType) (*plans.Metadata, error)
	ListArchive(ctx context.Context, userID int, planType plans.PlanType) ([]plans.ArchivedPlan, error)
}

type profileReader interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type WeekCompliance struct {
	Week       int     `json:"week"`
	Percentage float64 `json:"percentage"`
	Current    bool    `json:"current,omitempty"`
}

type Dashboard struct {
	Profile         *profile.BMISummary `json:"profile,omitempty"`
	Diet            *Summary            `json:"diet,omitempty"`
	Workout         *Summary            `json:"workout,omitempty"`
	DietMetadata    *plans.Metadata     `json:"dietMetadata,omitempty"`
	WorkoutMetadata *plans.Metadata     `json:"workoutMetadata,omitempty"`
}

type Service struct {
	plans      planReader
	profiles   profileReader
	cache      *freecache.Cache
	ttlSeconds int
}

func NewService(planReader planReader, profiles profileReader, cacheSizeMegabytes, ttlSeconds int) *Service {
	return &Service{
		plans:      planReader,
		profiles:   profiles,
		cache:      freecache.NewCache(cacheSizeMegabytes * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

// the plan update time is part of the key, so a toggle or a renewal never serves a stale summary
func cacheKey(plan *plans.Plan) []byte {
	return []byte(fmt.Sprintf("progress::%d::%s::%d", plan.UserID, plan.Type, plan.UpdatedAt.UnixNano()))
}

func (s *Service) Summary(ctx context.Context, userID int, planType plans.PlanType) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
	)

	plan, err := s.plans.Get(ctx, userID, planType)
	if err != nil {
		return nil, err
	}

	key := cacheKey(plan)
	if cached, err := s.cache.Get(key); err == nil {
		summary := &Summary{}
		if err := json.Unmarshal(cached, summary); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return summary, nil
		}
		log.Errorf("unmarshal cached progress %s: %s", key, err)
	}

	summary := Compute(plan)
	if summaryBytes, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(key, summaryBytes, s.ttlSeconds); err != nil {
			log.Warnf("cache progress %s: %s", key, err)
		}
	}

	return summary, nil
}

// History lists the completion of every archived week of the current program followed by the current week.
func (s *Service) History(ctx context.Context, userID int, planType plans.PlanType) (_ []WeekCompliance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	archived, err := s.plans.ListArchive(ctx, userID, planType)
	if err != nil {
		return nil, err
	}

	meta, err := s.plans.GetMetadata(ctx, userID, planType)
	if err != nil && !errors.Is(err, plans.ErrMetadataNotFound) {
		return nil, err
	}

	history := make([]WeekCompliance, 0, len(archived)+1)
	for _, a := range archived {
		// weeks of an abandoned program don't count towards this one
		if a.Plan == nil || meta == nil || !a.ProgramStart.Equal(meta.StartDate) {
			continue
		}
		a.Plan.Type = planType
		history = append(history, WeekCompliance{
			Week:       a.Week,
			Percentage: completion(a.Plan),
		})
	}

	current, err := s.Summary(ctx, userID, planType)
	switch {
	case err == nil:
		pct := 0.0
		if current.Diet != nil {
			pct = current.Diet.Percentage
		} else if current.Workout != nil {
			pct = current.Workout.Percentage
		}
		history = append(history, WeekCompliance{Week: current.Week, Percentage: pct, Current: true})
	case errors.Is(err, plans.ErrPlanNotFound):
	default:
		return nil, err
	}

	return history, nil
}

func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	dashboard := &Dashboard{}

	p, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		summary := p.Summary()
		dashboard.Profile = &summary
	case errors.Is(err, profile.ErrProfileNotFound):
	default:
		return nil, err
	}

	for _, planType := range plans.AllPlanTypes {
		summary, err := s.Summary(ctx, userID, planType)
		if err != nil && !errors.Is(err, plans.ErrPlanNotFound) {
			return nil, err
		}
		meta, err := s.plans.GetMetadata(ctx, userID, planType)
		if err != nil && !errors.Is(err, plans.ErrMetadataNotFound) {
			return nil, err
		}

		switch planType {
		case plans.PlanTypeDiet:
			dashboard.Diet, dashboard.DietMetadata = summary, meta
		case plans.PlanTypeWorkout:
			dashboard.Workout, dashboard.WorkoutMetadata = summary, meta
		}
	}

	return dashboard, nil
}
