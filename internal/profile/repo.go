package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, age, gender, height_cm, weight_kg, health_conditions, fitness_goal,
				activity_level, dietary_preference, created_at, updated_at
			FROM profile WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &p.HealthConditions, &p.FitnessGoal,
		&p.ActivityLevel, &p.DietaryPreference, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &p, nil
}

// Upsert creates the profile on onboarding, or overwrites it on edit (last writer wins).
func (r *Repo) Upsert(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	return r.db.QueryRow(
		ctx,
		`INSERT INTO profile
				(user_id, age, gender, height_cm, weight_kg, health_conditions, fitness_goal,
				 activity_level, dietary_preference, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
			ON CONFLICT (user_id) DO UPDATE SET
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				height_cm = EXCLUDED.height_cm,
				weight_kg = EXCLUDED.weight_kg,
				health_conditions = EXCLUDED.health_conditions,
				fitness_goal = EXCLUDED.fitness_goal,
				activity_level = EXCLUDED.activity_level,
				dietary_preference = EXCLUDED.dietary_preference,
				updated_at = EXCLUDED.updated_at
			RETURNING created_at, updated_at;`,
		p.UserID, p.Age, p.Gender, p.HeightCm, p.WeightKg, p.HealthConditions, p.FitnessGoal,
		p.ActivityLevel, p.DietaryPreference, p.UpdatedAt,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *Repo) Delete(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `DELETE FROM profile WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
