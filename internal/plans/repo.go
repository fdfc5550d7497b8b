package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// inTx runs fn in a transaction, committing when fn returns no error.
func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	return fn(tx)
}

// Create stores a freshly generated plan and its metadata, replacing any existing ones.
func (r *Repo) Create(ctx context.Context, plan *Plan, meta *Metadata) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", plan.UserID),
		attribute.String("plan.type", string(plan.Type)),
	)

	contentJSON, err := plan.contentJSON()
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO plan (user_id, plan_type, week, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (user_id, plan_type) DO UPDATE SET
				week = EXCLUDED.week,
				content = EXCLUDED.content,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at`,
			plan.UserID, plan.Type, plan.Week, contentJSON, plan.CreatedAt,
		); err != nil {
			return fmt.Errorf("upsert plan: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO plan_metadata (user_id, plan_type, start_date, current_week, total_weeks, renewal_date, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $3)
			ON CONFLICT (user_id, plan_type) DO UPDATE SET
				start_date = EXCLUDED.start_date,
				current_week = EXCLUDED.current_week,
				total_weeks = EXCLUDED.total_weeks,
				renewal_date = EXCLUDED.renewal_date,
				updated_at = EXCLUDED.updated_at`,
			meta.UserID, meta.Type, meta.StartDate, meta.CurrentWeek, meta.TotalWeeks, meta.RenewalDate,
		); err != nil {
			return fmt.Errorf("upsert plan metadata: %w", err)
		}
		return nil
	})
}

func (r *Repo) Get(ctx context.Context, userID int, planType PlanType) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
	)

	return scanPlan(r.db.QueryRow(ctx, `
		SELECT user_id, plan_type, week, content, created_at, updated_at
		FROM plan
		WHERE user_id = $1 AND plan_type = $2`,
		userID, planType,
	))
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var (
		plan        Plan
		contentJSON []byte
	)
	if err := row.Scan(
		&plan.UserID, &plan.Type, &plan.Week, &contentJSON, &plan.CreatedAt, &plan.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}
	if err := plan.setContent(contentJSON); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ToggleItem flips one item's completion under a row lock, so concurrent toggles don't overwrite each other.
func (r *Repo) ToggleItem(
	ctx context.Context,
	userID int,
	planType PlanType,
	day string,
	index int,
	now time.Time,
) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
		attribute.String("day", day),
		attribute.Int("index", index),
	)

	var plan *Plan
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		plan, err = scanPlan(tx.QueryRow(ctx, `
			SELECT user_id, plan_type, week, content, created_at, updated_at
			FROM plan
			WHERE user_id = $1 AND plan_type = $2
			FOR UPDATE`,
			userID, planType,
		))
		if err != nil {
			return err
		}

		if _, err := plan.ToggleItem(day, index); err != nil {
			return err
		}

		contentJSON, err := plan.contentJSON()
		if err != nil {
			return err
		}
		plan.UpdatedAt = now
		_, err = tx.Exec(ctx, `
			UPDATE plan SET content = $1, updated_at = $2
			WHERE user_id = $3 AND plan_type = $4`,
			contentJSON, now, userID, planType,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Delete removes the active plan and its metadata. Archive rows stay for backups.
func (r *Repo) Delete(ctx context.Context, userID int, planType PlanType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
	)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM plan WHERE user_id = $1 AND plan_type = $2`, userID, planType)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrPlanNotFound
		}
		_, err = tx.Exec(ctx, `DELETE FROM plan_metadata WHERE user_id = $1 AND plan_type = $2`, userID, planType)
		return err
	})
}

func (r *Repo) GetMetadata(ctx context.Context, userID int, planType PlanType) (_ *Metadata, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.metadata.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
	)

	var meta Metadata
	err = r.db.QueryRow(ctx, `
		SELECT user_id, plan_type, start_date, current_week, total_weeks, renewal_date, updated_at
		FROM plan_metadata
		WHERE user_id = $1 AND plan_type = $2`,
		userID, planType,
	).Scan(
		&meta.UserID, &meta.Type, &meta.StartDate, &meta.CurrentWeek, &meta.TotalWeeks, &meta.RenewalDate, &meta.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMetadataNotFound
		}
		return nil, fmt.Errorf("query plan metadata: %w", err)
	}

	return &meta, nil
}

// ListDueUserIDs returns users having at least one plan due for renewal at now.
func (r *Repo) ListDueUserIDs(ctx context.Context, now time.Time, limit int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.metadata.listdue")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT user_id
		FROM plan_metadata
		WHERE renewal_date <= $1 AND current_week < total_weeks
		ORDER BY user_id
		LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query due metadata: %w", err)
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}

	return userIDs, rows.Err()
}

type RenewParams struct {
	UserID   int
	Type     PlanType
	FromWeek int
	// StartDate identifies the program being renewed
	StartDate   time.Time
	NewPlan     *Plan
	RenewalDate time.Time
	Now         time.Time
}

// Renew archives the active plan under FromWeek, replaces it with NewPlan and advances
// the metadata to FromWeek+1. Nothing is written when the metadata no longer sits on FromWeek
// of the program started at StartDate.
func (r *Repo) Renew(ctx context.Context, params RenewParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.renew")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.String("plan.type", string(params.Type)),
		attribute.Int("from.week", params.FromWeek),
	)

	newContent, err := params.NewPlan.contentJSON()
	if err != nil {
		return err
	}
	nextWeek := params.FromWeek + 1

	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE plan_metadata
			SET current_week = $1, renewal_date = $2, updated_at = $3
			WHERE user_id = $4 AND plan_type = $5 AND current_week = $6 AND start_date = $7
				AND current_week < total_weeks`,
			nextWeek, params.RenewalDate, params.Now, params.UserID, params.Type, params.FromWeek, params.StartDate,
		)
		if err != nil {
			return fmt.Errorf("advance metadata: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrRenewalConflict
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO plan_archive (user_id, plan_type, program_start, week, content, archived_at)
			SELECT user_id, plan_type, $3, $4, content, $5
			FROM plan
			WHERE user_id = $1 AND plan_type = $2
			ON CONFLICT (user_id, plan_type, program_start, week) DO UPDATE SET
				content = EXCLUDED.content,
				archived_at = EXCLUDED.archived_at`,
			params.UserID, params.Type, params.StartDate, params.FromWeek, params.Now,
		); err != nil {
			return fmt.Errorf("archive plan: %w", err)
		}

		tag, err = tx.Exec(ctx, `
			UPDATE plan SET week = $1, content = $2, updated_at = $3
			WHERE user_id = $4 AND plan_type = $5`,
			nextWeek, newContent, params.Now, params.UserID, params.Type,
		)
		if err != nil {
			return fmt.Errorf("replace plan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrPlanNotFound
		}
		return nil
	})
}

// ListArchive returns the archived weeks of the user's current program, earlier programs are left out.
func (r *Repo) ListArchive(ctx context.Context, userID int, planType PlanType) (_ []ArchivedPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.archive.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("plan.type", string(planType)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.user_id, a.plan_type, a.program_start, a.week, a.content, a.archived_at
		FROM plan_archive a
		JOIN plan_metadata m
			ON m.user_id = a.user_id AND m.plan_type = a.plan_type AND m.start_date = a.program_start
		WHERE a.user_id = $1 AND a.plan_type = $2
		ORDER BY a.week`,
		userID, planType,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan archive: %w", err)
	}
	defer rows.Close()

	var archived []ArchivedPlan
	for rows.Next() {
		var (
			a           ArchivedPlan
			contentJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.ProgramStart, &a.Week, &contentJSON, &a.ArchivedAt); err != nil {
			return nil, err
		}
		a.Plan = &Plan{UserID: a.UserID, Type: a.Type, Week: a.Week, UpdatedAt: a.ArchivedAt}
		if err := a.Plan.setContent(contentJSON); err != nil {
			return nil, err
		}
		archived = append(archived, a)
	}

	return archived, rows.Err()
}

// ListArchivedSince returns archived weeks of all users, oldest first.
func (r *Repo) ListArchivedSince(ctx context.Context, since time.Time) (_ []ArchivedPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.archive.since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, plan_type, program_start, week, content, archived_at
		FROM plan_archive
		WHERE archived_at > $1
		ORDER BY archived_at, id`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan archive since: %w", err)
	}
	defer rows.Close()

	archived := []ArchivedPlan{}
	for rows.Next() {
		var (
			a           ArchivedPlan
			contentJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.ProgramStart, &a.Week, &contentJSON, &a.ArchivedAt); err != nil {
			return nil, err
		}
		a.Plan = &Plan{UserID: a.UserID, Type: a.Type, Week: a.Week, UpdatedAt: a.ArchivedAt}
		if err := a.Plan.setContent(contentJSON); err != nil {
			return nil, err
		}
		archived = append(archived, a)
	}

	return archived, rows.Err()
}
