package settings

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

const maxNotifications = 100

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the defaults when the user never saved settings.
func (r *Repo) Get(ctx context.Context, userID int) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	s := Settings{UserID: userID}
	err = r.db.QueryRow(
		ctx,
		`SELECT units, timezone, email_notifications, renewal_reminders, updated_at
			FROM user_settings WHERE user_id = $1`,
		userID,
	).Scan(&s.Units, &s.Timezone, &s.EmailNotifications, &s.RenewalReminders, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Defaults(userID), nil
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}

	return &s, nil
}

func (r *Repo) Save(ctx context.Context, s *Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", s.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_settings (user_id, units, timezone, email_notifications, renewal_reminders, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE SET
				units = EXCLUDED.units,
				timezone = EXCLUDED.timezone,
				email_notifications = EXCLUDED.email_notifications,
				renewal_reminders = EXCLUDED.renewal_reminders,
				updated_at = EXCLUDED.updated_at`,
		s.UserID, s.Units, s.Timezone, s.EmailNotifications, s.RenewalReminders, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

type NotificationsRepo struct {
	db *pgxpool.Pool
}

func NewNotificationsRepo(db *pgxpool.Pool) *NotificationsRepo {
	return &NotificationsRepo{
		db: db,
	}
}

func (r *NotificationsRepo) Add(ctx context.Context, userID int, kind, message string, createdAt time.Time) (_ *Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("notification.kind", kind))

	n := &Notification{
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		CreatedAt: createdAt,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO notification (user_id, kind, message, read, created_at)
			VALUES ($1, $2, $3, FALSE, $4) RETURNING id`,
		userID, kind, message, createdAt,
	).Scan(&n.ID)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

// List returns the latest notifications, newest first.
func (r *NotificationsRepo) List(ctx context.Context, userID int) (_ []Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, kind, message, read, created_at
			FROM notification WHERE user_id = $1
			ORDER BY created_at DESC, id DESC LIMIT $2`,
		userID, maxNotifications,
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

func (r *NotificationsRepo) MarkRead(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.markRead")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("notification.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE notification SET read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationsRepo) MarkAllRead(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.markAllRead")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE notification SET read = TRUE WHERE user_id = $1 AND NOT read`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
