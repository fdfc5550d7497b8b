package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/settings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=renewal_notifier_mocks_test.go -package=notify_test

type notificationAdder interface {
	Add(ctx context.Context, userID int, kind, message string, createdAt time.Time) (*settings.Notification, error)
}

type settingsGetter interface {
	Get(ctx context.Context, userID int) (*settings.Settings, error)
}

type userGetter interface {
	GetByID(ctx context.Context, id int) (*auth.User, error)
}

type renewalMailer interface {
	SendPlanRenewed(ctx context.Context, to, name, planType string, week, totalWeeks int) error
}

// RenewalNotifier tells users their next week is ready. Reminders off means
// nothing is sent. Email additionally needs email notifications on.
type RenewalNotifier struct {
	notifications notificationAdder
	settings      settingsGetter
	users         userGetter
	mailer        renewalMailer
	now           func() time.Time
}

func NewRenewalNotifier(
	notifications notificationAdder,
	settings settingsGetter,
	users userGetter,
	mailer renewalMailer,
) *RenewalNotifier {
	return &RenewalNotifier{
		notifications: notifications,
		settings:      settings,
		users:         users,
		mailer:        mailer,
		now:           time.Now,
	}
}

// PlanRenewed never fails the renewal, problems are only logged.
func (n *RenewalNotifier) PlanRenewed(ctx context.Context, userID int, planType plans.PlanType, week, totalWeeks int) {
	userSettings, err := n.settings.Get(ctx, userID)
	if err != nil {
		log.Errorf("renewal notify [%d]: get settings: %s", userID, err)
		return
	}
	if !userSettings.RenewalReminders {
		return
	}

	message := fmt.Sprintf("Your %s plan for week %d of %d is ready.", planType, week, totalWeeks)
	if _, err := n.notifications.Add(ctx, userID, settings.NotificationKindPlanRenewed, message, n.now()); err != nil {
		log.Errorf("renewal notify [%d]: add notification: %s", userID, err)
	}

	if !userSettings.EmailNotifications {
		return
	}

	user, err := n.users.GetByID(ctx, userID)
	if err != nil {
		log.Errorf("renewal notify [%d]: get user: %s", userID, err)
		return
	}
	if err := n.mailer.SendPlanRenewed(ctx, user.Email, user.Name, string(planType), week, totalWeeks); err != nil {
		log.Errorf("renewal notify [%d]: %s", userID, err)
	}
}
