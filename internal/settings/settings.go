package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidSettings      = errors.New("invalid settings")
	ErrNotificationNotFound = errors.New("notification not found")
)

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

type Settings struct {
	UserID             int       `json:"userId"`
	Units              Units     `json:"units"`
	Timezone           string    `json:"timezone"`
	EmailNotifications bool      `json:"emailNotifications"`
	RenewalReminders   bool      `json:"renewalReminders"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Defaults are used until the user saves anything.
func Defaults(userID int) *Settings {
	return &Settings{
		UserID:             userID,
		Units:              UnitsMetric,
		Timezone:           "",
		EmailNotifications: false,
		RenewalReminders:   true,
	}
}

func (s *Settings) Normalize() {
	s.Units = Units(strings.ToLower(strings.TrimSpace(string(s.Units))))
	if s.Units == "" {
		s.Units = UnitsMetric
	}
	s.Timezone = strings.TrimSpace(s.Timezone)
}

func (s *Settings) Validate() error {
	if s.Units != UnitsMetric && s.Units != UnitsImperial {
		return fmt.Errorf("%w: unknown units [%s]", ErrInvalidSettings, s.Units)
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone [%s]", ErrInvalidSettings, s.Timezone)
		}
	}
	return nil
}

// Location is the configured timezone, nil when unset or unknown.
func (s *Settings) Location() *time.Location {
	if s == nil || s.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil
	}
	return loc
}

const NotificationKindPlanRenewed = "plan_renewed"

type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
