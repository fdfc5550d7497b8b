package geoip

import (
	"context"
	"time"

	"github.com/2beens/fitplanner/internal/settings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=geoip

type settingsGetter interface {
	Get(ctx context.Context, userID int) (*settings.Settings, error)
}

type timezoneLookup interface {
	Timezone(ctx context.Context, ip string) (string, error)
}

// LocationResolver picks the timezone used for day locking: the one saved in
// the user's settings, then the one of the request ip, then UTC.
type LocationResolver struct {
	settings settingsGetter
	geo      timezoneLookup
}

func NewLocationResolver(settings settingsGetter, geo timezoneLookup) *LocationResolver {
	return &LocationResolver{
		settings: settings,
		geo:      geo,
	}
}

func (r *LocationResolver) Location(ctx context.Context, userID int, ip string) *time.Location {
	userSettings, err := r.settings.Get(ctx, userID)
	if err != nil {
		log.Errorf("location [%d]: get settings: %s", userID, err)
	} else if loc := userSettings.Location(); loc != nil {
		return loc
	}

	if ip == "" || r.geo == nil {
		return time.UTC
	}

	tz, err := r.geo.Timezone(ctx, ip)
	if err != nil {
		log.Debugf("location [%d]: timezone for ip %s: %s", userID, ip, err)
		return time.UTC
	}
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warnf("location [%d]: unknown timezone %s: %s", userID, tz, err)
		return time.UTC
	}
	return loc
}
