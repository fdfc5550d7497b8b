package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	ipInfoKeyPrefix = "ip-info::"
	ipInfoCacheTTL  = 7 * 24 * time.Hour
	// used for development, requests from localhost never reach ipinfo
	devTimezone = "Europe/Berlin"
)

var ErrInvalidIP = errors.New("invalid ip")

//go:generate mockgen -source=$GOFILE -destination=api_mocks_test.go -package=geoip

type ipLookup interface {
	GetIPInfo(ip net.IP) (*ipinfo.Core, error)
}

// IpInfo is the part of the ipinfo response kept in the cache.
type IpInfo struct {
	IP       string `json:"ip"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type Api struct {
	mu          sync.Mutex
	lookup      ipLookup
	redisClient *redis.Client
}

func NewApi(ipInfoToken string, httpClient *http.Client, redisClient *redis.Client) *Api {
	return &Api{
		lookup:      ipinfo.NewClient(httpClient, nil, ipInfoToken),
		redisClient: redisClient,
	}
}

func (gi *Api) GetIPInfo(ctx context.Context, ip string) (_ *IpInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geoIp.getIPInfo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", ip))

	if ip == pkg.LocalhostIP {
		log.Tracef("ip info: returning development timezone for localhost")
		return &IpInfo{IP: ip, Timezone: devTimezone}, nil
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIP, ip)
	}

	// concurrent requests from the same browser would all miss the cache and
	// burn the ipinfo quota, so lookups are serialized
	gi.mu.Lock()
	defer gi.mu.Unlock()

	key := ipInfoKeyPrefix + ip
	cached, err := gi.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil:
		info := &IpInfo{}
		if err := json.Unmarshal([]byte(cached), info); err == nil {
			span.SetAttributes(attribute.Bool("user.ip.from-cache", true))
			return info, nil
		}
		log.Errorf("unmarshal cached ip info for %s: %s", ip, err)
	case errors.Is(err, redis.Nil):
		log.Debugf("ip info for [%s] not cached", ip)
	default:
		log.Errorf("get ip info from redis for [%s]: %s", ip, err)
	}
	span.SetAttributes(attribute.Bool("user.ip.from-cache", false))

	core, err := gi.lookup.GetIPInfo(parsedIP)
	if err != nil {
		return nil, fmt.Errorf("ipinfo lookup: %w", err)
	}

	info := &IpInfo{
		IP:       ip,
		City:     core.City,
		Country:  core.Country,
		Timezone: core.Timezone,
	}
	infoBytes, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshal ip info: %w", err)
	}
	if err := gi.redisClient.Set(ctx, key, infoBytes, ipInfoCacheTTL).Err(); err != nil {
		log.Errorf("cache ip info in redis for %s: %s", ip, err)
	}

	return info, nil
}

func (gi *Api) Timezone(ctx context.Context, ip string) (string, error) {
	info, err := gi.GetIPInfo(ctx, ip)
	if err != nil {
		return "", err
	}
	return info.Timezone, nil
}
