package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitplanner-session||"
	sessionsSetKey   = "fitplanner-sessions"
)

// SessionStore keeps issued sessions in redis, so a token can be revoked
// before it expires.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (s *SessionStore) Create(ctx context.Context, sessionID string, createdAt time.Time) error {
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+sessionID, createdAt.Unix(), s.ttl).Err(); err != nil {
		return err
	}
	return s.redisClient.SAdd(ctx, sessionsSetKey, sessionID).Err()
}

// IsActive checks the session exists and is younger than the ttl.
func (s *SessionStore) IsActive(ctx context.Context, sessionID string, now time.Time) (bool, error) {
	createdAt, err := s.createdAt(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return now.Sub(createdAt) <= s.ttl, nil
}

func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return err
	}
	if err := s.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *SessionStore) createdAt(ctx context.Context, sessionID string) (time.Time, error) {
	createdAtUnixStr, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, ErrSessionNotFound
		}
		return time.Time{}, err
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(createdAtUnix, 0), nil
}

// ScanAndClean will run through all sessions, check their age, and remove the stale ones.
// Sessions already expired by redis are only dropped from the sessions set.
func (s *SessionStore) ScanAndClean(ctx context.Context, now time.Time) (cleaned int) {
	sessionIDs, err := s.redisClient.SMembers(ctx, sessionsSetKey).Result()
	if err != nil {
		log.Errorf("!!! sessions, scan and clean, get sessions: %s", err)
		return 0
	}

	if len(sessionIDs) == 0 {
		log.Debugln("=> sessions, scan and clean abort, no sessions")
		return 0
	}

	log.Debugf("=> sessions, scan and clean [%d sessions] start ...", len(sessionIDs))
	var toRemove []string
	for _, sessionID := range sessionIDs {
		createdAt, err := s.createdAt(ctx, sessionID)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				toRemove = append(toRemove, sessionID)
				continue
			}
			log.Errorf("=> sessions, scan and clean session %s: %s", sessionID, err)
			continue
		}

		if now.Sub(createdAt) > s.ttl {
			toRemove = append(toRemove, sessionID)
		}
	}

	for _, sessionID := range toRemove {
		if err := s.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
			log.Errorf("=> sessions, clean session %s: %s", sessionID, err)
			continue
		}
		cleaned++
	}

	log.Debugf("=> sessions, scan and clean done, removed %d", cleaned)
	return cleaned
}
