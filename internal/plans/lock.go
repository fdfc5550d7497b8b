package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	renewalLockPrefix = "fitplanner-renewal-lock::"
	RenewalLockTTL    = 3 * time.Minute
)

// deletes the key only while it still holds our token
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisLocker guards renewals so a user's plan is never renewed by two workers at once.
type RedisLocker struct {
	redisClient *redis.Client
	ttl         time.Duration
	newToken    func() string
}

func NewRedisLocker(redisClient *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		redisClient: redisClient,
		ttl:         ttl,
		newToken:    uuid.NewString,
	}
}

func renewalLockKey(userID int, planType PlanType) string {
	return fmt.Sprintf("%s%d::%s", renewalLockPrefix, userID, planType)
}

// Acquire returns a release func when the lock was taken, and false when someone else holds it.
func (l *RedisLocker) Acquire(ctx context.Context, userID int, planType PlanType) (func(), bool, error) {
	key := renewalLockKey(userID, planType)
	token := l.newToken()

	acquired, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire renewal lock: %w", err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		// the request ctx may be done by now
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.redisClient.Eval(releaseCtx, releaseLockScript, []string{key}, token).Err(); err != nil {
			log.Errorf("release renewal lock %s: %s", key, err)
		}
	}
	return release, true, nil
}
