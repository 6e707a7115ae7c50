// Package throttle counts consecutive failed logins per username and client
// IP in redis and locks the pair out once the configured strike limit is
// reached. With no redis configured every check passes.
package throttle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storekit/catalog-api/internal/redissvc"
)

var (
	rdb *redis.Client
	ctx context.Context

	maxFailures int64 = 5
	lockout           = 15 * time.Minute
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func Configure(failures int, window time.Duration) {
	if failures > 0 {
		maxFailures = int64(failures)
	}
	if window > 0 {
		lockout = window
	}
}

func strikeKey(username, ip string) string {
	return fmt.Sprintf("login:strikes:%s:%s", username, ip)
}

// Blocked reports whether the username/IP pair has exhausted its attempts.
func Blocked(username, ip string) bool {
	if rdb == nil {
		return false
	}
	strikes, err := rdb.Get(ctx, strikeKey(username, ip)).Int64()
	if err != nil {
		return false
	}
	return strikes >= maxFailures
}

// RecordFailure adds a strike and starts the lockout window on the first one.
func RecordFailure(username, ip string) {
	if rdb == nil {
		return
	}
	key := strikeKey(username, ip)
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("failed to record login strike: %v", err)
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, key, lockout)
	}
	if strikes == maxFailures {
		log.Printf("login lockout for %s from %s (%d strikes)", username, ip, strikes)
	}
}

// ClearFailures resets the counter after a successful login.
func ClearFailures(username, ip string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, strikeKey(username, ip)).Err()
}
