package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoRedis is returned by auth helpers when Redis is not configured.
// Token revocation and reset codes cannot work without a store.
var ErrNoRedis = errors.New("redis is not available")

const (
	blacklistKeyPrefix = "auth:blacklist:%s"
	resetCodeKeyPrefix = "auth:reset:%s"

	// ResetCodeTTL bounds how long a password reset code stays valid.
	ResetCodeTTL = 15 * time.Minute
)

// BlacklistToken marks a token id (jti) as revoked until its natural expiry.
func BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil {
		return ErrNoRedis
	}
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	key := fmt.Sprintf(blacklistKeyPrefix, jti)
	return client.Set(ctx, key, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token id has been revoked.
// Without Redis every token is considered live.
func IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	if client == nil {
		return false, nil
	}
	key := fmt.Sprintf(blacklistKeyPrefix, jti)
	_, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// consumeResetScript deletes the reset code only when it matches,
// atomically, so two concurrent verifies cannot both consume it.
var consumeResetScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// StoreResetCode binds a numeric reset code to an email for ResetCodeTTL.
func StoreResetCode(ctx context.Context, email string, code int) error {
	if client == nil {
		return ErrNoRedis
	}
	key := fmt.Sprintf(resetCodeKeyPrefix, email)
	return client.Set(ctx, key, code, ResetCodeTTL).Err()
}

// ConsumeResetCode validates and deletes the reset code for an email.
// Returns true only when the code matches; the code is single-use.
func ConsumeResetCode(ctx context.Context, email string, code int) (bool, error) {
	if client == nil {
		return false, ErrNoRedis
	}
	key := fmt.Sprintf(resetCodeKeyPrefix, email)
	deleted, err := consumeResetScript.Run(ctx, client, []string{key}, strconv.Itoa(code)).Int()
	if err != nil && err != redis.Nil {
		return false, err
	}
	return deleted == 1, nil
}
