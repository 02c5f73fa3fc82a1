package lock

import (
	"context"
	"log/slog"
	"time"

	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still carries our token, so a
// lease that expired and was taken over is left alone.
const releaseScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`

type RedisLocker struct {
	client   redis.Cmdable
	newToken func() string
	logger   *slog.Logger
}

var _ shared.Locker = (*RedisLocker)(nil)

// NewRedisLocker builds a lease-based locker. newToken may be nil.
func NewRedisLocker(client redis.Cmdable, newToken func() string, logger *slog.Logger) *RedisLocker {
	if newToken == nil {
		newToken = uuid.NewString
	}
	return &RedisLocker{client: client, newToken: newToken, logger: logger}
}

func (l *RedisLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), bool, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to acquire lock")
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		n, err := l.client.Eval(ctx, releaseScript, []string{key}, token).Int64()
		if err != nil {
			l.logger.Warn("failed to release lock", "key", key, "error", err)
			return
		}
		if n == 0 {
			l.logger.Warn("lock lease expired before release", "key", key)
		}
	}
	return release, true, nil
}
