package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var errRateLimited = errs.New("rate limit exceeded")

const tokenBucketScript = `
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`

// RateLimiter is a per-client token bucket kept in Redis so every replica
// shares one budget.
type RateLimiter struct {
	client   redis.Scripter
	script   *redis.Script
	capacity int
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewRateLimiter allows perMinute requests per client and route, refilled
// continuously. perMinute <= 0 disables limiting.
func NewRateLimiter(client redis.Scripter, perMinute int, logger *slog.Logger) *RateLimiter {
	interval := time.Minute
	if perMinute > 0 {
		interval = time.Minute / time.Duration(perMinute)
	}
	return &RateLimiter{
		client:   client,
		script:   redis.NewScript(tokenBucketScript),
		capacity: perMinute,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.client == nil || r.capacity <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s %s", c.ClientIP(), c.Request.Method, c.FullPath())
		args := []any{
			r.now().UnixMilli(),
			r.capacity,
			1,
			r.interval.Milliseconds(),
			120,
		}
		vals, err := r.script.Run(c.Request.Context(), r.client, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			// fail open
			r.logger.Warn("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(r.capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))

		if vals[0] != 1 {
			secs := int(math.Ceil(float64(vals[2]) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, slow down", nil)
			return
		}
		c.Next()
	}
}
