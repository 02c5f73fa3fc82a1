package components

import (
	"log/slog"

	"salon-broker/internal/handler"
	"salon-broker/internal/handler/api"
	"salon-broker/internal/handler/middleware"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewIntakeHandler,
		api.NewSalonHandler,
		api.NewClientHandler,
		api.NewEarningsHandler,
		NewPaymentWebhookHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

var ErrWebhookSecretRequired = errs.New("PAYMENT_WEBHOOK_SECRET is required in release mode")

// NewPaymentWebhookHandler refuses to build an unsigned webhook in release mode.
func NewPaymentWebhookHandler(settlement commands.SettlementCommands, cfg config.Config, logger *slog.Logger) (*api.PaymentWebhookHandler, error) {
	if cfg.Payment.WebhookSecret == "" {
		if gin.Mode() == gin.ReleaseMode {
			return nil, ErrWebhookSecretRequired
		}
		logger.Warn("PAYMENT_WEBHOOK_SECRET not set, webhook signatures are not verified", "mode", gin.Mode())
	}
	return api.NewPaymentWebhookHandler(settlement, cfg.Payment.WebhookSecret, logger), nil
}

func NewRateLimiter(client *redis.Client, cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(client, cfg.Redis.RateLimit, logger)
}
