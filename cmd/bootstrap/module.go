package bootstrap

import (
	"salon-broker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	IntegrationModule,
	WorkerModule,
	components.HandlerModule,
)
