package bootstrap

import (
	"badge-promotion-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TelemetryModule,
	AuditModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
