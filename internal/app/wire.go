//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"service/internal/pkg/config"
	"service/internal/service/crud"
	"service/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier crud.Notifier,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideValidator,

		provideUserRepository,
		provideDeliveryBoyRepository,
		provideDeliveryRepository,
		provideOrderRepository,
		provideBillRepository,

		provideUserService,
		provideDeliveryBoyService,
		provideDeliveryService,
		provideOrderService,
		provideBillService,

		provideEntityStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
