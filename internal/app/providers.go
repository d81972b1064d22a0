package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"service/internal/entities"
	"service/internal/handlers/tasks/entity_stats"
	"service/internal/pkg/config"
	"service/internal/pkg/validation"
	billRepo "service/internal/repository/bill"
	deliveryRepo "service/internal/repository/delivery"
	deliveryBoyRepo "service/internal/repository/delivery_boy"
	orderRepo "service/internal/repository/order"
	userRepo "service/internal/repository/user"
	"service/internal/resources"
	"service/internal/service/crud"
	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"
)

type (
	UserService        = crud.Service[entities.User, string]
	DeliveryBoyService = crud.Service[entities.DeliveryBoy, int64]
	DeliveryService    = crud.Service[entities.Delivery, string]
	OrderService       = crud.Service[entities.Order, string]
	BillService        = crud.Service[entities.Bill, int64]
)

type Application struct {
	Users             *UserService
	DeliveryBoys      *DeliveryBoyService
	Deliveries        *DeliveryService
	Orders            *OrderService
	Bills             *BillService
	BackgroundWorkers *background.Worker
}

func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) (*tx.Manager, error) {
	level, err := tx.ParseIsoLevel(cfg.Database.TxIsolation)
	if err != nil {
		return nil, fmt.Errorf("tx manager: %w", err)
	}
	return tx.New(pool, level), nil
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideValidator() (*validation.Validator, error) {
	return validation.New()
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideDeliveryBoyRepository(querier *querier.Querier) *deliveryBoyRepo.Repository {
	return deliveryBoyRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideBillRepository(querier *querier.Querier) *billRepo.Repository {
	return billRepo.New(querier)
}

func provideUserService(
	repository *userRepo.Repository,
	txManager *tx.Manager,
	validator *validation.Validator,
	notifier crud.Notifier,
) *UserService {
	return crud.New[entities.User, string](resources.User.Service, repository, txManager, validator, notifier)
}

func provideDeliveryBoyService(
	repository *deliveryBoyRepo.Repository,
	txManager *tx.Manager,
	validator *validation.Validator,
	notifier crud.Notifier,
) *DeliveryBoyService {
	return crud.New[entities.DeliveryBoy, int64](resources.DeliveryBoy.Service, repository, txManager, validator, notifier)
}

func provideDeliveryService(
	repository *deliveryRepo.Repository,
	txManager *tx.Manager,
	validator *validation.Validator,
	notifier crud.Notifier,
) *DeliveryService {
	return crud.New[entities.Delivery, string](resources.Delivery.Service, repository, txManager, validator, notifier)
}

func provideOrderService(
	repository *orderRepo.Repository,
	txManager *tx.Manager,
	validator *validation.Validator,
	notifier crud.Notifier,
) *OrderService {
	return crud.New[entities.Order, string](resources.Order.Service, repository, txManager, validator, notifier)
}

func provideBillService(
	repository *billRepo.Repository,
	txManager *tx.Manager,
	validator *validation.Validator,
	notifier crud.Notifier,
) *BillService {
	return crud.New[entities.Bill, int64](resources.Bill.Service, repository, txManager, validator, notifier)
}

func provideEntityStatsTask(
	log logger.Logger,
	cfg *config.Config,
	users *UserService,
	deliveryBoys *DeliveryBoyService,
	deliveries *DeliveryService,
	orders *OrderService,
	bills *BillService,
) *entity_stats.EntityStats {
	return entity_stats.NewEntityStats(
		log,
		cfg.Tasks.EntityStatsInterval,
		users, deliveryBoys, deliveries, orders, bills,
	)
}

func provideTaskList(
	entityStatsTask *entity_stats.EntityStats,
) []background.Task {
	return []background.Task{
		entityStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
