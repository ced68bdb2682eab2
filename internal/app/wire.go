//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"store/internal/gateway/paystack"
	order_create_post "store/internal/handlers/rest/order_create_post"
	order_pay_post "store/internal/handlers/rest/order_pay_post"
	order_status_get "store/internal/handlers/rest/order_status_get"
	payment_webhook_post "store/internal/handlers/rest/payment_webhook_post"
	"store/internal/handlers/tasks/payment_reconcile"
	"store/internal/notifier"
	"store/internal/pkg/config"
	kafkatransport "store/internal/pkg/kafka"
	"store/internal/pkg/reference"

	orderRepo "store/internal/repository/order"
	productRepo "store/internal/repository/product"
	orderService "store/internal/service/order"

	"store/pkg/background"
	"store/pkg/logger"
	"store/pkg/querier"
	"store/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	Notifier          *notifier.Dispatcher
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_create_post.Service
	order_pay_post.Service
	order_status_get.Service
	payment_webhook_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafkatransport.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,
		provideProductRepository,

		providePaystackGateway,
		provideKafkaPublisher,
		provideNotifierDispatcher,
		reference.New,

		provideServiceOrder,

		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*productRepo.Repository)),
		wire.Bind(new(orderService.Gateway), new(*paystack.Gateway)),
		wire.Bind(new(orderService.Notifier), new(*notifier.Dispatcher)),
		wire.Bind(new(orderService.ReferenceGenerator), new(*reference.Generator)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_reconcile.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func providePaystackGateway(cfg *config.Config) *paystack.Gateway {
	return paystack.New(
		paystack.Config{
			BaseURL:    cfg.Paystack.BaseURL,
			SecretKey:  cfg.Paystack.SecretKey,
			Currencies: cfg.Paystack.Currencies,
			Channels:   cfg.Paystack.Channels,
		},
		&http.Client{Timeout: cfg.Paystack.RequestTimeout},
	)
}

func provideKafkaPublisher(producer *kafkatransport.Producer, cfg *config.Config) *notifier.KafkaPublisher {
	return notifier.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

func provideNotifierDispatcher(log logger.Logger, publisher *notifier.KafkaPublisher, cfg *config.Config) *notifier.Dispatcher {
	return notifier.New(log, publisher, cfg.Notification.QueueCapacity)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.Catalog,
	gateway orderService.Gateway,
	dispatcher orderService.Notifier,
	references orderService.ReferenceGenerator,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Order {
	return orderService.New(
		repository,
		catalog,
		gateway,
		dispatcher,
		references,
		txManager,
		cfg.Paystack.WebhookSecret,
		cfg.Paystack.Currency,
	)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.PaymentReconcileInterval)
}

func providePaymentReconcileTask(
	log logger.Logger,
	service payment_reconcile.Service,
	interval ReconcileInterval,
	cfg *config.Config,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(
		log,
		service,
		time.Duration(interval),
		cfg.Tasks.PaymentReconcileOlderThan,
		cfg.Tasks.PaymentReconcileLimit,
	)
}

func provideTaskList(
	paymentReconcileTask *payment_reconcile.PaymentReconcile,
) []background.Task {
	return []background.Task{
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
