package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-order-service/docs"
	"github.com/SergeyBogomolovv/shop-order-service/internal/app"
	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-order-service/internal/notification"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	"github.com/SergeyBogomolovv/shop-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Order Service API
// @version         1.0
// @description     Заказы, резервация остатков и сверка оплат
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	productsRepo := repo.NewProductsRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	gateways := payment.NewRegistry(
		payment.NewMomoGateway(conf.Payment.Momo),
		payment.NewPaylineGateway(conf.Payment.Payline),
	)

	dispatcher := notification.NewKafkaDispatcher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, productsRepo, gateways, dispatcher, orderCache)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	webhookHandler := handler.NewWebhookHandler(logger, gateways, orderService)
	adminHandler := handler.NewAdminHandler(logger, conf.Admin.Token, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, webhookHandler, adminHandler)
	app.SetClosers(dispatcher)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
