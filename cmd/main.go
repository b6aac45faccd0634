package main

import (
	"context"
	"log"

	"hotel-booking-service/config"
	bookingHandler "hotel-booking-service/internal/module/booking/handler"
	"hotel-booking-service/internal/module/booking/models/event"
	bookingRepositories "hotel-booking-service/internal/module/booking/repositories"
	bookingUsecases "hotel-booking-service/internal/module/booking/usecases"
	loyaltyHandler "hotel-booking-service/internal/module/loyalty/handler"
	loyaltyRepositories "hotel-booking-service/internal/module/loyalty/repositories"
	loyaltyUsecases "hotel-booking-service/internal/module/loyalty/usecases"
	roomHandler "hotel-booking-service/internal/module/room/handler"
	roomRepositories "hotel-booking-service/internal/module/room/repositories"
	roomUsecases "hotel-booking-service/internal/module/room/usecases"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/http"
	"hotel-booking-service/internal/pkg/httpclient"
	log_internal "hotel-booking-service/internal/pkg/log"
	"hotel-booking-service/internal/pkg/messagestream"
	"hotel-booking-service/internal/pkg/middleware"
	"hotel-booking-service/internal/pkg/redis"
	"hotel-booking-service/internal/pkg/scheduler"
	router "hotel-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type service struct {
	app            *fiber.App
	messageRouters []*message.Router
	onShutdown     []func(ctx context.Context)
}

func main() {
	cfg := config.InitConfig()

	svc := initService(cfg)

	for _, router := range svc.messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(svc.app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout, svc.onShutdown...)
}

func initService(cfg *config.Config) service {
	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLogger(cfg.Logger.Level)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.GetOtelLogger()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}
	transactor := database.NewTransactor(db)

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redis.NewLocker(redisClient)

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	broker := messagestream.NewBroker(&cfg.MessageStream, logZap)

	subscriber, err := broker.NewSubscriber()
	if err != nil {
		log.Fatalf("failed to create subscriber: %v", err)
	}

	publisher, err := broker.NewPublisher()
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	schedulerClient := sch.InitClient(&cfg.Redis)

	roomRepo := roomRepositories.New(db, logger, locker)
	bookingRepo := bookingRepositories.New(db, logger, httpClient, &cfg.PaymentService, schedulerClient, cfg.Scheduler.CheckoutRetryIn)
	loyaltyRepo := loyaltyRepositories.New(db, logger)

	roomUsecase := roomUsecases.New(roomRepo, logger)
	bookingUsecase := bookingUsecases.New(bookingRepo, roomRepo, transactor, logger, publisher)
	loyaltyUsecase := loyaltyUsecases.New(loyaltyRepo, transactor, logger)

	validate := validator.New()
	handlers := router.Handlers{
		Room: &roomHandler.RoomHandler{
			Log:       otelLogger,
			Validator: validate,
			Usecase:   roomUsecase,
		},
		Booking: &bookingHandler.BookingHandler{
			Log:       otelLogger,
			Validator: validate,
			Usecase:   bookingUsecase,
		},
		Loyalty: &loyaltyHandler.LoyaltyHandler{
			Log:     otelLogger,
			Usecase: loyaltyUsecase,
		},
	}
	m := middleware.Middleware{
		Log:       otelLogger,
		JwtSecret: cfg.Auth.JwtSecret,
	}

	var messageRouters []*message.Router

	checkedOutRouter, err := messagestream.NewRouter(publisher, event.TopicCheckedOutPoisoned, "loyalty_checked_out_handler", event.TopicCheckedOut, subscriber, handlers.Loyalty.ConsumeCheckedOut,
		messagestream.RouterConfig{
			MaxRetries:      cfg.MessageStream.MaxRetries,
			InitialInterval: cfg.MessageStream.RetryInitialDelay,
			Logger:          messagestream.NewZapLoggerAdapter(logZap),
		},
	)
	if err != nil {
		log.Fatalf("failed to create checked out router: %v", err)
	}
	messageRouters = append(messageRouters, checkedOutRouter)

	schedulerServer := sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypeProcessCheckout},
		[]func(ctx context.Context, t *asynq.Task) error{handlers.Loyalty.ProcessCheckoutTask},
	)

	if cfg.Scheduler.EnableMonitoring {
		go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
	}

	serverHttp := http.SetupHttpEngine()
	app := router.Initialize(serverHttp, handlers, &m)

	onShutdown := []func(ctx context.Context){
		func(ctx context.Context) {
			for _, r := range messageRouters {
				if err := r.Close(); err != nil {
					logger.Error(ctx, "error close message router", zap.Error(err))
				}
			}
		},
		func(ctx context.Context) {
			schedulerServer.Shutdown()
			if err := schedulerClient.Close(); err != nil {
				logger.Error(ctx, "error close scheduler client", zap.Error(err))
			}
		},
		func(ctx context.Context) {
			if err := publisher.Close(); err != nil {
				logger.Error(ctx, "error close publisher", zap.Error(err))
			}
			if err := redisClient.Close(); err != nil {
				logger.Error(ctx, "error close redis", zap.Error(err))
			}
			if err := db.Close(); err != nil {
				logger.Error(ctx, "error close database", zap.Error(err))
			}
			_ = logZap.Sync()
		},
	}

	return service{
		app:            app,
		messageRouters: messageRouters,
		onShutdown:     onShutdown,
	}
}
