package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"concert-ticketing/internal/adapter/broker"
	"concert-ticketing/internal/adapter/handler"
	"concert-ticketing/internal/adapter/repository/postgres"
	"concert-ticketing/internal/adapter/token"
	"concert-ticketing/internal/config"
	"concert-ticketing/internal/core/services"
	"concert-ticketing/internal/platform/database"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	publisher := broker.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	tx := postgres.NewTransactor(db)
	seatRepo := postgres.NewSeatRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)
	tokenStore := token.NewRedisStore(redisClient)

	var creator services.ReservationCreator
	switch cfg.LockStrategy {
	case config.StrategyOptimistic:
		creator = services.NewOptimisticReservation(seatRepo, reservationRepo, tx, redisClient, log)
	default:
		creator = services.NewPessimisticReservation(seatRepo, reservationRepo, tx, redisClient, log)
	}
	log.Info("reservation strategy selected", zap.String("strategy", cfg.LockStrategy))

	seatQueries := services.NewSeatQueryService(seatRepo, redisClient, log)
	paymentService := services.NewPaymentService(reservationRepo, customerRepo, seatRepo, paymentRepo, outboxRepo, tx, log)

	expiryWorker := services.NewExpiryWorker(reservationRepo, seatRepo, tx, cfg.SweepInterval, cfg.SweepBatchSize, log)
	outboxRelay := services.NewOutboxRelay(outboxRepo, publisher, cfg.RelayInterval, cfg.RelayBatchSize, cfg.RelayMaxRetries, log)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	go expiryWorker.Run(workerCtx)
	go outboxRelay.Run(workerCtx)

	reservationHandler := handler.NewReservationHandler(creator, seatQueries, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.NewRouter(reservationHandler, paymentHandler, tokenStore, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}
