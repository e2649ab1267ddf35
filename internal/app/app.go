package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/momozvault/go-backend/internal/cfg"
	v1Http "github.com/momozvault/go-backend/internal/delivery/v1/http"
	"github.com/momozvault/go-backend/internal/infrastructure/flutterwave"
	"github.com/momozvault/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/momozvault/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/momozvault/go-backend/internal/repository/minio"
	"github.com/momozvault/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/momozvault/go-backend/internal/repository/pgdb/converter"
	"github.com/momozvault/go-backend/internal/repository/redis"
	redisConv "github.com/momozvault/go-backend/internal/repository/redis/converter"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/clients"
	"github.com/momozvault/go-backend/pkg/closer"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
	"github.com/momozvault/go-backend/pkg/postgres"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	shutdownTrigger, cancelShutdownTrigger := context.WithCancel(context.Background())
	defer cancelShutdownTrigger()

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := &pgdbConv.ProductConverterImpl{}
	orderConv := &pgdbConv.OrderConverterImpl{}
	reviewConv := &pgdbConv.ReviewConverterImpl{}
	outboxConv := &pgdbConv.OutboxEventConverterImpl{}
	cacheConv := &redisConv.ProductConverterImpl{}
	cartConv := &redisConv.CartConverterImpl{}

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	reviewRepo := pgdb.NewReviewRepo(db.Pool, reviewConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	redisCancel()
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, logger)
	cartRepo := redis.NewCartRepo(redisClient, cartConv, cfg.Redis, logger)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, shutdownTrigger)
	cl.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	gateway := flutterwave.NewGateway(cfg.Flutterwave, logger)

	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, imagesInfra, logger)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, logger)
	orderUC := usecase.NewOrderUC(orderRepo, cartRepo, outboxRepo, db.Pool, cfg.Shop.ShippingFee, logger)
	paymentUC := usecase.NewPaymentUC(orderRepo, outboxRepo, gateway, db.Pool, logger)
	reviewUC := usecase.NewReviewUC(reviewRepo, logger)
	authUC := usecase.NewAuthUC(*cfg.Auth, logger)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(workerCtx)
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(v1Http.UseCases{
		Catalog: catalogUC,
		Cart:    cartUC,
		Order:   orderUC,
		Payment: paymentUC,
		Review:  reviewUC,
		Auth:    authUC,
	}, cfg.Flutterwave.WebhookSecret)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancelShutdownTrigger()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("Shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
