package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/yogami9/databaseTier/pkg/config"
	"github.com/yogami9/databaseTier/pkg/events"
	"github.com/yogami9/databaseTier/pkg/handlers"
	"github.com/yogami9/databaseTier/pkg/logger"
	"github.com/yogami9/databaseTier/pkg/metrics"
	"github.com/yogami9/databaseTier/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("unable to load SDK config", "err", err)
		os.Exit(1)
	}

	// One client, shared by every request for the life of the process.
	dbClient := ddb.NewFromConfig(awsCfg, func(o *ddb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})

	var publisher events.Publisher = &events.NoOpPublisher{}
	if cfg.EventsQueueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.EventsQueueURL)
	}

	store := dynamodb.New(dbClient, publisher, cfg.AccountsTable, cfg.TransactionsTable)

	// The service must not serve traffic against an unindexed store.
	if err := store.EnsureSchema(ctx); err != nil {
		log.Error("schema initialization failed", "err", err)
		os.Exit(1)
	}

	metrics.Init()
	router := handlers.NewRouter(log, store)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
