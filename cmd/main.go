package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/exreview.net/internal/adapter/kafka/notifyport"
	"gitlab.com/exreview.net/internal/adapter/postgres/reviewrepository"
	"gitlab.com/exreview.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/exreview.net/internal/adapter/redis/capabilityport"
	"gitlab.com/exreview.net/internal/config"
	"gitlab.com/exreview.net/internal/core/services/notify"
	"gitlab.com/exreview.net/internal/core/services/permission"
	"gitlab.com/exreview.net/internal/core/services/review"
	logger2 "gitlab.com/exreview.net/internal/global/logger"
	http2 "gitlab.com/exreview.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting review workflow service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	reviewRepo := reviewrepository.NewReviewRepository(db, logger, sysCfg.PostgresConfig.Schema)
	capabilityRepo := capabilityport.NewCapabilityRepository(redisClient, logger)
	notifyProducer := notifyport.NewNotifyProducer(notifyport.Config{
		Brokers:     sysCfg.KafkaConfig.Brokers,
		EventsTopic: sysCfg.KafkaConfig.EventsTopic,
		MailTopic:   sysCfg.KafkaConfig.MailTopic,
	}, logger)
	defer notifyProducer.Close()

	// services
	permissionSvc := permission.NewPermissionService(capabilityRepo, logger)
	notifierSvc := notify.NewReviewNotifier(notifyProducer, notifyProducer, sysCfg.SiteConfig.Root, logger)
	reviewSvc := review.NewReviewService(submissionRepo, reviewRepo, permissionSvc, notifierSvc, logger)
	serviceProvider := http2.NewServiceProvider(reviewSvc)

	// server
	httServer := http2.NewServer(8082, "reviewWorkflow", *serviceProvider, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
