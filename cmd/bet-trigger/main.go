package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/tennis-autobet/internal/autobet"
	"github.com/radieske/tennis-autobet/internal/bet-trigger/guard"
	bhttp "github.com/radieske/tennis-autobet/internal/bet-trigger/http"
	kpub "github.com/radieske/tennis-autobet/internal/bet-trigger/producer"
	"github.com/radieske/tennis-autobet/internal/notifier"
	"github.com/radieske/tennis-autobet/internal/shared/cache"
	"github.com/radieske/tennis-autobet/internal/shared/config"
	"github.com/radieske/tennis-autobet/internal/shared/kafka"
	"github.com/radieske/tennis-autobet/internal/shared/logger"
	"github.com/radieske/tennis-autobet/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer log.Sync()

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	base := autobet.Config{
		Notifier:         notifier.NewSlack(cfg.SlackWebhookURL),
		Logger:           log,
		Metrics:          metrics.NewAutobet(prometheus.DefaultRegisterer),
		OpenBetsLookback: cfg.OpenBetsLookback,
		CheckDuplicates:  cfg.CheckDuplicates,
		AutoBetStake:     cfg.AutoBetStake,
	}

	// Redis (opcional): marcador de gatilho repetido
	rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		base.Guard = guard.New(rdb, cfg.GuardTTL)
		log.Info("recent-trigger guard enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.GuardTTL))
	}

	// Kafka writer (opcional, topic bet_outcome)
	if writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetOutcome); writer != nil {
		defer writer.Close()
		base.Publisher = kpub.NewKafkaPublisher(writer, cfg.TopicBetOutcome)
		log.Info("bet outcome publisher enabled", zap.String("topic", cfg.TopicBetOutcome))
	}

	// metrics/health
	health := func(ctx context.Context) error {
		if rdb == nil {
			return nil
		}
		return rdb.Ping(ctx).Err()
	}
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, health)
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	// HTTP público
	api := bhttp.NewServer(log, bhttp.PinnacleFactory(cfg.PinnacleBaseURL, base), cfg.CORSAllowedOrigin)
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("bet-trigger listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
	defer done()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
	log.Info("bet-trigger stopped")
}
