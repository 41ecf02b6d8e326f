package main

import (
	"context"
	stdlog "log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/tennis-autobet/internal/autobet"
	"github.com/radieske/tennis-autobet/internal/notifier"
	"github.com/radieske/tennis-autobet/internal/pinnacle"
	"github.com/radieske/tennis-autobet/internal/shared/config"
	"github.com/radieske/tennis-autobet/internal/shared/logger"
)

// bet-report imprime o ROI das apostas automáticas de ontem e as apostas ainda abertas
func main() {
	cfg := config.Load()
	cfg.ServiceName = "bet-report"
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer log.Sync()

	if cfg.PinnacleUsername == "" || cfg.PinnaclePassword == "" {
		log.Fatal("PINNACLE_USERNAME and PINNACLE_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	api := pinnacle.New(cfg.PinnacleBaseURL, cfg.PinnacleUsername, cfg.PinnaclePassword)
	client := autobet.New(ctx, api, autobet.Config{
		Notifier:         notifier.NewSlack(cfg.SlackWebhookURL),
		Logger:           log,
		OpenBetsLookback: cfg.OpenBetsLookback,
		AutoBetStake:     cfg.AutoBetStake,
	})

	if _, err := client.CalcROI(ctx, os.Stdout); err != nil {
		log.Error("calc roi", zap.Error(err))
	}
	client.ShowCurrentOpenBets(os.Stdout)
}
