package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"sketch-loader/config"
	telegram "sketch-loader/internal/api"
	"sketch-loader/internal/container"
	"sketch-loader/internal/domain/port"
	"sketch-loader/internal/infrastructure/kaggle"
	"sketch-loader/internal/infrastructure/storage"
	"sketch-loader/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Локальный каталог имеет приоритет над скачиванием с Kaggle
	var acquirer port.DatasetAcquirer
	if cfg.DatasetPath != "" {
		acquirer = storage.NewLocalAcquirer(cfg.DatasetPath)
	} else {
		acquirer = kaggle.NewAcquirer(cfg.KaggleAPIURL, cfg.KaggleUser, cfg.KaggleKey, cfg.CacheDir)
	}

	var notifier port.SummaryNotifier
	if cfg.NotifyEnabled() {
		n, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram notifications disabled: %v", err)
		} else {
			notifier = n
		}
	}

	appContainer := container.New(acquirer, vision.NewDefaultDecoder(cfg.ImageSize), notifier, cfg.DecodePolicy)

	nds, err := appContainer.PipelineService.Run(ctx, cfg.DatasetID, os.Stdout)
	if err != nil {
		log.Fatalf("Pipeline error: %v", err)
	}

	// Обучение модели не реализовано: нормализованные записи готовы для него
	log.Printf("Dataset ready: %d normalized images", nds.Len())
}
