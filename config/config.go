package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"sketch-loader/internal/domain/entity"
)

// DefaultDatasetID датасет рисованных от руки изображений на Kaggle
const DefaultDatasetID = "gergvincze/simple-hand-drawn-and-digitized-images"

type Config struct {
	DatasetID    string
	DatasetPath  string // локальный каталог; если задан, скачивание не выполняется
	CacheDir     string
	KaggleAPIURL string
	KaggleUser   string
	KaggleKey    string
	DecodePolicy entity.DecodePolicy
	ImageSize    int // 0 — оставить исходный размер

	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		DatasetID:     getenv("DATASET_ID", DefaultDatasetID),
		DatasetPath:   os.Getenv("DATASET_PATH"),
		CacheDir:      getenv("CACHE_DIR", defaultCacheDir()),
		KaggleAPIURL:  os.Getenv("KAGGLE_API_URL"),
		KaggleUser:    os.Getenv("KAGGLE_USERNAME"),
		KaggleKey:     os.Getenv("KAGGLE_KEY"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	policy, err := entity.ParseDecodePolicy(os.Getenv("DECODE_FAILURE_POLICY"))
	if err != nil {
		return nil, err
	}
	cfg.DecodePolicy = policy

	if v := os.Getenv("IMAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("invalid IMAGE_SIZE %q", v)
		}
		cfg.ImageSize = size
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q", v)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

// NotifyEnabled сообщает, что сводку нужно отправлять в Telegram
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kagglehub")
	}
	return filepath.Join(home, ".cache", "kagglehub")
}
