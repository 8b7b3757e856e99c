package port

import (
	"context"

	"sketch-loader/internal/domain/entity"
)

// SummaryNotifier интерфейс отправки сводки по датасету
type SummaryNotifier interface {
	// Notify отправляет сводку во внешний канал
	Notify(ctx context.Context, summary entity.Summary) error
}
