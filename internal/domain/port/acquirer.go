package port

import "context"

// DatasetAcquirer интерфейс получения датасета
type DatasetAcquirer interface {
	// Acquire гарантирует наличие датасета на диске и возвращает путь к нему
	Acquire(ctx context.Context, datasetID string) (string, error)
}
