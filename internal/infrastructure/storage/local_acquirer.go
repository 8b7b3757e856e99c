package storage

import (
	"context"
	"fmt"
	"os"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// LocalAcquirer отдаёт уже скачанный датасет из заданного каталога
type LocalAcquirer struct {
	path string
}

// NewLocalAcquirer создаёт источник датасета из локального каталога
func NewLocalAcquirer(path string) *LocalAcquirer {
	return &LocalAcquirer{path: path}
}

// Acquire проверяет, что каталог существует, и возвращает его путь.
// Идентификатор датасета не используется.
func (a *LocalAcquirer) Acquire(ctx context.Context, datasetID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(a.path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", entity.ErrAcquisition, datasetID, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", entity.ErrAcquisition, a.path)
	}

	return a.path, nil
}

// Проверка реализации интерфейса
var _ port.DatasetAcquirer = (*LocalAcquirer)(nil)
