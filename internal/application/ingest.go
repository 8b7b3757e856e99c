package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// IngestService обходит каталог датасета и собирает записи (метка, изображение).
type IngestService struct {
	decoder port.ImageDecoder
	policy  entity.DecodePolicy
}

// NewIngestService создаёт сервис загрузки с заданной политикой ошибок декодирования.
func NewIngestService(decoder port.ImageDecoder, policy entity.DecodePolicy) *IngestService {
	if policy == "" {
		policy = entity.PolicySkip
	}
	return &IngestService{
		decoder: decoder,
		policy:  policy,
	}
}

// Ingest рекурсивно обходит root и декодирует каждый обычный файл.
// Порядок записей совпадает с порядком обхода filepath.WalkDir (лексикографический).
func (s *IngestService) Ingest(ctx context.Context, root string) (*entity.Dataset, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", entity.ErrInvalidRoot, root)
	}

	ds := &entity.Dataset{Root: root}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		label := LabelOf(path)
		img, err := s.decoder.Decode(path)
		if err == nil && img.Empty() {
			err = fmt.Errorf("%s: empty image", path)
		}
		if err == nil {
			ds.Records = append(ds.Records, entity.NewDecodedRecord(label, path, img))
			return nil
		}

		switch s.policy {
		case entity.PolicyFail:
			return fmt.Errorf("%w: %v", entity.ErrDecode, err)
		case entity.PolicyKeep:
			ds.Records = append(ds.Records, entity.NewFailedRecord(label, path, err))
		default:
			log.Printf("Skipping %s: %v", path, err)
		}
		ds.Failed++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return ds, nil
}

// LabelOf возвращает метку файла: имя каталога, в котором он лежит.
func LabelOf(path string) string {
	return filepath.Base(filepath.Dir(path))
}
