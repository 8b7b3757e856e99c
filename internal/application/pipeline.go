package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// PipelineService последовательно получает, загружает и нормализует датасет.
type PipelineService struct {
	acquirer   port.DatasetAcquirer
	ingest     *IngestService
	normalizer *NormalizeService
	notifier   port.SummaryNotifier
}

// NewPipelineService создаёт конвейер; notifier может быть nil.
func NewPipelineService(acquirer port.DatasetAcquirer, ingest *IngestService, normalizer *NormalizeService, notifier port.SummaryNotifier) *PipelineService {
	return &PipelineService{
		acquirer:   acquirer,
		ingest:     ingest,
		normalizer: normalizer,
		notifier:   notifier,
	}
}

// Run выполняет конвейер и печатает ход работы в w.
func (s *PipelineService) Run(ctx context.Context, datasetID string, w io.Writer) (*entity.NormalizedDataset, error) {
	path, err := s.acquirer.Acquire(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	fmt.Fprintf(w, "Path to dataset files: %s\n", path)

	ds, err := s.ingest.Ingest(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	summary := Summarize(ds)
	WriteSummary(w, summary)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, summary); err != nil {
			log.Printf("Error sending summary: %v", err)
		}
	}

	nds, err := s.normalizer.Normalize(ds)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	st := Stats(nds)
	fmt.Fprintf(w, "Number of images normalized: %d\n", nds.Len())
	if len(nds.Skipped) > 0 {
		fmt.Fprintf(w, "Number of images not normalized: %d\n", len(nds.Skipped))
	}
	fmt.Fprintf(w, "Mean intensity: %.4f (min %.4f, max %.4f)\n", st.Mean, st.Min, st.Max)

	return nds, nil
}
