package container

import (
	app "sketch-loader/internal/application"
	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

type Container struct {
	IngestService    *app.IngestService
	NormalizeService *app.NormalizeService
	PipelineService  *app.PipelineService
}

func New(acquirer port.DatasetAcquirer, decoder port.ImageDecoder, notifier port.SummaryNotifier, policy entity.DecodePolicy) *Container {
	ingestService := app.NewIngestService(decoder, policy)
	normalizeService := app.NewNormalizeService()
	pipelineService := app.NewPipelineService(acquirer, ingestService, normalizeService, notifier)

	return &Container{
		IngestService:    ingestService,
		NormalizeService: normalizeService,
		PipelineService:  pipelineService,
	}
}
