//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio-redact/internal/api/v1/services"
	"audio-redact/internal/app/processor"
)

func InitializeProcessor() *processor.Processor {
	wire.Build(processor.NewProcessor, provideTranscriber, provideDetector, provideEngine, provideRedactionDAO)
	return &processor.Processor{}
}

func InitializeProgressAwareProcessor(config processor.ProgressConfig) *processor.ProgressAwareProcessor {
	wire.Build(processor.NewProcessor, processor.NewProgressAwareProcessor,
		provideTranscriber, provideDetector, provideEngine, provideRedactionDAO)
	return &processor.ProgressAwareProcessor{}
}

func InitializeRedactionService() services.RedactionService {
	wire.Build(services.NewRedactionService, provideTranscriber, provideDetector, provideEngine, provideRedactionDAO)
	return nil
}
