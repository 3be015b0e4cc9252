package api

import (
	"context"

	"audio-redact/internal/app/model"
)

// Transcriber converts an audio file into per-word timestamps. The speech
// model behind it is a black box; the engine only ever sees the word list.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) ([]model.Word, error)
}

// Detector flags sensitive free-text phrases in a transcript. It returns
// phrase strings only, with no positions; aligning them back to time is the
// redaction engine's job.
type Detector interface {
	Detect(ctx context.Context, transcript string) ([]string, error)
}
