package activities

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"

	"audio-redact/internal/app/processor"
)

// RedactActivities wraps the redaction pipeline as Temporal activities
type RedactActivities struct {
	processor *processor.Processor
}

// NewRedactActivities creates a new instance of redaction activities
func NewRedactActivities(p *processor.Processor) *RedactActivities {
	return &RedactActivities{processor: p}
}

// RedactionJobRequest represents a request to redact one file
type RedactionJobRequest struct {
	FileID    string `json:"file_id"`
	FilePath  string `json:"file_path"`
	OutputDir string `json:"output_dir"`
}

// RedactionJobResult represents the result of a redaction activity
type RedactionJobResult struct {
	FileID         string        `json:"file_id"`
	OutputPath     string        `json:"output_path"`
	ProcessingTime time.Duration `json:"processing_time"`
	Error          string        `json:"error,omitempty"`
}

// RedactFile runs the full redaction pipeline for one file, heartbeating
// while the speech model and detector calls are in flight.
func (a *RedactActivities) RedactFile(ctx context.Context, req RedactionJobRequest) (RedactionJobResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Starting redaction", "fileId", req.FileID, "file", req.FilePath)

	activity.RecordHeartbeat(ctx, fmt.Sprintf("Processing file: %s", req.FileID))

	startTime := time.Now()

	heartbeatTicker := time.NewTicker(10 * time.Second)
	defer heartbeatTicker.Stop()

	done := make(chan struct{})
	var redactErr error

	go func() {
		redactErr = a.processor.RedactFile(ctx, req.FilePath, req.OutputDir)
		close(done)
	}()

	for {
		select {
		case <-done:
			if redactErr != nil {
				logger.Error("Redaction failed", "error", redactErr)
				return RedactionJobResult{
					FileID: req.FileID,
					Error:  redactErr.Error(),
				}, redactErr
			}

			fileName := filepath.Base(req.FilePath)
			outputPath := filepath.Join(req.OutputDir,
				strings.TrimSuffix(fileName, filepath.Ext(fileName))+"_redacted.wav")

			result := RedactionJobResult{
				FileID:         req.FileID,
				OutputPath:     outputPath,
				ProcessingTime: time.Since(startTime),
			}

			logger.Info("Redaction completed",
				"fileId", req.FileID,
				"output", result.OutputPath,
				"duration", result.ProcessingTime)

			return result, nil

		case <-heartbeatTicker.C:
			activity.RecordHeartbeat(ctx, fmt.Sprintf("Still processing file: %s", req.FileID))

		case <-ctx.Done():
			return RedactionJobResult{
				FileID: req.FileID,
				Error:  "Activity cancelled",
			}, ctx.Err()
		}
	}
}
