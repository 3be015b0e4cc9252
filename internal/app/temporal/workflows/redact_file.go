package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"audio-redact/internal/app/temporal/activities"
)

// RedactFileWorkflowRequest represents a request to redact a single file
type RedactFileWorkflowRequest struct {
	FileID    string `json:"file_id"`
	FilePath  string `json:"file_path"`
	OutputDir string `json:"output_dir"`
}

// RedactFileWorkflowResult represents the workflow outcome
type RedactFileWorkflowResult struct {
	FileID         string        `json:"file_id"`
	OutputPath     string        `json:"output_path"`
	ProcessingTime time.Duration `json:"processing_time"`
	Error          string        `json:"error,omitempty"`
}

// RedactFileWorkflow redacts one audio file through the activity pipeline.
// Transcription can run for a long time on large files, hence the generous
// start-to-close timeout and heartbeat window.
func RedactFileWorkflow(ctx workflow.Context, req RedactFileWorkflowRequest) (RedactFileWorkflowResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting redaction workflow", "fileId", req.FileID)

	startTime := workflow.Now(ctx)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    100 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var activityResult activities.RedactionJobResult
	err := workflow.ExecuteActivity(ctx, "RedactFile", activities.RedactionJobRequest{
		FileID:    req.FileID,
		FilePath:  req.FilePath,
		OutputDir: req.OutputDir,
	}).Get(ctx, &activityResult)

	if err != nil {
		logger.Error("Failed to redact file", "error", err)
		return RedactFileWorkflowResult{
			FileID: req.FileID,
			Error:  fmt.Sprintf("Failed to redact: %v", err),
		}, err
	}

	processingTime := workflow.Now(ctx).Sub(startTime)

	result := RedactFileWorkflowResult{
		FileID:         req.FileID,
		OutputPath:     activityResult.OutputPath,
		ProcessingTime: processingTime,
	}

	logger.Info("Redaction workflow completed",
		"fileId", req.FileID,
		"output", result.OutputPath,
		"duration", result.ProcessingTime)

	return result, nil
}
