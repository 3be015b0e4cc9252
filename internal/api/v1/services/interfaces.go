package services

import (
	"context"

	"audio-redact/internal/api/v1/dto"
)

// RedactionService defines the interface for redaction operations
type RedactionService interface {
	CreateRedaction(ctx context.Context, req *dto.CreateRedactionRequest) (*dto.RedactionResponse, error)
	GetRedaction(ctx context.Context, id int) (*dto.RedactionResponse, error)
	GetReport(ctx context.Context, id int) (*dto.ReportResponse, error)
	// ResolveOutputFile returns the path of the redacted audio for download.
	ResolveOutputFile(ctx context.Context, id int) (string, error)
	DeleteRedaction(ctx context.Context, id int) error
	ListRedactions(ctx context.Context, query dto.ListRedactionsQuery) ([]dto.RedactionResponse, error)
}
