package dto

import (
	"encoding/json"
	"time"

	"audio-redact/internal/api/errors"
	"audio-redact/internal/app/model"
	"audio-redact/internal/app/redaction"
)

// CreateRedactionRequest represents the request to redact one audio file.
// Words and phrases are both optional: without words the configured
// transcriber runs, without phrases the configured detector runs.
type CreateRedactionRequest struct {
	FilePath string        `json:"file_path" binding:"required"`
	Phrases  []string      `json:"phrases,omitempty"`
	Words    []WordRequest `json:"words,omitempty"`
}

// WordRequest is one entry of a caller-supplied word timeline
type WordRequest struct {
	Text  string  `json:"text" binding:"required"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Validate performs domain-specific validation
func (r *CreateRedactionRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.FilePath == "" {
		validationErrors["file_path"] = "file path is required"
	}

	for _, w := range r.Words {
		if w.End < w.Start {
			validationErrors["words"] = "word end must not precede its start"
			break
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid redaction request", validationErrors)
	}

	return nil
}

// ToModelWords converts the request timeline to the engine's word type
func (r *CreateRedactionRequest) ToModelWords() []model.Word {
	words := make([]model.Word, len(r.Words))
	for i, w := range r.Words {
		words[i] = model.Word{Text: w.Text, Start: w.Start, End: w.End}
	}
	return words
}

// RangeResponse is one applied redaction interval in seconds
type RangeResponse struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// PhraseResultResponse is the per-phrase audit entry
type PhraseResultResponse struct {
	Phrase    string          `json:"phrase"`
	Matched   bool            `json:"matched"`
	MatchType string          `json:"match_type,omitempty"`
	Ranges    []RangeResponse `json:"ranges,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

// RedactionResponse represents a redaction job in API responses
type RedactionResponse struct {
	ID              int                    `json:"id,omitempty"`
	FileName        string                 `json:"file_name"`
	OutputFileName  string                 `json:"output_file_name,omitempty"`
	Status          string                 `json:"status"`
	AudioDuration   float64                `json:"audio_duration,omitempty"`
	PhraseCount     int                    `json:"phrase_count"`
	MatchedCount    int                    `json:"matched_count"`
	RedactedSeconds float64                `json:"redacted_seconds"`
	Applied         []RangeResponse        `json:"applied,omitempty"`
	Phrases         []PhraseResultResponse `json:"phrases,omitempty"`
	Error           string                 `json:"error,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ReportResponse is the audit report of a persisted job. For stored jobs
// only the applied ranges survive; per-phrase details are available on the
// create response.
type ReportResponse struct {
	ID              int             `json:"id"`
	FileName        string          `json:"file_name"`
	Status          string          `json:"status"`
	PhraseCount     int             `json:"phrase_count"`
	MatchedCount    int             `json:"matched_count"`
	RedactedSeconds float64         `json:"redacted_seconds"`
	Applied         []RangeResponse `json:"applied"`
	Error           string          `json:"error,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToReportResponse converts a persisted job to its audit report
func ToReportResponse(j *model.RedactionJob) ReportResponse {
	resp := ReportResponse{
		ID:              j.ID,
		FileName:        j.FileName,
		Status:          DetermineStatus(j),
		PhraseCount:     j.PhraseCount,
		MatchedCount:    j.MatchedCount,
		RedactedSeconds: j.RedactedSeconds,
		Applied:         []RangeResponse{},
		Error:           j.ErrorMessage,
		CreatedAt:       j.CreatedAt,
	}

	var ranges []RangeResponse
	if json.Unmarshal([]byte(j.RangesJSON), &ranges) == nil && ranges != nil {
		resp.Applied = ranges
	}

	return resp
}

// ListRedactionsQuery represents query parameters for listing jobs
type ListRedactionsQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// ToRedactionResponse converts a persisted job to a response DTO
func ToRedactionResponse(j *model.RedactionJob) RedactionResponse {
	resp := RedactionResponse{
		ID:              j.ID,
		FileName:        j.FileName,
		OutputFileName:  j.OutputFileName,
		Status:          DetermineStatus(j),
		AudioDuration:   j.AudioDuration,
		PhraseCount:     j.PhraseCount,
		MatchedCount:    j.MatchedCount,
		RedactedSeconds: j.RedactedSeconds,
		Error:           j.ErrorMessage,
		CreatedAt:       j.CreatedAt,
	}

	var ranges []RangeResponse
	if json.Unmarshal([]byte(j.RangesJSON), &ranges) == nil {
		resp.Applied = ranges
	}

	return resp
}

// FromReport fills the per-phrase audit entries of a fresh job
func FromReport(report redaction.Report) ([]PhraseResultResponse, []RangeResponse) {
	phrases := make([]PhraseResultResponse, len(report.Phrases))
	for i, p := range report.Phrases {
		phrases[i] = PhraseResultResponse{
			Phrase:    p.Phrase,
			Matched:   p.Matched,
			MatchType: string(p.MatchType),
			Reason:    p.Reason,
			Ranges:    toRangeResponses(p.Ranges),
		}
	}
	return phrases, toRangeResponses(report.Applied)
}

func toRangeResponses(ranges []redaction.Range) []RangeResponse {
	out := make([]RangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = RangeResponse{Start: r.Start, End: r.End}
	}
	return out
}

// DetermineStatus determines the job status from the persisted record
func DetermineStatus(j *model.RedactionJob) string {
	if j.HasError == 1 {
		return "failed"
	}
	if j.OutputFileName != "" {
		return "completed"
	}
	return "pending"
}
