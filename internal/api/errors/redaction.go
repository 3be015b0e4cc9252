package errors

import (
	"errors"
	"fmt"

	"audio-redact/internal/app/redaction"
)

// FromRedactionError maps engine errors onto the API taxonomy. Invalid word
// timestamps are a client problem; audio shorter than the timeline claims
// means the upload cannot be redacted safely.
func FromRedactionError(err error) *APIError {
	if err == nil {
		return nil
	}

	var timelineErr *redaction.InvalidTimelineError
	if errors.As(err, &timelineErr) {
		return &APIError{
			Kind:    KindValidation,
			Message: "Invalid word timeline",
			Details: map[string]string{
				fmt.Sprintf("word[%d]", timelineErr.Index): timelineErr.Reason,
			},
			Code: "invalid_timeline",
		}
	}

	var audioErr *redaction.AudioReadError
	if errors.As(err, &audioErr) {
		return &APIError{
			Kind:    KindConflict,
			Message: "Audio is shorter than the word timeline; refusing to write partial redaction",
			Details: map[string]string{
				"audio_seconds":  fmt.Sprintf("%.3f", audioErr.AudioSeconds),
				"needed_seconds": fmt.Sprintf("%.3f", audioErr.NeedSeconds),
			},
			Code: "audio_too_short",
		}
	}

	return NewInternalError(err.Error())
}
