package repository

import (
	"time"

	"audio-redact/internal/app/model"
)

// RedactionDAO persists the audit trail of redaction jobs. The engine
// itself never touches storage; the processor and the API record results
// through this interface.
type RedactionDAO interface {
	Close() error

	GetRecent(limit int) ([]model.RedactionJob, error)

	GetByID(id int) (*model.RedactionJob, error)

	// DeleteByID removes a job record. Returns sql.ErrNoRows when the id
	// does not exist.
	DeleteByID(id int) error

	// CheckIfFileProcessed returns the id of a previous successful job for
	// the file, or an error when none exists.
	CheckIfFileProcessed(fileName string) (int, error)

	RecordToDB(fileName, outputFileName string, audioDuration float64, phraseCount, matchedCount int,
		redactedSeconds float64, rangesJSON string, createdAt time.Time, hasError int, errorMessage string)
}
