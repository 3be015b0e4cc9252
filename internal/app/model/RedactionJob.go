package model

import "time"

// RedactionJob is the persisted record of one redaction run.
type RedactionJob struct {
	ID              int
	FileName        string
	OutputFileName  string
	AudioDuration   float64
	PhraseCount     int
	MatchedCount    int
	RedactedSeconds float64
	RangesJSON      string
	CreatedAt       time.Time
	HasError        int
	ErrorMessage    string
}
