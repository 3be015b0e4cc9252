package model

// Word is a single transcribed token with its utterance interval in seconds.
// Produced by a Transcriber, consumed by the redaction timeline.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
