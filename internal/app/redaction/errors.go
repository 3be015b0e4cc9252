package redaction

import (
	"errors"
	"fmt"
)

// ErrEmptyPhrase marks a detector phrase that normalizes to nothing (for
// example pure punctuation). The phrase is skipped and noted in the report;
// the job keeps going.
var ErrEmptyPhrase = errors.New("phrase is empty after normalization")

// InvalidTimelineError reports a malformed word timeline from the
// transcriber. Fatal: the job aborts before any matching happens.
type InvalidTimelineError struct {
	Index  int
	Reason string
}

func (e *InvalidTimelineError) Error() string {
	return fmt.Sprintf("invalid timeline at word %d: %s", e.Index, e.Reason)
}

// AudioReadError reports audio shorter than the ranges that must be
// redacted, which means the word timestamps and the sample buffer disagree.
// Fatal, and raised before a single sample is rewritten: a partial rewrite
// could ship unredacted sensitive audio.
type AudioReadError struct {
	AudioSeconds float64
	NeedSeconds  float64
}

func (e *AudioReadError) Error() string {
	return fmt.Sprintf("audio is %.3fs but redaction ranges extend to %.3fs", e.AudioSeconds, e.NeedSeconds)
}
