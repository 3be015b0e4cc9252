package redaction

import (
	"github.com/go-audio/audio"
	"go.uber.org/zap"

	"audio-redact/internal/app/model"
)

// Engine runs the full align-and-redact pass for one job: timeline
// construction, phrase matching, range merging and the sample rewrite.
// Every function below is pure over its inputs; the engine keeps no state
// across jobs, so concurrent jobs need no coordination and a cancelled job
// can simply be dropped.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Result carries the rewritten audio and the audit report for one job.
type Result struct {
	Audio      *audio.IntBuffer
	SampleRate int
	Report     Report
}

// Redact aligns the detector phrases against the word timeline and rewrites
// the matched ranges of buf with the masking tone.
//
// Fatal errors (InvalidTimelineError, AudioReadError) abort the job with no
// partial output: redaction fails closed. Matching anomalies — unmatched
// phrases, fuzzy matches, degenerate phrases — are not errors; they are
// surfaced in the report.
func (e *Engine) Redact(words []model.Word, phrases []string, buf *audio.IntBuffer) (*Result, error) {
	timeline, err := NewTimeline(words)
	if err != nil {
		return nil, err
	}

	matcher := NewMatcher(timeline, e.cfg)
	candidates, phraseReports := matcher.Match(phrases)

	// Clamp against the declared duration: the larger of the timeline end
	// and the buffer itself. If the timeline claims more audio than the
	// buffer holds, the redactor rejects the job below.
	duration := timeline.Duration()
	if buf != nil && buf.Format != nil && buf.Format.SampleRate > 0 {
		channels := buf.Format.NumChannels
		if channels <= 0 {
			channels = 1
		}
		if d := float64(len(buf.Data)/channels) / float64(buf.Format.SampleRate); d > duration {
			duration = d
		}
	}

	ranges := Merge(candidates, duration, e.cfg)

	out, err := Redact(buf, ranges, e.cfg.Tone)
	if err != nil {
		return nil, err
	}

	report := Report{Phrases: phraseReports, Applied: ranges}
	e.logger.Info("redaction pass complete",
		zap.Int("words", timeline.Len()),
		zap.Int("phrases", len(phrases)),
		zap.Int("matched", report.MatchedCount()),
		zap.Int("ranges", len(ranges)),
		zap.Float64("redacted_seconds", report.RedactedSeconds()),
	)

	return &Result{
		Audio:      out,
		SampleRate: out.Format.SampleRate,
		Report:     report,
	}, nil
}
