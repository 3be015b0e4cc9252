package redaction

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"audio-redact/internal/app/model"
)

// startTolerance forgives sub-millisecond jitter in upstream word ordering
// before two starts are considered out of order.
const startTolerance = 1e-3

// Timeline is the immutable, start-ordered word sequence of one
// transcription job. Words may touch or overlap slightly (some engines emit
// shared boundaries); start is the authoritative ordering key.
type Timeline struct {
	words      []model.Word
	normalized []string
}

// NewTimeline validates and orders the transcriber output. A word with
// start > end, or a non-finite timestamp, fails with InvalidTimelineError.
// Out-of-order input within tolerance keeps its original relative order.
func NewTimeline(words []model.Word) (*Timeline, error) {
	for i, w := range words {
		if math.IsNaN(w.Start) || math.IsNaN(w.End) || math.IsInf(w.Start, 0) || math.IsInf(w.End, 0) {
			return nil, &InvalidTimelineError{Index: i, Reason: "non-finite timestamp"}
		}
		if w.Start < 0 {
			return nil, &InvalidTimelineError{Index: i, Reason: fmt.Sprintf("negative start %.3f", w.Start)}
		}
		if w.Start > w.End {
			return nil, &InvalidTimelineError{Index: i, Reason: fmt.Sprintf("start %.3f after end %.3f", w.Start, w.End)}
		}
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start-startTolerance
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].Start-startTolerance {
			return nil, &InvalidTimelineError{Index: i, Reason: "words are not sorted by start"}
		}
	}

	normalized := make([]string, len(sorted))
	for i, w := range sorted {
		normalized[i] = Normalize(w.Text)
	}

	return &Timeline{words: sorted, normalized: normalized}, nil
}

func (t *Timeline) Len() int {
	return len(t.words)
}

func (t *Timeline) Word(i int) model.Word {
	return t.words[i]
}

// Words returns the ordered word sequence. Callers must not mutate it.
func (t *Timeline) Words() []model.Word {
	return t.words
}

// Duration is the end timestamp of the last word, 0 for an empty timeline.
func (t *Timeline) Duration() float64 {
	var max float64
	for _, w := range t.words {
		if w.End > max {
			max = w.End
		}
	}
	return max
}

// Text is the raw transcript text, fed to the detector.
func (t *Timeline) Text() string {
	parts := make([]string, len(t.words))
	for i, w := range t.words {
		parts[i] = strings.TrimSpace(w.Text)
	}
	return strings.Join(parts, " ")
}

// Overlapping returns every word whose interval intersects [start, end].
func (t *Timeline) Overlapping(start, end float64) []model.Word {
	var out []model.Word
	for _, w := range t.words {
		if w.End >= start && w.Start <= end {
			out = append(out, w)
		}
	}
	return out
}

// Run returns the normalized concatenation of n consecutive words starting
// at index i. Words that normalize to nothing are dropped from the join.
func (t *Timeline) Run(i, n int) string {
	parts := make([]string, 0, n)
	for _, tok := range t.normalized[i : i+n] {
		if tok != "" {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}

// Normalize lowercases, strips punctuation and collapses whitespace, so a
// detector phrase and a transcript run can be compared textually.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
