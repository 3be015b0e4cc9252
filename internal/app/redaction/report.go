package redaction

import "github.com/samber/lo"

// PhraseReport is the audit entry for one detector phrase. Unmatched
// phrases stay in the report so a human reviewer can catch detector or
// matcher misses.
type PhraseReport struct {
	Phrase    string    `json:"phrase"`
	Matched   bool      `json:"matched"`
	MatchType MatchType `json:"match_type,omitempty"`
	Ranges    []Range   `json:"ranges,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// Report is returned alongside the redacted audio. The engine never
// persists it; storage is the caller's concern.
type Report struct {
	Phrases []PhraseReport `json:"phrases"`
	Applied []Range        `json:"applied"`
}

// MatchedCount is the number of phrases with at least one occurrence.
func (r Report) MatchedCount() int {
	return lo.CountBy(r.Phrases, func(p PhraseReport) bool { return p.Matched })
}

// RedactedSeconds is the total duration overwritten by the masking tone.
func (r Report) RedactedSeconds() float64 {
	return lo.SumBy(r.Applied, func(rg Range) float64 { return rg.End - rg.Start })
}

// Unmatched returns the phrases the matcher could not place.
func (r Report) Unmatched() []string {
	return lo.FilterMap(r.Phrases, func(p PhraseReport, _ int) (string, bool) {
		return p.Phrase, !p.Matched && p.Reason == ""
	})
}
