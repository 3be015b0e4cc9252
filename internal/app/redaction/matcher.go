package redaction

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// MatchType classifies how a transcript window matched a phrase.
type MatchType string

const (
	MatchExact MatchType = "EXACT"
	MatchFuzzy MatchType = "FUZZY"
)

// CandidateRange is a tentative audio interval believed to contain one
// utterance of a sensitive phrase.
type CandidateRange struct {
	Start  float64
	End    float64
	Phrase string
	Type   MatchType
}

// Matcher aligns detector phrases against a word timeline. Detectors return
// free text with no positions, so every occurrence has to be found here.
type Matcher struct {
	timeline *Timeline
	cfg      Config
}

func NewMatcher(timeline *Timeline, cfg Config) *Matcher {
	return &Matcher{timeline: timeline, cfg: cfg}
}

// Match returns the accepted candidate ranges for every phrase together
// with the per-phrase report entries. Unmatched and degenerate phrases are
// report data, never errors: the detector may flag content with wording
// that does not appear verbatim in the transcript.
func (m *Matcher) Match(phrases []string) ([]CandidateRange, []PhraseReport) {
	var candidates []CandidateRange
	reports := make([]PhraseReport, 0, len(phrases))

	for _, phrase := range phrases {
		normalized := Normalize(phrase)
		if normalized == "" {
			reports = append(reports, PhraseReport{Phrase: phrase, Reason: ErrEmptyPhrase.Error()})
			continue
		}

		accepted := m.matchOne(phrase, normalized)
		entry := PhraseReport{Phrase: phrase, Matched: len(accepted) > 0}
		if len(accepted) > 0 {
			entry.MatchType = bestMatchType(accepted)
			entry.Ranges = lo.Map(accepted, func(c CandidateRange, _ int) Range {
				return Range{Start: c.Start, End: c.End}
			})
		}
		reports = append(reports, entry)
		candidates = append(candidates, accepted...)
	}

	return candidates, reports
}

type windowHit struct {
	index int
	width int
	typ   MatchType
}

// matchOne slides windows of 1..len(tokens)+slack words over the timeline
// and keeps, per occurrence, the best non-overlapping hits: EXACT beats
// FUZZY, then the tightest window wins to minimize over-redaction.
func (m *Matcher) matchOne(phrase, normalized string) []CandidateRange {
	tokens := strings.Fields(normalized)
	maxWidth := len(tokens) + m.cfg.WindowSlack
	canonical := canonicalize(normalized)

	var hits []windowHit
	for i := 0; i < m.timeline.Len(); i++ {
		for width := 1; width <= maxWidth && i+width <= m.timeline.Len(); width++ {
			window := m.timeline.Run(i, width)
			if window == "" {
				continue
			}
			if window == normalized {
				hits = append(hits, windowHit{index: i, width: width, typ: MatchExact})
				continue
			}
			if m.fuzzyMatches(window, normalized, canonical) {
				hits = append(hits, windowHit{index: i, width: width, typ: MatchFuzzy})
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if (a.typ == MatchExact) != (b.typ == MatchExact) {
			return a.typ == MatchExact
		}
		if a.width != b.width {
			return a.width < b.width
		}
		return a.index < b.index
	})

	var accepted []CandidateRange
	var taken []windowHit
	for _, h := range hits {
		if overlapsAny(h, taken) {
			continue
		}
		taken = append(taken, h)
		first := m.timeline.Word(h.index)
		last := m.timeline.Word(h.index + h.width - 1)
		accepted = append(accepted, CandidateRange{
			Start:  first.Start,
			End:    last.End,
			Phrase: phrase,
			Type:   h.typ,
		})
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })
	return accepted
}

// fuzzyMatches accepts transcription error variants: the phrase embedded in
// a slightly larger window, homophone spellings of numbers, or windows
// within the edit-distance similarity threshold.
func (m *Matcher) fuzzyMatches(window, normalized, canonical string) bool {
	if strings.Contains(window, normalized) {
		return true
	}
	windowCanonical := canonicalize(window)
	if windowCanonical == canonical || strings.Contains(windowCanonical, canonical) {
		return true
	}
	return similarity(windowCanonical, canonical) >= m.cfg.FuzzyThreshold
}

// similarity is 1 - dist/maxLen over already-normalized strings; a pure,
// deterministic function, as the outcome is a tagged match type rather than
// anything polymorphic.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(max)
}

// numberWords folds spelled digits so "five five five" can meet "5 5 5".
var numberWords = map[string]string{
	"zero": "0", "oh": "0",
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9",
}

func canonicalize(normalized string) string {
	fields := strings.Fields(normalized)
	for i, f := range fields {
		if d, ok := numberWords[f]; ok {
			fields[i] = d
		}
	}
	return strings.Join(fields, " ")
}

func overlapsAny(h windowHit, taken []windowHit) bool {
	for _, t := range taken {
		if h.index < t.index+t.width && t.index < h.index+h.width {
			return true
		}
	}
	return false
}

func bestMatchType(accepted []CandidateRange) MatchType {
	if lo.SomeBy(accepted, func(c CandidateRange) bool { return c.Type == MatchExact }) {
		return MatchExact
	}
	return MatchFuzzy
}
