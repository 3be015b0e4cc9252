package redaction

import (
	"math"
	"sort"
)

// Range is a finalized redaction interval in seconds. The merger output is
// sorted and pairwise disjoint.
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Merge pads every candidate by cfg.PadSeconds, clamps to [0, duration]
// (duration <= 0 means unknown, no upper clamp), then folds overlapping or
// near-adjacent intervals into a minimal disjoint set. The fold is
// match-type agnostic: overlapping EXACT and FUZZY candidates end up in one
// range.
func Merge(candidates []CandidateRange, duration float64, cfg Config) []Range {
	padded := make([]Range, 0, len(candidates))
	for _, c := range candidates {
		start := math.Max(0, c.Start-cfg.PadSeconds)
		end := c.End + cfg.PadSeconds
		if duration > 0 {
			start = math.Min(start, duration)
			end = math.Min(end, duration)
		}
		if end <= start {
			continue
		}
		padded = append(padded, Range{Start: start, End: end})
	}
	if len(padded) == 0 {
		return nil
	}

	sort.Slice(padded, func(i, j int) bool { return padded[i].Start < padded[j].Start })

	merged := make([]Range, 0, len(padded))
	current := padded[0]
	for _, r := range padded[1:] {
		if r.Start <= current.End+cfg.MinGapSeconds {
			if r.End > current.End {
				current.End = r.End
			}
			continue
		}
		merged = append(merged, current)
		current = r
	}
	merged = append(merged, current)
	return merged
}
