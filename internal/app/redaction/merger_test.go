package redaction

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(start, end float64) CandidateRange {
	return CandidateRange{Start: start, End: end, Phrase: "x", Type: MatchExact}
}

func assertSortedDisjoint(t *testing.T, ranges []Range) {
	t.Helper()
	for i := 1; i < len(ranges); i++ {
		assert.LessOrEqual(t, ranges[i-1].End, ranges[i].Start,
			"ranges %d and %d overlap", i-1, i)
	}
}

func TestMerge_PadsAndClamps(t *testing.T) {
	cfg := DefaultConfig()
	ranges := Merge([]CandidateRange{candidate(0.05, 9.95)}, 10.0, cfg)

	require.Len(t, ranges, 1)
	assert.Equal(t, 0.0, ranges[0].Start)
	assert.Equal(t, 10.0, ranges[0].End)
}

func TestMerge_FoldsNearAdjacentRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PadSeconds = 0

	// 40ms apart, under the 50ms minimum gap.
	ranges := Merge([]CandidateRange{
		candidate(1.0, 2.0),
		candidate(2.04, 3.0),
	}, 10.0, cfg)

	require.Len(t, ranges, 1)
	assert.Equal(t, 1.0, ranges[0].Start)
	assert.Equal(t, 3.0, ranges[0].End)
}

func TestMerge_KeepsDistantRangesApart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PadSeconds = 0

	ranges := Merge([]CandidateRange{
		candidate(1.0, 2.0),
		candidate(5.0, 6.0),
	}, 10.0, cfg)

	require.Len(t, ranges, 2)
	assertSortedDisjoint(t, ranges)
}

func TestMerge_ShuffledAndDuplicatedInput(t *testing.T) {
	cfg := DefaultConfig()
	base := []CandidateRange{
		candidate(0.5, 1.0),
		candidate(2.0, 2.5),
		candidate(4.0, 4.5),
		candidate(6.0, 6.5),
		candidate(8.0, 8.5),
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		input := append([]CandidateRange{}, base...)
		input = append(input, base[trial%len(base)]) // duplicate one
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		ranges := Merge(input, 10.0, cfg)
		require.NotEmpty(t, ranges)
		assertSortedDisjoint(t, ranges)
		for i := 1; i < len(ranges); i++ {
			assert.Less(t, ranges[i-1].Start, ranges[i].Start)
		}
	}
}

func TestMerge_EmptyInput(t *testing.T) {
	assert.Nil(t, Merge(nil, 10.0, DefaultConfig()))
}

func TestMerge_UnknownDurationSkipsUpperClamp(t *testing.T) {
	cfg := DefaultConfig()
	ranges := Merge([]CandidateRange{candidate(1.0, 2.0)}, 0, cfg)
	require.Len(t, ranges, 1)
	assert.InDelta(t, 2.15, ranges[0].End, 1e-9)
}

func TestMerge_MixedMatchTypesUnion(t *testing.T) {
	// Overlapping candidates from different phrases with conflicting match
	// types collapse into one range; the union ignores match type.
	cfg := DefaultConfig()
	cfg.PadSeconds = 0
	ranges := Merge([]CandidateRange{
		{Start: 1.0, End: 2.0, Phrase: "a", Type: MatchExact},
		{Start: 1.5, End: 2.5, Phrase: "b", Type: MatchFuzzy},
	}, 10.0, cfg)

	require.Len(t, ranges, 1)
	assert.Equal(t, 1.0, ranges[0].Start)
	assert.Equal(t, 2.5, ranges[0].End)
}
