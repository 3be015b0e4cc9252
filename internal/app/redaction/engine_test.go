package redaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-redact/internal/app/model"
)

func TestEngine_EndToEnd(t *testing.T) {
	// 10 seconds of audio, one sensitive word at 2.0-2.5s.
	engine := NewEngine(DefaultConfig(), zap.NewNop())
	in := rampBuffer(10.0, 1)
	ws := []model.Word{{Text: "secret", Start: 2.0, End: 2.5}}

	result, err := engine.Redact(ws, []string{"secret"}, in)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Exactly one applied range: the word padded by 150ms on both sides.
	require.Len(t, result.Report.Applied, 1)
	applied := result.Report.Applied[0]
	assert.InDelta(t, 1.85, applied.Start, 1e-9)
	assert.InDelta(t, 2.65, applied.End, 1e-9)

	assert.Equal(t, len(in.Data), len(result.Audio.Data))
	assert.Equal(t, testRate, result.SampleRate)

	// Samples inside the window are the tone, everything else is untouched.
	startSample := int(math.Floor(applied.Start * testRate))
	endSample := int(math.Ceil(applied.End * testRate))
	for i := 0; i < startSample; i++ {
		require.Equal(t, in.Data[i], result.Audio.Data[i])
	}
	for i := endSample; i < len(in.Data); i++ {
		require.Equal(t, in.Data[i], result.Audio.Data[i])
	}
	mid := (startSample + endSample) / 2
	assert.NotEqual(t, in.Data[mid], result.Audio.Data[mid])

	require.Len(t, result.Report.Phrases, 1)
	assert.True(t, result.Report.Phrases[0].Matched)
	assert.Equal(t, MatchExact, result.Report.Phrases[0].MatchType)
	assert.InDelta(t, 0.8, result.Report.RedactedSeconds(), 1e-9)
}

func TestEngine_UnmatchedPhraseCompletesCleanly(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)
	in := rampBuffer(2.0, 1)
	ws := []model.Word{{Text: "hello", Start: 0.5, End: 1.0}}

	result, err := engine.Redact(ws, []string{"goodbye"}, in)
	require.NoError(t, err)

	assert.Empty(t, result.Report.Applied)
	assert.Equal(t, in.Data, result.Audio.Data)
	assert.Equal(t, []string{"goodbye"}, result.Report.Unmatched())
}

func TestEngine_InvalidTimelineAborts(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)
	ws := []model.Word{{Text: "bad", Start: 2.0, End: 1.0}}

	_, err := engine.Redact(ws, []string{"bad"}, rampBuffer(3.0, 1))
	var invalid *InvalidTimelineError
	require.ErrorAs(t, err, &invalid)
}

func TestEngine_TimestampsBeyondAudioFailClosed(t *testing.T) {
	// The transcript claims a word at 5s but the audio is only 2s long:
	// upstream mismatch, nothing may be released.
	engine := NewEngine(DefaultConfig(), nil)
	ws := []model.Word{{Text: "secret", Start: 5.0, End: 5.5}}

	result, err := engine.Redact(ws, []string{"secret"}, rampBuffer(2.0, 1))
	assert.Nil(t, result)
	var readErr *AudioReadError
	require.ErrorAs(t, err, &readErr)
}

func TestEngine_OverlappingPhrasesMergeIntoOneRange(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)
	in := rampBuffer(5.0, 1)
	ws := []model.Word{
		{Text: "john", Start: 1.0, End: 1.4},
		{Text: "smith", Start: 1.4, End: 1.9},
	}

	result, err := engine.Redact(ws, []string{"john smith", "smith"}, in)
	require.NoError(t, err)
	require.Len(t, result.Report.Applied, 1)
	assert.InDelta(t, 0.85, result.Report.Applied[0].Start, 1e-9)
	assert.InDelta(t, 2.05, result.Report.Applied[0].End, 1e-9)
}

func TestEngine_NoPhrases(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)
	in := rampBuffer(1.0, 1)

	result, err := engine.Redact(nil, nil, in)
	require.NoError(t, err)
	assert.Equal(t, in.Data, result.Audio.Data)
	assert.Empty(t, result.Report.Applied)
}
