package whisper_cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalTranscriber_Defaults(t *testing.T) {
	lt := NewLocalTranscriber("/usr/local/bin/whisper", "/models/ggml-base.bin", "")
	assert.Equal(t, "auto", lt.language)
}

func TestParseWords(t *testing.T) {
	data := []byte(`{
		"result": {"language": "en"},
		"transcription": [
			{"timestamps": {"from": "00:00:00,000", "to": "00:00:00,380"},
			 "offsets": {"from": 0, "to": 380}, "text": " my"},
			{"timestamps": {"from": "00:00:00,380", "to": "00:00:00,940"},
			 "offsets": {"from": 380, "to": 940}, "text": " secret"},
			{"offsets": {"from": 940, "to": 1000}, "text": "   "}
		]
	}`)

	words, err := ParseWords(data)
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "my", words[0].Text)
	assert.Equal(t, 0.0, words[0].Start)
	assert.Equal(t, 0.38, words[0].End)

	assert.Equal(t, "secret", words[1].Text)
	assert.Equal(t, 0.38, words[1].Start)
	assert.Equal(t, 0.94, words[1].End)
}

func TestParseWords_InvalidJSON(t *testing.T) {
	_, err := ParseWords([]byte("not json"))
	assert.Error(t, err)
}
