package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"audio-redact/internal/app/model"
)

// RemoteTranscriber implements word-level transcription using the OpenAI
// Whisper API.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcript requests a verbose transcription with word timestamp
// granularity and maps the response into the engine's word model.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) ([]model.Word, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
		},
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	words := make([]model.Word, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, model.Word{Text: w.Word, Start: w.Start, End: w.End})
	}
	if len(words) == 0 && resp.Text != "" {
		return nil, fmt.Errorf("transcription returned no word timestamps for %s", inputFilePath)
	}
	return words, nil
}
