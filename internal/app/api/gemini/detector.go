package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"audio-redact/internal/app/api/openai/chat"
)

const detectionPrompt = `You are a sensitive-content detector for spoken transcripts.
Find every span of the transcript that contains sensitive content: personal names,
phone numbers, addresses, account or card numbers, passwords, and explicit secrets.
Respond with ONLY a JSON array of the offending phrases, quoted verbatim from the
transcript. Respond with [] if nothing is sensitive.

Transcript:
`

// Detector flags sensitive phrases via the Gemini API. Drop-in alternative
// to the OpenAI chat detector.
type Detector struct {
	client *genai.Client
	model  string
}

func NewDetector(ctx context.Context, model string) (*Detector, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Detector{client: client, model: model}, nil
}

func (d *Detector) Detect(ctx context.Context, transcript string) ([]string, error) {
	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(detectionPrompt+transcript), nil)
	if err != nil {
		return nil, fmt.Errorf("generateContent failed: %w", err)
	}

	// Same reply contract as the chat detector: a JSON array of phrases.
	return chat.ParsePhrases(resp.Text())
}
