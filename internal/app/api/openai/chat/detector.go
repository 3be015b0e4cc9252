package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const detectionPrompt = `You are a sensitive-content detector for spoken transcripts.
Find every span of the transcript that contains sensitive content: personal names,
phone numbers, addresses, account or card numbers, passwords, and explicit secrets.
Respond with ONLY a JSON array of the offending phrases, quoted verbatim from the
transcript. Respond with [] if nothing is sensitive.

Transcript:
`

// SensitiveDetector flags sensitive phrases in a transcript via the OpenAI
// Chat Completions API.
type SensitiveDetector struct {
	client *openai.Client
	model  string
}

func NewSensitiveDetector(client *openai.Client, model string) *SensitiveDetector {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &SensitiveDetector{client: client, model: model}
}

// Detect returns the phrases the model flagged. The result carries no
// positions; the redaction engine aligns the phrases against the word
// timeline itself.
func (d *SensitiveDetector) Detect(ctx context.Context, transcript string) ([]string, error) {
	request := openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: detectionPrompt + transcript,
			},
		},
	}
	resp, err := d.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return ParsePhrases(resp.Choices[0].Message.Content)
}

// ParsePhrases extracts the JSON phrase array from a model reply, stripping
// code fences some models insist on adding.
func ParsePhrases(reply string) ([]string, error) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var phrases []string
	if err := json.Unmarshal([]byte(cleaned), &phrases); err != nil {
		return nil, fmt.Errorf("detector reply is not a JSON string array: %w", err)
	}

	out := phrases[:0]
	for _, p := range phrases {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
