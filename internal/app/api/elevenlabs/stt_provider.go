package elevenlabs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"audio-redact/internal/app/model"
)

// STTProvider implements word-level transcription against the ElevenLabs
// speech-to-text API, which returns per-word alignment natively.
type STTProvider struct {
	config Config
	client *http.Client
}

// Config represents configuration for the ElevenLabs STT provider.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout int    `yaml:"timeout_sec"`
}

// sttResponse is the relevant subset of the ElevenLabs response. Entries of
// type "spacing" carry no spoken content and are skipped.
type sttResponse struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
	Words        []struct {
		Text  string  `json:"text"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Type  string  `json:"type"`
	} `json:"words"`
}

// NewSTTProvider creates a new ElevenLabs STT provider.
func NewSTTProvider(config Config) *STTProvider {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if config.Model == "" {
		config.Model = "scribe_v1"
	}
	if config.Timeout == 0 {
		config.Timeout = 120
	}

	return &STTProvider{
		config: config,
		client: &http.Client{Timeout: time.Duration(config.Timeout) * time.Second},
	}
}

func (p *STTProvider) Transcript(ctx context.Context, inputFilePath string) ([]model.Word, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("model_id", p.config.Model); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/speech-to-text", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("xi-api-key", p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech-to-text request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("speech-to-text returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed sttResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	words := make([]model.Word, 0, len(parsed.Words))
	for _, w := range parsed.Words {
		if w.Type == "spacing" {
			continue
		}
		words = append(words, model.Word{Text: w.Text, Start: w.Start, End: w.End})
	}
	return words, nil
}
