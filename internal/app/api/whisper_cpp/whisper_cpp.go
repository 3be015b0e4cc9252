package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"audio-redact/internal/app/audio"
	"audio-redact/internal/app/model"
)

// LocalTranscriber implements word-level transcription using a local
// whisper.cpp binary.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath, language string) *LocalTranscriber {
	if language == "" {
		language = "auto"
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
	}
}

// whisperCppOutput is the shape of the binary's full-JSON output file.
// With -ml 1 -sow every transcription segment is a single word and the
// offsets are in milliseconds.
type whisperCppOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcript runs the whisper.cpp binary with one-word segments enabled and
// parses the JSON output into the engine's word model.
func (lt *LocalTranscriber) Transcript(ctx context.Context, inputFilePath string) ([]model.Word, error) {
	log.Printf("Starting transcription of file %s\n", inputFilePath)

	// whisper.cpp only consumes 16kHz PCM WAV; convert when necessary.
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("error checking input file: %w", err)
	}
	if !is16kHzWav {
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return nil, fmt.Errorf("error converting input file: %w", err)
		}
	}

	outputDir, err := os.MkdirTemp("", "whisper_cpp")
	if err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	defer os.RemoveAll(outputDir)
	outputBase := filepath.Join(outputDir, "transcription")

	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-ml", "1",
		"-sow",
		"-ojf",
		"-f", inputFilePath,
		"-of", outputBase,
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	log.Printf("Running transcription command: %s %s\n", lt.binaryPath, strings.Join(args, " "))
	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("command execution error: %w, stderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outputBase + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}

	return ParseWords(data)
}

// ParseWords maps the whisper.cpp JSON output to word timestamps. Segments
// that hold no text after trimming (silence markers) are dropped.
func ParseWords(data []byte) ([]model.Word, error) {
	var output whisperCppOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp output: %w", err)
	}

	words := make([]model.Word, 0, len(output.Transcription))
	for _, seg := range output.Transcription {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		words = append(words, model.Word{
			Text:  text,
			Start: float64(seg.Offsets.From) / 1000.0,
			End:   float64(seg.Offsets.To) / 1000.0,
		})
	}
	return words, nil
}
