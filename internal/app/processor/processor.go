package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"

	"audio-redact/internal/app/api"
	"audio-redact/internal/app/audio"
	"audio-redact/internal/app/model"
	"audio-redact/internal/app/redaction"
	"audio-redact/internal/app/repository"
	"audio-redact/internal/app/util/files"
)

type Processor struct {
	transcriber api.Transcriber
	detector    api.Detector
	engine      *redaction.Engine
	db          repository.RedactionDAO
}

func NewProcessor(transcriber api.Transcriber, detector api.Detector,
	engine *redaction.Engine, redactionDAO repository.RedactionDAO) *Processor {
	return &Processor{
		transcriber: transcriber,
		detector:    detector,
		engine:      engine,
		db:          redactionDAO,
	}
}

func (p *Processor) Close() error {
	return p.db.Close()
}

// Do Enter the directory and the number of files to redact as parameters
func (p *Processor) Do(ctx context.Context, inputDir string, processCount int) {
	outputDir := files.GetOutputDir()

	// Get all audio files in the input directory and sort them by old and new
	fileInfos := files.GetAllAudioFiles(inputDir)

	filesToProcess := p.filterUnProcessedFiles(fileInfos, processCount)
	for _, file := range filesToProcess {
		err := p.RedactFile(ctx, file.FullPath, outputDir)

		if err != nil {
			log.Fatalln(err)
		}
	}
}

func (p *Processor) filterUnProcessedFiles(fileInfos []model.FileInfo, processCount int) []model.FileInfo {
	filesToProcess := make([]model.FileInfo, 0, processCount)

	for _, fileInfo := range fileInfos {
		// Check if the file has been redacted already
		id, err := p.db.CheckIfFileProcessed(fileInfo.Name)
		if err == nil {
			fmt.Printf("File '%s' with '%d' has already been processed, skipping...\n", fileInfo.Name, id)
			continue
		}

		filesToProcess = append(filesToProcess, fileInfo)
		if len(filesToProcess) >= processCount {
			break
		}
	}
	return filesToProcess
}

// RedactFile runs the full pipeline for one file: convert to PCM WAV,
// transcribe with word timestamps, detect sensitive phrases, overwrite the
// matched ranges, write the redacted copy and record the outcome.
func (p *Processor) RedactFile(ctx context.Context, inputFilePath string, outputDir string) error {
	fileName := filepath.Base(inputFilePath)
	fmt.Printf("Processing file '%s'\n", fileName)

	wavPath, err := audio.ConvertToWav(inputFilePath)
	if err != nil {
		p.db.RecordToDB(fileName, "", 0, 0, 0, 0, "[]",
			time.Now(), 1, fmt.Sprintf("FFmpeg error: %v", err))
		return fmt.Errorf("FFmpeg error: %v", err)
	}

	buf, err := audio.DecodeWav(wavPath)
	if err != nil {
		p.db.RecordToDB(fileName, "", 0, 0, 0, 0, "[]",
			time.Now(), 1, fmt.Sprintf("WAV decode error: %v", err))
		return fmt.Errorf("WAV decode error: %v", err)
	}
	duration := bufferDuration(buf)

	// Call the speech model with the new WAV file path
	words, err := p.transcriber.Transcript(ctx, wavPath)
	if err != nil {
		p.db.RecordToDB(fileName, "", duration, 0, 0, 0, "[]",
			time.Now(), 1, fmt.Sprintf("Transcription error: %v", err))
		return fmt.Errorf("Transcription error: %v", err)
	}

	phrases, err := p.detector.Detect(ctx, transcriptOf(words))
	if err != nil {
		p.db.RecordToDB(fileName, "", duration, 0, 0, 0, "[]",
			time.Now(), 1, fmt.Sprintf("Detection error: %v", err))
		return fmt.Errorf("Detection error: %v", err)
	}

	result, err := p.engine.Redact(words, phrases, buf)
	if err != nil {
		p.db.RecordToDB(fileName, "", duration, len(phrases), 0, 0, "[]",
			time.Now(), 1, fmt.Sprintf("Redaction error: %v", err))
		return fmt.Errorf("Redaction error: %v", err)
	}

	outputFileName := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + "_redacted.wav"
	outputFilePath := filepath.Join(outputDir, outputFileName)
	if err := audio.EncodeWav(outputFilePath, result.Audio); err != nil {
		p.db.RecordToDB(fileName, "", duration, len(phrases), result.Report.MatchedCount(),
			0, "[]", time.Now(), 1, fmt.Sprintf("WAV encode error: %v", err))
		return fmt.Errorf("WAV encode error: %v", err)
	}

	rangesJSON, err := json.Marshal(result.Report.Applied)
	if err != nil {
		rangesJSON = []byte("[]")
	}

	// Save the outcome to database
	p.db.RecordToDB(fileName, outputFileName, duration, len(phrases), result.Report.MatchedCount(),
		result.Report.RedactedSeconds(), string(rangesJSON), time.Now(), 0, "")

	fmt.Printf("Redaction completed for file '%s': %d/%d phrases matched, %.2fs masked\n",
		fileName, result.Report.MatchedCount(), len(phrases), result.Report.RedactedSeconds())
	for _, phrase := range result.Report.Unmatched() {
		fmt.Printf("  phrase not found in timeline: %q\n", phrase)
	}
	return nil
}

// transcriptOf flattens the word timeline back into plain text for the
// detector, which works on free text only.
func transcriptOf(words []model.Word) string {
	texts := make([]string, 0, len(words))
	for _, w := range words {
		if w.Text != "" {
			texts = append(texts, w.Text)
		}
	}
	return strings.Join(texts, " ")
}

func bufferDuration(buf *goaudio.IntBuffer) float64 {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return 0
	}
	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}
	return float64(len(buf.Data)/channels) / float64(buf.Format.SampleRate)
}
