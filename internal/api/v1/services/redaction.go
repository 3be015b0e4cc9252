package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apierrors "audio-redact/internal/api/errors"
	"audio-redact/internal/api/middleware"
	"audio-redact/internal/api/v1/dto"
	"audio-redact/internal/app/api"
	"audio-redact/internal/app/audio"
	"audio-redact/internal/app/model"
	"audio-redact/internal/app/redaction"
	"audio-redact/internal/app/repository"
	"audio-redact/internal/app/util/files"
)

// redactionService runs the redaction pipeline for API requests and records
// every job in the audit store.
type redactionService struct {
	transcriber api.Transcriber
	detector    api.Detector
	engine      *redaction.Engine
	db          repository.RedactionDAO
	outputDir   string
}

// NewRedactionService creates a new redaction service
func NewRedactionService(transcriber api.Transcriber, detector api.Detector,
	engine *redaction.Engine, redactionDAO repository.RedactionDAO) RedactionService {
	return &redactionService{
		transcriber: transcriber,
		detector:    detector,
		engine:      engine,
		db:          redactionDAO,
		outputDir:   files.GetOutputDir(),
	}
}

func (s *redactionService) CreateRedaction(ctx context.Context, req *dto.CreateRedactionRequest) (*dto.RedactionResponse, error) {
	if _, err := os.Stat(req.FilePath); err != nil {
		return nil, apierrors.NewNotFoundError(fmt.Sprintf("audio file %s", req.FilePath))
	}
	fileName := filepath.Base(req.FilePath)

	wavPath, err := audio.ConvertToWav(req.FilePath)
	if err != nil {
		s.recordFailure(fileName, 0, fmt.Sprintf("FFmpeg error: %v", err))
		return nil, apierrors.NewInternalError("audio conversion failed")
	}

	buf, err := audio.DecodeWav(wavPath)
	if err != nil {
		s.recordFailure(fileName, 0, fmt.Sprintf("WAV decode error: %v", err))
		return nil, apierrors.NewBadRequestError("file is not decodable PCM audio")
	}
	duration := 0.0
	if buf.Format != nil && buf.Format.SampleRate > 0 {
		channels := buf.Format.NumChannels
		if channels <= 0 {
			channels = 1
		}
		duration = float64(len(buf.Data)/channels) / float64(buf.Format.SampleRate)
	}

	words := req.ToModelWords()
	if len(words) == 0 {
		words, err = s.transcriber.Transcript(ctx, wavPath)
		if err != nil {
			s.recordFailure(fileName, duration, fmt.Sprintf("Transcription error: %v", err))
			return nil, apierrors.NewServiceUnavailableError("transcription failed")
		}
	}

	phrases := req.Phrases
	if len(phrases) == 0 {
		phrases, err = s.detector.Detect(ctx, transcriptOf(words))
		if err != nil {
			s.recordFailure(fileName, duration, fmt.Sprintf("Detection error: %v", err))
			return nil, apierrors.NewServiceUnavailableError("phrase detection failed")
		}
	}

	result, err := s.engine.Redact(words, phrases, buf)
	if err != nil {
		s.recordFailure(fileName, duration, fmt.Sprintf("Redaction error: %v", err))
		middleware.ObserveRedactionJob("failed", 0)
		return nil, apierrors.FromRedactionError(err)
	}

	outputFileName := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + "_redacted.wav"
	if err := audio.EncodeWav(filepath.Join(s.outputDir, outputFileName), result.Audio); err != nil {
		s.recordFailure(fileName, duration, fmt.Sprintf("WAV encode error: %v", err))
		return nil, apierrors.NewInternalError("failed to write redacted audio")
	}

	rangesJSON, err := json.Marshal(result.Report.Applied)
	if err != nil {
		rangesJSON = []byte("[]")
	}
	s.db.RecordToDB(fileName, outputFileName, duration, len(phrases), result.Report.MatchedCount(),
		result.Report.RedactedSeconds(), string(rangesJSON), time.Now(), 0, "")
	middleware.ObserveRedactionJob("completed", result.Report.RedactedSeconds())

	phraseResults, applied := dto.FromReport(result.Report)
	resp := &dto.RedactionResponse{
		FileName:        fileName,
		OutputFileName:  outputFileName,
		Status:          "completed",
		AudioDuration:   duration,
		PhraseCount:     len(phrases),
		MatchedCount:    result.Report.MatchedCount(),
		RedactedSeconds: result.Report.RedactedSeconds(),
		Applied:         applied,
		Phrases:         phraseResults,
		CreatedAt:       time.Now(),
	}
	if id, err := s.db.CheckIfFileProcessed(fileName); err == nil {
		resp.ID = id
	}
	return resp, nil
}

func (s *redactionService) GetRedaction(ctx context.Context, id int) (*dto.RedactionResponse, error) {
	job, err := s.db.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierrors.NewNotFoundError("redaction")
		}
		return nil, apierrors.NewInternalError("failed to load redaction")
	}
	resp := dto.ToRedactionResponse(job)
	return &resp, nil
}

func (s *redactionService) GetReport(ctx context.Context, id int) (*dto.ReportResponse, error) {
	job, err := s.db.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierrors.NewNotFoundError("redaction")
		}
		return nil, apierrors.NewInternalError("failed to load redaction")
	}
	resp := dto.ToReportResponse(job)
	return &resp, nil
}

func (s *redactionService) ResolveOutputFile(ctx context.Context, id int) (string, error) {
	job, err := s.db.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apierrors.NewNotFoundError("redaction")
		}
		return "", apierrors.NewInternalError("failed to load redaction")
	}
	if job.HasError == 1 || job.OutputFileName == "" {
		return "", apierrors.NewNotFoundError("redacted audio")
	}

	outputPath := job.OutputFileName
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(s.outputDir, outputPath)
	}
	if _, err := os.Stat(outputPath); err != nil {
		return "", apierrors.NewNotFoundError("redacted audio")
	}
	return outputPath, nil
}

func (s *redactionService) DeleteRedaction(ctx context.Context, id int) error {
	job, err := s.db.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return apierrors.NewNotFoundError("redaction")
		}
		return apierrors.NewInternalError("failed to load redaction")
	}

	if job.OutputFileName != "" {
		outputPath := job.OutputFileName
		if !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(s.outputDir, outputPath)
		}
		// Best effort: the record is authoritative, a missing file is fine
		os.Remove(outputPath)
	}

	if err := s.db.DeleteByID(id); err != nil {
		if err == sql.ErrNoRows {
			return apierrors.NewNotFoundError("redaction")
		}
		return apierrors.NewInternalError("failed to delete redaction")
	}
	return nil
}

func (s *redactionService) ListRedactions(ctx context.Context, query dto.ListRedactionsQuery) ([]dto.RedactionResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	jobs, err := s.db.GetRecent(limit)
	if err != nil {
		return nil, apierrors.NewInternalError("failed to list redactions")
	}

	responses := make([]dto.RedactionResponse, len(jobs))
	for i := range jobs {
		responses[i] = dto.ToRedactionResponse(&jobs[i])
	}
	return responses, nil
}

func (s *redactionService) recordFailure(fileName string, duration float64, message string) {
	s.db.RecordToDB(fileName, "", duration, 0, 0, 0, "[]", time.Now(), 1, message)
}

func transcriptOf(words []model.Word) string {
	texts := make([]string, 0, len(words))
	for _, w := range words {
		if w.Text != "" {
			texts = append(texts, w.Text)
		}
	}
	return strings.Join(texts, " ")
}
