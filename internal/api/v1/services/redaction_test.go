package services

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "audio-redact/internal/api/errors"
	"audio-redact/internal/app/model"
	"audio-redact/internal/app/repository"
)

type stubDAO struct {
	jobs map[int]*model.RedactionJob
}

var _ repository.RedactionDAO = (*stubDAO)(nil)

func newStubDAO(jobs ...*model.RedactionJob) *stubDAO {
	dao := &stubDAO{jobs: make(map[int]*model.RedactionJob)}
	for _, j := range jobs {
		dao.jobs[j.ID] = j
	}
	return dao
}

func (s *stubDAO) Close() error { return nil }

func (s *stubDAO) GetRecent(limit int) ([]model.RedactionJob, error) {
	out := make([]model.RedactionJob, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubDAO) GetByID(id int) (*model.RedactionJob, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return j, nil
}

func (s *stubDAO) DeleteByID(id int) error {
	if _, ok := s.jobs[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.jobs, id)
	return nil
}

func (s *stubDAO) CheckIfFileProcessed(fileName string) (int, error) {
	for id, j := range s.jobs {
		if j.FileName == fileName && j.HasError == 0 {
			return id, nil
		}
	}
	return 0, sql.ErrNoRows
}

func (s *stubDAO) RecordToDB(fileName, outputFileName string, audioDuration float64, phraseCount, matchedCount int,
	redactedSeconds float64, rangesJSON string, createdAt time.Time, hasError int, errorMessage string) {
	id := len(s.jobs) + 1
	s.jobs[id] = &model.RedactionJob{
		ID: id, FileName: fileName, OutputFileName: outputFileName, AudioDuration: audioDuration,
		PhraseCount: phraseCount, MatchedCount: matchedCount, RedactedSeconds: redactedSeconds,
		RangesJSON: rangesJSON, CreatedAt: createdAt, HasError: hasError, ErrorMessage: errorMessage,
	}
}

func newTestService(dao repository.RedactionDAO, outputDir string) *redactionService {
	return &redactionService{db: dao, outputDir: outputDir}
}

func TestGetReport(t *testing.T) {
	dao := newStubDAO(&model.RedactionJob{
		ID: 7, FileName: "call.wav", OutputFileName: "call_redacted.wav",
		PhraseCount: 2, MatchedCount: 1, RedactedSeconds: 1.3,
		RangesJSON: `[{"start":0.85,"end":2.15}]`, CreatedAt: time.Now(),
	})
	svc := newTestService(dao, t.TempDir())

	report, err := svc.GetReport(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "completed", report.Status)
	assert.Equal(t, 1, report.MatchedCount)
	require.Len(t, report.Applied, 1)
	assert.InDelta(t, 0.85, report.Applied[0].Start, 1e-9)
}

func TestGetReport_NotFound(t *testing.T) {
	svc := newTestService(newStubDAO(), t.TempDir())

	_, err := svc.GetReport(context.Background(), 99)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}

func TestResolveOutputFile(t *testing.T) {
	outputDir := t.TempDir()
	outputPath := filepath.Join(outputDir, "call_redacted.wav")
	require.NoError(t, os.WriteFile(outputPath, []byte("RIFF"), 0644))

	dao := newStubDAO(&model.RedactionJob{
		ID: 1, FileName: "call.wav", OutputFileName: "call_redacted.wav", CreatedAt: time.Now(),
	})
	svc := newTestService(dao, outputDir)

	resolved, err := svc.ResolveOutputFile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, outputPath, resolved)
}

func TestResolveOutputFile_FailedJob(t *testing.T) {
	dao := newStubDAO(&model.RedactionJob{
		ID: 1, FileName: "call.wav", HasError: 1, ErrorMessage: "transcription error", CreatedAt: time.Now(),
	})
	svc := newTestService(dao, t.TempDir())

	_, err := svc.ResolveOutputFile(context.Background(), 1)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}

func TestResolveOutputFile_MissingFile(t *testing.T) {
	dao := newStubDAO(&model.RedactionJob{
		ID: 1, FileName: "call.wav", OutputFileName: "gone_redacted.wav", CreatedAt: time.Now(),
	})
	svc := newTestService(dao, t.TempDir())

	_, err := svc.ResolveOutputFile(context.Background(), 1)
	assert.Error(t, err)
}

func TestDeleteRedaction(t *testing.T) {
	outputDir := t.TempDir()
	outputPath := filepath.Join(outputDir, "call_redacted.wav")
	require.NoError(t, os.WriteFile(outputPath, []byte("RIFF"), 0644))

	dao := newStubDAO(&model.RedactionJob{
		ID: 1, FileName: "call.wav", OutputFileName: "call_redacted.wav", CreatedAt: time.Now(),
	})
	svc := newTestService(dao, outputDir)

	require.NoError(t, svc.DeleteRedaction(context.Background(), 1))

	_, err := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err), "output file must be removed with the record")

	_, err = dao.GetByID(1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteRedaction_NotFound(t *testing.T) {
	svc := newTestService(newStubDAO(), t.TempDir())

	err := svc.DeleteRedaction(context.Background(), 99)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}
