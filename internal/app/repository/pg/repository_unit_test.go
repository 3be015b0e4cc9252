package pg

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-redact/internal/app/repository"
)

// TestPostgresDAO_Interface verifies PostgresDB implements RedactionDAO.
func TestPostgresDAO_Interface(t *testing.T) {
	var _ repository.RedactionDAO = (*PostgresDB)(nil)
}

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresDB{db: db}, mock
}

func TestPostgresDB_CheckIfFileProcessed(t *testing.T) {
	tests := []struct {
		name      string
		fileName  string
		setupMock func(sqlmock.Sqlmock)
		wantID    int
		wantErr   bool
	}{
		{
			name:     "processed_file",
			fileName: "call.wav",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(123)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM redactions WHERE file_name = $1 AND has_error = 0`)).
					WithArgs("call.wav").
					WillReturnRows(rows)
			},
			wantID: 123,
		},
		{
			name:     "unprocessed_file",
			fileName: "new.wav",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM redactions WHERE file_name = $1 AND has_error = 0`)).
					WithArgs("new.wav").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdb, mock := newMockDB(t)
			tt.setupMock(mock)

			id, err := pdb.CheckIfFileProcessed(tt.fileName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresDB_RecordToDB(t *testing.T) {
	pdb, mock := newMockDB(t)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO redactions`)).
		WithArgs("call.wav", "call_redacted.wav", 12.5, 3, 2, 1.6, `[{"start":1,"end":2}]`,
			createdAt, 0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	pdb.RecordToDB("call.wav", "call_redacted.wav", 12.5, 3, 2, 1.6, `[{"start":1,"end":2}]`,
		createdAt, 0, "")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_GetRecent(t *testing.T) {
	pdb, mock := newMockDB(t)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "file_name", "output_file_name", "audio_duration", "phrase_count",
		"matched_count", "redacted_seconds", "ranges_json", "created_at", "has_error", "error_message",
	}).AddRow(2, "b.wav", "b_redacted.wav", 20.0, 2, 2, 1.0, "[]", createdAt, 0, "").
		AddRow(1, "a.wav", "a_redacted.wav", 10.0, 1, 0, 0.0, "[]", createdAt.Add(-time.Hour), 0, "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, file_name, output_file_name`)).
		WithArgs(10).
		WillReturnRows(rows)

	jobs, err := pdb.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "b.wav", jobs[0].FileName)
	assert.Equal(t, 2, jobs[0].MatchedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_GetByID(t *testing.T) {
	pdb, mock := newMockDB(t)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "file_name", "output_file_name", "audio_duration", "phrase_count",
		"matched_count", "redacted_seconds", "ranges_json", "created_at", "has_error", "error_message",
	}).AddRow(7, "call.wav", "call_redacted.wav", 12.5, 3, 2, 1.6, "[]", createdAt, 0, "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, file_name, output_file_name`)).
		WithArgs(7).
		WillReturnRows(rows)

	job, err := pdb.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, "call.wav", job.FileName)
	assert.Equal(t, 2, job.MatchedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_DeleteByID(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM redactions WHERE id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, pdb.DeleteByID(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_DeleteByID_NotFound(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM redactions WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := pdb.DeleteByID(99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresDB_GetRecent_QueryError(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, file_name, output_file_name`)).
		WithArgs(5).
		WillReturnError(assert.AnError)

	_, err := pdb.GetRecent(5)
	assert.Error(t, err)
}
