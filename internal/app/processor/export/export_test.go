package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"audio-redact/internal/app/model"
)

func TestToExcel(t *testing.T) {
	jobs := []model.RedactionJob{
		{
			ID:              1,
			FileName:        "call.wav",
			OutputFileName:  "call_redacted.wav",
			AudioDuration:   12.5,
			PhraseCount:     3,
			MatchedCount:    2,
			RedactedSeconds: 1.6,
			RangesJSON:      `[{"start":1,"end":2}]`,
			CreatedAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			FileName:     "broken.wav",
			HasError:     1,
			ErrorMessage: "transcription error",
			CreatedAt:    time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	outputPath := filepath.Join(t.TempDir(), "redactions.xlsx")
	ToExcel(jobs, outputPath)

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Redactions", sheet.Name)
	require.Len(t, sheet.Rows, 3, "header plus one row per job")

	assert.Equal(t, "File Name", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "call.wav", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "call_redacted.wav", sheet.Rows[1].Cells[2].String())
	assert.Equal(t, "1.60", sheet.Rows[1].Cells[6].String())
	assert.Equal(t, "transcription error", sheet.Rows[2].Cells[9].String())
}
