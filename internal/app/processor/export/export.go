package export

import (
	"fmt"
	"log"
	"time"

	"github.com/tealeg/xlsx"

	"audio-redact/internal/app/model"
)

func ToExcel(jobs []model.RedactionJob, outputFilePath string) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Redactions")
	if err != nil {
		log.Fatal(err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Output File Name"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Phrases"
	headerRow.AddCell().Value = "Matched"
	headerRow.AddCell().Value = "Redacted Seconds"
	headerRow.AddCell().Value = "Ranges"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Error Message"

	for _, j := range jobs {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(j.ID)
		row.AddCell().Value = j.FileName
		row.AddCell().Value = j.OutputFileName
		row.AddCell().Value = fmt.Sprintf("%.2f", j.AudioDuration)
		row.AddCell().Value = fmt.Sprint(j.PhraseCount)
		row.AddCell().Value = fmt.Sprint(j.MatchedCount)
		row.AddCell().Value = fmt.Sprintf("%.2f", j.RedactedSeconds)
		row.AddCell().Value = j.RangesJSON
		row.AddCell().Value = j.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = j.ErrorMessage
	}

	err = file.Save(outputFilePath)
	if err != nil {
		log.Fatal(err)
	}
}
