package redact

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"audio-redact/internal/app"
	"audio-redact/internal/app/processor"
)

var audioDir string
var processCount int
var parallel int
var showProgress bool

func init() {
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "a", "",
		"audioDir specifies the audio file directory, example: ./test/data/calls")
	Cmd.Flags().IntVarP(&processCount, "count", "c", 500,
		"maximum number of unprocessed files to redact in this run")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 1,
		"number of files to redact concurrently")
	Cmd.Flags().BoolVar(&showProgress, "progress", false,
		"force progress bars even when stderr is not a terminal")

	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the redact command
var Cmd = &cobra.Command{
	Use:   "redact",
	Short: "Start redacting the audio files in the specified directory",
	Long: `Start redacting the audio files in the specified directory

- Iterate through the audio files in the specified directory
- Convert to wav, transcribe with word timestamps and detect sensitive phrases
- Overwrite the matched ranges and write '<name>_redacted.wav' next to the originals`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if parallel > 1 || processor.ShouldShowProgress(showProgress) {
			pap := app.InitializeProgressAwareProcessor(processor.ProgressConfig{
				Enabled: processor.ShouldShowProgress(showProgress),
				Writer:  os.Stderr,
			})
			defer pap.Close()

			if err := pap.RedactDirWithProgress(ctx, audioDir, processCount, parallel); err != nil {
				log.Fatal(err)
			}
			return
		}

		p := app.InitializeProcessor()
		defer p.Close()

		p.Do(ctx, audioDir, processCount)
	},
}
