package worker

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	"audio-redact/internal/app"
	"audio-redact/internal/app/temporal/activities"
	"audio-redact/internal/app/temporal/pkg/common"
	"audio-redact/internal/app/temporal/workflows"
)

// Cmd represents the worker command
var Cmd = &cobra.Command{
	Use:   "worker",
	Short: "Start a Temporal worker for redaction workflows",
	Long: `Start a Temporal worker for redaction workflows

- Connects to the Temporal server and polls the redaction task queue
- Executes RedactFileWorkflow, heartbeating during long transcriptions`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := common.MustNewLogger(common.GetEnv("ENV", "production") == "development")
		defer logger.Sync()

		config := common.DefaultTemporalConfig()
		workerIdentity := common.GetEnv("WORKER_IDENTITY", fmt.Sprintf("a2r-worker-%s", getHostname()))

		logger.Info("Starting a2r Temporal worker",
			zap.String("temporalHost", config.HostPort),
			zap.String("taskQueue", config.TaskQueue),
			zap.String("namespace", config.Namespace),
			zap.String("identity", workerIdentity),
		)

		temporalClient, err := common.NewTemporalClient(config)
		if err != nil {
			logger.Fatal("Failed to create Temporal client", zap.Error(err))
		}
		defer temporalClient.Close()

		redactActivities := activities.NewRedactActivities(app.InitializeProcessor())

		w := worker.New(temporalClient, config.TaskQueue, worker.Options{
			Identity:                           workerIdentity,
			MaxConcurrentActivityExecutionSize: 10,
		})

		w.RegisterWorkflow(workflows.RedactFileWorkflow)
		w.RegisterActivity(redactActivities.RedactFile)

		if err := w.Run(worker.InterruptCh()); err != nil {
			logger.Fatal("Worker stopped", zap.Error(err))
		}
	},
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
