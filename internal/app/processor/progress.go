package processor

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"audio-redact/internal/app/util/files"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
			decor.OnComplete(
				decor.EwmaSpeed(0, "%.1f files/s", 30, decor.WCSyncSpace), "",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *ProgressBar) SetTotal(total int64) {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(total, false)
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

type ProgressAwareProcessor struct {
	*Processor
	progressManager *ProgressManager
}

func NewProgressAwareProcessor(processor *Processor, config ProgressConfig) *ProgressAwareProcessor {
	return &ProgressAwareProcessor{
		Processor:       processor,
		progressManager: NewProgressManager(config),
	}
}

func (pap *ProgressAwareProcessor) Close() error {
	if pap.progressManager != nil {
		pap.progressManager.Shutdown()
	}
	return pap.Processor.Close()
}

func (pap *ProgressAwareProcessor) createProgressBar(total int, description string) *ProgressBar {
	if pap.progressManager == nil {
		return &ProgressBar{enabled: false}
	}
	return pap.progressManager.CreateBar(total, description)
}

func (pap *ProgressAwareProcessor) waitForProgress() {
	if pap.progressManager != nil {
		pap.progressManager.Wait()
	}
}

// RedactFilesWithProgress redacts the given files with a shared progress bar,
// at most parallel files in flight at once.
func (pap *ProgressAwareProcessor) RedactFilesWithProgress(ctx context.Context, fileFullpaths []string, outputDir string, parallel int) error {
	if len(fileFullpaths) == 0 {
		return nil
	}
	if parallel < 1 {
		parallel = 1
	}

	progressBar := pap.createProgressBar(len(fileFullpaths), "Redacting audios")
	defer pap.waitForProgress()

	var wg sync.WaitGroup
	sem := make(chan bool, parallel)

	for _, fileAbsPath := range fileFullpaths {
		wg.Add(1)
		go func(fileAbsPath string) {
			defer wg.Done()
			defer progressBar.Increment()

			sem <- true
			err := pap.RedactFile(ctx, fileAbsPath, outputDir)
			<-sem

			if err != nil {
				log.Printf("Error redacting file %s: %v\n", fileAbsPath, err)
			} else {
				log.Printf("Successfully redacted file %s\n", fileAbsPath)
			}
		}(fileAbsPath)
	}
	wg.Wait()
	return nil
}

// RedactDirWithProgress scans a directory, skips already-processed files and
// redacts the remainder with a progress bar.
func (pap *ProgressAwareProcessor) RedactDirWithProgress(ctx context.Context, inputDir string, processCount int, parallel int) error {
	fileInfos := files.GetAllAudioFiles(inputDir)

	filesToProcess := pap.filterUnProcessedFiles(fileInfos, processCount)
	if len(filesToProcess) == 0 {
		fmt.Println("No unprocessed audio files found")
		return nil
	}

	fileFullpaths := make([]string, len(filesToProcess))
	for i, f := range filesToProcess {
		fileFullpaths[i] = f.FullPath
	}

	return pap.RedactFilesWithProgress(ctx, fileFullpaths, files.GetOutputDir(), parallel)
}
