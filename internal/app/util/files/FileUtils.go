package files

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"audio-redact/internal/app/model"
)

// audioExtensions are the inputs the batch processor picks up. Anything
// ffmpeg can demux works once converted; these are the common uploads.
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
	".m4a": true,
	".mp4": true,
	".flac": true,
	".ogg": true,
}

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// GetOutputDir returns the directory redacted audio is written to,
// creating it if needed.
func GetOutputDir() string {
	root, err := GetProjectRoot()
	if err != nil {
		log.Fatalf("GetOutputDir failed: %v\n", err)
	}
	dir := filepath.Join(root, "data/redacted")
	CheckAndCreateDirectory(dir)
	return dir
}

func CheckAndCreateDirectory(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Printf("Creating directory: %s\n", dir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatalf("Failed to create directory: %v\n", err)
		}
	}
}

// GetAllAudioFiles lists the redactable files in a directory, oldest first.
func GetAllAudioFiles(inputDir string) []model.FileInfo {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatalf("Failed to read input directory: %v\n", err)
	}

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			ModTime:  info.ModTime(),
			Name:     entry.Name(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
