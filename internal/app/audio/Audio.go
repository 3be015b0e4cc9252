package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"audio-redact/internal/app/model"
)

// GetAudioDuration returns the duration of an audio file in seconds.
func GetAudioDuration(filePath string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(duration) || duration < 0 {
		return 0, fmt.Errorf("ffprobe returned invalid duration for %s", filePath)
	}
	return duration, nil
}

// ProbeStreams returns ffprobe's stream description for a media file.
func ProbeStreams(filePath string) (*model.FFProbeOutput, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return nil, err
	}
	return &probeOutput, nil
}

// IsPCMWavFile reports whether the file is already PCM WAV and thus
// decodable without conversion.
func IsPCMWavFile(filePath string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(filePath), ".wav") {
		return false, nil
	}
	probeOutput, err := ProbeStreams(filePath)
	if err != nil {
		return false, err
	}
	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && strings.HasPrefix(stream.CodecName, "pcm_") {
			return true, nil
		}
	}
	return false, nil
}

// Is16kHzWavFile reports whether the file is 16kHz PCM WAV, the only input
// whisper.cpp accepts.
func Is16kHzWavFile(filePath string) (bool, error) {
	probeOutput, err := ProbeStreams(filePath)
	if err != nil {
		return false, err
	}
	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}
	return false, nil
}

// ConvertToWav converts any ffmpeg-supported input to PCM WAV, preserving
// the source sample rate and channel layout. Returns the output path.
func ConvertToWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_pcm.wav"
	if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
		log.Printf("PCM WAV file already exists for '%s', skipping conversion.\n", inputFilePath)
		return outputFilePath, nil
	}

	log.Printf("convert to PCM wav: %s\n", inputFilePath)

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}

// ConvertTo16kHzWav converts audio to the 16kHz WAV format whisper.cpp
// requires. Returns the output path.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
	if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
		log.Printf("16kHz WAV file already exists for '%s', skipping conversion.\n", inputFilePath)
		return outputFilePath, nil
	}

	ext := strings.ToLower(filepath.Ext(inputFilePath))
	if ext != ".mp3" && ext != ".m4a" && ext != ".wav" && ext != ".mp4" {
		return "", fmt.Errorf("unsupported audio format not in [mp3,m4a,wav,mp4]: %s", ext)
	}

	log.Printf("convert to 16kHz wav: %s\n", inputFilePath)

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}
