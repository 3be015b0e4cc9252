package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DecodeWav reads a PCM WAV file into the interleaved sample buffer the
// redaction engine operates on.
func DecodeWav(filePath string) (*goaudio.IntBuffer, error) {
	fh, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer fh.Close()

	decoder := wav.NewDecoder(fh)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid wav file", filePath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav samples: %w", err)
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(decoder.BitDepth)
	}
	return buf, nil
}

// EncodeWav writes a sample buffer back to disk as PCM WAV.
func EncodeWav(filePath string, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("cannot encode nil sample buffer")
	}

	fh, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}
	defer fh.Close()

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	encoder := wav.NewEncoder(fh, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write wav samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav file: %w", err)
	}
	return nil
}
