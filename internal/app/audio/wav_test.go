package audio

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeWavRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	in := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 16,
		Data:           make([]int, 8000),
	}
	for i := range in.Data {
		in.Data[i] = (i % 200) - 100
	}

	require.NoError(t, EncodeWav(path, in))

	out, err := DecodeWav(path)
	require.NoError(t, err)
	assert.Equal(t, in.Format.SampleRate, out.Format.SampleRate)
	assert.Equal(t, in.Format.NumChannels, out.Format.NumChannels)
	assert.Equal(t, in.Data, out.Data)
}

func TestDecodeWav_MissingFile(t *testing.T) {
	_, err := DecodeWav(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestDecodeWav_NotAWavFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not riff data"), 0o644))
	_, err := DecodeWav(path)
	assert.Error(t, err)
}

func TestEncodeWav_NilBuffer(t *testing.T) {
	assert.Error(t, EncodeWav(filepath.Join(t.TempDir(), "nil.wav"), nil))
}
