package redaction

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// Redact returns a copy of buf with every range overwritten by the masking
// tone and every other sample copied verbatim. The output buffer has the
// same length and sample rate as the input: redaction never trims or shifts
// timing, which keeps separately-stored video in sync.
//
// Range bounds snap to sample indices with floor for start and ceil for
// end, so the matched phrase is always fully covered. The duration check
// runs before any sample is written: on AudioReadError the input is
// untouched and no half-redacted buffer exists.
func Redact(buf *audio.IntBuffer, ranges []Range, tone ToneConfig) (*audio.IntBuffer, error) {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("redact: sample buffer has no format")
	}

	rate := buf.Format.SampleRate
	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}
	frames := len(buf.Data) / channels
	duration := float64(frames) / float64(rate)

	// Half a sample of tolerance pardons float rounding at the tail.
	epsilon := 0.5 / float64(rate)
	for _, r := range ranges {
		if r.End > duration+epsilon {
			return nil, &AudioReadError{AudioSeconds: duration, NeedSeconds: r.End}
		}
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	fullScale := float64(int(1)<<(bitDepth-1)) - 1

	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: buf.SourceBitDepth,
		Data:           make([]int, len(buf.Data)),
	}
	copy(out.Data, buf.Data)

	for _, r := range ranges {
		startFrame := int(math.Floor(r.Start * float64(rate)))
		endFrame := int(math.Ceil(r.End * float64(rate)))
		if startFrame < 0 {
			startFrame = 0
		}
		if endFrame > frames {
			endFrame = frames
		}
		writeTone(out.Data, startFrame, endFrame, channels, rate, fullScale, tone)
	}

	return out, nil
}

// writeTone synthesizes the sine tone over frames [start, end), with linear
// fade in/out at the edges to avoid clicks. Fades are skipped for segments
// too short to hold them.
func writeTone(data []int, start, end, channels, rate int, fullScale float64, tone ToneConfig) {
	n := end - start
	if n <= 0 {
		return
	}
	fade := int(tone.FadeSeconds * float64(rate))
	if n <= fade*2 {
		fade = 0
	}
	for f := 0; f < n; f++ {
		t := float64(f) / float64(rate)
		v := tone.Amplitude * math.Sin(2*math.Pi*tone.Frequency*t)
		if fade > 0 {
			if f < fade {
				v *= float64(f) / float64(fade)
			}
			if n-1-f < fade {
				v *= float64(n-1-f) / float64(fade)
			}
		}
		s := int(v * fullScale)
		base := (start + f) * channels
		for c := 0; c < channels; c++ {
			data[base+c] = s
		}
	}
}
