package redaction

// Config carries the tunables of the alignment and rewrite steps.
type Config struct {
	// FuzzyThreshold is the minimum edit-distance similarity ratio for a
	// window to count as a FUZZY match.
	FuzzyThreshold float64

	// WindowSlack is how many words beyond the phrase's own token count a
	// match window may grow.
	WindowSlack int

	// PadSeconds widens every matched range on both sides before merging.
	PadSeconds float64

	// MinGapSeconds folds ranges separated by less than this gap into one,
	// so back-to-back beeps do not chatter.
	MinGapSeconds float64

	Tone ToneConfig
}

// ToneConfig describes the masking tone written over redacted ranges.
type ToneConfig struct {
	// Frequency in Hz.
	Frequency float64

	// Amplitude as a fraction of full scale, 0..1.
	Amplitude float64

	// FadeSeconds of linear fade in/out to avoid clicks.
	FadeSeconds float64
}

func DefaultConfig() Config {
	return Config{
		FuzzyThreshold: 0.8,
		WindowSlack:    2,
		PadSeconds:     0.15,
		MinGapSeconds:  0.05,
		Tone: ToneConfig{
			Frequency:   1000,
			Amplitude:   0.6,
			FadeSeconds: 0.01,
		},
	}
}
