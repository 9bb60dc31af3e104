package stt

import (
	"log/slog"
	"time"
)

// CaptureConfig controls one listening window.
type CaptureConfig struct {
	// AmbientDuration is how long to sample background noise before
	// listening, so the recognizer can calibrate its energy threshold.
	AmbientDuration time.Duration

	// ListenTimeout is the maximum wait for speech to start.
	ListenTimeout time.Duration

	// PhraseLimit caps the length of a single captured utterance.
	PhraseLimit time.Duration

	// SampleRate is the capture sample rate in Hz.
	SampleRate int

	// LanguageCode is the BCP-47 language tag for recognition.
	LanguageCode string

	// Logger is the structured logger for capture events.
	Logger *slog.Logger
}

// CaptureOption configures a CaptureConfig.
type CaptureOption func(*CaptureConfig)

// WithAmbientDuration sets the noise calibration window.
func WithAmbientDuration(d time.Duration) CaptureOption {
	return func(c *CaptureConfig) { c.AmbientDuration = d }
}

// WithListenTimeout sets the maximum wait for speech to start.
func WithListenTimeout(d time.Duration) CaptureOption {
	return func(c *CaptureConfig) { c.ListenTimeout = d }
}

// WithPhraseLimit caps the length of a captured utterance.
func WithPhraseLimit(d time.Duration) CaptureOption {
	return func(c *CaptureConfig) { c.PhraseLimit = d }
}

// WithLanguage sets the recognition language.
func WithLanguage(code string) CaptureOption {
	return func(c *CaptureConfig) { c.LanguageCode = code }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) CaptureOption {
	return func(c *CaptureConfig) { c.Logger = logger }
}

// DefaultCaptureConfig returns sensible defaults for conversational turns.
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		AmbientDuration: 1500 * time.Millisecond,
		ListenTimeout:   6 * time.Second,
		PhraseLimit:     8 * time.Second,
		SampleRate:      16000,
		LanguageCode:    "en-US",
		Logger:          slog.Default(),
	}
}

// Apply applies functional options to the config.
func (c *CaptureConfig) Apply(opts ...CaptureOption) {
	for _, opt := range opts {
		opt(c)
	}
}
