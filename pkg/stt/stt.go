// Package stt provides the speech capture collaborator.
//
// A Recognizer turns one listening window on the microphone into a text
// utterance. Google Cloud Speech-to-Text is the bundled implementation;
// the Mock recognizer serves tests and text-only deployments.
package stt

import (
	"context"
	"errors"
)

// Sentinel errors for capture outcomes.
var (
	// ErrNoSpeech is returned when the listening window closes without audio.
	ErrNoSpeech = errors.New("stt: no speech detected")

	// ErrUnintelligible is returned when audio was captured but the
	// recognizer could not produce a transcript.
	ErrUnintelligible = errors.New("stt: could not understand audio")

	// ErrServiceUnavailable is returned when the recognition backend
	// cannot be reached.
	ErrServiceUnavailable = errors.New("stt: recognition service unavailable")
)

// Recognizer captures one utterance from the user and returns its transcript.
type Recognizer interface {
	// Capture listens for a single utterance and transcribes it.
	Capture(ctx context.Context) (string, error)

	// Close releases any resources held by the recognizer.
	Close() error
}

// Microphone records raw audio for one listening window.
// Implementations return PCM16 little-endian mono samples.
type Microphone interface {
	// Record captures audio until the phrase limit elapses or ctx is done.
	Record(ctx context.Context, cfg CaptureConfig) ([]byte, error)
}
