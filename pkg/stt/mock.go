package stt

import (
	"context"
	"sync"
)

// Mock implements Recognizer for testing.
// All methods can be customized via function fields.
type Mock struct {
	// CaptureFunc is called when Capture is invoked.
	// If nil, returns ErrNoSpeech.
	CaptureFunc func(ctx context.Context) (string, error)

	// CloseFunc is called when Close is invoked.
	// If nil, returns nil.
	CloseFunc func() error

	// Tracking
	mu       sync.Mutex
	captures int
}

// NewMock creates a mock that returns the given transcripts in order,
// then ErrNoSpeech once they are exhausted.
func NewMock(transcripts ...string) *Mock {
	var mu sync.Mutex
	i := 0
	return &Mock{
		CaptureFunc: func(ctx context.Context) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if i >= len(transcripts) {
				return "", ErrNoSpeech
			}
			t := transcripts[i]
			i++
			return t, nil
		},
	}
}

// WithError returns a mock whose Capture always fails with err.
func WithError(err error) *Mock {
	return &Mock{
		CaptureFunc: func(ctx context.Context) (string, error) {
			return "", err
		},
	}
}

// Capture calls CaptureFunc and records the call.
func (m *Mock) Capture(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.captures++
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	return "", ErrNoSpeech
}

// Close calls CloseFunc.
func (m *Mock) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// CaptureCount returns the number of Capture calls.
func (m *Mock) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captures
}

// Verify Mock implements Recognizer at compile time.
var _ Recognizer = (*Mock)(nil)
