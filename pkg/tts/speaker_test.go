package tts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSpeakerSaysQueuedText(t *testing.T) {
	mock := NewMock()

	var mu sync.Mutex
	var played [][]byte
	speaker := NewSpeaker(mock, WithPlayFunc(func(result *AudioResult) error {
		mu.Lock()
		defer mu.Unlock()
		played = append(played, result.Audio)
		return nil
	}))

	speaker.Say("hello")
	speaker.Say("world")

	if err := speaker.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(played) != 2 {
		t.Fatalf("expected 2 playbacks, got %d", len(played))
	}
	if mock.CallCount("Synthesize") != 2 {
		t.Errorf("expected 2 Synthesize calls, got %d", mock.CallCount("Synthesize"))
	}
	if last := mock.LastCall(); last == nil || last.Text != "world" {
		t.Errorf("expected last synthesized text 'world', got %+v", last)
	}
}

func TestSpeakerNeverSurfacesFailures(t *testing.T) {
	mock := WithError(errors.New("api down"))
	speaker := NewSpeaker(mock, WithPlayFunc(func(*AudioResult) error {
		t.Error("play should not be reached when synthesis fails")
		return nil
	}))

	// Must not panic or block the caller
	speaker.Say("this will fail quietly")

	if err := speaker.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if mock.CallCount("Synthesize") != 1 {
		t.Errorf("expected 1 Synthesize attempt, got %d", mock.CallCount("Synthesize"))
	}
}

func TestSpeakerIgnoresEmptyText(t *testing.T) {
	mock := NewMock()
	speaker := NewSpeaker(mock, WithPlayFunc(func(*AudioResult) error { return nil }))

	speaker.Say("")
	speaker.Close()

	if mock.CallCount("Synthesize") != 0 {
		t.Errorf("expected no synthesis for empty text, got %d", mock.CallCount("Synthesize"))
	}
}

func TestSpeakerSayAfterClose(t *testing.T) {
	mock := NewMock()
	speaker := NewSpeaker(mock, WithPlayFunc(func(*AudioResult) error { return nil }))

	if err := speaker.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := speaker.Close(); !errors.Is(err, ErrSpeakerClosed) {
		t.Errorf("expected ErrSpeakerClosed on double close, got %v", err)
	}

	// Must be a no-op, not a panic on the closed queue
	speaker.Say("too late")
}

func TestSpeakerDoesNotBlockCaller(t *testing.T) {
	block := make(chan struct{})
	mock := &Mock{
		SynthesizeFunc: func(ctx context.Context, text string) (*AudioResult, error) {
			<-block
			return &AudioResult{Audio: []byte{1}}, nil
		},
	}
	speaker := NewSpeaker(mock, WithPlayFunc(func(*AudioResult) error { return nil }))

	done := make(chan struct{})
	go func() {
		// Worker is stuck on the first item; these must still return fast.
		for i := 0; i < 30; i++ {
			speaker.Say("queued or dropped")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Say blocked the caller")
	}

	close(block)
	speaker.Close()
}
