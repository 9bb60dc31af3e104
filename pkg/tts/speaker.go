package tts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"
)

// PlayFunc plays a synthesized audio buffer to the user.
// Injectable for tests; the default shells out to a system audio player.
type PlayFunc func(result *AudioResult) error

// Speaker speaks responses aloud without blocking the caller.
//
// Say enqueues text for a dedicated worker goroutine that synthesizes and
// plays it. There is no result channel back: playback failures are logged and
// dropped, never surfaced to the turn that produced the text.
type Speaker struct {
	provider Provider
	play     PlayFunc
	logger   *slog.Logger
	timeout  time.Duration

	queue chan string

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// SpeakerOption configures a Speaker.
type SpeakerOption func(*Speaker)

// WithPlayFunc overrides the playback function.
func WithPlayFunc(play PlayFunc) SpeakerOption {
	return func(s *Speaker) { s.play = play }
}

// WithSpeakerLogger sets the structured logger.
func WithSpeakerLogger(logger *slog.Logger) SpeakerOption {
	return func(s *Speaker) { s.logger = logger.With("component", "tts.speaker") }
}

// WithSynthesisTimeout bounds each synthesize+play cycle.
func WithSynthesisTimeout(d time.Duration) SpeakerOption {
	return func(s *Speaker) { s.timeout = d }
}

// NewSpeaker creates a speaker backed by the given provider and starts its
// worker. Call Close to stop the worker.
func NewSpeaker(provider Provider, opts ...SpeakerOption) *Speaker {
	s := &Speaker{
		provider: provider,
		play:     playSystem,
		logger:   slog.Default().With("component", "tts.speaker"),
		timeout:  60 * time.Second,
		queue:    make(chan string, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.worker()
	return s
}

// Say enqueues text to be spoken. It never blocks: if the queue is full the
// text is dropped with a warning.
func (s *Speaker) Say(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.queue <- text:
	default:
		s.logger.Warn("speech queue full, dropping", "chars", len(text))
	}
}

// Close stops the worker after draining queued speech.
func (s *Speaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSpeakerClosed
	}
	s.closed = true
	s.mu.Unlock()

	close(s.queue)
	<-s.done
	return nil
}

// worker synthesizes and plays queued text one item at a time.
func (s *Speaker) worker() {
	defer close(s.done)

	for text := range s.queue {
		s.speak(text)
	}
}

// speak runs one synthesize+play cycle. Failures are logged, never returned.
func (s *Speaker) speak(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.provider.Synthesize(ctx, text)
	if err != nil {
		s.logger.Error("synthesis failed", "error", err, "chars", len(text))
		return
	}

	s.logger.Debug("speaking",
		"chars", result.CharCount,
		"bytes", len(result.Audio),
		"est_duration", estimateDuration(len(result.Audio)),
	)

	if err := s.play(result); err != nil {
		s.logger.Error("playback failed", "error", err, "bytes", len(result.Audio))
	}
}

// playSystem writes the audio to a temp file and plays it with whichever
// system player is installed.
func playSystem(result *AudioResult) error {
	f, err := os.CreateTemp("", "nova-speech-*.mp3")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(result.Audio); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	f.Close()

	cmd, err := playerCommand(f.Name())
	if err != nil {
		return err
	}
	return cmd.Run()
}

// playerCommand picks a playback command for the platform.
func playerCommand(path string) (*exec.Cmd, error) {
	if runtime.GOOS == "darwin" {
		return exec.Command("afplay", path), nil
	}
	for _, player := range []string{"mpg123", "ffplay", "mplayer"} {
		if _, err := exec.LookPath(player); err == nil {
			if player == "ffplay" {
				return exec.Command("ffplay", "-autoexit", "-nodisp", "-loglevel", "quiet", path), nil
			}
			return exec.Command(player, "-q", path), nil
		}
	}
	return nil, fmt.Errorf("tts: no audio player found (tried mpg123, ffplay, mplayer)")
}
