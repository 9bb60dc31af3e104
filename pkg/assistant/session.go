package assistant

import (
	"context"
	"sync"
)

// Voice speaks responses aloud without blocking the turn.
type Voice interface {
	Say(text string)
}

// Session runs turns through one dispatcher until a termination rule fires.
//
// Submit is the process boundary: callers own input acquisition, display,
// and stopping their loop once a result carries Terminate.
type Session struct {
	dispatcher *Dispatcher
	transcript *Transcript
	voice      Voice
	mode       Mode

	mu         sync.Mutex
	terminated bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMode sets the normalization mode. Default is ModeText.
func WithMode(mode Mode) SessionOption {
	return func(s *Session) { s.mode = mode }
}

// WithVoice enables spoken responses.
func WithVoice(v Voice) SessionOption {
	return func(s *Session) { s.voice = v }
}

// NewSession creates a session with an empty transcript.
func NewSession(d *Dispatcher, opts ...SessionOption) *Session {
	s := &Session{
		dispatcher: d,
		transcript: NewTranscript(),
		mode:       ModeText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one turn. The second return value reports whether the turn was
// accepted: it is false when the session has terminated or when voice-mode
// normalization discards the utterance for a missing wake word. Accepted
// turns always yield a usable Result and are appended to the transcript.
func (s *Session) Submit(ctx context.Context, raw string) (Result, bool) {
	s.mu.Lock()
	if s.terminated {
		s.mu.Unlock()
		return Result{}, false
	}
	s.mu.Unlock()

	cmd, ok := Normalize(raw, s.mode)
	if !ok {
		return Result{}, false
	}

	result := s.dispatcher.Dispatch(ctx, cmd)

	s.transcript.Append(RoleUser, raw)
	s.transcript.Append(RoleAssistant, result.Text)

	if s.voice != nil {
		s.voice.Say(result.Text)
	}

	if result.Terminate {
		s.mu.Lock()
		s.terminated = true
		s.mu.Unlock()
	}
	return result, true
}

// Terminated reports whether a termination rule has fired.
func (s *Session) Terminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminated
}

// Transcript returns the session's conversation log.
func (s *Session) Transcript() *Transcript {
	return s.transcript
}

// LLMAvailable reports whether the chat completion collaborator is wired.
func (s *Session) LLMAvailable() bool {
	return s.dispatcher.LLMAvailable()
}

// Greeting returns the welcome line matching collaborator availability.
func (s *Session) Greeting() string {
	if s.dispatcher.LLMAvailable() {
		return GreetingFull
	}
	return GreetingBasic
}
