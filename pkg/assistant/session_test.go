package assistant

import (
	"context"
	"testing"
)

type fakeVoice struct {
	spoken []string
}

func (f *fakeVoice) Say(text string) { f.spoken = append(f.spoken, text) }

func TestSessionSubmitRecordsTurns(t *testing.T) {
	s := NewSession(NewDispatcher())

	res, ok := s.Submit(context.Background(), "help")
	if !ok {
		t.Fatal("expected the turn to be accepted")
	}
	if res.Text != ReplyHelp {
		t.Errorf("unexpected response %q", res.Text)
	}

	turns := s.Transcript().All()
	if len(turns) != 2 {
		t.Fatalf("expected user+assistant turns, got %d", len(turns))
	}
	if turns[0].Role != RoleUser || turns[0].Text != "help" {
		t.Errorf("unexpected user turn %+v", turns[0])
	}
	if turns[1].Role != RoleAssistant || turns[1].Text != ReplyHelp {
		t.Errorf("unexpected assistant turn %+v", turns[1])
	}
}

func TestSessionTermination(t *testing.T) {
	s := NewSession(NewDispatcher())

	res, ok := s.Submit(context.Background(), "goodbye")
	if !ok || !res.Terminate {
		t.Fatalf("expected accepted terminating turn, got ok=%v res=%+v", ok, res)
	}
	if !s.Terminated() {
		t.Error("session should report terminated")
	}

	// No further turns are processed after termination.
	if _, ok := s.Submit(context.Background(), "help"); ok {
		t.Error("expected submits after termination to be rejected")
	}
	if s.Transcript().Len() != 2 {
		t.Errorf("rejected turns must not touch the transcript, got %d", s.Transcript().Len())
	}
}

func TestSessionVoiceModeWakeWord(t *testing.T) {
	s := NewSession(NewDispatcher(), WithMode(ModeVoice))

	if _, ok := s.Submit(context.Background(), "what time is it"); ok {
		t.Error("voice mode must discard turns without the wake word")
	}
	if s.Transcript().Len() != 0 {
		t.Error("discarded turns must not touch the transcript")
	}

	res, ok := s.Submit(context.Background(), "nova help")
	if !ok {
		t.Fatal("expected wake-word turn to be accepted")
	}
	if res.Text != ReplyHelp {
		t.Errorf("unexpected response %q", res.Text)
	}
}

func TestSessionSpeaksResponses(t *testing.T) {
	voice := &fakeVoice{}
	s := NewSession(NewDispatcher(), WithVoice(voice))

	s.Submit(context.Background(), "help")
	if len(voice.spoken) != 1 || voice.spoken[0] != ReplyHelp {
		t.Errorf("expected response to be spoken, got %v", voice.spoken)
	}
}

func TestSessionGreeting(t *testing.T) {
	plain := NewSession(NewDispatcher())
	if plain.Greeting() != GreetingBasic {
		t.Errorf("expected basic greeting without a completer")
	}

	wired := NewSession(NewDispatcher(WithCompleter(&fakeCompleter{reply: "x"})))
	if wired.Greeting() != GreetingFull {
		t.Errorf("expected full greeting with a completer")
	}
}

func TestSessionEmptySubmit(t *testing.T) {
	s := NewSession(NewDispatcher())

	res, ok := s.Submit(context.Background(), "   ")
	if !ok {
		t.Fatal("empty text-mode input is still a valid turn")
	}
	if res.Text != ReplyClarify {
		t.Errorf("expected clarification prompt, got %q", res.Text)
	}
}
