package assistant

import (
	"context"
	"log/slog"
	"time"
)

// Completer is the remote chat completion collaborator.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Summarizer is the encyclopedia lookup collaborator.
type Summarizer interface {
	Summary(ctx context.Context, subject string, maxSentences int) (string, error)
}

// JokeSource is the joke collaborator.
type JokeSource interface {
	Joke(ctx context.Context) (string, error)
}

// MusicPlayer is the video search-and-play collaborator.
type MusicPlayer interface {
	PlayFirstMatch(ctx context.Context, query string) error
}

// Result is the outcome of one dispatched turn.
type Result struct {
	// Text is the response to display and optionally speak.
	Text string

	// Terminate signals the caller to end the session.
	Terminate bool
}

// Dispatcher routes a normalized command to exactly one handler.
//
// Collaborators are optional: a nil collaborator means unavailable, and every
// handler that would use it answers with its fixed apology instead of calling
// it. The dispatcher is stateless across turns.
type Dispatcher struct {
	completer  Completer
	summarizer Summarizer
	jokes      JokeSource
	player     MusicPlayer

	rules  []Rule
	logger *slog.Logger
	now    func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithCompleter sets the chat completion collaborator.
func WithCompleter(c Completer) DispatcherOption {
	return func(d *Dispatcher) { d.completer = c }
}

// WithSummarizer sets the encyclopedia collaborator.
func WithSummarizer(s Summarizer) DispatcherOption {
	return func(d *Dispatcher) { d.summarizer = s }
}

// WithJokeSource sets the joke collaborator.
func WithJokeSource(j JokeSource) DispatcherOption {
	return func(d *Dispatcher) { d.jokes = j }
}

// WithMusicPlayer sets the playback collaborator.
func WithMusicPlayer(p MusicPlayer) DispatcherOption {
	return func(d *Dispatcher) { d.player = p }
}

// WithClock overrides the time source for the time and date handlers.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) { d.now = now }
}

// WithDispatcherLogger sets the structured logger.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = logger.With("component", "assistant.dispatcher") }
}

// NewDispatcher creates a dispatcher with the fixed rule table.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: slog.Default().With("component", "assistant.dispatcher"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.rules = ruleTable()
	return d
}

// LLMAvailable reports whether the chat completion collaborator is wired.
func (d *Dispatcher) LLMAvailable() bool {
	return d.completer != nil
}

// Dispatch evaluates the rule table top to bottom and runs the first match.
// It always returns a usable Result; collaborator failures become fixed
// apology strings, never errors.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd string) Result {
	for _, rule := range d.rules {
		if rule.Match(cmd) {
			d.logger.Debug("dispatching", "rule", rule.Name, "chars", len(cmd))
			return rule.Handle(ctx, d, cmd)
		}
	}

	// Unreachable: the default rule matches everything.
	return Result{Text: ReplyClarify}
}

// ask delegates a prompt to the chat completion collaborator with the fixed
// persona, degrading to the documented apologies when unavailable or failing.
func (d *Dispatcher) ask(ctx context.Context, prompt string) string {
	if d.completer == nil {
		return ReplyLLMUnavailable
	}

	answer, err := d.completer.Complete(ctx, Persona, prompt)
	if err != nil {
		d.logger.Warn("chat completion failed", "error", err)
		return ReplyLLMFailed
	}
	return answer
}
