package assistant

import (
	"context"
	"strings"
)

// Rule pairs a predicate over the normalized command with its handler.
// The table is evaluated top to bottom, first match wins, no fallthrough.
type Rule struct {
	Name   string
	Match  func(cmd string) bool
	Handle func(ctx context.Context, d *Dispatcher, cmd string) Result
}

// lookupPhrases are stripped in order to extract the lookup subject.
var lookupPhrases = []string{"who the heck is", "who is", "what is", "tell me about"}

// ruleTable returns the fixed, ordered dispatch rules. Changing the order
// changes observable behavior and is a compatibility break.
func ruleTable() []Rule {
	return []Rule{
		{
			Name:  "play",
			Match: func(cmd string) bool { return strings.Contains(cmd, "play") },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				song := strings.TrimSpace(strings.ReplaceAll(cmd, "play", ""))
				if song == "" {
					return Result{Text: ReplyAskSong}
				}
				if d.player == nil {
					return Result{Text: ReplyPlaybackFailed}
				}
				if err := d.player.PlayFirstMatch(ctx, song); err != nil {
					d.logger.Warn("playback failed", "error", err, "query", song)
					return Result{Text: ReplyPlaybackFailed}
				}
				return Result{Text: "Playing " + song + " on YouTube"}
			},
		},
		{
			Name:  "time",
			Match: func(cmd string) bool { return strings.Contains(cmd, "time") },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: "The current time is " + d.now().Format("03:04 PM")}
			},
		},
		{
			Name:  "weather",
			Match: func(cmd string) bool { return strings.Contains(cmd, "weather") },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				location := stripTokens(cmd, "weather", "in", "for")
				prompt := "What's the weather like today?"
				if location != "" {
					prompt = "What's the current weather in " + location + "?"
				}
				return Result{Text: d.ask(ctx, prompt)}
			},
		},
		{
			Name:  "lookup",
			Match: func(cmd string) bool { return containsAny(cmd, lookupPhrases...) },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				subject := cmd
				for _, phrase := range lookupPhrases {
					subject = strings.ReplaceAll(subject, phrase, "")
				}
				subject = strings.TrimSpace(subject)
				if subject == "" {
					return Result{Text: ReplyAskSubject}
				}

				if d.summarizer != nil {
					info, err := d.summarizer.Summary(ctx, subject, 2)
					if err == nil {
						return Result{Text: info}
					}
					d.logger.Debug("summary lookup failed, falling back", "error", err, "subject", subject)
				}
				return Result{Text: d.ask(ctx, "Tell me about "+subject)}
			},
		},
		{
			Name: "question",
			Match: func(cmd string) bool {
				return containsAny(cmd, "how", "why", "when", "where", "explain", "define", "calculate", "solve", "can you")
			},
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: d.ask(ctx, cmd)}
			},
		},
		{
			Name:  "news",
			Match: func(cmd string) bool { return strings.Contains(cmd, "news") },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: d.ask(ctx, newsPrompt)}
			},
		},
		{
			Name: "math",
			Match: func(cmd string) bool {
				return containsAny(cmd, "plus", "minus", "multiply", "divide", "equals", "math", "calculate")
			},
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: d.ask(ctx, "Please calculate this math problem and explain the answer: "+cmd)}
			},
		},
		{
			Name: "date",
			Match: func(cmd string) bool {
				return strings.Contains(cmd, "date") && containsAny(cmd, "today", "what", "current")
			},
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: "Today is " + d.now().Format("January 02, 2006")}
			},
		},
		{
			Name:   "single",
			Match:  func(cmd string) bool { return strings.Contains(cmd, "are you single") },
			Handle: canned(ReplySingle),
		},
		{
			Name:   "mood",
			Match:  func(cmd string) bool { return strings.Contains(cmd, "how are you") },
			Handle: canned(ReplyHowAreYou),
		},
		{
			Name:   "name",
			Match:  func(cmd string) bool { return strings.Contains(cmd, "your name") },
			Handle: canned(ReplyName),
		},
		{
			Name:  "joke",
			Match: func(cmd string) bool { return strings.Contains(cmd, "joke") },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				if d.jokes != nil {
					joke, err := d.jokes.Joke(ctx)
					if err == nil {
						return Result{Text: joke}
					}
					d.logger.Debug("joke source failed, falling back", "error", err)
				}
				return Result{Text: d.ask(ctx, jokePrompt)}
			},
		},
		{
			Name: "about",
			Match: func(cmd string) bool {
				return strings.Contains(cmd, "about yourself") || strings.Contains(cmd, "about you")
			},
			Handle: canned(ReplyAbout),
		},
		{
			Name: "help",
			Match: func(cmd string) bool {
				return strings.Contains(cmd, "help") || strings.Contains(cmd, "commands")
			},
			Handle: canned(ReplyHelp),
		},
		{
			Name: "farewell",
			Match: func(cmd string) bool {
				return containsAny(cmd, "stop", "exit", "quit", "goodbye", "bye", "shut down", "sleep")
			},
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				return Result{Text: ReplyFarewell, Terminate: true}
			},
		},
		{
			Name:  "default",
			Match: func(cmd string) bool { return true },
			Handle: func(ctx context.Context, d *Dispatcher, cmd string) Result {
				if strings.TrimSpace(cmd) == "" {
					return Result{Text: ReplyClarify}
				}
				return Result{Text: d.ask(ctx, cmd)}
			},
		},
	}
}

// canned builds a handler that returns a fixed string.
func canned(text string) func(context.Context, *Dispatcher, string) Result {
	return func(context.Context, *Dispatcher, string) Result {
		return Result{Text: text}
	}
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// stripTokens removes whole-word occurrences of the given tokens.
func stripTokens(s string, tokens ...string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		drop := false
		for _, tok := range tokens {
			if f == tok {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
