// Package assistant implements the command dispatcher at the heart of Nova.
//
// One turn flows in a single direction: a raw utterance is normalized, matched
// against an ordered rule table, and exactly one handler produces the response.
// Handlers either compute deterministic answers (time, date, canned phrases) or
// delegate to a collaborator through the narrow interfaces on Dispatcher.
package assistant

import "strings"

// WakeWord gates voice-mode command acceptance.
const WakeWord = "nova"

// Mode selects how utterances are normalized.
type Mode int

const (
	// ModeVoice requires the wake word; turns without it are discarded.
	ModeVoice Mode = iota

	// ModeText strips a leading wake word but never discards the turn.
	ModeText
)

// Normalize lowercases a raw utterance and handles the wake word per mode.
// The second return value reports whether the turn carries a command: in voice
// mode a missing wake word discards the turn, in text mode it never does.
// An empty normalized string with ok=true is still a valid turn; the
// dispatcher answers it with a clarification prompt.
func Normalize(raw string, mode Mode) (string, bool) {
	cmd := strings.ToLower(strings.TrimSpace(raw))

	switch mode {
	case ModeVoice:
		if !strings.Contains(cmd, WakeWord) {
			return "", false
		}
		cmd = strings.ReplaceAll(cmd, WakeWord, "")
	case ModeText:
		if fields := strings.Fields(cmd); len(fields) > 0 && strings.Trim(fields[0], ",.!?") == WakeWord {
			cmd = strings.TrimPrefix(cmd, fields[0])
		}
	}

	return strings.TrimSpace(cmd), true
}
