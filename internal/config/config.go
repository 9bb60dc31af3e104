// Package config loads go-nova configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the assistant.
// Every field maps to an environment variable; a .env file loaded by the CLI
// works too.
type Config struct {
	// Remote chat completion (Perplexity, OpenAI-compatible).
	PerplexityAPIKey  string `envconfig:"PERPLEXITY_API_KEY"`
	PerplexityBaseURL string `envconfig:"PERPLEXITY_BASE_URL" default:"https://api.perplexity.ai"`
	PerplexityModel   string `envconfig:"PERPLEXITY_MODEL" default:"sonar-pro"`

	// Speech capture (Google Cloud Speech-to-Text).
	GoogleSpeechAPIKey string        `envconfig:"GOOGLE_SPEECH_API_KEY"`
	AmbientDuration    time.Duration `envconfig:"NOVA_AMBIENT_DURATION" default:"1500ms"`
	ListenTimeout      time.Duration `envconfig:"NOVA_LISTEN_TIMEOUT" default:"6s"`
	PhraseLimit        time.Duration `envconfig:"NOVA_PHRASE_LIMIT" default:"8s"`

	// Speech synthesis (ElevenLabs).
	ElevenLabsAPIKey  string `envconfig:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `envconfig:"ELEVENLABS_VOICE_ID"`

	// Web server.
	Port string `envconfig:"NOVA_PORT" default:"8080"`

	// Logging.
	LogLevel string `envconfig:"NOVA_LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LLMAvailable reports whether the chat completion collaborator can be used.
func (c Config) LLMAvailable() bool {
	return c.PerplexityAPIKey != ""
}

// TTSAvailable reports whether the speech synthesizer can be used.
func (c Config) TTSAvailable() bool {
	return c.ElevenLabsAPIKey != "" && c.ElevenLabsVoiceID != ""
}

// STTAvailable reports whether speech capture can be used.
func (c Config) STTAvailable() bool {
	return c.GoogleSpeechAPIKey != ""
}
