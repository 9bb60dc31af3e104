package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.perplexity.ai", cfg.PerplexityBaseURL)
	assert.Equal(t, "sonar-pro", cfg.PerplexityModel)
	assert.Equal(t, 1500*time.Millisecond, cfg.AmbientDuration)
	assert.Equal(t, 6*time.Second, cfg.ListenTimeout)
	assert.Equal(t, 8*time.Second, cfg.PhraseLimit)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("NOVA_PORT", "9090")
	t.Setenv("NOVA_LISTEN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pplx-test", cfg.PerplexityAPIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ListenTimeout)
}

func TestAvailability(t *testing.T) {
	var cfg Config
	assert.False(t, cfg.LLMAvailable())
	assert.False(t, cfg.TTSAvailable())
	assert.False(t, cfg.STTAvailable())

	cfg.PerplexityAPIKey = "k"
	assert.True(t, cfg.LLMAvailable())

	cfg.ElevenLabsAPIKey = "k"
	assert.False(t, cfg.TTSAvailable(), "voice ID still missing")
	cfg.ElevenLabsVoiceID = "v"
	assert.True(t, cfg.TTSAvailable())

	cfg.GoogleSpeechAPIKey = "k"
	assert.True(t, cfg.STTAvailable())
}
