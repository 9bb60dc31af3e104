package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/novalabs/go-nova/internal/config"
	"github.com/novalabs/go-nova/internal/log"
	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/inference"
	"github.com/novalabs/go-nova/pkg/jokes"
	"github.com/novalabs/go-nova/pkg/playback"
	"github.com/novalabs/go-nova/pkg/tts"
	"github.com/novalabs/go-nova/pkg/wiki"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "nova",
	Short: "Nova voice and text assistant",
	Long: `Nova routes natural-language commands to music playback, time and date,
weather, encyclopedia lookups, jokes, and a chat completion fallback.

Run "nova chat" for a text REPL, "nova listen" for the wake-word voice loop,
or "nova serve" for the HTTP API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads .env and the environment, then initializes logging.
func loadConfig() (config.Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log.Init(level)
	return cfg, nil
}

// buildDispatcher wires the collaborators the configuration allows.
// Missing credentials leave a collaborator nil; the dispatcher degrades to
// its fixed apologies for those rules.
func buildDispatcher(cfg config.Config) *assistant.Dispatcher {
	opts := []assistant.DispatcherOption{
		assistant.WithSummarizer(wiki.NewClient()),
		assistant.WithJokeSource(jokes.NewClient()),
		assistant.WithMusicPlayer(playback.NewPlayer()),
	}

	if cfg.LLMAvailable() {
		client, err := inference.NewClient(
			inference.WithAPIKey(cfg.PerplexityAPIKey),
			inference.WithBaseURL(cfg.PerplexityBaseURL),
			inference.WithModel(cfg.PerplexityModel),
		)
		if err != nil {
			log.Warn("chat completion unavailable", "error", err)
		} else {
			opts = append(opts, assistant.WithCompleter(client))
		}
	} else {
		log.Warn("PERPLEXITY_API_KEY not set, chat completion unavailable")
	}

	return assistant.NewDispatcher(opts...)
}

// buildSpeaker creates the fire-and-forget speaker, or nil when speech
// synthesis is not configured.
func buildSpeaker(cfg config.Config) *tts.Speaker {
	if !cfg.TTSAvailable() {
		return nil
	}

	provider, err := tts.NewElevenLabs(
		tts.WithAPIKey(cfg.ElevenLabsAPIKey),
		tts.WithVoice(cfg.ElevenLabsVoiceID),
	)
	if err != nil {
		log.Warn("speech synthesis unavailable", "error", err)
		return nil
	}
	return tts.NewSpeaker(provider)
}
