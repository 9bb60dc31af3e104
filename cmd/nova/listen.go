package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/novalabs/go-nova/internal/log"
	"github.com/novalabs/go-nova/pkg/assistant"
	"github.com/novalabs/go-nova/pkg/stt"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Wake-word gated voice loop",
	Long: `Listen continuously on the microphone. Utterances must carry the wake
word "nova" or they are discarded. Requires GOOGLE_SPEECH_API_KEY.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.STTAvailable() {
		return errors.New("GOOGLE_SPEECH_API_KEY is required for voice mode")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recognizer, err := stt.NewGoogle(ctx, cfg.GoogleSpeechAPIKey, nil, []stt.CaptureOption{
		stt.WithAmbientDuration(cfg.AmbientDuration),
		stt.WithListenTimeout(cfg.ListenTimeout),
		stt.WithPhraseLimit(cfg.PhraseLimit),
	})
	if err != nil {
		return err
	}
	defer recognizer.Close()

	speaker := buildSpeaker(cfg)
	opts := []assistant.SessionOption{assistant.WithMode(assistant.ModeVoice)}
	if speaker != nil {
		defer speaker.Close()
		opts = append(opts, assistant.WithVoice(speaker))
	}
	session := assistant.NewSession(buildDispatcher(cfg), opts...)

	greeting := session.Greeting()
	fmt.Println("Nova:", greeting)
	if speaker != nil {
		speaker.Say(greeting)
	}

	for !session.Terminated() {
		if ctx.Err() != nil {
			break
		}

		utterance, err := recognizer.Capture(ctx)
		if err != nil {
			// Silence, noise, and backend hiccups are all "no command
			// this turn"; only a dead context ends the loop.
			if ctx.Err() != nil {
				break
			}
			log.Debug("capture yielded no command", "error", err)
			continue
		}
		fmt.Println("You:", utterance)

		result, ok := session.Submit(ctx, utterance)
		if !ok {
			log.Debug("wake word not detected", "heard", utterance)
			continue
		}
		fmt.Println("Nova:", result.Text)
	}

	if ctx.Err() != nil {
		fmt.Println("\nNova:", assistant.ReplySigningOff)
		if speaker != nil {
			speaker.Say(assistant.ReplySigningOff)
		}
	}
	return nil
}
