package stt

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
)

// Google implements Recognizer using the Cloud Speech-to-Text API.
type Google struct {
	svc    *speech.Service
	mic    Microphone
	cfg    CaptureConfig
	logger *slog.Logger
}

// NewGoogle creates a Google Speech recognizer reading from the given
// microphone. Extra client options are forwarded to the API client, which
// lets tests point it at a local server.
func NewGoogle(ctx context.Context, apiKey string, mic Microphone, opts []CaptureOption, clientOpts ...option.ClientOption) (*Google, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key required", ErrServiceUnavailable)
	}
	if mic == nil {
		mic = &Arecord{}
	}

	cfg := DefaultCaptureConfig()
	cfg.Apply(opts...)

	svc, err := speech.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, clientOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return &Google{
		svc:    svc,
		mic:    mic,
		cfg:    cfg,
		logger: cfg.Logger.With("component", "stt.google"),
	}, nil
}

// Capture records one utterance and transcribes it.
func (g *Google) Capture(ctx context.Context) (string, error) {
	start := time.Now()

	audio, err := g.mic.Record(ctx, g.cfg)
	if err != nil {
		return "", fmt.Errorf("record: %w", err)
	}
	if len(audio) == 0 {
		return "", ErrNoSpeech
	}

	req := &speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: int64(g.cfg.SampleRate),
			LanguageCode:    g.cfg.LanguageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := g.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	transcript := bestTranscript(resp)
	if transcript == "" {
		return "", ErrUnintelligible
	}

	g.logger.Debug("transcribed utterance",
		"chars", len(transcript),
		"audio_bytes", len(audio),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return transcript, nil
}

// Close releases recognizer resources.
func (g *Google) Close() error {
	return nil
}

// bestTranscript picks the top alternative from the first result.
func bestTranscript(resp *speech.RecognizeResponse) string {
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			if alt.Transcript != "" {
				return alt.Transcript
			}
		}
	}
	return ""
}

// Verify Google implements Recognizer at compile time.
var _ Recognizer = (*Google)(nil)
