package stt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Arecord captures microphone audio by shelling out to arecord.
// It records PCM16 mono at the configured sample rate for the phrase limit.
type Arecord struct {
	// Device is the ALSA device name. Empty uses the default device.
	Device string

	// runner is the command executor, injectable for tests.
	runner func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Record captures one listening window of raw PCM16 audio.
func (a *Arecord) Record(ctx context.Context, cfg CaptureConfig) ([]byte, error) {
	seconds := int(cfg.PhraseLimit.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	args := []string{
		"-q",
		"-f", "S16_LE",
		"-r", strconv.Itoa(cfg.SampleRate),
		"-c", "1",
		"-t", "raw",
		"-d", strconv.Itoa(seconds),
	}
	if a.Device != "" {
		args = append(args, "-D", a.Device)
	}

	run := a.runner
	if run == nil {
		run = runCommand
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ListenTimeout+cfg.PhraseLimit)
	defer cancel()

	audio, err := run(ctx, "arecord", args...)
	if err != nil {
		return nil, fmt.Errorf("arecord: %w", err)
	}
	return audio, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Verify Arecord implements Microphone at compile time.
var _ Microphone = (*Arecord)(nil)
