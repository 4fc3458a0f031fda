package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"sync"
)

// ESpeak speaks text through espeak-ng. It is the guaranteed terminus
// of the fallback chain: no asset on disk is required.
type ESpeak struct {
	Voice string // espeak-ng voice, e.g. "ko"
	Speed int    // words per minute

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewESpeak creates a Korean-voice synthesizer with the given speed
// (0 means the espeak-ng default).
func NewESpeak(voice string, speed int) *ESpeak {
	if voice == "" {
		voice = "ko"
	}
	return &ESpeak{Voice: voice, Speed: speed}
}

// Available reports whether espeak-ng is installed.
func (e *ESpeak) Available() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng not found: %w", err)
	}
	return nil
}

// Speak starts an utterance and returns without waiting for it to
// finish. Any utterance still running is cancelled first.
func (e *ESpeak) Speak(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	e.Cancel()

	args := []string{"-v", e.Voice}
	if e.Speed > 0 {
		args = append(args, "-s", strconv.Itoa(e.Speed))
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting espeak-ng: %w", err)
	}

	e.mu.Lock()
	e.cmd = cmd
	e.mu.Unlock()

	go func() { _ = cmd.Wait() }()
	return nil
}

// SpeakAndWait speaks text and blocks until the utterance finishes.
func (e *ESpeak) SpeakAndWait(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	args := []string{"-v", e.Voice}
	if e.Speed > 0 {
		args = append(args, "-s", strconv.Itoa(e.Speed))
	}
	args = append(args, text)

	return exec.CommandContext(ctx, "espeak-ng", args...).Run()
}

// Cancel silences the in-flight utterance, if any.
func (e *ESpeak) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	e.cmd = nil
}
