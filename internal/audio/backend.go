package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ExecBackend plays clips through whatever command line player the
// host has installed.
type ExecBackend struct{}

// Start checks the clip exists, picks a player command and launches it.
func (ExecBackend) Start(ctx context.Context, path string) (Playback, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	cmd, err := playerCommand(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	// Reap the process when playback finishes on its own.
	go func() { _ = cmd.Wait() }()

	return &execPlayback{cmd: cmd}, nil
}

// Run plays the clip and blocks until it finishes. One-shot CLI use;
// the TUI goes through Start so it can interrupt.
func (ExecBackend) Run(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	cmd, err := playerCommand(ctx, path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

type execPlayback struct {
	cmd *exec.Cmd
}

func (p *execPlayback) Stop() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// playerCommand picks a platform player, preferring ones that handle
// both mp3 and webm.
func playerCommand(ctx context.Context, path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "afplay", path), nil
	case "linux":
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path), nil
		}
		if _, err := exec.LookPath("mpg123"); err == nil {
			return exec.CommandContext(ctx, "mpg123", "-q", path), nil
		}
		if _, err := exec.LookPath("play"); err == nil {
			return exec.CommandContext(ctx, "play", "-q", path), nil
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.CommandContext(ctx, "paplay", path), nil
		}
		return nil, fmt.Errorf("no audio player found: install ffplay, mpg123, sox or paplay")
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "/min", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
