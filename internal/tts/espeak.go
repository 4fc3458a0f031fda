package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ESpeakProvider generates clips with espeak-ng. Quality is below the
// cloud voices but it works offline, which makes it the default when
// no API key is configured.
type ESpeakProvider struct {
	config *Config
}

// NewESpeakProvider creates an espeak-ng provider.
func NewESpeakProvider(config *Config) *ESpeakProvider {
	return &ESpeakProvider{config: config}
}

// GenerateClip writes a WAV with espeak-ng, converting to mp3 via
// ffmpeg when the output path asks for one.
func (p *ESpeakProvider) GenerateClip(ctx context.Context, text, outputFile string) error {
	if err := ValidateKoreanText(text); err != nil {
		return err
	}

	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	wavFile := outputFile
	wantMP3 := strings.ToLower(filepath.Ext(outputFile)) == ".mp3"
	if wantMP3 {
		wavFile = strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + ".wav"
	}

	voice := p.config.ESpeakVoice
	if voice == "" {
		voice = "ko"
	}
	args := []string{"-v", voice, "-w", wavFile}
	if p.config.ESpeakSpeed > 0 {
		args = append(args, "-s", strconv.Itoa(p.config.ESpeakSpeed))
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak-ng: %w: %s", err, strings.TrimSpace(string(out)))
	}

	if !wantMP3 {
		return nil
	}
	return convertToMP3(ctx, wavFile, outputFile)
}

// convertToMP3 converts the intermediate WAV and removes it, whether
// or not ffmpeg succeeds.
func convertToMP3(ctx context.Context, wavFile, outputFile string) error {
	convert := exec.CommandContext(ctx, "ffmpeg", "-y", "-loglevel", "quiet", "-i", wavFile, outputFile)
	if err := convert.Run(); err != nil {
		os.Remove(wavFile)
		return fmt.Errorf("converting to mp3: %w", err)
	}
	return os.Remove(wavFile)
}

// Name returns the provider name.
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks that espeak-ng is installed.
func (p *ESpeakProvider) IsAvailable() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng not found: %w", err)
	}
	return nil
}
