// Package tts pre-generates the speech clip tree that the playback
// coordinator expects under audio/tts/.
package tts

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Provider turns text into a clip on disk.
type Provider interface {
	// GenerateClip synthesizes text and writes it to outputFile.
	GenerateClip(ctx context.Context, text, outputFile string) error

	// Name returns the provider name.
	Name() string

	// IsAvailable checks that the provider is configured and usable.
	IsAvailable() error
}

// Config selects and configures a provider.
type Config struct {
	Provider string // "openai" or "espeak"

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string
	OpenAIVoice string
	OpenAISpeed float64

	// espeak-ng settings
	ESpeakVoice string
	ESpeakSpeed int
}

// DefaultConfig returns sensible defaults for Korean clip generation.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "alloy",
		OpenAISpeed: 0.9, // slightly slow for learners
		ESpeakVoice: "ko",
		ESpeakSpeed: 140,
	}
}

// NewProvider creates the provider the config names.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config), nil
	case "espeak":
		return NewESpeakProvider(config), nil
	default:
		return nil, fmt.Errorf("unknown tts provider: %s", config.Provider)
	}
}

// ValidateKoreanText rejects input that contains no Hangul at all, so
// a misconfigured data file cannot fill the clip tree with garbage.
func ValidateKoreanText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.In(r, unicode.Hangul) {
			return nil
		}
	}
	return fmt.Errorf("text must contain Hangul characters")
}
