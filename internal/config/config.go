// Package config handles loading and saving user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user settings.
type Config struct {
	// DataFile is the alphabet document; empty means the bundled
	// data/alphabet.json relative to the working directory.
	DataFile string `yaml:"data_file,omitempty"`

	// AssetDir is the root of the audio asset tree.
	AssetDir string `yaml:"asset_dir,omitempty"`

	Audio Audio `yaml:"audio"`
	TTS   TTS   `yaml:"tts"`
}

// Audio configures live playback and the speech fallback.
type Audio struct {
	ESpeakVoice string `yaml:"espeak_voice"` // e.g. "ko"
	ESpeakSpeed int    `yaml:"espeak_speed"` // words per minute, 0 = default
}

// TTS configures clip pre-generation.
type TTS struct {
	Provider    string  `yaml:"provider"` // "openai" or "espeak"
	OpenAIModel string  `yaml:"openai_model,omitempty"`
	OpenAIVoice string  `yaml:"openai_voice,omitempty"`
	OpenAISpeed float64 `yaml:"openai_speed,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataFile: filepath.Join("data", "alphabet.json"),
		AssetDir: ".",
		Audio:    Audio{ESpeakVoice: "ko", ESpeakSpeed: 140},
		TTS: TTS{
			Provider:    "espeak",
			OpenAIModel: "gpt-4o-mini-tts",
			OpenAIVoice: "alloy",
			OpenAISpeed: 0.9,
		},
	}
}

// Load reads the config file in dir, falling back to defaults when the
// file does not exist.
func Load(dir string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to dir/config.yaml.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hangul"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
