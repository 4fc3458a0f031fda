package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.ESpeakVoice != "ko" {
		t.Errorf("default voice = %q, want ko", cfg.Audio.ESpeakVoice)
	}
	if cfg.TTS.Provider != "espeak" {
		t.Errorf("default provider = %q, want espeak", cfg.TTS.Provider)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.AssetDir = "/srv/hangul"
	cfg.Audio.ESpeakSpeed = 120
	cfg.TTS.Provider = "openai"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.AssetDir != "/srv/hangul" {
		t.Errorf("AssetDir = %q", loaded.AssetDir)
	}
	if loaded.Audio.ESpeakSpeed != 120 {
		t.Errorf("ESpeakSpeed = %d", loaded.Audio.ESpeakSpeed)
	}
	if loaded.TTS.Provider != "openai" {
		t.Errorf("Provider = %q", loaded.TTS.Provider)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("\t:bad"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("malformed config accepted")
	}
}
