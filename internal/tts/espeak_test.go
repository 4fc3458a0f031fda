package tts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertToMP3RemovesWAVOnFailure(t *testing.T) {
	dir := t.TempDir()
	wavFile := filepath.Join(dir, "ga.wav")
	if err := os.WriteFile(wavFile, []byte("not a wav"), 0644); err != nil {
		t.Fatal(err)
	}

	// Conversion fails either because ffmpeg rejects the garbage input
	// or because ffmpeg is not installed.
	err := convertToMP3(context.Background(), wavFile, filepath.Join(dir, "ga.mp3"))
	if err == nil {
		t.Fatal("convertToMP3 succeeded on garbage input")
	}
	if _, statErr := os.Stat(wavFile); !os.IsNotExist(statErr) {
		t.Errorf("intermediate wav left behind: stat err = %v", statErr)
	}
}
