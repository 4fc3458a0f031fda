package tts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider generates clips through the OpenAI speech endpoint.
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates an OpenAI TTS provider.
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}
}

// GenerateClip synthesizes Korean speech and writes it to outputFile.
func (p *OpenAIProvider) GenerateClip(ctx context.Context, text, outputFile string) error {
	if err := ValidateKoreanText(text); err != nil {
		return err
	}

	req := openai.CreateSpeechRequest{
		Model: openai.SpeechModel(p.config.OpenAIModel),
		Input: text,
		Voice: openai.SpeechVoice(p.config.OpenAIVoice),
		Speed: p.config.OpenAISpeed,
	}

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".wav":
		req.ResponseFormat = openai.SpeechResponseFormatWav
	case ".opus":
		req.ResponseFormat = openai.SpeechResponseFormatOpus
	default:
		req.ResponseFormat = openai.SpeechResponseFormatMp3
	}

	resp, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("OpenAI TTS: %w", err)
	}
	defer resp.Close()

	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		return fmt.Errorf("writing audio data: %w", err)
	}
	return nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks the API key is set.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key is not set")
	}
	return nil
}
