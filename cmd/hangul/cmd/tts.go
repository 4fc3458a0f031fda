package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hodu-dev/hangul/internal/tts"
	"github.com/spf13/cobra"
)

var (
	ttsOnly     string
	ttsForce    bool
	ttsProvider string
)

var ttsCmd = &cobra.Command{
	Use:   "tts",
	Short: "Pre-generate speech clips",
	Long: `Pre-generate the speech clip tree the player falls back to:

  audio/tts/<letter>.mp3             one clip per consonant and vowel
  audio/tts/syllables/<key>.mp3      all 399 open syllables
  audio/tts/words/<key>.mp3          every flashcard word

The OpenAI provider needs OPENAI_API_KEY; espeak-ng works offline.

Examples:
  hangul tts
  hangul tts --only syllables --force
  hangul tts --provider espeak`,
	RunE: runTTS,
}

func init() {
	rootCmd.AddCommand(ttsCmd)
	ttsCmd.Flags().StringVar(&ttsOnly, "only", "", "generate one group: letters, syllables or words")
	ttsCmd.Flags().BoolVar(&ttsForce, "force", false, "regenerate clips that already exist")
	ttsCmd.Flags().StringVar(&ttsProvider, "provider", "", "override the configured provider (openai, espeak)")
}

func runTTS(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	ttsCfg := tts.DefaultConfig()
	ttsCfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.TTS.Provider != "" {
		ttsCfg.Provider = cfg.TTS.Provider
	}
	if cfg.TTS.OpenAIModel != "" {
		ttsCfg.OpenAIModel = cfg.TTS.OpenAIModel
	}
	if cfg.TTS.OpenAIVoice != "" {
		ttsCfg.OpenAIVoice = cfg.TTS.OpenAIVoice
	}
	if cfg.TTS.OpenAISpeed != 0 {
		ttsCfg.OpenAISpeed = cfg.TTS.OpenAISpeed
	}
	if cfg.Audio.ESpeakVoice != "" {
		ttsCfg.ESpeakVoice = cfg.Audio.ESpeakVoice
	}
	if ttsProvider != "" {
		ttsCfg.Provider = ttsProvider
	}

	provider, err := tts.NewProvider(ttsCfg)
	if err != nil {
		return err
	}
	if err := provider.IsAvailable(); err != nil {
		return fmt.Errorf("provider %s: %w", provider.Name(), err)
	}

	gen := tts.NewGenerator(provider, assetRoot(cfg))
	gen.Force = ttsForce
	gen.Progress = func(path string) {
		fmt.Printf("  %s\n", path)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Generating clips with %s\n", provider.Name())

	var written int
	switch ttsOnly {
	case "":
		written, err = gen.All(ctx, doc)
	case "letters":
		written, err = gen.Letters(ctx, doc)
	case "syllables":
		written, err = gen.Syllables(ctx, doc)
	case "words":
		written, err = gen.Words(ctx, doc)
	default:
		return fmt.Errorf("unknown group %q: want letters, syllables or words", ttsOnly)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d clips\n", written)
	return nil
}
