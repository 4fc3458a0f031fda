package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/hangul"
	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Pronounce Hangul text",
	Long: `Pronounce Hangul text out loud.

Known words and open syllables play their pre-generated clips; anything
else is synthesized with espeak-ng.

Examples:
  hangul say 가
  hangul say 안녕
  hangul say ㄱ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func init() {
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, _ := loadDocument(cfg)
	text := strings.Join(args, " ")
	root := assetRoot(cfg)

	// Candidate clips, most specific first.
	var sources []audio.Source

	if doc != nil {
		if w := doc.FindWord(text); w != nil {
			sources = append(sources, audio.Source{
				Path:   audio.TTSPath(audio.CategoryWords, w.ClipKey()),
				Format: "mp3",
			})
		}
		if l := doc.Letter(text); l != nil && l.AudioFile != "" {
			sources = append(sources, audio.LetterSources(l.AudioFile)...)
		}
	}

	runes := []rune(text)
	if len(runes) == 1 {
		if key, ok := hangul.RomanizedKey(runes[0]); ok {
			sources = append(sources, audio.Source{
				Path:   audio.TTSPath(audio.CategorySyllables, key),
				Format: "mp3",
			})
		}
	}

	backend := audio.ExecBackend{}
	for _, src := range sources {
		if err := backend.Run(ctx, filepath.Join(root, src.Path)); err == nil {
			return nil
		}
	}

	// Chain exhausted, synthesize.
	synth := audio.NewESpeak(cfg.Audio.ESpeakVoice, cfg.Audio.ESpeakSpeed)
	if err := synth.Available(); err != nil {
		fmt.Fprintf(os.Stderr, "No clip found and %v\n", err)
		return err
	}
	return synth.SpeakAndWait(ctx, text)
}
