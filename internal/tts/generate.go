package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/hangul"
)

// Generator fills the conventional clip tree under <root>/audio/tts/:
// one clip per letter, one per open syllable, one per flashcard word.
type Generator struct {
	provider Provider
	root     string

	// Force regenerates clips that already exist.
	Force bool

	// Progress, when set, receives each clip path as it is written.
	Progress func(path string)
}

// NewGenerator creates a clip generator rooted at the asset directory.
func NewGenerator(provider Provider, root string) *Generator {
	return &Generator{provider: provider, root: root}
}

// All generates letter, syllable and word clips for the document.
// It returns the number of clips written.
func (g *Generator) All(ctx context.Context, doc *data.Document) (int, error) {
	total := 0
	for _, step := range []func(context.Context, *data.Document) (int, error){
		g.Letters, g.Syllables, g.Words,
	} {
		n, err := step(ctx, doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Letters generates one clip per consonant and vowel, keyed by the
// letter's audio file base.
func (g *Generator) Letters(ctx context.Context, doc *data.Document) (int, error) {
	written := 0
	for _, letter := range append(append([]data.Letter{}, doc.Consonants...), doc.Vowels...) {
		base := letter.AudioFile
		if base == "" {
			base = letter.Romanization
		}
		path := filepath.Join("audio", "tts", base+".mp3")
		n, err := g.generate(ctx, letter.Char, path)
		written += n
		if err != nil {
			return written, fmt.Errorf("letter %s: %w", letter.Char, err)
		}
	}
	return written, nil
}

// Syllables generates clips for every open syllable: all 19x21
// initial/vowel pairs. Closed syllables get no clips, which is what
// makes the playback coordinator route them straight to live speech.
func (g *Generator) Syllables(ctx context.Context, _ *data.Document) (int, error) {
	written := 0
	for _, initial := range hangul.Initials {
		for _, medial := range hangul.Medials {
			res := hangul.Compose(initial, medial, "")
			key, ok := hangul.RomanizedKey(res.Rune)
			if !ok {
				continue
			}
			n, err := g.generate(ctx, res.Text, audio.TTSPath(audio.CategorySyllables, key))
			written += n
			if err != nil {
				return written, fmt.Errorf("syllable %s: %w", res.Text, err)
			}
		}
	}
	return written, nil
}

// Words generates one clip per flashcard word.
func (g *Generator) Words(ctx context.Context, doc *data.Document) (int, error) {
	written := 0
	for _, cat := range doc.Categories {
		for _, word := range cat.Words {
			n, err := g.generate(ctx, word.Korean, audio.TTSPath(audio.CategoryWords, word.ClipKey()))
			written += n
			if err != nil {
				return written, fmt.Errorf("word %s: %w", word.Korean, err)
			}
		}
	}
	return written, nil
}

func (g *Generator) generate(ctx context.Context, text, relPath string) (int, error) {
	outputFile := filepath.Join(g.root, relPath)
	if !g.Force {
		if _, err := os.Stat(outputFile); err == nil {
			return 0, nil
		}
	}
	if err := g.provider.GenerateClip(ctx, text, outputFile); err != nil {
		return 0, err
	}
	if g.Progress != nil {
		g.Progress(relPath)
	}
	return 1, nil
}
