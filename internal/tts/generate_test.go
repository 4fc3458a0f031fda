package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hodu-dev/hangul/internal/data"
)

// fakeProvider writes an empty file per clip and records the text it
// was asked to speak.
type fakeProvider struct {
	texts []string
	fail  bool
}

func (f *fakeProvider) GenerateClip(ctx context.Context, text, outputFile string) error {
	if f.fail {
		return errors.New("synthesis failed")
	}
	f.texts = append(f.texts, text)
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(outputFile, nil, 0644)
}

func (f *fakeProvider) Name() string       { return "fake" }
func (f *fakeProvider) IsAvailable() error { return nil }

func testDocument() *data.Document {
	return &data.Document{
		Consonants: []data.Letter{{Char: "ㄱ", Romanization: "g", Type: "basic", AudioFile: "g"}},
		Vowels:     []data.Letter{{Char: "ㅏ", Romanization: "a", Type: "basic", AudioFile: "a_vowel"}},
		Categories: []data.WordCategory{{
			Name: "Greetings",
			Words: []data.Word{{
				Korean:       "안녕",
				English:      "hi",
				Romanization: "annyeong",
				Syllables:    []string{"안", "녕"},
			}},
		}},
	}
}

func TestGeneratorLetters(t *testing.T) {
	root := t.TempDir()
	provider := &fakeProvider{}
	g := NewGenerator(provider, root)

	n, err := g.Letters(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Letters failed: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d clips, want 2", n)
	}

	for _, base := range []string{"g", "a_vowel"} {
		path := filepath.Join(root, "audio", "tts", base+".mp3")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing clip %s", path)
		}
	}
}

func TestGeneratorSyllablesCoversAllOpenPairs(t *testing.T) {
	root := t.TempDir()
	provider := &fakeProvider{}
	g := NewGenerator(provider, root)

	n, err := g.Syllables(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Syllables failed: %v", err)
	}
	if n != 19*21 {
		t.Errorf("wrote %d syllable clips, want %d", n, 19*21)
	}

	// Spot-check the key convention.
	for _, key := range []string{"ga", "nae", "a_vowel"} {
		path := filepath.Join(root, "audio", "tts", "syllables", key+".mp3")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing syllable clip %s", key)
		}
	}
}

func TestGeneratorWordsAndSkipExisting(t *testing.T) {
	root := t.TempDir()
	provider := &fakeProvider{}
	g := NewGenerator(provider, root)
	doc := testDocument()

	n, err := g.Words(context.Background(), doc)
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d word clips, want 1", n)
	}
	if len(provider.texts) != 1 || provider.texts[0] != "안녕" {
		t.Errorf("spoke %v, want [안녕]", provider.texts)
	}

	// Second run finds the clip on disk and writes nothing.
	n, err = g.Words(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rerun wrote %d clips, want 0", n)
	}

	// Force regenerates.
	g.Force = true
	n, err = g.Words(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("forced rerun wrote %d clips, want 1", n)
	}
}

func TestGeneratorPropagatesProviderErrors(t *testing.T) {
	g := NewGenerator(&fakeProvider{fail: true}, t.TempDir())
	if _, err := g.Letters(context.Background(), testDocument()); err == nil {
		t.Error("provider failure should surface")
	}
}

func TestValidateKoreanText(t *testing.T) {
	if err := ValidateKoreanText("안녕"); err != nil {
		t.Errorf("valid text rejected: %v", err)
	}
	if err := ValidateKoreanText("ㄱ"); err != nil {
		t.Errorf("bare jamo rejected: %v", err)
	}
	if err := ValidateKoreanText(""); err == nil {
		t.Error("empty text accepted")
	}
	if err := ValidateKoreanText("hello"); err == nil {
		t.Error("non-Hangul text accepted")
	}
}
