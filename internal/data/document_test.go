package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
  "consonants": [
    {"char": "ㄱ", "romanization": "g", "type": "basic", "audioFile": "g", "mnemonic": "a gun barrel"},
    {"char": "ㅎ", "romanization": "h", "type": "basic", "whisperTest": "breathy"}
  ],
  "vowels": [
    {"char": "ㅏ", "romanization": "a", "type": "basic"},
    {"char": "ㅐ", "romanization": "ae", "type": "compound"}
  ],
  "tips": ["Vowels never stand alone; they lean on silent ㅇ."],
  "structure": [
    {"pattern": "CV", "description": "consonant + vertical vowel", "example": "가"}
  ],
  "categories": [
    {
      "name": "Greetings",
      "words": [
        {
          "korean": "안녕",
          "english": "hi",
          "romanization": "annyeong",
          "syllables": ["안", "녕"],
          "breakdown": [
            {"initial": "ㅇ", "vowel": "ㅏ", "final": "ㄴ"},
            {"initial": "ㄴ", "vowel": "ㅕ", "final": "ㅇ"}
          ]
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Consonants) != 2 || len(doc.Vowels) != 2 {
		t.Errorf("got %d consonants, %d vowels", len(doc.Consonants), len(doc.Vowels))
	}
	if doc.Consonants[0].Mnemonic != "a gun barrel" {
		t.Errorf("mnemonic = %q", doc.Consonants[0].Mnemonic)
	}
	if doc.WordCount() != 1 {
		t.Errorf("WordCount = %d, want 1", doc.WordCount())
	}

	w := doc.FindWord("안녕")
	if w == nil {
		t.Fatal("FindWord(안녕) = nil")
	}
	if w.Breakdown[0].Final != "ㄴ" {
		t.Errorf("breakdown final = %q, want ㄴ", w.Breakdown[0].Final)
	}
	if w.ClipKey() != "annyeong" {
		t.Errorf("ClipKey = %q, want annyeong", w.ClipKey())
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json at all"},
		{"missing sections", `{"consonants": []}`},
		{"letter without char", `{
			"consonants": [{"romanization": "g", "type": "basic"}],
			"vowels": [{"char": "ㅏ", "romanization": "a", "type": "basic"}],
			"categories": []
		}`},
		{"unknown field", `{
			"consonants": [{"char": "ㄱ", "romanization": "g", "type": "basic", "bogus": 1}],
			"vowels": [{"char": "ㅏ", "romanization": "a", "type": "basic"}],
			"categories": []
		}`},
		{"empty syllable string", `{
			"consonants": [{"char": "ㄱ", "romanization": "g", "type": "basic"}],
			"vowels": [{"char": "ㅏ", "romanization": "a", "type": "basic"}],
			"categories": [{
				"name": "Greetings",
				"words": [{
					"korean": "가",
					"english": "go",
					"romanization": "ga",
					"syllables": [""],
					"breakdown": [{"initial": "ㄱ", "vowel": "ㅏ"}]
				}]
			}]
		}`},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.raw)); err == nil {
			t.Errorf("%s: Parse accepted invalid document", tt.name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alphabet.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Letter("ㅐ") == nil {
		t.Error("Letter(ㅐ) = nil")
	}
	if doc.Letter("ㅋ") != nil {
		t.Error("Letter(ㅋ) should be nil")
	}

	_, err = Load(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "reading alphabet data") {
		t.Errorf("Load of missing file: err = %v", err)
	}
}

func TestClipKeyNormalization(t *testing.T) {
	w := Word{Romanization: " Gamsa Hamnida "}
	if got := w.ClipKey(); got != "gamsa_hamnida" {
		t.Errorf("ClipKey = %q, want gamsa_hamnida", got)
	}
}
