// Package data loads the static alphabet document that drives the
// whole application: letter grids, teaching tips, the syllable
// structure reference and the categorized word lists.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Letter describes one consonant or vowel.
type Letter struct {
	Char         string `json:"char"`
	Romanization string `json:"romanization"`
	Type         string `json:"type"`
	AudioFile    string `json:"audioFile,omitempty"`
	Mnemonic     string `json:"mnemonic,omitempty"`
	WhisperTest  string `json:"whisperTest,omitempty"`
	Articulatory string `json:"articulatory,omitempty"`
}

// Breakdown is the jamo decomposition of one syllable of a word.
type Breakdown struct {
	Initial string `json:"initial"`
	Vowel   string `json:"vowel"`
	Final   string `json:"final,omitempty"`
}

// Word is one flashcard entry.
type Word struct {
	Korean       string      `json:"korean"`
	English      string      `json:"english"`
	Romanization string      `json:"romanization"`
	Syllables    []string    `json:"syllables"`
	Breakdown    []Breakdown `json:"breakdown"`
}

// ClipKey derives the pre-generated word clip filename from the
// romanization.
func (w Word) ClipKey() string {
	key := strings.ToLower(strings.TrimSpace(w.Romanization))
	return strings.ReplaceAll(key, " ", "_")
}

// StructureRow is one entry of the six-position syllable structure
// reference table.
type StructureRow struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// WordCategory groups flashcard words under a display label.
type WordCategory struct {
	Name  string `json:"name"`
	Words []Word `json:"words"`
}

// Document is the full alphabet data file.
type Document struct {
	Consonants []Letter       `json:"consonants"`
	Vowels     []Letter       `json:"vowels"`
	Tips       []string       `json:"tips"`
	Structure  []StructureRow `json:"structure"`
	Categories []WordCategory `json:"categories"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alphabet data: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw JSON against the embedded schema and decodes it.
func Parse(raw []byte) (*Document, error) {
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("validating alphabet data: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing alphabet data: %w", err)
	}
	return &doc, nil
}

// Letter finds a consonant or vowel by its jamo character.
func (d *Document) Letter(char string) *Letter {
	for i := range d.Consonants {
		if d.Consonants[i].Char == char {
			return &d.Consonants[i]
		}
	}
	for i := range d.Vowels {
		if d.Vowels[i].Char == char {
			return &d.Vowels[i]
		}
	}
	return nil
}

// FindWord looks a word up by its Korean form across all categories.
func (d *Document) FindWord(korean string) *Word {
	for ci := range d.Categories {
		words := d.Categories[ci].Words
		for wi := range words {
			if words[wi].Korean == korean {
				return &words[wi]
			}
		}
	}
	return nil
}

// WordCount returns the total number of flashcard words.
func (d *Document) WordCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Words)
	}
	return n
}
