// Package components provides shared UI components for the TUI.
package components

import (
	"github.com/hodu-dev/hangul/internal/hangul"
)

// SyllableResult holds everything the views display about one composed
// syllable block.
type SyllableResult struct {
	Syllable string
	Rune     rune
	Fallback bool

	Initial string
	Vowel   string
	Final   string

	Romanized  string
	ClipKey    string
	HasClip    bool
	HasBatchim bool
}

// Analyze composes a syllable from jamo and derives its display and
// playback attributes.
func Analyze(initial, vowel, final string) SyllableResult {
	composed := hangul.Compose(initial, vowel, final)

	result := SyllableResult{
		Syllable: composed.Text,
		Rune:     composed.Rune,
		Fallback: composed.Fallback,
		Initial:  initial,
		Vowel:    vowel,
		Final:    final,
	}

	if composed.Fallback {
		return result
	}

	result.Romanized = hangul.RomanizeSyllable(composed.Rune)
	result.HasBatchim = hangul.HasBatchim(composed.Rune)
	if key, ok := hangul.RomanizedKey(composed.Rune); ok {
		result.ClipKey = key
		result.HasClip = true
	}

	return result
}

// AnalyzeRune decomposes an existing syllable rune. The second return
// is false for runes outside the Hangul syllable block.
func AnalyzeRune(r rune) (SyllableResult, bool) {
	initial, vowel, final, ok := hangul.Jamos(r)
	if !ok {
		return SyllableResult{Syllable: string(r), Fallback: true}, false
	}
	return Analyze(initial, vowel, final), true
}
