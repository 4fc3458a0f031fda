package audio

import "path/filepath"

// Clip categories under audio/tts/.
const (
	CategorySyllables = "syllables"
	CategoryWords     = "words"
)

// LetterSources builds the fallback chain for an individual letter:
// recorded webm, recorded mp3, then the pre-generated speech clip.
func LetterSources(base string) []Source {
	return []Source{
		{Path: filepath.Join("audio", base+".webm"), Format: "webm"},
		{Path: filepath.Join("audio", base+".mp3"), Format: "mp3"},
		{Path: filepath.Join("audio", "tts", base+".mp3"), Format: "mp3"},
	}
}

// TTSPath is the conventional location of a pre-generated speech clip.
func TTSPath(category, key string) string {
	return filepath.Join("audio", "tts", category, key+".mp3")
}
