package hangul

// Revised Romanization of the initial consonants, in table order.
// The silent initial ㅇ romanizes to nothing.
var initialRoman = []string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
	"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

// Revised Romanization of the vowels, in table order.
var medialRoman = []string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
	"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
}

// Syllable-final consonant sounds, in table order (index 0 unused).
var finalRoman = []string{
	"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
	"m", "l", "l", "l", "p", "l", "m", "p", "p", "t",
	"t", "ng", "t", "t", "k", "t", "p", "t",
}

// vowelKeySuffix disambiguates bare-vowel syllables from other uses of
// the same romanized string in clip filenames ("a" the syllable 아
// becomes "a_vowel").
const vowelKeySuffix = "_vowel"

// RomanizedKey derives the audio-clip filename key for an open
// syllable. Clips only exist for syllables without batchim, so any
// closed syllable (and anything outside the syllable range) yields
// ok=false.
func RomanizedKey(r rune) (string, bool) {
	ii, mi, fi, ok := Decompose(r)
	if !ok || fi != 0 {
		return "", false
	}
	if ii == SilentInitialIndex {
		return medialRoman[mi] + vowelKeySuffix, true
	}
	return initialRoman[ii] + medialRoman[mi], true
}

// RomanizeSyllable renders a full display romanization of a syllable,
// including the batchim sound. Non-syllable runes come back unchanged.
func RomanizeSyllable(r rune) string {
	ii, mi, fi, ok := Decompose(r)
	if !ok {
		return string(r)
	}
	return initialRoman[ii] + medialRoman[mi] + finalRoman[fi]
}

// InitialRomanization returns the romanization of an initial by index.
func InitialRomanization(i int) string {
	if i < 0 || i >= len(initialRoman) {
		return ""
	}
	return initialRoman[i]
}

// MedialRomanization returns the romanization of a vowel by index.
func MedialRomanization(i int) string {
	if i < 0 || i >= len(medialRoman) {
		return ""
	}
	return medialRoman[i]
}
