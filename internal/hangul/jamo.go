// Package hangul provides core types and the syllable codec for the
// Korean alphabet.
package hangul

// JamoClass identifies the slot a jamo occupies inside a syllable block.
type JamoClass string

const (
	ClassInitial JamoClass = "initial" // leading consonant
	ClassMedial  JamoClass = "medial"  // vowel
	ClassFinal   JamoClass = "final"   // trailing consonant (batchim), optional
)

// Unicode range of precomposed Hangul syllables.
const (
	SyllableBase = rune(0xAC00) // 가
	SyllableLast = rune(0xD7A3) // 힣
)

// Table sizes fixed by the Unicode composition formula.
const (
	InitialCount = 19
	MedialCount  = 21
	FinalCount   = 28 // index 0 is the absent final
)

// Initials lists the 19 syllable-initial consonants in Unicode order.
var Initials = []string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// Medials lists the 21 vowels in Unicode order.
var Medials = []string{
	"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
	"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
}

// Finals lists the 28 final slots in Unicode order. Index 0 is the
// empty string: a syllable with no batchim.
var Finals = []string{
	"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
	"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// SilentInitialIndex is the position of ㅇ, which carries no sound in
// the initial slot.
const SilentInitialIndex = 11

// InitialIndex returns the table index of an initial consonant.
// Table sizes are tiny, so a linear scan is fine.
func InitialIndex(jamo string) (int, bool) {
	return scan(Initials, jamo)
}

// MedialIndex returns the table index of a vowel.
func MedialIndex(jamo string) (int, bool) {
	return scan(Medials, jamo)
}

// FinalIndex returns the table index of a final consonant. The empty
// string resolves to 0, the absent final.
func FinalIndex(jamo string) (int, bool) {
	return scan(Finals, jamo)
}

func scan(table []string, jamo string) (int, bool) {
	for i, j := range table {
		if j == jamo {
			return i, true
		}
	}
	return 0, false
}
