package hangul

import "testing"

func TestRomanizedKeyOpenSyllables(t *testing.T) {
	tests := []struct {
		syllable rune
		want     string
	}{
		{'가', "ga"},
		{'내', "nae"},
		{'소', "so"},
		{'휴', "hyu"},
		{'꼬', "kko"},
		{'아', "a_vowel"},  // silent initial gets the vowel marker
		{'의', "ui_vowel"},
	}

	for _, tt := range tests {
		got, ok := RomanizedKey(tt.syllable)
		if !ok {
			t.Errorf("RomanizedKey(%q) returned no key", tt.syllable)
			continue
		}
		if got != tt.want {
			t.Errorf("RomanizedKey(%q) = %q, want %q", tt.syllable, got, tt.want)
		}
	}
}

func TestRomanizedKeyClosedSyllablesHaveNoKey(t *testing.T) {
	for _, r := range []rune{'간', '한', '밥', '숲', '힣'} {
		if key, ok := RomanizedKey(r); ok {
			t.Errorf("RomanizedKey(%q) = %q, want none (batchim syllable)", r, key)
		}
	}
}

func TestRomanizedKeyOutOfRange(t *testing.T) {
	for _, r := range []rune{'a', 'ㅏ', SyllableBase - 1, SyllableLast + 1} {
		if _, ok := RomanizedKey(r); ok {
			t.Errorf("RomanizedKey(%q) should return no key", r)
		}
	}
}

// Every valid (initial, medial) pair must produce a key, and the keys
// must be distinct across pairs: the _vowel marker separates the silent
// initial from initials whose romanization is empty-adjacent.
func TestRomanizedKeyTotalAndDistinct(t *testing.T) {
	seen := make(map[string]rune, InitialCount*MedialCount)
	for ii := 0; ii < InitialCount; ii++ {
		for mi := 0; mi < MedialCount; mi++ {
			res := Compose(Initials[ii], Medials[mi], "")
			key, ok := RomanizedKey(res.Rune)
			if !ok {
				t.Fatalf("no key for %q", res.Rune)
			}
			if key == "" {
				t.Fatalf("empty key for %q", res.Rune)
			}
			if prev, dup := seen[key]; dup {
				t.Errorf("key %q maps to both %q and %q", key, prev, res.Rune)
			}
			seen[key] = res.Rune
		}
	}
}

func TestRomanizeSyllable(t *testing.T) {
	tests := []struct {
		syllable rune
		want     string
	}{
		{'한', "han"},
		{'국', "guk"},
		{'갓', "gat"},
		{'강', "gang"},
		{'가', "ga"},
	}
	for _, tt := range tests {
		if got := RomanizeSyllable(tt.syllable); got != tt.want {
			t.Errorf("RomanizeSyllable(%q) = %q, want %q", tt.syllable, got, tt.want)
		}
	}

	// Non-syllable runes pass through untouched.
	if got := RomanizeSyllable('a'); got != "a" {
		t.Errorf("RomanizeSyllable('a') = %q", got)
	}
}
