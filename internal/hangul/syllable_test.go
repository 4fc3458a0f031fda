package hangul

import "testing"

func TestComposeKnownSyllables(t *testing.T) {
	tests := []struct {
		initial, medial, final string
		want                   rune
	}{
		{"ㄱ", "ㅏ", "", 0xAC00},  // 가
		{"ㄴ", "ㅐ", "", '내'},
		{"ㅎ", "ㅏ", "ㄴ", '한'},
		{"ㄱ", "ㅏ", "ㄴ", '간'},
		{"ㅇ", "ㅏ", "", '아'},
		{"ㅎ", "ㅣ", "ㅎ", '힣'}, // last precomposed syllable
	}

	for _, tt := range tests {
		got := Compose(tt.initial, tt.medial, tt.final)
		if got.Fallback {
			t.Errorf("Compose(%q,%q,%q) unexpectedly fell back to %q",
				tt.initial, tt.medial, tt.final, got.Text)
			continue
		}
		if got.Rune != tt.want {
			t.Errorf("Compose(%q,%q,%q) = %q, want %q",
				tt.initial, tt.medial, tt.final, got.Rune, tt.want)
		}
	}
}

func TestComposeFallbackNeverErrors(t *testing.T) {
	tests := []struct {
		initial, medial, final string
		want                   string
	}{
		{"x", "ㅏ", "", "xㅏ"},
		{"ㄱ", "q", "", "ㄱq"},
		{"", "", "", ""},
		{"ㅏ", "ㄱ", "", "ㅏㄱ"}, // swapped classes: vowel is not an initial
	}

	for _, tt := range tests {
		got := Compose(tt.initial, tt.medial, tt.final)
		if !got.Fallback {
			t.Errorf("Compose(%q,%q,%q) should have fallen back", tt.initial, tt.medial, tt.final)
			continue
		}
		if got.Text != tt.want {
			t.Errorf("Compose(%q,%q,%q) fallback = %q, want %q",
				tt.initial, tt.medial, tt.final, got.Text, tt.want)
		}
	}
}

func TestComposeUnknownFinalTreatedAsAbsent(t *testing.T) {
	got := Compose("ㄱ", "ㅏ", "x")
	if got.Fallback {
		t.Fatalf("unknown final must not trigger fallback, got %q", got.Text)
	}
	if got.Rune != 0xAC00 {
		t.Errorf("Compose with unknown final = %q, want 가", got.Rune)
	}
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	for ii := 0; ii < InitialCount; ii++ {
		for mi := 0; mi < MedialCount; mi++ {
			res := Compose(Initials[ii], Medials[mi], "")
			if res.Fallback {
				t.Fatalf("Compose(%q,%q) fell back", Initials[ii], Medials[mi])
			}
			gi, gm, gf, ok := Decompose(res.Rune)
			if !ok {
				t.Fatalf("Decompose(%q) failed", res.Rune)
			}
			if gi != ii || gm != mi || gf != 0 {
				t.Errorf("round trip (%d,%d,0) -> (%d,%d,%d)", ii, mi, gi, gm, gf)
			}
		}
	}
}

func TestDecomposeRejectsNonSyllables(t *testing.T) {
	for _, r := range []rune{'a', 'ㄱ', SyllableBase - 1, SyllableLast + 1, '漢'} {
		if _, _, _, ok := Decompose(r); ok {
			t.Errorf("Decompose(%q) should fail", r)
		}
	}
}

func TestJamos(t *testing.T) {
	i, m, f, ok := Jamos('한')
	if !ok {
		t.Fatal("Jamos(한) failed")
	}
	if i != "ㅎ" || m != "ㅏ" || f != "ㄴ" {
		t.Errorf("Jamos(한) = %q %q %q", i, m, f)
	}

	if _, _, f, _ := Jamos('하'); f != "" {
		t.Errorf("open syllable final = %q, want empty", f)
	}
}

func TestHasBatchim(t *testing.T) {
	if !HasBatchim('간') {
		t.Error("간 has batchim")
	}
	if HasBatchim('가') {
		t.Error("가 has no batchim")
	}
	if HasBatchim('x') {
		t.Error("non-syllable has no batchim")
	}
}
