package components

import "testing"

func TestAnalyzeOpenSyllable(t *testing.T) {
	r := Analyze("ㄱ", "ㅏ", "")

	if r.Fallback {
		t.Fatalf("Analyze(ㄱ,ㅏ) unexpectedly fell back")
	}
	if r.Syllable != "가" {
		t.Errorf("Syllable = %q, want 가", r.Syllable)
	}
	if r.Romanized != "ga" {
		t.Errorf("Romanized = %q, want ga", r.Romanized)
	}
	if !r.HasClip || r.ClipKey != "ga" {
		t.Errorf("ClipKey = %q (HasClip=%v), want ga", r.ClipKey, r.HasClip)
	}
	if r.HasBatchim {
		t.Errorf("HasBatchim = true for open syllable")
	}
}

func TestAnalyzeClosedSyllableHasNoClip(t *testing.T) {
	r := Analyze("ㅎ", "ㅏ", "ㄴ")

	if r.Syllable != "한" {
		t.Fatalf("Syllable = %q, want 한", r.Syllable)
	}
	if !r.HasBatchim {
		t.Errorf("HasBatchim = false, want true")
	}
	if r.HasClip {
		t.Errorf("closed syllable got clip key %q", r.ClipKey)
	}
}

func TestAnalyzeSilentInitialKeepsVowelSuffix(t *testing.T) {
	r := Analyze("ㅇ", "ㅏ", "")

	if r.Syllable != "아" {
		t.Fatalf("Syllable = %q, want 아", r.Syllable)
	}
	if r.ClipKey != "a_vowel" {
		t.Errorf("ClipKey = %q, want a_vowel", r.ClipKey)
	}
}

func TestAnalyzeUnknownJamoFallsBack(t *testing.T) {
	r := Analyze("x", "ㅏ", "")

	if !r.Fallback {
		t.Fatalf("expected fallback for unknown initial")
	}
	if r.HasClip || r.Romanized != "" {
		t.Errorf("fallback result carried derived fields: %+v", r)
	}
}

func TestAnalyzeRune(t *testing.T) {
	r, ok := AnalyzeRune('국')
	if !ok {
		t.Fatalf("AnalyzeRune(국) not recognized")
	}
	if r.Initial != "ㄱ" || r.Vowel != "ㅜ" || r.Final != "ㄱ" {
		t.Errorf("jamos = %s %s %s, want ㄱ ㅜ ㄱ", r.Initial, r.Vowel, r.Final)
	}
	if r.Romanized != "guk" {
		t.Errorf("Romanized = %q, want guk", r.Romanized)
	}

	if _, ok := AnalyzeRune('q'); ok {
		t.Errorf("AnalyzeRune(q) = ok, want not ok")
	}
}
