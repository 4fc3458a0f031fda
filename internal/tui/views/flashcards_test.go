package views

import (
	"strings"
	"testing"

	"github.com/hodu-dev/hangul/internal/data"
)

func TestRenderBreakdownBox(t *testing.T) {
	w := data.Word{
		Korean:       "안녕",
		Romanization: "annyeong",
		Syllables:    []string{"안", "녕"},
		Breakdown: []data.Breakdown{
			{Initial: "ㅇ", Vowel: "ㅏ", Final: "ㄴ"},
			{Initial: "ㄴ", Vowel: "ㅕ", Final: "ㅇ"},
		},
	}

	out := renderBreakdownBox(w)
	for _, want := range []string{"안", "녕", "ㅇ + ㅏ + ㄴ", "an"} {
		if !strings.Contains(out, want) {
			t.Errorf("breakdown box missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBreakdownBoxEmptySyllable(t *testing.T) {
	// A malformed document could carry an empty syllable string; the
	// renderer must skip the romanization rather than index into it.
	w := data.Word{
		Korean:       "가",
		Romanization: "ga",
		Syllables:    []string{"가", ""},
		Breakdown: []data.Breakdown{
			{Initial: "ㄱ", Vowel: "ㅏ"},
		},
	}

	out := renderBreakdownBox(w)
	if !strings.Contains(out, "가") {
		t.Errorf("breakdown box missing the syllable:\n%s", out)
	}
}
