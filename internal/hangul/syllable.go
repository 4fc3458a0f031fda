package hangul

// ComposeResult is the outcome of composing a jamo triple. Composition
// never fails outright: when the initial or vowel is unknown the raw
// characters are concatenated instead, and Fallback marks the result so
// callers can surface the degraded case.
type ComposeResult struct {
	Text     string
	Rune     rune // valid only when Fallback is false
	Fallback bool
}

// Compose builds a syllable block from an initial consonant, a vowel
// and an optional final consonant (pass "" for none). An unknown final
// is treated as absent rather than rejected.
func Compose(initial, medial, final string) ComposeResult {
	ii, ok := InitialIndex(initial)
	if !ok {
		return ComposeResult{Text: initial + medial + final, Fallback: true}
	}
	mi, ok := MedialIndex(medial)
	if !ok {
		return ComposeResult{Text: initial + medial + final, Fallback: true}
	}
	fi := 0
	if final != "" {
		if i, ok := FinalIndex(final); ok {
			fi = i
		}
	}

	r := SyllableBase + rune((ii*MedialCount+mi)*FinalCount+fi)
	return ComposeResult{Text: string(r), Rune: r}
}

// Decompose splits a precomposed syllable back into its table indices.
// Purely arithmetic, the inverse of the composition formula.
func Decompose(r rune) (initial, medial, final int, ok bool) {
	if r < SyllableBase || r > SyllableLast {
		return 0, 0, 0, false
	}
	offset := int(r - SyllableBase)
	final = offset % FinalCount
	medial = (offset / FinalCount) % MedialCount
	initial = offset / (FinalCount * MedialCount)
	return initial, medial, final, true
}

// HasBatchim reports whether a syllable carries a final consonant.
func HasBatchim(r rune) bool {
	_, _, fi, ok := Decompose(r)
	return ok && fi != 0
}

// Jamos returns the jamo strings of a syllable. The final is "" for an
// open syllable.
func Jamos(r rune) (initial, medial, final string, ok bool) {
	ii, mi, fi, ok := Decompose(r)
	if !ok {
		return "", "", "", false
	}
	return Initials[ii], Medials[mi], Finals[fi], true
}
