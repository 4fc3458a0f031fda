package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/hangul"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <text>",
	Short: "Decompose Hangul text into jamo",
	Long: `Look up Hangul text and display, per syllable:
  - the jamo decomposition (initial, vowel, final)
  - the romanization
  - the pre-generated audio clip key, if the syllable has one
  - letter notes from the alphabet data, when available

Example:
  hangul lookup 한국
  hangul lookup 안녕하세요`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	// Letter notes are optional; lookup works without the data file.
	doc, err := loadDocument(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	input := strings.Join(args, " ")
	fmt.Printf("Looking up: %s\n\n", input)

	if doc != nil {
		if w := doc.FindWord(input); w != nil {
			fmt.Printf("Word: %s (%s) — %s\n\n", w.Korean, w.Romanization, w.English)
		}
	}

	for _, r := range input {
		if r == ' ' {
			continue
		}

		initial, vowel, final, ok := hangul.Jamos(r)
		if !ok {
			fmt.Printf("%c: not a Hangul syllable\n\n", r)
			continue
		}

		fmt.Printf("Syllable: %c (U+%04X)\n", r, r)
		fmt.Printf("  Initial: %s\n", displayJamo(initial, doc))
		fmt.Printf("  Vowel:   %s\n", displayJamo(vowel, doc))
		if final != "" {
			fmt.Printf("  Final:   %s (batchim)\n", displayJamo(final, doc))
		}
		fmt.Printf("  Romanized: %s\n", hangul.RomanizeSyllable(r))

		if key, ok := hangul.RomanizedKey(r); ok {
			fmt.Printf("  Audio key: %s\n", key)
		} else {
			fmt.Println("  Audio key: none (closed syllable)")
		}
		fmt.Println()
	}

	return nil
}

// displayJamo annotates a jamo with its letter data when loaded.
func displayJamo(jamo string, doc *data.Document) string {
	if doc == nil {
		return jamo
	}
	l := doc.Letter(jamo)
	if l == nil {
		return jamo
	}

	out := fmt.Sprintf("%s → %s", jamo, l.Romanization)
	if l.Type != "" {
		out += fmt.Sprintf(" (%s)", l.Type)
	}
	return out
}
