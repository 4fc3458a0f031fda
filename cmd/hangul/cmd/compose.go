package cmd

import (
	"fmt"

	"github.com/hodu-dev/hangul/internal/hangul"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose <initial> <vowel> [final]",
	Short: "Compose a syllable block from jamo",
	Long: `Compose a Hangul syllable block from an initial consonant, a vowel
and an optional final consonant (batchim).

Examples:
  hangul compose ㄱ ㅏ      # 가
  hangul compose ㅎ ㅏ ㄴ   # 한
  hangul compose ㅇ ㅏ      # 아 (silent initial)`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	final := ""
	if len(args) == 3 {
		final = args[2]
	}

	result := hangul.Compose(args[0], args[1], final)

	fmt.Printf("Syllable: %s\n", result.Text)

	if result.Fallback {
		fmt.Println("  (not a composable jamo pair; showing raw letters)")
		return nil
	}

	fmt.Printf("  Codepoint:  U+%04X\n", result.Rune)
	fmt.Printf("  Romanized:  %s\n", hangul.RomanizeSyllable(result.Rune))

	if key, ok := hangul.RomanizedKey(result.Rune); ok {
		fmt.Printf("  Audio key:  %s\n", key)
	} else {
		fmt.Println("  Audio key:  none (closed syllable, spoken via TTS)")
	}

	return nil
}
