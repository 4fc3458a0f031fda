package cmd

import (
	"fmt"

	"github.com/hodu-dev/hangul/internal/anki"
	"github.com/spf13/cobra"
)

var (
	ankiOutput string
	ankiDeck   string
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Export the vocabulary as an Anki deck",
	Long: `Export every flashcard word as an Anki package (.apkg).

Each word becomes a note with recognition and recall cards. Word audio
clips found under the asset directory are bundled into the package and
referenced from the cards.

Examples:
  hangul anki
  hangul anki -o korean.apkg --deck "Korean Starter"`,
	RunE: runAnki,
}

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.Flags().StringVarP(&ankiOutput, "output", "o", "hangul.apkg", "output package path")
	ankiCmd.Flags().StringVar(&ankiDeck, "deck", "Hangul Vocabulary", "deck name")
}

func runAnki(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	exporter := anki.NewExporter(ankiDeck, assetRoot(cfg))
	if err := exporter.Export(doc, ankiOutput); err != nil {
		return fmt.Errorf("exporting deck: %w", err)
	}

	fmt.Printf("Exported %d words to %s\n", doc.WordCount(), ankiOutput)
	return nil
}
