// Package cmd contains all CLI commands for the hangul tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/config"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hangul",
	Short: "Learn the Korean alphabet in your terminal",
	Long: `hangul is a terminal trainer for the Korean alphabet.

It covers:
  - the 19 consonants and 21 vowels with pronunciation audio
  - syllable block composition (initial + vowel + optional final)
  - flashcards for starter vocabulary
  - Anki deck export and speech clip pre-generation

Running 'hangul' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/hangul)")
	rootCmd.PersistentFlags().String("data", "", "alphabet data file")

	viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("HANGUL")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig reads config.yaml, falling back to defaults when none
// exists.
func loadUserConfig() *config.Config {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	return cfg
}

// findDataFile resolves the alphabet document path: flag, config, then
// conventional locations.
func findDataFile(cfg *config.Config) (string, error) {
	candidates := []string{}
	if flagPath := viper.GetString("data_file"); flagPath != "" {
		candidates = append(candidates, flagPath)
	}
	if cfg.DataFile != "" {
		candidates = append(candidates, cfg.DataFile)
	}
	candidates = append(candidates,
		filepath.Join("data", "alphabet.json"),
		filepath.Join(getConfigDir(), "alphabet.json"),
	)
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "data", "alphabet.json"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("alphabet data not found; looked in %v", candidates)
}

// loadDocument loads and validates the alphabet document.
func loadDocument(cfg *config.Config) (*data.Document, error) {
	path, err := findDataFile(cfg)
	if err != nil {
		return nil, err
	}
	return data.Load(path)
}

// assetRoot is the directory audio paths are resolved against.
func assetRoot(cfg *config.Config) string {
	if cfg.AssetDir != "" {
		return cfg.AssetDir
	}
	return "."
}

// newPlayer builds the playback coordinator from the user config.
func newPlayer(cfg *config.Config) *audio.Player {
	synth := audio.NewESpeak(cfg.Audio.ESpeakVoice, cfg.Audio.ESpeakSpeed)
	return audio.NewPlayer(assetRoot(cfg), audio.ExecBackend{}, synth)
}

// runTUI launches the unified TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	doc, err := loadDocument(cfg)
	if err != nil {
		// The TUI still runs; the file picker can load data later.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	p := tea.NewProgram(
		tui.NewApp(doc, cfg, newPlayer(cfg)),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
