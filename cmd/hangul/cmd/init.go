package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hodu-dev/hangul/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hangul configuration",
	Long: `Initialize the hangul configuration directory.

This writes a config.yaml with the default playback and TTS settings
and copies the bundled alphabet data next to it, so the tool works from
any directory.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Printf("Initializing configuration in %s\n\n", configDir)

	if err := config.Save(configDir, config.Default()); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}
	fmt.Println("  Created config.yaml")

	// Copy the bundled alphabet data if we can find it.
	dataDest := filepath.Join(configDir, "alphabet.json")
	if _, err := os.Stat(dataDest); os.IsNotExist(err) || force {
		src := filepath.Join("data", "alphabet.json")
		if err := copyFile(src, dataDest); err == nil {
			fmt.Println("  Created alphabet.json")
		}
	}

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'hangul' to launch the trainer")
	fmt.Println("  2. Run 'hangul tts --provider espeak' to pre-generate audio clips")

	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
