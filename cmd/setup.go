package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var setupAPIKey string

const envTemplate = `# YouTube Video Summarizer Configuration
# Generated by setup command

# Google Gemini API Key
SUMMARIZER_GEMINI_API_KEY=%s

# Optional: Gemini model configuration
SUMMARIZER_GEMINI_MODEL=gemini-1.5-flash

# Optional: default summary settings
SUMMARIZER_DEFAULTS_SUMMARY_TYPE=detailed
SUMMARIZER_DEFAULTS_CHUNK_DURATION=60

# Optional: output settings
SUMMARIZER_OUTPUT_FORMAT=json
SUMMARIZER_OUTPUT_SAVE_TRANSCRIPTS=true
SUMMARIZER_OUTPUT_SAVE_SUMMARIES=true
`

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a starter .env configuration",
	Long: `Write a .env file in the current directory with the Gemini API key
and commented defaults for the remaining settings.

Example:
  summarizer-api setup --api-key YOUR_KEY`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "", "Google Gemini API key")
	_ = setupCmd.MarkFlagRequired("api-key")
}

func runSetup(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(".env"); err == nil {
		return fmt.Errorf(".env already exists, refusing to overwrite")
	}

	content := fmt.Sprintf(envTemplate, setupAPIKey)
	if err := os.WriteFile(".env", []byte(content), 0600); err != nil {
		return fmt.Errorf("writing .env: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved to .env")
	fmt.Fprintln(cmd.OutOrStdout(), "Try: summarizer-api summarize <video_url>")
	return nil
}
