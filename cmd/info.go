package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/summarizer-api/internal/logging"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [video URL or ID]",
	Short: "Show available transcripts for a video",
	Long: `Resolve a video URL or ID and list its available caption tracks
without running a summarization.

Example:
  summarizer-api info "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	// The info command never calls the model; a nil generator avoids
	// constructing a real Gemini client.
	service := summarize.NewService(
		youtube.NewClient(youtube.DefaultClientOptions()),
		gemini.NewClientWithGenerator(nil, cfg.Gemini.Model, cfg.Gemini.MaxRetries, log),
		cfg.Defaults,
		log,
	)

	info, err := service.VideoInfo(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Video ID:  %s\n", info.VideoID)
	fmt.Printf("Video URL: %s\n", info.VideoURL)
	fmt.Println()

	if len(info.Transcripts) == 0 {
		fmt.Println("No transcripts available for this video")
		return nil
	}

	fmt.Println("Available transcripts:")
	fmt.Printf("%-24s %-8s %-10s %s\n", "Language", "Code", "Generated", "Translatable")
	for _, track := range info.Transcripts {
		fmt.Printf("%-24s %-8s %-10s %s\n",
			track.Language,
			track.LanguageCode,
			yesNo(track.IsGenerated),
			yesNo(track.IsTranslatable),
		)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
