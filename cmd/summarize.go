package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/killallgit/summarizer-api/internal/database"
	"github.com/killallgit/summarizer-api/internal/logging"
	"github.com/killallgit/summarizer-api/internal/models"
	reportsService "github.com/killallgit/summarizer-api/internal/services/reports"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

var (
	summaryType   string
	chunkDuration int
	language      string
	outputFormat  string
	noSave        bool
	quiet         bool
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [video URL or ID]",
	Short: "Summarize a YouTube video",
	Long: `Summarize a YouTube video with timestamps.

Runs the full pipeline in the foreground: fetch the transcript, chunk it,
summarize the whole video and each chunk, extract key quotes, and save the
report.

Examples:
  summarizer-api summarize "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  summarizer-api summarize dQw4w9WgXcQ -t key_points -c 120
  summarizer-api summarize "https://youtu.be/dQw4w9WgXcQ" -t brief -f markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVarP(&summaryType, "summary-type", "t", "", "summary type (detailed, brief, key_points, timestamped)")
	summarizeCmd.Flags().IntVarP(&chunkDuration, "chunk-duration", "c", 0, "transcript chunk duration in seconds")
	summarizeCmd.Flags().StringVarP(&language, "language", "l", "", "preferred transcript language")
	summarizeCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "", "output format for saved files (json, markdown, text, docx)")
	summarizeCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save results to files or the report database")
	summarizeCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if summaryType != "" && !gemini.ValidStyle(summaryType) {
		return fmt.Errorf("invalid summary type %q", summaryType)
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.CreateDirectories(); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := cmd.Context()

	generator, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, cfg.Gemini.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("creating gemini client: %w", err)
	}

	opts := []summarize.ServiceOption{}
	if !noSave {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		defer db.Close()
		if err := db.AutoMigrate(&models.Report{}); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		reportSvc := reportsService.NewService(reportsService.NewRepository(db.DB), cfg.Output, log)
		opts = append(opts, summarize.WithPersister(reportSvc))
	}

	service := summarize.NewService(
		youtube.NewClient(youtube.DefaultClientOptions()),
		generator,
		cfg.Defaults,
		log,
		opts...,
	)

	var progress summarize.ProgressSink
	if !quiet {
		progress = summarize.SinkFunc(func(p summarize.Progress) {
			fmt.Printf("[%3d%%] %s\n", p.Percent, p.Message)
		})
	}

	result := service.Summarize(ctx, summarize.Request{
		URL:           args[0],
		Style:         gemini.Style(summaryType),
		ChunkDuration: chunkDuration,
		Language:      language,
		SaveFiles:     !noSave,
		Persist:       !noSave,
		Progress:      progress,
	})

	if !result.Success {
		fmt.Fprintf(os.Stderr, "Summarization failed: %s\n", result.Error)
		os.Exit(1)
	}

	displayResult(result)
	return nil
}

// displayResult prints a human-readable digest of a completed run.
func displayResult(result *models.Result) {
	fmt.Println()
	fmt.Println("SUMMARY")
	fmt.Println("=======")
	fmt.Printf("Video ID:      %s\n", result.VideoID)
	fmt.Printf("Summary type:  %s\n", result.SummaryType)
	fmt.Printf("Generated:     %s\n", result.RequestedAt.Format(time.RFC3339))
	fmt.Println()

	if result.Summary != nil {
		fmt.Println(result.Summary.Text)
	} else {
		fmt.Println("No summary generated")
	}

	if len(result.ChunkSummaries) > 0 {
		fmt.Println()
		fmt.Println("TIMESTAMPED BREAKDOWN")
		fmt.Println("=====================")
		for _, chunk := range result.ChunkSummaries {
			fmt.Printf("\n%s - %s\n%s\n", chunk.TimestampStart, chunk.TimestampEnd, chunk.Summary)
		}
	}

	if result.KeyQuotes != "" {
		fmt.Println()
		fmt.Println("KEY QUOTES")
		fmt.Println("==========")
		fmt.Println(result.KeyQuotes)
	}
}
