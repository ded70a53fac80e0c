package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/killallgit/summarizer-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "summarizer-api",
	Short: "YouTube video summarizer",
	Long: `YouTube Summarizer - Extract and summarize YouTube video content using Gemini AI

This tool fetches transcripts from YouTube videos and generates intelligent
summaries with timestamps using Google's Gemini model.

Features:
  • Transcript extraction with language selection
  • Time-bucketed chunk summaries with timestamp ranges
  • Combined summaries and key quote extraction
  • Report persistence in JSON, Markdown, text, and DOCX formats
  • HTTP API with async jobs and progress over WebSocket`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig loads the configuration when a command needs it.
// Commands that work without config (version, setup, help) are skipped.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil {
		switch cmd.Name() {
		case "version", "help", "setup", rootCmd.Name():
			return
		}
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if f := rootCmd.PersistentFlags().Lookup("json-logs"); f != nil && f.Changed {
		if f.Value.String() == "true" {
			viper.Set("logging.format", "json")
		} else {
			viper.Set("logging.format", "text")
		}
	}
}
