package reports

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/killallgit/summarizer-api/internal/models"
	"github.com/killallgit/summarizer-api/pkg/gemini"
)

// summaryDocument is the structured (JSON) report layout. Metadata keys are
// carried verbatim; the document renderers humanize them instead.
type summaryDocument struct {
	VideoInfo       videoInfo             `json:"video_info"`
	Summary         *string               `json:"summary"`
	ChunkSummaries  []gemini.ChunkSummary `json:"chunk_summaries"`
	CombinedSummary *string               `json:"combined_summary"`
	KeyQuotes       *string               `json:"key_quotes"`
	Metadata        map[string]any        `json:"metadata"`
	Timestamp       string                `json:"timestamp"`
}

type videoInfo struct {
	VideoID     string       `json:"video_id"`
	VideoURL    string       `json:"video_url"`
	SummaryType gemini.Style `json:"summary_type"`
}

func renderJSON(result *models.Result) ([]byte, error) {
	doc := summaryDocument{
		VideoInfo: videoInfo{
			VideoID:     result.VideoID,
			VideoURL:    result.VideoURL,
			SummaryType: result.SummaryType,
		},
		ChunkSummaries: result.ChunkSummaries,
		Metadata:       result.Metadata,
		Timestamp:      result.RequestedAt.Format(time.RFC3339),
	}
	if result.Summary != nil {
		doc.Summary = &result.Summary.Text
	}
	if result.CombinedSummary != nil {
		doc.CombinedSummary = &result.CombinedSummary.Text
	}
	if result.KeyQuotes != "" {
		doc.KeyQuotes = &result.KeyQuotes
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}

func renderMarkdown(result *models.Result) []byte {
	var b strings.Builder

	b.WriteString("# YouTube Video Summary\n\n")
	fmt.Fprintf(&b, "**Video ID:** %s  \n", result.VideoID)
	fmt.Fprintf(&b, "**Video URL:** %s  \n", result.VideoURL)
	fmt.Fprintf(&b, "**Summary Type:** %s  \n", result.SummaryType)
	fmt.Fprintf(&b, "**Generated:** %s  \n", result.RequestedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Model:** %s\n\n", modelUsed(result))

	b.WriteString("## Main Summary\n\n")
	b.WriteString(mainSummaryText(result))
	b.WriteString("\n\n")

	if len(result.ChunkSummaries) > 0 {
		b.WriteString("## Timestamped Breakdown\n\n")
		for _, chunk := range result.ChunkSummaries {
			fmt.Fprintf(&b, "### %s - %s\n\n", chunk.TimestampStart, chunk.TimestampEnd)
			fmt.Fprintf(&b, "%s\n\n", chunk.Summary)
		}
	}

	if result.CombinedSummary != nil {
		b.WriteString("## Combined Summary\n\n")
		fmt.Fprintf(&b, "%s\n\n", result.CombinedSummary.Text)
	}

	if result.KeyQuotes != "" {
		b.WriteString("## Key Quotes\n\n")
		fmt.Fprintf(&b, "%s\n\n", result.KeyQuotes)
	}

	b.WriteString("## Metadata\n\n")
	for _, key := range sortedMetadataKeys(result.Metadata) {
		fmt.Fprintf(&b, "- **%s:** %v\n", humanizeKey(key), result.Metadata[key])
	}

	return []byte(b.String())
}

func renderText(result *models.Result) []byte {
	rule := strings.Repeat("=", 50)
	var b strings.Builder

	b.WriteString("YOUTUBE VIDEO SUMMARY\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Video ID: %s\n", result.VideoID)
	fmt.Fprintf(&b, "Video URL: %s\n", result.VideoURL)
	fmt.Fprintf(&b, "Summary Type: %s\n", result.SummaryType)
	fmt.Fprintf(&b, "Generated: %s\n", result.RequestedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Model: %s\n\n", modelUsed(result))

	b.WriteString("MAIN SUMMARY\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(mainSummaryText(result))
	b.WriteString("\n\n")

	if len(result.ChunkSummaries) > 0 {
		b.WriteString("TIMESTAMPED BREAKDOWN\n")
		b.WriteString(rule + "\n\n")
		for _, chunk := range result.ChunkSummaries {
			fmt.Fprintf(&b, "%s - %s\n", chunk.TimestampStart, chunk.TimestampEnd)
			b.WriteString(strings.Repeat("-", 30) + "\n")
			fmt.Fprintf(&b, "%s\n\n", chunk.Summary)
		}
	}

	if result.CombinedSummary != nil {
		b.WriteString("COMBINED SUMMARY\n")
		b.WriteString(rule + "\n\n")
		fmt.Fprintf(&b, "%s\n\n", result.CombinedSummary.Text)
	}

	if result.KeyQuotes != "" {
		b.WriteString("KEY QUOTES\n")
		b.WriteString(rule + "\n\n")
		fmt.Fprintf(&b, "%s\n\n", result.KeyQuotes)
	}

	b.WriteString("METADATA\n")
	b.WriteString(rule + "\n\n")
	for _, key := range sortedMetadataKeys(result.Metadata) {
		fmt.Fprintf(&b, "%s: %v\n", humanizeKey(key), result.Metadata[key])
	}

	return []byte(b.String())
}

func mainSummaryText(result *models.Result) string {
	if result.Summary == nil {
		return "No summary generated"
	}
	return result.Summary.Text
}

func modelUsed(result *models.Result) string {
	if v, ok := result.Metadata[models.MetaModelUsed]; ok {
		return fmt.Sprintf("%v", v)
	}
	return "Unknown"
}

func sortedMetadataKeys(metadata map[string]any) []string {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// humanizeKey turns a metadata key like "compression_ratio" into
// "Compression Ratio" for the document renderings.
func humanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
