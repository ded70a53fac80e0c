package gemini

import (
	"fmt"
	"strings"
)

const basePromptFormat = `
Please analyze and summarize the following YouTube video transcript. The transcript includes timestamps in [MM:SS] or [HH:MM:SS] format.

TRANSCRIPT:
%s

`

const detailedInstructions = `
Please provide a detailed summary that includes:
1. Main topic and purpose of the video
2. Key points discussed (with timestamps)
3. Important details and examples mentioned
4. Conclusions or takeaways
5. Any actionable advice or recommendations

Format your response with clear headings and preserve relevant timestamps for key points.
`

const briefInstructions = `
Please provide a brief summary (2-3 paragraphs) that captures:
1. The main topic and purpose
2. The most important key points
3. The primary conclusion or takeaway

Keep it concise but informative.
`

const keyPointsInstructions = `
Please extract the key points from this video as a bulleted list. Include:
1. Main ideas discussed
2. Important facts or statistics mentioned
3. Recommendations or advice given
4. Any tools, resources, or references mentioned

Format as clear bullet points with timestamps where relevant.
`

const timestampedInstructions = `
Please create a timestamped summary that breaks down the video content by time segments. Include:
1. What is discussed in each major time segment
2. Key quotes or important statements (with exact timestamps)
3. Topic transitions and flow
4. Any resources or links mentioned

Format this as a chronological breakdown with clear timestamps.
`

// SummaryPrompt builds the request text for summarizing a transcript in the
// given style. An unrecognized style falls back to the detailed template.
func SummaryPrompt(transcriptText string, style Style) string {
	base := fmt.Sprintf(basePromptFormat, transcriptText)

	switch style {
	case StyleBrief:
		return base + briefInstructions
	case StyleKeyPoints:
		return base + keyPointsInstructions
	case StyleTimestamped:
		return base + timestampedInstructions
	default:
		return base + detailedInstructions
	}
}

const combinedPromptFormat = `
Based on the following timestamped summaries of a YouTube video, please create a comprehensive overall summary:

%s

Please provide:
1. A clear overview of the entire video's content
2. The main themes and topics covered
3. Key insights and takeaways
4. Important timestamps for reference
5. Any actionable advice or recommendations mentioned

Create a well-structured summary that gives someone a complete understanding of the video's content.
`

// CombinedSummaryPrompt builds the synthesis request from per-chunk
// summaries, each tagged with its timestamp range.
func CombinedSummaryPrompt(chunkSummaries []ChunkSummary) string {
	sections := make([]string, 0, len(chunkSummaries))
	for _, chunk := range chunkSummaries {
		sections = append(sections, fmt.Sprintf("**%s - %s:**\n%s",
			chunk.TimestampStart, chunk.TimestampEnd, chunk.Summary))
	}

	return fmt.Sprintf(combinedPromptFormat, strings.Join(sections, "\n\n"))
}

const keyQuotesPromptFormat = `
Analyze the following transcript and extract the most important quotes, statements, or key phrases.
Include the timestamp for each quote.

TRANSCRIPT:
%s

Please extract 5-10 of the most important or memorable quotes/statements and format them as:
- [Timestamp] "Quote text" - Brief context or explanation

Focus on:
1. Key insights or wisdom shared
2. Important facts or statistics
3. Memorable or quotable statements
4. Actionable advice
5. Surprising or interesting information
`

// KeyQuotesPrompt builds the request for extracting notable timestamped
// quotes from a transcript.
func KeyQuotesPrompt(transcriptText string) string {
	return fmt.Sprintf(keyQuotesPromptFormat, transcriptText)
}
