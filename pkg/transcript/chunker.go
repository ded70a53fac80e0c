package transcript

import (
	"fmt"
	"strings"
)

// ChunkByDuration groups an ordered transcript into contiguous time-bucketed
// chunks of roughly chunkDuration seconds. Entries are assumed to arrive in
// non-decreasing start order.
//
// A chunk is closed when the next entry's start is at least chunkDuration
// past the current chunk's start time; boundaries always align to entry
// starts, so a chunk whose first entry is long can span more than
// chunkDuration. The final open chunk is emitted regardless of size.
//
// An empty transcript yields an empty result. chunkDuration must be positive.
func ChunkByDuration(entries []Entry, chunkDuration int) ([]Chunk, error) {
	if chunkDuration <= 0 {
		return nil, fmt.Errorf("chunk duration must be positive, got %d", chunkDuration)
	}

	chunks := []Chunk{}
	if len(entries) == 0 {
		return chunks, nil
	}

	var current []Entry
	chunkStart := entries[0].Start

	for _, entry := range entries {
		if entry.Start-chunkStart >= float64(chunkDuration) && len(current) > 0 {
			chunks = append(chunks, buildChunk(chunkStart, current))
			current = nil
			chunkStart = entry.Start
		}
		current = append(current, entry)
	}

	if len(current) > 0 {
		chunks = append(chunks, buildChunk(chunkStart, current))
	}

	return chunks, nil
}

func buildChunk(start float64, entries []Entry) Chunk {
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Text)
	}

	end := entries[len(entries)-1].End

	// Copy so later appends to the caller's slice cannot alias chunk members.
	members := make([]Entry, len(entries))
	copy(members, entries)

	return Chunk{
		StartTime:      start,
		EndTime:        end,
		TimestampStart: FormatTimestamp(start),
		TimestampEnd:   FormatTimestamp(end),
		Text:           strings.Join(texts, " "),
		Entries:        members,
	}
}
