// Package exporter builds chunk records from normalized articles and
// drives the JSONL export run.
package exporter

import (
	"fmt"
	"strings"

	"pttrag/internal/chunker"
	"pttrag/internal/models"
	"pttrag/pkg/fingerprint"
)

// BuildRecords produces one record per chunk of the article's assembled
// content. The dedupe key is computed once from the full content, not per
// chunk, so every chunk of a duplicate article carries the same key. An
// article with no extractable text still yields exactly one record with
// empty content, keeping downstream alignment one-record-per-article.
func BuildRecords(art *models.Article, source string, opts chunker.Options) []models.ChunkRecord {
	dedupeKey := fingerprint.Content(art.Content)

	chunks := chunker.SplitWithTitle(art.Content, art.Title, opts.MaxChars, opts.Overlap)

	totalChunks := len(chunks)
	if totalChunks == 0 {
		totalChunks = 1
		chunks = []string{""}
	}

	records := make([]models.ChunkRecord, 0, len(chunks))

	for idx, chunk := range chunks {
		records = append(records, models.ChunkRecord{
			Content: chunk,
			Metadata: models.ChunkMetadata{
				ID:          compositeID(source, art.Board, art.ID, idx),
				Source:      source,
				URL:         art.URL,
				Board:       art.Board,
				Title:       art.Title,
				Author:      art.Author,
				CreatedAt:   art.CreatedAt,
				Tags:        art.Tags,
				ChunkIndex:  idx,
				TotalChunks: totalChunks,
				HasMedia:    art.HasMedia,
				DedupeKey:   dedupeKey,
			},
		})
	}

	return records
}

// compositeID joins source, board, article id and chunk index with
// underscores, then trims the underscore artifacts empty components leave
// at the edges. Blank upstream ids can collide across articles; that is
// accepted, not guarded against.
func compositeID(source, board, articleID string, idx int) string {
	return strings.Trim(fmt.Sprintf("%s_%s_%s_%d", source, board, articleID, idx), "_")
}
