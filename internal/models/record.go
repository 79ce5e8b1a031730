package models

// ChunkMetadata carries the retrieval metadata attached to every chunk.
// All chunks of one article share everything except ID, ChunkIndex and
// their position-dependent content.
type ChunkMetadata struct {
	// ID is the composite identifier source_board_articleID_chunkIndex
	// with leading/trailing underscore artifacts trimmed.
	ID          string   `json:"id"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Board       string   `json:"board"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	CreatedAt   string   `json:"created_at"`
	Tags        []string `json:"tags"`
	ChunkIndex  int      `json:"chunk_index"`
	TotalChunks int      `json:"total_chunks"`
	HasMedia    bool     `json:"has_media"`
	// DedupeKey is computed once per article from the full assembled
	// content, so chunks of duplicate articles group together downstream.
	DedupeKey string `json:"dedupe_key"`
}

// ChunkRecord is one output line of the JSONL export.
type ChunkRecord struct {
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}
