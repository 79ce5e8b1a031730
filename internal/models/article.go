// Package models defines data structures for the exporter and normalizer.
package models

// Article is a forum article after normalization: canonical field names,
// an ISO-8601 creation time, title tags, and the assembled text (body plus
// rendered replies) that chunking and deduplication operate on.
type Article struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Board     string   `json:"board"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"createdAt"`
	Tags      []string `json:"tags"`
	Content   string   `json:"content"`
	HasMedia  bool     `json:"hasMedia"`
}
