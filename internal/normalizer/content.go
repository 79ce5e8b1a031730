package normalizer

import (
	"strings"

	"pttrag/internal/models"
)

const (
	// ReplyLabel prefixes every rendered reply line.
	ReplyLabel = "推文: "
	// contentSep joins the article body with the reply block.
	contentSep = " | "
)

// ExtractReplies renders the reply messages as labeled lines joined by
// newlines, preserving input order. Messages without reply text contribute
// nothing; an empty input yields an empty string.
func ExtractReplies(messages []models.RawArticle) string {
	var lines []string

	for _, msg := range messages {
		if !msg.TruthyField("push_content") {
			continue
		}

		lines = append(lines, ReplyLabel+msg.StringField("push_content"))
	}

	return strings.Join(lines, "\n")
}

// AssembleContent produces the article's flattened text: the body followed
// by the rendered reply block, non-empty parts joined by " | ". The result
// is deterministic for a given article; it is both the chunking source and
// the dedupe basis.
func AssembleContent(art models.RawArticle) string {
	body := art.StringField("content")
	replies := ExtractReplies(art.Messages())

	var parts []string

	if body != "" {
		parts = append(parts, body)
	}

	if replies != "" {
		parts = append(parts, replies)
	}

	return strings.Join(parts, contentSep)
}
