// Package chunker splits article text into overlapping fixed-size windows
// for retrieval indexing. Sizes are measured in runes, not bytes, so
// Chinese corpora chunk the same way regardless of encoding width.
package chunker

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxChars is the default window size in runes.
	DefaultMaxChars = 1600
	// DefaultOverlap is the default number of runes shared by consecutive
	// windows.
	DefaultOverlap = 200

	// TitlePrefixLabel labels the title prefix prepended to each chunk.
	TitlePrefixLabel = "標題: "
	// TitlePrefixSep separates the title prefix from the chunk body.
	TitlePrefixSep = " | "
)

// Options configures chunking behavior.
type Options struct {
	MaxChars int // maximum runes per chunk
	Overlap  int // runes shared between consecutive chunks
}

// DefaultOptions returns the standard chunking parameters.
func DefaultOptions() Options {
	return Options{
		MaxChars: DefaultMaxChars,
		Overlap:  DefaultOverlap,
	}
}

// Split walks a window of maxChars runes across the trimmed text without
// gaps. Every chunk except possibly the last is exactly maxChars long and
// consecutive chunks overlap by exactly overlap runes (unless fewer runes
// remain). Empty text yields no chunks. A non-positive maxChars returns
// the whole text as a single chunk. An overlap of maxChars or more is
// clamped to maxChars-1 so the window always advances.
func Split(text string, maxChars, overlap int) []string {
	trimmed := []rune(strings.TrimSpace(text))
	if len(trimmed) == 0 {
		return nil
	}

	if maxChars <= 0 {
		return []string{string(trimmed)}
	}

	if overlap >= maxChars {
		overlap = maxChars - 1
	}

	var chunks []string

	start := 0
	length := len(trimmed)

	for start < length {
		end := start + maxChars
		if end > length {
			end = length
		}

		chunks = append(chunks, string(trimmed[start:end]))

		if end == length {
			break
		}

		start = end - overlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}

// SplitWithTitle chunks text with a title prefix on every chunk. The prefix
// length is subtracted from maxChars first, so a prefixed chunk never
// exceeds the original budget. A title longer than the budget degrades to
// the single-chunk guard case of Split. An empty title returns the
// unprefixed chunks unchanged.
func SplitWithTitle(text, title string, maxChars, overlap int) []string {
	if title == "" {
		return Split(text, maxChars, overlap)
	}

	prefix := TitlePrefixLabel + title + TitlePrefixSep
	adjusted := maxChars - utf8.RuneCountInString(prefix)

	chunks := Split(text, adjusted, overlap)

	prefixed := make([]string, len(chunks))
	for i, chunk := range chunks {
		prefixed[i] = prefix + chunk
	}

	return prefixed
}
