package normalizer

import (
	"regexp"
	"strings"

	"pttrag/internal/models"
)

// Transformer normalizes raw articles into canonical form.
type Transformer struct {
	tagPattern *regexp.Regexp
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		tagPattern: regexp.MustCompile(`\[(.+?)\]`),
	}
}

// Transform converts one element of the article collection into canonical
// form. Field names vary across crawler generations, so every field is
// resolved through a prioritized key list with a default; nothing here
// fails. An element that is not an object keeps its string representation
// as the body and defaults everywhere else.
func (t *Transformer) Transform(item any) *models.Article {
	raw, ok := item.(map[string]any)
	if !ok {
		return &models.Article{
			Tags:    []string{},
			Content: models.Stringify(item),
		}
	}

	art := models.RawArticle(raw)
	title := art.StringField("article_title")

	return &models.Article{
		ID:        models.Stringify(art.FirstTruthy("id", "aid", "article_id", "_id")),
		URL:       art.StringField("url"),
		Board:     art.FirstPresent("board", "board_name"),
		Title:     title,
		Author:    art.StringField("author"),
		CreatedAt: NormalizeDatetime(art.FirstTruthy("date", "created_at", "time")),
		Tags:      t.ExtractTitleTags(title),
		Content:   AssembleContent(art),
		HasMedia:  art.TruthyField("has_media"),
	}
}

// ExtractTitleTags scans a title for bracketed segments such as
// [情報][閒聊] and returns them trimmed, in order of appearance. Titles
// without brackets yield an empty (never nil) list.
func (t *Transformer) ExtractTitleTags(title string) []string {
	tags := []string{}
	if title == "" {
		return tags
	}

	for _, match := range t.tagPattern.FindAllStringSubmatch(title, -1) {
		if tag := strings.TrimSpace(match[1]); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
