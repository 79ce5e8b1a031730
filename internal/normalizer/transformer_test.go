package normalizer

import (
	"reflect"
	"testing"
)

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer()
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer()

	item := map[string]any{
		"id":            "M.1700000000.A.123",
		"url":           "https://www.ptt.cc/bbs/CFantasy/M.1700000000.A.123.html",
		"board":         "CFantasy",
		"author":        "somebody",
		"date":          "2024/01/05 10:30",
		"article_title": "[情報][閒聊] 新書消息",
		"content":       "主文",
		"has_media":     true,
		"messages": []any{
			map[string]any{"push_content": "推"},
		},
	}

	art := tr.Transform(item)

	if art.ID != "M.1700000000.A.123" {
		t.Errorf("ID = %q", art.ID)
	}

	if art.Board != "CFantasy" {
		t.Errorf("Board = %q", art.Board)
	}

	if art.CreatedAt != "2024-01-05T10:30:00" {
		t.Errorf("CreatedAt = %q", art.CreatedAt)
	}

	if !reflect.DeepEqual(art.Tags, []string{"情報", "閒聊"}) {
		t.Errorf("Tags = %v", art.Tags)
	}

	if art.Content != "主文 | 推文: 推" {
		t.Errorf("Content = %q", art.Content)
	}

	if !art.HasMedia {
		t.Error("HasMedia should be true")
	}
}

func TestTransformer_Transform_IDFallbacks(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name string
		item map[string]any
		want string
	}{
		{name: "id wins", item: map[string]any{"id": "a", "aid": "b"}, want: "a"},
		{name: "empty id falls through", item: map[string]any{"id": "", "aid": "b"}, want: "b"},
		{name: "article_id", item: map[string]any{"article_id": "c"}, want: "c"},
		{name: "underscore id", item: map[string]any{"_id": "d"}, want: "d"},
		{name: "numeric id", item: map[string]any{"id": float64(42)}, want: "42"},
		{name: "none", item: map[string]any{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Transform(tt.item).ID; got != tt.want {
				t.Errorf("ID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformer_Transform_BoardByPresence(t *testing.T) {
	tr := NewTransformer()

	// board resolves by key presence, so an empty board key wins over a
	// populated board_name.
	art := tr.Transform(map[string]any{"board": "", "board_name": "Gossiping"})
	if art.Board != "" {
		t.Errorf("Board = %q, want empty (board key present)", art.Board)
	}

	art = tr.Transform(map[string]any{"board_name": "Gossiping"})
	if art.Board != "Gossiping" {
		t.Errorf("Board = %q, want Gossiping", art.Board)
	}
}

func TestTransformer_Transform_CreatedAtFallbacks(t *testing.T) {
	tr := NewTransformer()

	art := tr.Transform(map[string]any{"created_at": "2024-03-01"})
	if art.CreatedAt != "2024-03-01T00:00:00" {
		t.Errorf("CreatedAt = %q", art.CreatedAt)
	}

	// date is empty, so the chain falls through to time.
	art = tr.Transform(map[string]any{"date": "", "time": "2024-03-02"})
	if art.CreatedAt != "2024-03-02T00:00:00" {
		t.Errorf("CreatedAt = %q", art.CreatedAt)
	}
}

func TestTransformer_Transform_NotAMapping(t *testing.T) {
	tr := NewTransformer()

	art := tr.Transform("raw string element")
	if art.Content != "raw string element" {
		t.Errorf("Content = %q", art.Content)
	}

	if art.Title != "" || art.ID != "" || art.HasMedia {
		t.Error("non-mapping article should default every other field")
	}

	if art.Tags == nil || len(art.Tags) != 0 {
		t.Errorf("Tags = %v, want empty list", art.Tags)
	}
}

func TestTransformer_ExtractTitleTags(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		title string
		want  []string
	}{
		{title: "[情報] 測試", want: []string{"情報"}},
		{title: "[情報][閒聊] X", want: []string{"情報", "閒聊"}},
		{title: "無標籤", want: []string{}},
		{title: "", want: []string{}},
		{title: "[ 空白 ] Y", want: []string{"空白"}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := tr.ExtractTitleTags(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTitleTags(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestTransformer_Transform_HasMediaTruthiness(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool true", value: true, want: true},
		{name: "bool false", value: false, want: false},
		{name: "nonzero number", value: float64(1), want: true},
		{name: "zero number", value: float64(0), want: false},
		{name: "non-empty string", value: "yes", want: true},
		{name: "empty string", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := tr.Transform(map[string]any{"has_media": tt.value})
			if art.HasMedia != tt.want {
				t.Errorf("HasMedia = %v, want %v", art.HasMedia, tt.want)
			}
		})
	}
}
