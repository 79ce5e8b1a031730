package models

import "testing"

func TestRawArticle_StringField(t *testing.T) {
	art := RawArticle{
		"title": "文章標題",
		"id":    float64(12345),
	}

	if got := art.StringField("title"); got != "文章標題" {
		t.Errorf("StringField(title) = %q", got)
	}

	if got := art.StringField("id"); got != "12345" {
		t.Errorf("StringField(id) = %q", got)
	}

	if got := art.StringField("missing"); got != "" {
		t.Errorf("StringField(missing) = %q", got)
	}
}

func TestRawArticle_FirstPresent(t *testing.T) {
	art := RawArticle{"board": "", "board_name": "CFantasy"}

	// Presence wins over truthiness.
	if got := art.FirstPresent("board", "board_name"); got != "" {
		t.Errorf("FirstPresent = %q, want empty (board key present)", got)
	}

	if got := art.FirstPresent("nope", "board_name"); got != "CFantasy" {
		t.Errorf("FirstPresent = %q", got)
	}

	if got := art.FirstPresent("nope", "also_nope"); got != "" {
		t.Errorf("FirstPresent = %q, want empty", got)
	}
}

func TestRawArticle_FirstTruthy(t *testing.T) {
	art := RawArticle{"date": "", "created_at": "2024-01-05"}

	if got := art.FirstTruthy("date", "created_at"); got != "2024-01-05" {
		t.Errorf("FirstTruthy = %v", got)
	}

	if got := art.FirstTruthy("date"); got != nil {
		t.Errorf("FirstTruthy = %v, want nil", got)
	}
}

func TestRawArticle_Messages(t *testing.T) {
	art := RawArticle{
		"messages": []any{
			map[string]any{"push_content": "推"},
			"not a mapping",
			map[string]any{"push_content": "再推"},
		},
	}

	msgs := art.Messages()

	if len(msgs) != 2 {
		t.Fatalf("Messages = %d entries, want 2", len(msgs))
	}

	if msgs[0].StringField("push_content") != "推" {
		t.Errorf("first message = %v", msgs[0])
	}

	if (RawArticle{}).Messages() != nil {
		t.Error("missing messages should return nil")
	}

	if (RawArticle{"messages": "oops"}).Messages() != nil {
		t.Error("malformed messages should return nil")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: false},
		{name: "false", value: false, want: false},
		{name: "true", value: true, want: true},
		{name: "empty string", value: "", want: false},
		{name: "string", value: "x", want: true},
		{name: "zero", value: float64(0), want: false},
		{name: "number", value: float64(3), want: true},
		{name: "empty list", value: []any{}, want: false},
		{name: "list", value: []any{1}, want: true},
		{name: "empty map", value: map[string]any{}, want: false},
		{name: "map", value: map[string]any{"k": 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.value); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "文字", want: "文字"},
		{name: "integral float", value: float64(42), want: "42"},
		{name: "fractional float", value: float64(1.5), want: "1.5"},
		{name: "bool", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.value); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
