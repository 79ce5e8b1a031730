package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pttrag/internal/exporter"
)

func sampleResult() *exporter.Result {
	return &exporter.Result{
		RunID:      "8e2f0f4a-0000-0000-0000-000000000000",
		OutputPath: "chunks.jsonl",
		Articles:   3,
		Lines:      5,
		Skipped:    1,
		SkippedTitles: []string{
			"[原創] 這是一個非常非常非常非常非常非常非常長的標題要被截斷",
		},
		Boards: []exporter.BoardCount{
			{Board: "CFantasy", Articles: 2, Chunks: 4},
			{Board: "", Articles: 1, Chunks: 1},
		},
		Stats: exporter.RunStats{
			Chunks: 5,
			Runes:  exporter.DistStats{Min: 10, Max: 1600, Mean: 820.4, P95: 1600},
			Words:  exporter.DistStats{Min: 5, Max: 900, Mean: 452.5, P95: 900},
		},
		Duration: 1234 * time.Millisecond,
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleResult())

	for _, want := range []string{
		"# Export Run Report",
		"- Run ID: 8e2f0f4a",
		"- Output: chunks.jsonl",
		"- Articles converted: 3",
		"- JSONL lines (chunks): 5",
		"- Articles excluded: 1",
		"- Duration: 1.234s",
		"## Boards",
		"## Chunk statistics",
		"## Excluded titles (sample)",
		"CFantasy",
		"(unknown)",
		"820.4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}

	// The long excluded title must be truncated with an ellipsis.
	if !strings.Contains(out, "…") {
		t.Error("long excluded title should be truncated")
	}
}

func TestRender_TablesAligned(t *testing.T) {
	out := Render(sampleResult())

	var tableLines []string

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			tableLines = append(tableLines, line)
		}
	}

	if len(tableLines) < 4 {
		t.Fatalf("expected table rows, got %d", len(tableLines))
	}

	// Within the boards table the rows pad to equal display width. The
	// header, separator, and both data rows must match.
	width := len(tableLines[0])
	for i := 1; i < 4; i++ {
		if len(tableLines[i]) != width {
			t.Errorf("table row %d width %d, want %d:\n%s", i, len(tableLines[i]), width, tableLines[i])
		}
	}
}

func TestRender_Empty(t *testing.T) {
	out := Render(&exporter.Result{RunID: "id", OutputPath: "out.jsonl"})

	if strings.Contains(out, "## Boards") {
		t.Error("empty run should not render a boards table")
	}

	if strings.Contains(out, "## Chunk statistics") {
		t.Error("empty run should not render statistics")
	}

	if strings.Contains(out, "## Excluded titles") {
		t.Error("empty run should not render excluded titles")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	if err := Write(path, sampleResult()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	if !strings.Contains(string(data), "# Export Run Report") {
		t.Error("written report missing header")
	}
}
