// Package report renders a markdown summary of an export run. Table cells
// are padded by display width, not rune count, so CJK board names and
// titles stay aligned in a terminal.
package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"pttrag/internal/exporter"
	"pttrag/pkg/textutil"
)

// titleSampleWidth caps excluded titles at a readable display width.
const titleSampleWidth = 40

// Render produces the markdown run report.
func Render(res *exporter.Result) string {
	var sb strings.Builder

	sb.WriteString("# Export Run Report\n\n")
	sb.WriteString(fmt.Sprintf("- Run ID: %s\n", res.RunID))
	sb.WriteString(fmt.Sprintf("- Output: %s\n", res.OutputPath))
	sb.WriteString(fmt.Sprintf("- Articles converted: %d\n", res.Articles))
	sb.WriteString(fmt.Sprintf("- JSONL lines (chunks): %d\n", res.Lines))
	sb.WriteString(fmt.Sprintf("- Articles excluded: %d\n", res.Skipped))
	sb.WriteString(fmt.Sprintf("- Duration: %s\n", res.Duration.Round(time.Millisecond)))

	if len(res.Boards) > 0 {
		sb.WriteString("\n## Boards\n\n")

		rows := make([][]string, 0, len(res.Boards))

		for _, b := range res.Boards {
			board := b.Board
			if board == "" {
				board = "(unknown)"
			}

			rows = append(rows, []string{
				board,
				strconv.Itoa(b.Articles),
				strconv.Itoa(b.Chunks),
			})
		}

		writeTable(&sb, []string{"Board", "Articles", "Chunks"}, rows)
	}

	if res.Stats.Chunks > 0 {
		sb.WriteString("\n## Chunk statistics\n\n")
		writeTable(&sb, []string{"Metric", "Min", "Max", "Mean", "P95"}, [][]string{
			distRow("Runes", res.Stats.Runes),
			distRow("Words", res.Stats.Words),
		})
	}

	if len(res.SkippedTitles) > 0 {
		sb.WriteString("\n## Excluded titles (sample)\n\n")

		for _, title := range res.SkippedTitles {
			sb.WriteString("- " + textutil.TruncateDisplay(title, titleSampleWidth) + "\n")
		}
	}

	return sb.String()
}

// Write renders the report and saves it to path.
func Write(path string, res *exporter.Result) error {
	if err := os.WriteFile(path, []byte(Render(res)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func distRow(name string, d exporter.DistStats) []string {
	return []string{
		name,
		strconv.Itoa(d.Min),
		strconv.Itoa(d.Max),
		strconv.FormatFloat(d.Mean, 'f', -1, 64),
		strconv.Itoa(d.P95),
	}
}

// writeTable renders one markdown table with display-width padded cells.
func writeTable(sb *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Separator rows need at least "---".
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	writeRow := func(cells []string) {
		sb.WriteString("|")

		for i := range headers {
			content := ""
			if i < len(cells) {
				content = cells[i]
			}

			sb.WriteString(" " + textutil.PadDisplay(content, widths[i]) + " |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sb.WriteString("|")

	for i := range headers {
		sb.WriteString(" " + strings.Repeat("-", widths[i]) + " |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}
}
