package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"pttrag/internal/config"
	"pttrag/internal/logger"
	"pttrag/internal/normalizer"
)

// BoardCount tallies one board's contribution to a run.
type BoardCount struct {
	Board    string
	Articles int
	Chunks   int
}

// Result summarizes one export run.
type Result struct {
	RunID         string
	OutputPath    string
	Articles      int // processed, excluded articles not counted
	Lines         int // JSONL records written
	Skipped       int
	SkippedTitles []string // capped sample of excluded titles
	Boards        []BoardCount
	Stats         RunStats
	Duration      time.Duration
}

// Pipeline drives a whole export run: load, filter, normalize, flatten,
// chunk, emit. One instance performs one single-threaded pass; the input
// document is held in memory while records are written line by line.
type Pipeline struct {
	cfg       *config.Config
	processor *normalizer.Processor
	log       *logger.Logger
}

// NewPipeline creates a new export pipeline.
func NewPipeline(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		processor: normalizer.NewProcessor(),
		log:       log,
	}
}

// Run executes the export. A missing input file aborts before any output
// is produced. On interrupt the output is a truncated but valid prefix:
// every fully written line parses on its own.
func (p *Pipeline) Run() (*Result, error) {
	started := time.Now()
	exp := &p.cfg.Exporter

	result := &Result{
		RunID:      uuid.New().String(),
		OutputPath: exp.Output.Path,
	}

	log := p.log.With("run_id", result.RunID)

	if _, err := os.Stat(exp.Input); err != nil {
		return nil, fmt.Errorf("input not found: %w", err)
	}

	data, err := os.ReadFile(exp.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	log.Debug("input loaded", "path", exp.Input, "bytes", len(data))

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	articles, err := p.processor.Process(doc)
	if err != nil {
		return nil, err
	}

	log.Info("articles loaded", "count", len(articles))

	out, err := os.Create(exp.Output.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	// Lines go straight to the file so an interrupted run still leaves a
	// parseable prefix.
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	stats := NewStatsCollector()
	boardIndex := make(map[string]int)
	opts := p.cfg.ChunkerOptions()

	for _, art := range articles {
		if marker := p.excludedBy(art.Title); marker != "" {
			result.Skipped++

			if len(result.SkippedTitles) < exp.Report.SampleTitles {
				result.SkippedTitles = append(result.SkippedTitles, art.Title)
			}

			log.Debug("article excluded", "title", art.Title, "marker", marker)

			continue
		}

		result.Articles++

		records := BuildRecords(art, exp.Source, opts)

		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				_ = out.Close()

				return nil, fmt.Errorf("failed to write record: %w", err)
			}

			stats.Observe(rec.Content)
			result.Lines++
		}

		idx, ok := boardIndex[art.Board]
		if !ok {
			idx = len(result.Boards)
			boardIndex[art.Board] = idx
			result.Boards = append(result.Boards, BoardCount{Board: art.Board})
		}

		result.Boards[idx].Articles++
		result.Boards[idx].Chunks += len(records)
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	result.Stats = stats.Snapshot()
	result.Duration = time.Since(started)

	log.Info("export complete",
		"articles", result.Articles,
		"lines", result.Lines,
		"skipped", result.Skipped,
		"duration", result.Duration,
	)

	return result, nil
}

// excludedBy returns the first exclusion marker the title contains as a
// plain substring, or "" when the article passes the filter.
func (p *Pipeline) excludedBy(title string) string {
	for _, marker := range p.cfg.Exporter.ExcludeMarkers {
		if marker != "" && strings.Contains(title, marker) {
			return marker
		}
	}

	return ""
}
