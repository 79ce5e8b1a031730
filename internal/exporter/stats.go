package exporter

import (
	"math"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// DistStats describes the distribution of one per-chunk measurement.
type DistStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// RunStats aggregates chunk measurements over a whole export run.
type RunStats struct {
	Chunks int       `json:"chunks"`
	Runes  DistStats `json:"runes"`
	Words  DistStats `json:"words"`
}

// StatsCollector accumulates per-chunk measurements during a run.
type StatsCollector struct {
	runeCounts []int
	wordCounts []int
}

// NewStatsCollector creates an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// Observe records the measurements of one emitted chunk.
func (s *StatsCollector) Observe(chunk string) {
	s.runeCounts = append(s.runeCounts, utf8.RuneCountInString(chunk))
	s.wordCounts = append(s.wordCounts, countWords(chunk))
}

// Snapshot computes the distribution stats of everything observed so far.
func (s *StatsCollector) Snapshot() RunStats {
	return RunStats{
		Chunks: len(s.runeCounts),
		Runes:  computeDistStats(s.runeCounts),
		Words:  computeDistStats(s.wordCounts),
	}
}

// countWords counts UAX #29 word segments that contain a letter or digit,
// so punctuation and whitespace segments are not counted. Han characters
// segment one per word, which approximates token counts for Chinese text.
func countWords(text string) int {
	tokens := words.FromString(text)

	count := 0

	for tokens.Next() {
		for _, r := range tokens.Value() {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				count++
				break
			}
		}
	}

	return count
}

// computeDistStats computes min, max, mean, and p95 of the given counts.
func computeDistStats(counts []int) DistStats {
	if len(counts) == 0 {
		return DistStats{}
	}

	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, count := range sorted {
		sum += count
	}

	mean := float64(sum) / float64(len(sorted))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return DistStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100,
		P95:  sorted[p95Index],
	}
}
