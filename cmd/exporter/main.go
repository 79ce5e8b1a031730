// Package main provides the exporter command-line tool that converts forum
// article dumps into chunked JSONL for retrieval indexing.
package main

import (
	"flag"
	"fmt"
	"os"

	"pttrag/internal/config"
	"pttrag/internal/exporter"
	"pttrag/internal/logger"
	"pttrag/internal/report"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Input JSON file path (overrides config)")
	outputPath := flag.String("output", "", "Output JSONL file path (overrides config)")
	source := flag.String("source", "", "Source tag for emitted records (overrides config)")
	reportPath := flag.String("report", "", "Markdown run report path (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	// Load configuration
	var cfg *config.Config

	var err error

	if *configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

		cfg, err = config.LoadConfig(*configFile)
	} else {
		cfg, err = config.Load()
	}

	if err != nil {
		fmt.Printf("❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Apply flag overrides
	if *inputPath != "" {
		cfg.Exporter.Input = *inputPath
	}

	if *outputPath != "" {
		cfg.Exporter.Output.Path = *outputPath
	}

	if *source != "" {
		cfg.Exporter.Source = *source
	}

	if *reportPath != "" {
		cfg.Exporter.Report.Path = *reportPath
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Exporter.Logging.Level, cfg.Exporter.Logging.Format)

	log.Info("🚀 Starting article-to-chunk export")
	log.Info(fmt.Sprintf("📂 Input: %s", cfg.Exporter.Input))
	log.Info(fmt.Sprintf("🎯 Output: %s", cfg.Exporter.Output.Path))

	pipeline := exporter.NewPipeline(cfg, log)

	result, err := pipeline.Run()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Export complete!")

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Converted articles: %d\n", result.Articles)
	fmt.Printf("Output JSONL lines (chunks): %d\n", result.Lines)
	fmt.Printf("Excluded articles: %d\n", result.Skipped)
	fmt.Printf("Total Duration: %v\n", result.Duration)
	fmt.Printf("Saved to: %s\n", result.OutputPath)
	fmt.Println("------------------------------------------------")

	if cfg.Exporter.Report.Path != "" {
		if err := report.Write(cfg.Exporter.Report.Path, result); err != nil {
			log.Error(fmt.Sprintf("❌ Report failed: %v", err))
			os.Exit(1)
		}

		fmt.Printf("📝 Run report saved to: %s\n", cfg.Exporter.Report.Path)
	}
}

func printUsage() {
	fmt.Println("Usage: ./bin/exporter [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/exporter -config configs/exporter.yaml")
	fmt.Println("  ./bin/exporter -input CFantasy-2-4000.json -output CFantasy-2-4000_cleaned.jsonl")
}
