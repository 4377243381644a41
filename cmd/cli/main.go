package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mizan-labs/mizan/internal/config"
	"github.com/mizan-labs/mizan/internal/extraction"
	"github.com/mizan-labs/mizan/internal/finance"
	"github.com/mizan-labs/mizan/internal/logger"
	"github.com/mizan-labs/mizan/internal/pipeline"
	"github.com/mizan-labs/mizan/internal/translate"
)

func main() {
	log := logger.New(false)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		runProcess(log)
	case "classify":
		runClassify(log)
	case "standards":
		runStandards()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Mizan CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  process    Analyze a transaction description and print the journal entries")
	fmt.Println("  classify   Classify a transaction description without calculating")
	fmt.Println("  standards  List the supported accounting standards")
	fmt.Println("  help       Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runProcess(log zerolog.Logger) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	text := fs.String("text", "", "Transaction description to analyze")
	language := fs.String("language", "english", "Input and output language")
	visualize := fs.Bool("visualize", false, "Include a base64 PNG bar chart")
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.Parse(os.Args[2:])

	if *text == "" {
		log.Fatal().Msg("Error: --text is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if len(*text) > cfg.MaxInputLength {
		log.Fatal().Int("limit", cfg.MaxInputLength).Msg("Input text exceeds the character limit")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	p := pipeline.New(
		extraction.New(cfg.GeminiModel),
		translate.New(cfg.GeminiModel),
		cfg.Standard(),
		log,
	)

	doc := p.Run(ctx, *text, pipeline.Options{Language: *language, Visualize: *visualize})

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
	fmt.Println(string(out))
}

func runClassify(log zerolog.Logger) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	text := fs.String("text", "", "Transaction description to classify")
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.Parse(os.Args[2:])

	if *text == "" {
		log.Fatal().Msg("Error: --text is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	details, err := extraction.New(cfg.GeminiModel).Extract(ctx, *text, "english")
	if err != nil {
		log.Warn().Err(err).Msg("Extraction failed, using fallback details")
		details = extraction.Fallback(*text)
	}

	standard := finance.Classify(details, cfg.Standard())
	analysis := finance.Analyze(details, standard)

	fmt.Printf("Standard: %s\n", standard)
	fmt.Printf("Subtype:  %s\n", analysis.Subtype)
	if def, ok := finance.Lookup(standard); ok {
		fmt.Printf("Name:     %s\n", def.Name)
	}
}

func runStandards() {
	for _, def := range finance.All() {
		fmt.Printf("%s  %s\n", def.ID, def.Name)
		for _, c := range def.RecognitionCriteria {
			fmt.Printf("    Recognition: %s\n", c)
		}
		for _, m := range def.MeasurementRules {
			fmt.Printf("    Measurement: %s\n", m)
		}
	}
}
