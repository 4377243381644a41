// Package pipeline orchestrates a single transaction analysis: extraction,
// classification, calculation, journal assembly, and the optional
// translation and visualization steps. Every step after extraction is
// deterministic; model failures degrade rather than abort.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mizan-labs/mizan/internal/chart"
	"github.com/mizan-labs/mizan/internal/extraction"
	"github.com/mizan-labs/mizan/internal/finance"
	"github.com/mizan-labs/mizan/internal/translate"
)

// Extractor turns free text into transaction details.
type Extractor interface {
	Extract(ctx context.Context, inputText, language string) (finance.TransactionDetails, error)
}

// Translator localizes a response document.
type Translator interface {
	Translate(ctx context.Context, doc map[string]any, language string) (map[string]any, error)
}

// Options controls per-request behavior.
type Options struct {
	// Language of the input text and of the response. English responses
	// skip the translation step.
	Language string
	// Visualize adds a base64 PNG bar chart of the journal entries.
	Visualize bool
}

// Pipeline wires the steps together.
type Pipeline struct {
	extractor       Extractor
	translator      Translator
	defaultStandard finance.Standard
	log             zerolog.Logger
}

// New creates a pipeline. defaultStandard is used when classification finds
// no signal in the extracted details.
func New(extractor Extractor, translator Translator, defaultStandard finance.Standard, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor:       extractor,
		translator:      translator,
		defaultStandard: defaultStandard,
		log:             log,
	}
}

// Run processes one transaction description end to end and returns the
// response document. Extraction failures fall back to a regex amount scan;
// translation and visualization failures leave the document untranslated or
// without a chart, never fail the request.
func (p *Pipeline) Run(ctx context.Context, inputText string, opts Options) map[string]any {
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Logger()

	details, err := p.extractor.Extract(ctx, inputText, opts.Language)
	if err != nil {
		log.Warn().Err(err).Msg("extraction failed, using fallback details")
		details = extraction.Fallback(inputText)
	}

	standard := finance.Classify(details, p.defaultStandard)
	analysis := finance.Analyze(details, standard)
	log.Info().
		Str("standard", string(standard)).
		Str("subtype", string(analysis.Subtype)).
		Msg("transaction classified")

	calc, err := finance.Calculate(standard, details)
	if err != nil {
		log.Warn().Err(err).Str("standard", string(standard)).Msg("no calculation engine")
		return p.finish(ctx, log, map[string]any{
			"transaction":        details,
			"standard":           string(standard),
			"accounting_entries": []finance.JournalEntry{},
			"warnings":           []string{err.Error()},
		}, nil, opts)
	}

	entries := finance.Assemble(analysis, calc)
	if !finance.Balanced(entries, finance.BalanceTolerance) {
		debits, credits := finance.Totals(entries)
		log.Error().
			Float64("debits", debits).
			Float64("credits", credits).
			Msg("journal entries do not balance")
		calc.Warnings = append(calc.Warnings, "journal entries do not balance; review the extracted amounts")
	}

	doc := map[string]any{
		"transaction":        details,
		"standard":           string(standard),
		"subtype":            string(analysis.Subtype),
		"accounting_entries": entries,
		"calculations":       calc.Values,
		"calculation_trace":  calc.Trace,
		"explanation":        finance.Explain(analysis),
		"warnings":           calc.Warnings,
	}
	return p.finish(ctx, log, doc, entries, opts)
}

// finish applies the shared tail steps: translation, visualization, and the
// run metadata stamped on every response. entries is passed separately so
// the chart works on the original amounts even after translation rewrites
// the document.
func (p *Pipeline) finish(ctx context.Context, log zerolog.Logger, doc map[string]any, entries []finance.JournalEntry, opts Options) map[string]any {
	if translate.Supported(opts.Language) && p.translator != nil {
		translated, err := p.translator.Translate(ctx, doc, opts.Language)
		if err != nil {
			log.Warn().Err(err).Str("language", opts.Language).Msg("translation failed, returning english")
		} else {
			doc = translated
		}
	}

	if opts.Visualize {
		encoded, err := chart.Render("Journal Entries", entries)
		if err != nil {
			log.Warn().Err(err).Msg("visualization failed")
			doc["visualization_error"] = err.Error()
		} else {
			doc["visualization"] = encoded
		}
	}

	doc["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	return doc
}
