// Package extraction turns free-text transaction descriptions into the
// open-ended field mapping the core consumes, using a Gemini model. The
// model call is the only I/O in the request path; everything downstream is
// deterministic.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/mizan-labs/mizan/internal/finance"
	"github.com/mizan-labs/mizan/internal/logger"
)

// Extractor calls the model to extract structured transaction details.
type Extractor struct {
	model string
}

// New creates an extractor using the given Gemini model name.
func New(model string) *Extractor {
	return &Extractor{model: model}
}

// Extract sends the input text to the model and parses the strict-JSON
// response into transaction details. The caller decides what to do on
// failure; Fallback provides the degraded result.
func (e *Extractor) Extract(ctx context.Context, inputText, language string) (finance.TransactionDetails, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("extract: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt(language)},
				{Text: inputText},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("extract: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("extract: empty response from model")
	}
	log := logger.FromContext(ctx)
	log.Debug().
		Str("model", e.model).
		Int("response_chars", len(rawText)).
		Msg("extraction response received")

	clean := cleanModelJSON(rawText)

	var details finance.TransactionDetails
	if err := json.Unmarshal([]byte(clean), &details); err != nil {
		return nil, fmt.Errorf("extract: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}

	return details, nil
}

// Fallback builds the degraded details used when the model call fails or
// returns unusable output: the first number found in the text as the amount
// and an unknown transaction type.
func Fallback(inputText string) finance.TransactionDetails {
	amount := 0.0
	if v, ok := extractAmount(inputText); ok {
		amount = v
	}
	return finance.TransactionDetails{
		"amount":           amount,
		"transaction_type": "Unknown",
	}
}
