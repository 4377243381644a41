// Package translate localizes the human-readable strings of a response
// document using a Gemini model. Numeric values, account keys, and structure
// are never translated; only string leaves are rewritten.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Supported reports whether language is one the service translates into.
// English is the source language and needs no call.
func Supported(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "arabic", "ar", "french", "fr":
		return true
	}
	return false
}

// Translator translates response documents via the model.
type Translator struct {
	model string
}

// New creates a translator using the given Gemini model name.
func New(model string) *Translator {
	return &Translator{model: model}
}

// Translate rewrites the string values of doc into the target language and
// returns the translated document. doc itself is not modified. On any model
// or parse failure the error is returned and callers should fall back to the
// untranslated document.
func (t *Translator) Translate(ctx context.Context, doc map[string]any, language string) (map[string]any, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("translate: marshal document: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("translate: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: translationPrompt(language)},
				{Text: string(payload)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("translate: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("translate: empty response from model")
	}

	var translated map[string]any
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &translated); err != nil {
		return nil, fmt.Errorf("translate: unmarshal JSON: %w", err)
	}
	if err := sameShape(doc, translated); err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	return translated, nil
}

func translationPrompt(language string) string {
	return fmt.Sprintf(`Translate the human-readable string values of the JSON document that follows into %s. Rules:
- Return ONLY the translated JSON object. No markdown fences, no commentary.
- Keep every key exactly as-is. Keys are never translated.
- Keep all numbers, booleans, and nulls unchanged.
- Keep standard identifiers such as "FAS_32" and ISO timestamps unchanged.
- Translate account names, explanations, and transaction descriptions.

JSON document:`, language)
}

// sameShape verifies the translation kept the document structure: same keys
// at every level and numbers untouched. Strings may differ.
func sameShape(orig, got map[string]any) error {
	if len(orig) != len(got) {
		return fmt.Errorf("key count changed: %d -> %d", len(orig), len(got))
	}
	for k, ov := range orig {
		gv, ok := got[k]
		if !ok {
			return fmt.Errorf("key %q missing from translation", k)
		}
		switch o := ov.(type) {
		case map[string]any:
			g, ok := gv.(map[string]any)
			if !ok {
				return fmt.Errorf("key %q changed type", k)
			}
			if err := sameShape(o, g); err != nil {
				return err
			}
		case float64:
			if g, ok := gv.(float64); !ok || g != o {
				return fmt.Errorf("numeric key %q changed: %v -> %v", k, ov, gv)
			}
		}
	}
	return nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
