package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// extractionPrompt builds the system instruction for the extraction call.
// The field lists per transaction type mirror what the calculation engines
// read, so the model is steered toward the keys downstream code expects.
func extractionPrompt(language string) string {
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = "english"
	}
	return fmt.Sprintf(`You are a financial data extraction assistant for Islamic finance transactions.
The transaction description may be written in %s.

Extract the transaction details from the text that follows and return them as a single JSON object. Rules:
- Return ONLY the JSON object. No markdown fences, no commentary.
- Use numbers for monetary values (no currency symbols, no thousands separators).
- Include a "transaction_type" string naming the contract (e.g. "Ijarah", "Ijarah Muntahia Bittamleek", "Murabaha", "Salam", "Parallel Salam", "Istisna'a", "Parallel Istisna'a", "Foreign Currency Purchase").
- Only include fields that are actually present in the text.

Fields by contract type:
- Ijarah / Ijarah Muntahia Bittamleek: asset_cost, additional_costs (object of named costs), lease_term_years, annual_rental, residual_value, transfer_price (purchase option price)
- Murabaha: acquisition_cost, selling_price, payment_period (months or years), down_payment
- Salam / Parallel Salam: salam_capital, parallel_salam_price, delivery_date, commodity
- Istisna'a / Parallel Istisna'a: contract_value, manufacturing_cost, parallel_contract_value, completion_period
- Foreign Currency Purchase: amount, foreign_amount, exchange_rate, currency

Transaction description:`, lang)
}

var amountPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// extractAmount finds the first number in the text, tolerating thousands
// separators. Used only by the fallback path.
func extractAmount(text string) (float64, bool) {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cleanModelJSON strips markdown code fences and surrounding prose the model
// sometimes adds despite instructions, keeping the outermost JSON object.
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
