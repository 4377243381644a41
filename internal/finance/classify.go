package finance

import "strings"

// Classify maps transaction details to a standard. It tests the lowercased
// transaction_type field against each standard's trigger terms in the fixed
// priority order, falls back to field-presence heuristics in the same order,
// and finally returns fallback. It is deterministic and never fails.
func Classify(details TransactionDetails, fallback Standard) Standard {
	if txType, ok := details["transaction_type"].(string); ok {
		lowered := strings.ToLower(txType)
		for _, std := range classifyOrder {
			for _, term := range registry[std].Triggers {
				if strings.Contains(lowered, term) {
					return std
				}
			}
		}
	}

	if std, ok := classifyByFields(details); ok {
		return std
	}

	return fallback
}

// classifyByFields is the secondary heuristic: the presence of fields
// characteristic of one standard implies that standard, tested in priority
// order.
func classifyByFields(details TransactionDetails) (Standard, bool) {
	has := func(key string) bool {
		_, ok := details[key]
		return ok
	}

	switch {
	case has("asset_cost") && has("lease_term_years"):
		return FAS32, true
	case has("acquisition_cost") && has("selling_price"):
		return FAS28, true
	case has("contract_value") && has("manufacturing_cost"):
		return FAS10, true
	case has("salam_capital"):
		return FAS7, true
	case has("exchange_rate") || has("foreign_amount"):
		return FAS4, true
	}
	return "", false
}
