package finance

import "math"

// BalanceTolerance is the floating-point tolerance used when checking that
// a set of entries balances.
const BalanceTolerance = 1e-6

func opposite(d Direction) Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// Assemble turns an analysis and a calculation result into the ordered
// journal entry rows. Templates are emitted in the analyzer's order; row
// order within a template is fixed and mirrors accounting presentation
// order (asset/cost debits before liability/revenue credits).
//
// Conditional templates (per the definition's Conditional map) are skipped
// when their driving value is zero: no rental figure means no payment block,
// no resale price means no profit block. A negative quantity posts to the
// opposite side at its absolute value, so rows never carry negative amounts
// and the signed column totals are unchanged.
func Assemble(analysis AnalysisResult, calc CalculationResult) []JournalEntry {
	def, ok := Lookup(analysis.Standard)
	if !ok {
		return nil
	}

	var entries []JournalEntry
	for _, name := range analysis.Templates {
		rows, ok := def.Templates[name]
		if !ok || len(rows) == 0 {
			continue
		}
		if key, conditional := def.Conditional[name]; conditional && calc.Values[key] == 0 {
			continue
		}
		for _, row := range rows {
			amount := calc.Values[row.AmountKey]
			direction := row.Direction
			if amount < 0 {
				amount, direction = -amount, opposite(direction)
			}
			entry := JournalEntry{Account: row.Account}
			if direction == Debit {
				entry.Debit = amount
			} else {
				entry.Credit = amount
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// Totals sums the debit and credit columns.
func Totals(entries []JournalEntry) (debits, credits float64) {
	for _, e := range entries {
		debits += e.Debit
		credits += e.Credit
	}
	return debits, credits
}

// Balanced reports whether the debit and credit columns agree within the
// given tolerance. A complete entry set must always balance.
func Balanced(entries []JournalEntry, tolerance float64) bool {
	debits, credits := Totals(entries)
	return math.Abs(debits-credits) <= tolerance
}
