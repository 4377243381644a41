// Package finance implements the deterministic core of the advisor:
// classification of a transaction against the supported AAOIFI standards,
// the per-standard calculation engines, and the journal entry assembler.
// Everything in this package is a pure function of its inputs; the only
// process-wide state is the read-only standard registry.
package finance

// TransactionDetails is the open-ended field mapping produced by the
// extraction step. Values are whatever the model returned: strings, numbers
// or nested maps. The engines never assume a fixed schema beyond the fields
// they explicitly read.
type TransactionDetails map[string]any

// Direction says which side of the entry a template row posts to.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// JournalEntry is a single debit/credit row. Exactly one of Debit/Credit is
// non-zero per row.
type JournalEntry struct {
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
}

// Subtype refines a standard into the variant that decides which templates
// apply (e.g. a plain lease vs. a lease ending in ownership transfer).
type Subtype string

const (
	SubtypeIjarah          Subtype = "Ijarah"
	SubtypeIjarahMBT       Subtype = "Ijarah_MBT"
	SubtypeSalam           Subtype = "Salam"
	SubtypeParallelSalam   Subtype = "Parallel_Salam"
	SubtypeIstisna         Subtype = "Istisna"
	SubtypeParallelIstisna Subtype = "Parallel_Istisna"
	SubtypeMurabaha        Subtype = "Murabaha"
	SubtypeForeignCurrency Subtype = "Foreign_Currency"
)

// AnalysisResult is what the analyzer derives from the transaction details
// and the classified standard: the subtype, the ordered template names that
// apply, and the calculation keys the engine must produce for them.
type AnalysisResult struct {
	Standard             Standard       `json:"standard_id"`
	Subtype              Subtype        `json:"transaction_subtype"`
	Templates            []TemplateName `json:"applicable_templates"`
	RequiredCalculations []string       `json:"required_calculations"`
}

// CalculationResult carries the derived quantities plus a human-readable
// derivation line per quantity. Every value exposed in Values has a matching
// Trace entry showing the literal operands.
type CalculationResult struct {
	Values   map[string]float64 `json:"values"`
	Trace    map[string]string  `json:"calculations"`
	Warnings []string           `json:"warnings,omitempty"`
}
