package finance

// Standard identifies one of the supported AAOIFI accounting standards.
// The set is closed: calculation dispatch is an exhaustive switch, so adding
// or removing a standard is a compile-time-checked change.
type Standard string

const (
	FAS4  Standard = "FAS_4"  // Foreign Currency Transactions and Foreign Operations
	FAS7  Standard = "FAS_7"  // Salam and Parallel Salam
	FAS10 Standard = "FAS_10" // Istisna'a and Parallel Istisna'a
	FAS28 Standard = "FAS_28" // Murabaha and Other Deferred Payment Sales
	FAS32 Standard = "FAS_32" // Ijarah and Ijarah Muntahia Bittamleek
)

// TemplateName names one ordered block of journal entry rows within a
// standard's definition.
type TemplateName string

const (
	TemplateForeignCurrencyPurchase TemplateName = "foreign_currency_purchase"
	TemplateSalamPayment            TemplateName = "salam_payment"
	TemplateParallelSalam           TemplateName = "parallel_salam"
	TemplateIstisnaContractSigning  TemplateName = "istisna_contract_signing"
	TemplateParallelIstisnaContract TemplateName = "parallel_istisna_contract"
	TemplateMurabahaAcquisition     TemplateName = "murabaha_acquisition"
	TemplateMurabahaSale            TemplateName = "murabaha_sale"
	TemplateProfitRecognition       TemplateName = "profit_recognition"
	TemplateInitialRecognition      TemplateName = "initial_recognition"
	TemplatePeriodicPayment         TemplateName = "periodic_payment"
	TemplateAmortization            TemplateName = "amortization"
	TemplateOwnershipTransfer       TemplateName = "ownership_transfer"
)

// TemplateRow is one account line of a template. AmountKey names the
// calculation result field substituted into the row at assembly time.
type TemplateRow struct {
	Account   string
	Direction Direction
	AmountKey string
}

// Definition is the immutable description of one standard: display name,
// the key terms used for classification and client discovery, recognition
// and measurement notes, and the ordered journal entry templates.
// Conditional maps a template to the calculation value that must be non-zero
// for the template to be emitted at assembly time.
type Definition struct {
	ID                  Standard       `json:"id"`
	Name                string         `json:"name"`
	KeyTerms            []string       `json:"key_terms"`
	RecognitionCriteria []string       `json:"recognition_criteria"`
	MeasurementRules    []string       `json:"measurement_rules"`
	Triggers            []string       `json:"-"`
	Templates           map[TemplateName][]TemplateRow `json:"-"`
	Conditional         map[TemplateName]string        `json:"-"`
}

// classifyOrder is the fixed priority in which standards are tested during
// classification: lease terms before murabaha before istisna'a before salam
// before foreign-currency terms. First match wins.
var classifyOrder = []Standard{FAS32, FAS28, FAS10, FAS7, FAS4}

// registry holds the process-wide, read-only standard definitions. It is
// initialized once and never mutated.
var registry = map[Standard]Definition{
	FAS4: {
		ID:       FAS4,
		Name:     "Foreign Currency Transactions and Foreign Operations",
		KeyTerms: []string{"foreign currency", "exchange rate", "translation", "monetary items"},
		RecognitionCriteria: []string{
			"Exchange rate at transaction date for initial recognition",
			"Closing rate for monetary items at reporting date",
		},
		MeasurementRules: []string{"Exchange differences recognized in income statement"},
		Triggers:         []string{"foreign", "currency"},
		Templates: map[TemplateName][]TemplateRow{
			TemplateForeignCurrencyPurchase: {
				{Account: "Asset/Expense", Direction: Debit, AmountKey: "calculated_local_amount"},
				{Account: "Cash/Bank", Direction: Credit, AmountKey: "calculated_local_amount"},
			},
		},
	},
	FAS7: {
		ID:       FAS7,
		Name:     "Salam and Parallel Salam",
		KeyTerms: []string{"salam", "parallel salam", "advance payment", "future delivery"},
		RecognitionCriteria: []string{
			"Salam capital (advance payment) must be paid in full at contract time",
			"Delivery of goods at specified future date",
		},
		MeasurementRules: []string{
			"Salam receivables measured at cash equivalent value",
			"Revenue recognized at the time of delivery of goods",
		},
		Triggers: []string{"salam"},
		Templates: map[TemplateName][]TemplateRow{
			TemplateSalamPayment: {
				{Account: "Salam Financing", Direction: Debit, AmountKey: "salam_capital"},
				{Account: "Cash/Bank", Direction: Credit, AmountKey: "salam_capital"},
			},
			TemplateParallelSalam: {
				{Account: "Cash/Bank", Direction: Debit, AmountKey: "selling_price"},
				{Account: "Salam Revenue", Direction: Credit, AmountKey: "selling_price"},
			},
			TemplateProfitRecognition: {
				{Account: "Salam Cost", Direction: Debit, AmountKey: "salam_capital"},
				{Account: "Salam Financing", Direction: Credit, AmountKey: "salam_capital"},
				{Account: "Salam Revenue", Direction: Debit, AmountKey: "selling_price"},
				{Account: "Salam Cost", Direction: Credit, AmountKey: "salam_capital"},
				{Account: "Profit on Salam", Direction: Credit, AmountKey: "profit_amount"},
			},
		},
		// Without a resale price there is no parallel contract to record and
		// nothing to close profit against.
		Conditional: map[TemplateName]string{
			TemplateParallelSalam:     "selling_price",
			TemplateProfitRecognition: "selling_price",
		},
	},
	FAS10: {
		ID:       FAS10,
		Name:     "Istisna'a and Parallel Istisna'a",
		KeyTerms: []string{"istisna'a", "parallel istisna'a", "manufacturing contract", "customized goods"},
		RecognitionCriteria: []string{
			"Contract for manufacturing goods to specifications",
			"Al-Mustasni' (buyer) and Sani' (manufacturer/seller)",
		},
		MeasurementRules: []string{
			"Progress recognition allowed",
			"Profit calculated as difference between contract price and production cost",
		},
		Triggers: []string{"istisna"},
		Templates: map[TemplateName][]TemplateRow{
			TemplateIstisnaContractSigning: {
				{Account: "Istisna'a Receivables", Direction: Debit, AmountKey: "contract_value"},
				{Account: "Istisna'a Revenue", Direction: Credit, AmountKey: "contract_value"},
			},
			TemplateParallelIstisnaContract: {
				{Account: "Work in Progress", Direction: Debit, AmountKey: "manufacturing_cost"},
				{Account: "Istisna'a Payable", Direction: Credit, AmountKey: "manufacturing_cost"},
			},
			TemplateProfitRecognition: {
				{Account: "Cost of Istisna'a", Direction: Debit, AmountKey: "manufacturing_cost"},
				{Account: "Work in Progress", Direction: Credit, AmountKey: "manufacturing_cost"},
				{Account: "Istisna'a Revenue", Direction: Debit, AmountKey: "contract_value"},
				{Account: "Cost of Istisna'a", Direction: Credit, AmountKey: "manufacturing_cost"},
				{Account: "Profit on Istisna'a", Direction: Credit, AmountKey: "profit_amount"},
			},
		},
		Conditional: map[TemplateName]string{
			TemplateProfitRecognition: "contract_value",
		},
	},
	FAS28: {
		ID:       FAS28,
		Name:     "Murabaha and Other Deferred Payment Sales",
		KeyTerms: []string{"murabaha", "cost-plus financing", "deferred payment", "profit margin"},
		RecognitionCriteria: []string{
			"Bank purchases asset then sells to client at marked-up price",
			"Payment is deferred (installments)",
		},
		MeasurementRules: []string{
			"Profit is recognized over the period of financing",
			"No profit guarantee (risk sharing)",
		},
		Triggers: []string{"murabaha"},
		Templates: map[TemplateName][]TemplateRow{
			TemplateMurabahaAcquisition: {
				{Account: "Murabaha Asset", Direction: Debit, AmountKey: "acquisition_cost"},
				{Account: "Cash/Bank", Direction: Credit, AmountKey: "acquisition_cost"},
			},
			TemplateMurabahaSale: {
				{Account: "Murabaha Receivable", Direction: Debit, AmountKey: "selling_price"},
				{Account: "Murabaha Asset", Direction: Credit, AmountKey: "acquisition_cost"},
				{Account: "Deferred Profit", Direction: Credit, AmountKey: "profit_amount"},
			},
			TemplateProfitRecognition: {
				{Account: "Deferred Profit", Direction: Debit, AmountKey: "monthly_profit"},
				{Account: "Income on Murabaha Financing", Direction: Credit, AmountKey: "monthly_profit"},
			},
		},
		Conditional: map[TemplateName]string{
			TemplateProfitRecognition: "monthly_profit",
		},
	},
	FAS32: {
		ID:       FAS32,
		Name:     "Ijarah and Ijarah Muntahia Bittamleek",
		KeyTerms: []string{"ijarah", "lease", "right of use", "muntahia bittamleek", "ownership transfer"},
		RecognitionCriteria: []string{
			"Right of use asset recognized at prime cost less transfer price",
			"Lease may end with transfer of ownership to the lessee",
		},
		MeasurementRules: []string{
			"Right of use asset and liability model",
			"Deferred ijarah cost amortized over the lease term",
		},
		Triggers: []string{"ijarah", "lease"},
		Templates: map[TemplateName][]TemplateRow{
			TemplateInitialRecognition: {
				{Account: "Right of Use Asset (ROU)", Direction: Debit, AmountKey: "rou_asset_value"},
				{Account: "Deferred Ijarah Cost", Direction: Debit, AmountKey: "deferred_cost"},
				{Account: "Ijarah Liability", Direction: Credit, AmountKey: "total_rentals"},
			},
			TemplatePeriodicPayment: {
				{Account: "Ijarah Liability", Direction: Debit, AmountKey: "annual_rental"},
				{Account: "Cash/Bank", Direction: Credit, AmountKey: "annual_rental"},
			},
			TemplateAmortization: {
				{Account: "Ijarah Expense", Direction: Debit, AmountKey: "annual_amortization"},
				{Account: "Accumulated Amortization", Direction: Credit, AmountKey: "annual_amortization"},
			},
			TemplateOwnershipTransfer: {
				{Account: "Asset", Direction: Debit, AmountKey: "transfer_price"},
				{Account: "Cash/Bank", Direction: Credit, AmountKey: "transfer_price"},
			},
		},
		Conditional: map[TemplateName]string{
			TemplatePeriodicPayment:   "annual_rental",
			TemplateAmortization:      "annual_amortization",
			TemplateOwnershipTransfer: "transfer_price",
		},
	},
}

// Lookup returns the definition for a standard, reporting whether the
// standard is known.
func Lookup(std Standard) (Definition, bool) {
	def, ok := registry[std]
	return def, ok
}

// All enumerates every known standard in classification priority order.
func All() []Definition {
	defs := make([]Definition, 0, len(classifyOrder))
	for _, std := range classifyOrder {
		defs = append(defs, registry[std])
	}
	return defs
}
