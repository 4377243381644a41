package finance

import "strings"

// Analyze derives the transaction subtype for the classified standard and
// selects the ordered templates and required calculation keys for it. Like
// the classifier it is total: any details shape yields a valid result.
func Analyze(details TransactionDetails, std Standard) AnalysisResult {
	txType := ""
	if s, ok := details["transaction_type"].(string); ok {
		txType = strings.ToLower(s)
	}

	switch std {
	case FAS7:
		if strings.Contains(txType, "parallel") {
			return AnalysisResult{
				Standard:             std,
				Subtype:              SubtypeParallelSalam,
				Templates:            []TemplateName{TemplateSalamPayment, TemplateParallelSalam, TemplateProfitRecognition},
				RequiredCalculations: []string{"profit_amount"},
			}
		}
		return AnalysisResult{
			Standard:  std,
			Subtype:   SubtypeSalam,
			Templates: []TemplateName{TemplateSalamPayment},
		}

	case FAS10:
		if strings.Contains(txType, "parallel") {
			return AnalysisResult{
				Standard:             std,
				Subtype:              SubtypeParallelIstisna,
				Templates:            []TemplateName{TemplateIstisnaContractSigning, TemplateParallelIstisnaContract, TemplateProfitRecognition},
				RequiredCalculations: []string{"profit_amount"},
			}
		}
		return AnalysisResult{
			Standard:  std,
			Subtype:   SubtypeIstisna,
			Templates: []TemplateName{TemplateIstisnaContractSigning},
		}

	case FAS28:
		return AnalysisResult{
			Standard:             std,
			Subtype:              SubtypeMurabaha,
			Templates:            []TemplateName{TemplateMurabahaAcquisition, TemplateMurabahaSale, TemplateProfitRecognition},
			RequiredCalculations: []string{"profit_amount", "monthly_profit"},
		}

	case FAS32:
		if strings.Contains(txType, "muntahia") || strings.Contains(txType, "bittamleek") {
			return AnalysisResult{
				Standard:             std,
				Subtype:              SubtypeIjarahMBT,
				Templates:            []TemplateName{TemplateInitialRecognition, TemplatePeriodicPayment, TemplateAmortization, TemplateOwnershipTransfer},
				RequiredCalculations: []string{"rou_asset_value", "deferred_cost", "total_rentals", "amortizable_amount"},
			}
		}
		return AnalysisResult{
			Standard:             std,
			Subtype:              SubtypeIjarah,
			Templates:            []TemplateName{TemplateInitialRecognition, TemplatePeriodicPayment, TemplateAmortization},
			RequiredCalculations: []string{"rou_asset_value", "deferred_cost", "total_rentals"},
		}

	case FAS4:
		return AnalysisResult{
			Standard:             std,
			Subtype:              SubtypeForeignCurrency,
			Templates:            []TemplateName{TemplateForeignCurrencyPurchase},
			RequiredCalculations: []string{"calculated_local_amount"},
		}
	}

	// Unknown standard: fall back to whatever templates its definition
	// carries, in no particular subtype.
	def, _ := Lookup(std)
	templates := make([]TemplateName, 0, len(def.Templates))
	for name := range def.Templates {
		templates = append(templates, name)
	}
	return AnalysisResult{Standard: std, Subtype: Subtype("Unknown"), Templates: templates}
}
