package finance

import "testing"

func TestAnalyze_Subtypes(t *testing.T) {
	tests := []struct {
		name          string
		details       TransactionDetails
		std           Standard
		wantSubtype   Subtype
		wantTemplates []TemplateName
	}{
		{
			name:        "plain ijarah",
			details:     TransactionDetails{"transaction_type": "Ijarah"},
			std:         FAS32,
			wantSubtype: SubtypeIjarah,
			wantTemplates: []TemplateName{
				TemplateInitialRecognition, TemplatePeriodicPayment, TemplateAmortization,
			},
		},
		{
			name:        "ijarah ending in ownership transfer",
			details:     TransactionDetails{"transaction_type": "Ijarah Muntahia Bittamleek"},
			std:         FAS32,
			wantSubtype: SubtypeIjarahMBT,
			wantTemplates: []TemplateName{
				TemplateInitialRecognition, TemplatePeriodicPayment, TemplateAmortization, TemplateOwnershipTransfer,
			},
		},
		{
			name:          "plain salam",
			details:       TransactionDetails{"transaction_type": "Salam"},
			std:           FAS7,
			wantSubtype:   SubtypeSalam,
			wantTemplates: []TemplateName{TemplateSalamPayment},
		},
		{
			name:        "parallel salam",
			details:     TransactionDetails{"transaction_type": "Parallel Salam"},
			std:         FAS7,
			wantSubtype: SubtypeParallelSalam,
			wantTemplates: []TemplateName{
				TemplateSalamPayment, TemplateParallelSalam, TemplateProfitRecognition,
			},
		},
		{
			name:          "plain istisna",
			details:       TransactionDetails{"transaction_type": "Istisna'a"},
			std:           FAS10,
			wantSubtype:   SubtypeIstisna,
			wantTemplates: []TemplateName{TemplateIstisnaContractSigning},
		},
		{
			name:        "parallel istisna",
			details:     TransactionDetails{"transaction_type": "Parallel Istisna'a"},
			std:         FAS10,
			wantSubtype: SubtypeParallelIstisna,
			wantTemplates: []TemplateName{
				TemplateIstisnaContractSigning, TemplateParallelIstisnaContract, TemplateProfitRecognition,
			},
		},
		{
			name:        "murabaha",
			details:     TransactionDetails{"transaction_type": "Murabaha"},
			std:         FAS28,
			wantSubtype: SubtypeMurabaha,
			wantTemplates: []TemplateName{
				TemplateMurabahaAcquisition, TemplateMurabahaSale, TemplateProfitRecognition,
			},
		},
		{
			name:          "foreign currency",
			details:       TransactionDetails{"transaction_type": "foreign currency purchase"},
			std:           FAS4,
			wantSubtype:   SubtypeForeignCurrency,
			wantTemplates: []TemplateName{TemplateForeignCurrencyPurchase},
		},
		{
			name:          "missing transaction type defaults to plain subtype",
			details:       TransactionDetails{},
			std:           FAS32,
			wantSubtype:   SubtypeIjarah,
			wantTemplates: []TemplateName{TemplateInitialRecognition, TemplatePeriodicPayment, TemplateAmortization},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.details, tt.std)
			if got.Subtype != tt.wantSubtype {
				t.Errorf("Subtype = %v, want %v", got.Subtype, tt.wantSubtype)
			}
			if got.Standard != tt.std {
				t.Errorf("Standard = %v, want %v", got.Standard, tt.std)
			}
			if len(got.Templates) != len(tt.wantTemplates) {
				t.Fatalf("Templates = %v, want %v", got.Templates, tt.wantTemplates)
			}
			for i, name := range tt.wantTemplates {
				if got.Templates[i] != name {
					t.Errorf("Templates[%d] = %v, want %v", i, got.Templates[i], name)
				}
			}
		})
	}
}

func TestAnalyze_TemplatesExistInDefinition(t *testing.T) {
	// Every template the analyzer selects must exist in the standard's
	// definition, for every subtype-triggering transaction type.
	cases := []TransactionDetails{
		{"transaction_type": "Ijarah"},
		{"transaction_type": "Ijarah Muntahia Bittamleek"},
		{"transaction_type": "Salam"},
		{"transaction_type": "Parallel Salam"},
		{"transaction_type": "Istisna'a"},
		{"transaction_type": "Parallel Istisna'a"},
		{"transaction_type": "Murabaha"},
		{"transaction_type": "foreign currency purchase"},
	}

	for _, details := range cases {
		std := Classify(details, FAS32)
		analysis := Analyze(details, std)
		def, ok := Lookup(std)
		if !ok {
			t.Fatalf("Lookup(%v) failed", std)
		}
		for _, name := range analysis.Templates {
			if _, ok := def.Templates[name]; !ok {
				t.Errorf("standard %v: analyzer selected template %q not present in definition", std, name)
			}
		}
	}
}
