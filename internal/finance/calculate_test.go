package finance

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestCalculateIjarah_WorkedExample(t *testing.T) {
	details := TransactionDetails{
		"transaction_type": "Ijarah Muntahia Bittamleek",
		"asset_cost":       450000.0,
		"additional_costs": map[string]any{"import_tax": 12000.0, "freight": 30000.0},
		"lease_term_years": 2.0,
		"annual_rental":    300000.0,
		"residual_value":   5000.0,
		"transfer_price":   3000.0,
	}

	calc, err := Calculate(FAS32, details)
	if err != nil {
		t.Fatalf("Calculate(FAS32) error = %v", err)
	}

	want := map[string]float64{
		"prime_cost":                492000,
		"rou_asset_value":           489000,
		"total_rentals":             600000,
		"deferred_cost":             111000,
		"terminal_value_difference": 2000,
		"amortizable_amount":        487000,
		"annual_amortization":       243500,
	}
	for key, wantVal := range want {
		got, ok := calc.Values[key]
		if !ok {
			t.Errorf("missing value %q", key)
			continue
		}
		if !almostEqual(got, wantVal) {
			t.Errorf("Values[%q] = %v, want %v", key, got, wantVal)
		}
	}

	// Every exposed value must carry a derivation line.
	for key := range calc.Values {
		if calc.Trace[key] == "" {
			t.Errorf("value %q has no derivation trace", key)
		}
	}

	if got := calc.Trace["prime_cost"]; got != "450000 + 42000 = 492000" {
		t.Errorf("Trace[prime_cost] = %q", got)
	}
}

func TestCalculateIjarah_Defaults(t *testing.T) {
	// Empty details: everything zero, lease term defaults to 5, no error.
	calc, err := Calculate(FAS32, TransactionDetails{})
	if err != nil {
		t.Fatalf("Calculate(FAS32, empty) error = %v", err)
	}
	for key, v := range calc.Values {
		if v != 0 {
			t.Errorf("Values[%q] = %v, want 0 for empty details", key, v)
		}
	}

	// Missing lease term defaults to 5 years.
	calc, err = Calculate(FAS32, TransactionDetails{"annual_rental": 100.0})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["total_rentals"]; !almostEqual(got, 500) {
		t.Errorf("total_rentals with defaulted lease term = %v, want 500", got)
	}
}

func TestCalculateIjarah_ZeroLeaseTermGuard(t *testing.T) {
	calc, err := Calculate(FAS32, TransactionDetails{
		"asset_cost":       1000.0,
		"lease_term_years": 0.0,
	})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["annual_amortization"]; got != 0 {
		t.Errorf("annual_amortization with zero term = %v, want 0", got)
	}
}

func TestCalculateIjarah_TopLevelCostFields(t *testing.T) {
	// import_tax/freight at the top level add into additional costs.
	calc, err := Calculate(FAS32, TransactionDetails{
		"asset_cost": 1000.0,
		"import_tax": "100",
		"freight":    50.0,
	})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["prime_cost"]; !almostEqual(got, 1150) {
		t.Errorf("prime_cost = %v, want 1150", got)
	}
}

func TestCalculateMurabaha(t *testing.T) {
	tests := []struct {
		name              string
		details           TransactionDetails
		wantProfit        float64
		wantMonths        float64
		wantMonthlyProfit float64
	}{
		{
			name: "period in years converts to months",
			details: TransactionDetails{
				"acquisition_cost": 100000.0,
				"selling_price":    124000.0,
				"financing_period": 2.0,
			},
			wantProfit:        24000,
			wantMonths:        24,
			wantMonthlyProfit: 1000,
		},
		{
			name: "period already in months",
			details: TransactionDetails{
				"acquisition_cost": 100.0,
				"selling_price":    136.0,
				"financing_period": 36.0,
			},
			wantProfit:        36,
			wantMonths:        36,
			wantMonthlyProfit: 1,
		},
		{
			name: "zero period guards division",
			details: TransactionDetails{
				"acquisition_cost": 100.0,
				"selling_price":    120.0,
			},
			wantProfit:        20,
			wantMonths:        0,
			wantMonthlyProfit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := Calculate(FAS28, tt.details)
			if err != nil {
				t.Fatalf("Calculate error = %v", err)
			}
			if got := calc.Values["profit_amount"]; !almostEqual(got, tt.wantProfit) {
				t.Errorf("profit_amount = %v, want %v", got, tt.wantProfit)
			}
			if got := calc.Values["financing_period_months"]; !almostEqual(got, tt.wantMonths) {
				t.Errorf("financing_period_months = %v, want %v", got, tt.wantMonths)
			}
			if got := calc.Values["monthly_profit"]; !almostEqual(got, tt.wantMonthlyProfit) {
				t.Errorf("monthly_profit = %v, want %v", got, tt.wantMonthlyProfit)
			}
		})
	}
}

func TestCalculateSalam_ProfitOnlyWithSellingPrice(t *testing.T) {
	calc, err := Calculate(FAS7, TransactionDetails{"salam_capital": 500.0})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["profit_amount"]; got != 0 {
		t.Errorf("profit_amount without selling price = %v, want 0", got)
	}

	calc, err = Calculate(FAS7, TransactionDetails{"salam_capital": 500.0, "selling_price": 650.0})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["profit_amount"]; !almostEqual(got, 150) {
		t.Errorf("profit_amount = %v, want 150", got)
	}
}

func TestCalculateIstisna(t *testing.T) {
	calc, err := Calculate(FAS10, TransactionDetails{
		"contract_value":     "1,000,000",
		"manufacturing_cost": 850000.0,
	})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["profit_amount"]; !almostEqual(got, 150000) {
		t.Errorf("profit_amount = %v, want 150000", got)
	}
}

func TestCalculateForeignCurrency(t *testing.T) {
	calc, err := Calculate(FAS4, TransactionDetails{
		"foreign_amount": 1000.0,
		"exchange_rate":  3.75,
	})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["calculated_local_amount"]; !almostEqual(got, 3750) {
		t.Errorf("calculated_local_amount = %v, want 3750", got)
	}

	// No exchange rate: conversions stay zero, no error.
	calc, err = Calculate(FAS4, TransactionDetails{"foreign_amount": 1000.0})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["calculated_local_amount"]; got != 0 {
		t.Errorf("calculated_local_amount without rate = %v, want 0", got)
	}
}

func TestCalculate_NoEngine(t *testing.T) {
	_, err := Calculate(Standard("FAS_99"), TransactionDetails{})
	if !errors.Is(err, ErrNoEngine) {
		t.Errorf("Calculate(unknown standard) error = %v, want ErrNoEngine", err)
	}
}

func TestCalculate_UnparseableFieldWarns(t *testing.T) {
	calc, err := Calculate(FAS32, TransactionDetails{
		"asset_cost":       "not a number",
		"lease_term_years": 2.0,
	})
	if err != nil {
		t.Fatalf("Calculate error = %v", err)
	}
	if got := calc.Values["prime_cost"]; got != 0 {
		t.Errorf("prime_cost = %v, want 0 for unparseable asset cost", got)
	}
	if len(calc.Warnings) == 0 {
		t.Error("expected a warning for the unparseable asset_cost field")
	}
}
