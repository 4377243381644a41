package finance

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoEngine is returned by Calculate when no calculation engine exists for
// the requested standard. Callers surface it as an explicit "no engine
// available" result, not as a failed request.
var ErrNoEngine = errors.New("no calculation engine available")

// DefaultLeaseTermYears is substituted when an ijarah transaction carries no
// lease_term_years field. The canonical default is 5 years.
const DefaultLeaseTermYears = 5.0

// Calculate runs the engine for the given standard. Dispatch is an
// exhaustive switch over the closed standard set; every engine is a pure
// function that adapts the untyped details onto a typed input record,
// applies the standard's formula sequence, and emits a derivation line per
// computed quantity.
func Calculate(std Standard, details TransactionDetails) (CalculationResult, error) {
	switch std {
	case FAS4:
		return calculateForeignCurrency(foreignCurrencyInputsFrom(details)), nil
	case FAS7:
		return calculateSalam(salamInputsFrom(details)), nil
	case FAS10:
		return calculateIstisna(istisnaInputsFrom(details)), nil
	case FAS28:
		return calculateMurabaha(murabahaInputsFrom(details)), nil
	case FAS32:
		return calculateIjarah(ijarahInputsFrom(details)), nil
	default:
		return CalculationResult{}, fmt.Errorf("%w for standard %q", ErrNoEngine, std)
	}
}

// fieldReader adapts untyped details onto typed input records, collecting a
// warning for every field that is present but unparseable. A missing field
// yields its default without a warning.
type fieldReader struct {
	details  TransactionDetails
	warnings []string
}

func (f *fieldReader) num(key string, def float64) float64 {
	v, ok := f.details[key]
	if !ok {
		return def
	}
	n, parsed := NormalizeOK(v)
	if !parsed {
		f.warnings = append(f.warnings, fmt.Sprintf("field %q could not be parsed as a number; using %s", key, fmtNum(n)))
	}
	return n
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func trace(format string, operands ...float64) string {
	args := make([]any, len(operands))
	for i, op := range operands {
		args[i] = fmtNum(op)
	}
	return fmt.Sprintf(format, args...)
}

// ijarahInputs is the typed input record for the FAS 32 engine.
type ijarahInputs struct {
	AssetCost       float64
	AdditionalCosts float64
	LeaseTermYears  float64
	AnnualRental    float64
	ResidualValue   float64
	TransferPrice   float64

	warnings []string
}

func ijarahInputsFrom(details TransactionDetails) ijarahInputs {
	f := &fieldReader{details: details}

	// additional_costs may be a number, a currency string, or a nested map
	// of sub-costs; top-level import_tax/freight fields add in as well.
	additional := f.num("additional_costs", 0)
	additional += f.num("import_tax", 0)
	additional += f.num("freight", 0)

	return ijarahInputs{
		AssetCost:       f.num("asset_cost", 0),
		AdditionalCosts: additional,
		LeaseTermYears:  f.num("lease_term_years", DefaultLeaseTermYears),
		AnnualRental:    f.num("annual_rental", 0),
		ResidualValue:   f.num("residual_value", 0),
		TransferPrice:   f.num("transfer_price", 0),
		warnings:        f.warnings,
	}
}

func calculateIjarah(in ijarahInputs) CalculationResult {
	primeCost := in.AssetCost + in.AdditionalCosts
	rouAssetValue := primeCost - in.TransferPrice
	totalRentals := in.AnnualRental * in.LeaseTermYears
	deferredCost := totalRentals - rouAssetValue
	terminalValueDifference := in.ResidualValue - in.TransferPrice
	amortizableAmount := rouAssetValue - terminalValueDifference

	annualAmortization := 0.0
	if in.LeaseTermYears > 0 {
		annualAmortization = amortizableAmount / in.LeaseTermYears
	}

	return CalculationResult{
		Values: map[string]float64{
			"prime_cost":                primeCost,
			"rou_asset_value":           rouAssetValue,
			"total_rentals":             totalRentals,
			"deferred_cost":             deferredCost,
			"terminal_value_difference": terminalValueDifference,
			"amortizable_amount":        amortizableAmount,
			"annual_amortization":       annualAmortization,
			"annual_rental":             in.AnnualRental,
			"transfer_price":            in.TransferPrice,
		},
		Trace: map[string]string{
			"prime_cost":                trace("%s + %s = %s", in.AssetCost, in.AdditionalCosts, primeCost),
			"rou_asset_value":           trace("%s - %s = %s", primeCost, in.TransferPrice, rouAssetValue),
			"total_rentals":             trace("%s x %s = %s", in.AnnualRental, in.LeaseTermYears, totalRentals),
			"deferred_cost":             trace("%s - %s = %s", totalRentals, rouAssetValue, deferredCost),
			"terminal_value_difference": trace("%s - %s = %s", in.ResidualValue, in.TransferPrice, terminalValueDifference),
			"amortizable_amount":        trace("%s - %s = %s", rouAssetValue, terminalValueDifference, amortizableAmount),
			"annual_amortization":       trace("%s / %s = %s", amortizableAmount, in.LeaseTermYears, annualAmortization),
			"annual_rental":             trace("%s (input)", in.AnnualRental),
			"transfer_price":            trace("%s (input)", in.TransferPrice),
		},
		Warnings: in.warnings,
	}
}

// murabahaInputs is the typed input record for the FAS 28 engine.
type murabahaInputs struct {
	AcquisitionCost float64
	SellingPrice    float64
	FinancingPeriod float64

	warnings []string
}

func murabahaInputsFrom(details TransactionDetails) murabahaInputs {
	f := &fieldReader{details: details}
	return murabahaInputs{
		AcquisitionCost: f.num("acquisition_cost", 0),
		SellingPrice:    f.num("selling_price", 0),
		FinancingPeriod: f.num("financing_period", 0),
		warnings:        f.warnings,
	}
}

func calculateMurabaha(in murabahaInputs) CalculationResult {
	// Small financing periods are taken to be years and converted to months.
	financingPeriodMonths := in.FinancingPeriod
	if in.FinancingPeriod <= 10 {
		financingPeriodMonths = in.FinancingPeriod * 12
	}

	profitAmount := in.SellingPrice - in.AcquisitionCost

	monthlyProfit := 0.0
	if financingPeriodMonths > 0 {
		monthlyProfit = profitAmount / financingPeriodMonths
	}

	return CalculationResult{
		Values: map[string]float64{
			"acquisition_cost":        in.AcquisitionCost,
			"selling_price":           in.SellingPrice,
			"profit_amount":           profitAmount,
			"financing_period_months": financingPeriodMonths,
			"monthly_profit":          monthlyProfit,
		},
		Trace: map[string]string{
			"acquisition_cost":        trace("%s (input)", in.AcquisitionCost),
			"selling_price":           trace("%s (input)", in.SellingPrice),
			"profit_amount":           trace("%s - %s = %s", in.SellingPrice, in.AcquisitionCost, profitAmount),
			"financing_period_months": trace("%s (months)", financingPeriodMonths),
			"monthly_profit":          trace("%s / %s = %s", profitAmount, financingPeriodMonths, monthlyProfit),
		},
		Warnings: in.warnings,
	}
}

// salamInputs is the typed input record for the FAS 7 engine.
type salamInputs struct {
	SalamCapital float64
	SellingPrice float64

	warnings []string
}

func salamInputsFrom(details TransactionDetails) salamInputs {
	f := &fieldReader{details: details}

	// The parallel contract price may arrive under either name.
	sellingPrice := f.num("selling_price", 0)
	if sellingPrice == 0 {
		sellingPrice = f.num("parallel_salam_price", 0)
	}

	return salamInputs{
		SalamCapital: f.num("salam_capital", 0),
		SellingPrice: sellingPrice,
		warnings:     f.warnings,
	}
}

func calculateSalam(in salamInputs) CalculationResult {
	profitAmount := 0.0
	if in.SellingPrice > 0 {
		profitAmount = in.SellingPrice - in.SalamCapital
	}

	return CalculationResult{
		Values: map[string]float64{
			"salam_capital": in.SalamCapital,
			"selling_price": in.SellingPrice,
			"profit_amount": profitAmount,
		},
		Trace: map[string]string{
			"salam_capital": trace("%s (input)", in.SalamCapital),
			"selling_price": trace("%s (input)", in.SellingPrice),
			"profit_amount": trace("%s - %s = %s", in.SellingPrice, in.SalamCapital, profitAmount),
		},
		Warnings: in.warnings,
	}
}

// istisnaInputs is the typed input record for the FAS 10 engine.
type istisnaInputs struct {
	ContractValue     float64
	ManufacturingCost float64

	warnings []string
}

func istisnaInputsFrom(details TransactionDetails) istisnaInputs {
	f := &fieldReader{details: details}
	return istisnaInputs{
		ContractValue:     f.num("contract_value", 0),
		ManufacturingCost: f.num("manufacturing_cost", 0),
		warnings:          f.warnings,
	}
}

func calculateIstisna(in istisnaInputs) CalculationResult {
	profitAmount := in.ContractValue - in.ManufacturingCost

	return CalculationResult{
		Values: map[string]float64{
			"contract_value":     in.ContractValue,
			"manufacturing_cost": in.ManufacturingCost,
			"profit_amount":      profitAmount,
		},
		Trace: map[string]string{
			"contract_value":     trace("%s (input)", in.ContractValue),
			"manufacturing_cost": trace("%s (input)", in.ManufacturingCost),
			"profit_amount":      trace("%s - %s = %s", in.ContractValue, in.ManufacturingCost, profitAmount),
		},
		Warnings: in.warnings,
	}
}

// foreignCurrencyInputs is the typed input record for the FAS 4 engine.
type foreignCurrencyInputs struct {
	LocalAmount   float64
	ForeignAmount float64
	ExchangeRate  float64

	warnings []string
}

func foreignCurrencyInputsFrom(details TransactionDetails) foreignCurrencyInputs {
	f := &fieldReader{details: details}

	// A bare "amount" field counts as the local-currency side.
	localAmount := f.num("local_amount", 0)
	if localAmount == 0 {
		localAmount = f.num("amount", 0)
	}

	return foreignCurrencyInputs{
		LocalAmount:   localAmount,
		ForeignAmount: f.num("foreign_amount", 0),
		ExchangeRate:  f.num("exchange_rate", 0),
		warnings:      f.warnings,
	}
}

func calculateForeignCurrency(in foreignCurrencyInputs) CalculationResult {
	calculatedForeign := 0.0
	calculatedLocal := 0.0
	if in.ExchangeRate > 0 {
		if in.LocalAmount > 0 {
			calculatedForeign = in.LocalAmount / in.ExchangeRate
		}
		if in.ForeignAmount > 0 {
			calculatedLocal = in.ForeignAmount * in.ExchangeRate
		}
	}

	return CalculationResult{
		Values: map[string]float64{
			"local_amount":              in.LocalAmount,
			"foreign_amount":            in.ForeignAmount,
			"exchange_rate":             in.ExchangeRate,
			"calculated_foreign_amount": calculatedForeign,
			"calculated_local_amount":   calculatedLocal,
		},
		Trace: map[string]string{
			"local_amount":              trace("%s (input)", in.LocalAmount),
			"foreign_amount":            trace("%s (input)", in.ForeignAmount),
			"exchange_rate":             trace("%s (input)", in.ExchangeRate),
			"calculated_foreign_amount": trace("%s / %s = %s", in.LocalAmount, in.ExchangeRate, calculatedForeign),
			"calculated_local_amount":   trace("%s x %s = %s", in.ForeignAmount, in.ExchangeRate, calculatedLocal),
		},
		Warnings: in.warnings,
	}
}
