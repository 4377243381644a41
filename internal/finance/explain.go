package finance

// Explain returns the human-readable accounting explanation for the
// analyzed transaction, matching the templates the assembler will emit.
func Explain(analysis AnalysisResult) string {
	switch analysis.Subtype {
	case SubtypeSalam:
		return `According to FAS 7, for Salam transactions, initial recognition requires:

1. Debit Salam Financing (representing the advance payment)
2. Credit Cash/Bank (for the payment made)

Profit is recognized only upon delivery of goods.`

	case SubtypeParallelSalam:
		return `According to FAS 7, for Parallel Salam transactions:

1. Initial Salam contract:
   - Debit Salam Financing (representing the advance payment)
   - Credit Cash/Bank (for the payment made)

2. Parallel Salam contract:
   - Debit Cash/Bank (for the selling price received)
   - Credit Salam Revenue (recognizing the revenue)

3. Profit recognition upon delivery:
   - Debit Salam Cost and credit Salam Financing (closing the financing account)
   - Debit Salam Revenue, credit Salam Cost and credit Profit on Salam
     (closing revenue against cost and recognizing the profit)`

	case SubtypeIstisna:
		return `According to FAS 10, for Istisna'a transactions, initial recognition requires:

1. Debit Istisna'a Receivables (representing amount due from customer)
2. Credit Istisna'a Revenue (representing future revenue)

Additional entries would be needed for progress recognition and completion.`

	case SubtypeParallelIstisna:
		return `According to FAS 10, for Parallel Istisna'a transactions:

1. Istisna'a contract with customer:
   - Debit Istisna'a Receivables (representing amount due from customer)
   - Credit Istisna'a Revenue (representing future revenue)

2. Parallel Istisna'a contract with manufacturer:
   - Debit Work in Progress (representing asset being manufactured)
   - Credit Istisna'a Payable (representing amount due to manufacturer)

3. Profit recognition upon completion:
   - Debit Cost of Istisna'a and credit Work in Progress (closing WIP)
   - Debit Istisna'a Revenue, credit Cost of Istisna'a and credit Profit on
     Istisna'a (closing revenue against cost and recognizing the profit)`

	case SubtypeMurabaha:
		return `According to FAS 28, for Murabaha transactions:

1. Asset acquisition:
   - Debit Murabaha Asset (representing the asset purchased)
   - Credit Cash/Bank (for the payment made)

2. Sale to customer:
   - Debit Murabaha Receivable (representing amount due from customer)
   - Credit Murabaha Asset (closing the asset account)
   - Credit Deferred Profit (representing the profit to be recognized over time)

3. Monthly profit recognition:
   - Debit Deferred Profit (reducing the deferred profit)
   - Credit Income on Murabaha Financing (recognizing portion of profit)

The profit is recognized proportionally over the financing period.`

	case SubtypeIjarah, SubtypeIjarahMBT:
		explanation := `According to FAS 32, initial recognition requires:

1. Right of Use Asset (ROU): the prime cost of the asset minus the transfer
   price.

2. Deferred Ijarah Cost: the difference between total rentals and the ROU
   asset value, amortized over the lease term.

3. Ijarah Liability: the total rental obligation over the lease term.

For periodic payments:
- Debit Ijarah Liability (reducing the liability)
- Credit Cash/Bank (for the payment made)

For amortization:
- Debit Ijarah Expense (recognizing periodic expense)
- Credit Accumulated Amortization (accumulating the amortization)`
		if analysis.Subtype == SubtypeIjarahMBT {
			explanation += `

For Ijarah Muntahia Bittamleek, ownership transfer at the end:
- Debit Asset (recognizing the asset at transfer price)
- Credit Cash/Bank (for the payment made)`
		}
		return explanation

	case SubtypeForeignCurrency:
		return `According to FAS 4, for Foreign Currency Transactions:

1. Initial recognition at transaction date:
   - Debit Asset/Expense (at local currency equivalent)
   - Credit Cash/Bank (at local currency equivalent)

Foreign currency amounts are converted to local currency using the exchange
rate at the transaction date. Subsequent measurement requires adjustments at
reporting date for monetary items.`
	}

	return "Generic journal entries for this transaction type."
}
