package wealthwise

// Bill is a monthly fixed obligation inferred from recurring-flagged
// expenses.
type Bill struct {
	Merchant string
	Category Category
	Amount   Money // magnitude of the representative transaction
	Paid     bool  // a matching transaction exists in the current month
}

// DetectBills infers the fixed monthly obligations from the transaction
// history: every recurring-flagged expense merchant becomes one bill.
//
// Grouping is by exact merchant label, no fuzzy matching. The bill amount is
// the first matching transaction's; differing amounts under one merchant
// collapse to that single representative value. Bills appear in
// first-encounter order; the result is empty when nothing recurs.
func DetectBills(l *Ledger, on Date) []Bill {
	var bills []Bill
	index := make(map[string]int)

	for t := range l.Transactions() {
		if !t.IsRecurring || !t.IsExpense() {
			continue
		}
		i, seen := index[t.Merchant]
		if !seen {
			index[t.Merchant] = len(bills)
			bills = append(bills, Bill{
				Merchant: t.Merchant,
				Category: t.Category,
				Amount:   t.Amount.Abs(),
			})
			i = len(bills) - 1
		}
		if t.Date.SameMonth(on) {
			bills[i].Paid = true
		}
	}
	return bills
}

// TotalFixedCost sums each bill's representative amount.
func TotalFixedCost(bills []Bill) Money {
	var total Money
	for _, b := range bills {
		total = total.Add(b.Amount)
	}
	return total
}
