package wealthwise

import "testing"

func TestDetectBills(t *testing.T) {
	l := NewLedger()
	a := NewAccount("Conta", Checking, "Inter", OwnerMe, M(10000))
	l.AddAccount(a)

	post := func(day string, amount float64, merchant string, recurring bool) {
		t.Helper()
		if _, err := l.Post(ExpenseIntent{
			AccountID: a.ID,
			Date:      MustParseDate(day),
			Amount:    M(amount),
			Merchant:  merchant,
			Category:  CategoryBills,
			Recurring: recurring,
		}); err != nil {
			t.Fatal(err)
		}
	}

	post("2025-04-05", 55.90, "Netflix", true)
	post("2025-05-05", 59.90, "Netflix", true) // price change, most recent wins
	post("2025-05-10", 120, "Energia", true)
	post("2025-06-10", 120, "Energia", true)
	post("2025-06-12", 89, "Restaurante", false) // not recurring

	on := MustParseDate("2025-06-15")
	bills := DetectBills(l, on)

	if len(bills) != 2 {
		t.Fatalf("got %d bills, want 2", len(bills))
	}

	// Ledger order is most recent first, so Energia is encountered before
	// Netflix.
	energia, netflix := bills[0], bills[1]
	if energia.Merchant != "Energia" || netflix.Merchant != "Netflix" {
		t.Fatalf("bills = %v, %v", energia.Merchant, netflix.Merchant)
	}
	if !energia.Paid {
		t.Error("Energia has a June transaction and should be paid")
	}
	if netflix.Paid {
		t.Error("Netflix has no June transaction and should be open")
	}
	if !energia.Amount.Equal(M(120)) {
		t.Errorf("Energia amount = %s, want 120", energia.Amount)
	}
	// The representative amount is the first encountered in ledger order,
	// i.e. the most recent one.
	if !netflix.Amount.Equal(M(59.90)) {
		t.Errorf("Netflix amount = %s, want the most recent 59.90", netflix.Amount)
	}

	total := TotalFixedCost(bills)
	if !total.Equal(energia.Amount.Add(netflix.Amount)) {
		t.Errorf("total = %s, want the sum of the representative amounts", total)
	}
}

func TestDetectBills_Empty(t *testing.T) {
	l := NewLedger()
	if bills := DetectBills(l, Today()); len(bills) != 0 {
		t.Errorf("got %d bills from an empty ledger", len(bills))
	}
}
