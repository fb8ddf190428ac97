package wealthwise

import (
	"errors"
	"testing"
)

// spend posts an expense in the given category on the given day.
func spend(t *testing.T, l *Ledger, accountID string, day string, amount float64, category Category) {
	t.Helper()
	if _, err := l.Post(ExpenseIntent{
		AccountID: accountID,
		Date:      MustParseDate(day),
		Amount:    M(amount),
		Merchant:  "teste",
		Category:  category,
	}); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluateBudget(t *testing.T) {
	on := MustParseDate("2025-06-15")

	testCases := []struct {
		name       string
		limit      float64
		spent      float64
		wantStatus BudgetStatus
		wantProg   float64
	}{
		{name: "untouched", limit: 1000, spent: 0, wantStatus: BudgetOK, wantProg: 0},
		{name: "under warning", limit: 1000, spent: 799.99, wantStatus: BudgetOK, wantProg: 0.79999},
		{name: "exactly eighty percent warns", limit: 1000, spent: 800, wantStatus: BudgetWarning, wantProg: 0.8},
		{name: "at the limit still warning", limit: 1000, spent: 1000, wantStatus: BudgetWarning, wantProg: 1},
		{name: "one centavo over exceeds", limit: 1000, spent: 1000.01, wantStatus: BudgetExceeded, wantProg: 1},
		{name: "far over caps progress", limit: 1000, spent: 2500, wantStatus: BudgetExceeded, wantProg: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			a := NewAccount("Conta", Checking, "Inter", OwnerMe, M(10000))
			l.AddAccount(a)
			if tc.spent > 0 {
				spend(t, l, a.ID, "2025-06-10", tc.spent, CategoryFood)
			}

			r := EvaluateBudget(l, NewBudget(CategoryFood, M(tc.limit)), on)
			if r.Status != tc.wantStatus {
				t.Errorf("status = %s, want %s", r.Status, tc.wantStatus)
			}
			if diff := r.Progress - tc.wantProg; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("progress = %v, want %v", r.Progress, tc.wantProg)
			}
		})
	}
}

func TestCategorySpending_ScopedToMonthAndCategory(t *testing.T) {
	l := NewLedger()
	a := NewAccount("Conta", Checking, "Inter", OwnerMe, M(10000))
	l.AddAccount(a)

	spend(t, l, a.ID, "2025-06-10", 100, CategoryFood)
	spend(t, l, a.ID, "2025-06-20", 50, CategoryFood)
	spend(t, l, a.ID, "2025-05-31", 999, CategoryFood)    // previous month
	spend(t, l, a.ID, "2025-06-12", 200, CategoryLeisure) // other category
	if _, err := l.Post(IncomeIntent{AccountID: a.ID, Date: MustParseDate("2025-06-05"), Amount: M(300), Merchant: "estorno", Category: CategoryFood}); err != nil {
		t.Fatal(err)
	}

	got := CategorySpending(l, CategoryFood, MustParseDate("2025-06-15"))
	if !got.Equal(M(150)) {
		t.Errorf("spending = %s, want 150 (only this month's negative food entries)", got)
	}
}

func TestTracker_AddBudget_UniqueCategory(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.AddBudget(CategoryFood, M(800)); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddBudget(CategoryFood, M(900)); !errors.Is(err, ErrDuplicateBudget) {
		t.Errorf("got %v, want ErrDuplicateBudget", err)
	}

	b := tr.Budget(CategoryFood)
	if b == nil || !b.Limit.Equal(M(800)) {
		t.Fatalf("the first budget must survive the rejected duplicate")
	}
	if !tr.DeleteBudget(b.ID) {
		t.Error("DeleteBudget returned false for an existing budget")
	}
	if tr.Budget(CategoryFood) != nil {
		t.Error("budget still present after delete")
	}
	if _, err := tr.AddBudget(CategoryFood, M(900)); err != nil {
		t.Errorf("recreate after delete: %v", err)
	}
}
