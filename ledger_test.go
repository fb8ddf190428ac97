package wealthwise

import (
	"errors"
	"testing"
)

// newTestLedger creates a ledger with a checking account and a credit card,
// returning all three.
func newTestLedger(t *testing.T) (l *Ledger, checking, card *Account) {
	t.Helper()
	l = NewLedger()
	checking = NewAccount("Nubank", Checking, "Nubank", OwnerMe, M(3450.50))
	card = NewAccount("Itaú Card", Credit, "Itaú", OwnerMe, M(0))
	l.AddAccount(checking)
	l.AddAccount(card)
	return l, checking, card
}

func TestLedger_PostExpense(t *testing.T) {
	l, checking, _ := newTestLedger(t)

	txs, err := l.Post(ExpenseIntent{
		AccountID: checking.ID,
		Date:      MustParseDate("2025-06-10"),
		Amount:    M(250),
		Merchant:  "Mercado",
		Category:  CategoryFood,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d records, want 1", len(txs))
	}
	if !txs[0].Amount.Equal(M(-250)) {
		t.Errorf("amount = %s, want -250", txs[0].Amount)
	}
	if txs[0].Status != StatusCompleted {
		t.Errorf("status = %s, want completed", txs[0].Status)
	}
	if txs[0].Owner != OwnerMe {
		t.Errorf("owner = %s, want me by default", txs[0].Owner)
	}
	if !checking.Balance.Equal(M(3200.50)) {
		t.Errorf("balance = %s, want R$3.200,50", checking.Balance)
	}
}

func TestLedger_PostExpense_Installments(t *testing.T) {
	l, _, card := newTestLedger(t)

	txs, err := l.Post(ExpenseIntent{
		AccountID:    card.ID,
		Date:         MustParseDate("2025-01-15"),
		Amount:       M(100),
		Merchant:     "Notebook",
		Category:     CategoryShopping,
		Installments: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d records, want 3", len(txs))
	}

	wantDates := []string{"2025-01-15", "2025-02-15", "2025-03-15"}
	wantMerchants := []string{"Notebook (1/3)", "Notebook (2/3)", "Notebook (3/3)"}
	for i, tx := range txs {
		if !tx.Amount.Equal(M(-33.33)) {
			t.Errorf("installment %d amount = %s, want -33.33", i+1, tx.Amount)
		}
		if tx.Date.String() != wantDates[i] {
			t.Errorf("installment %d date = %s, want %s", i+1, tx.Date, wantDates[i])
		}
		if tx.Merchant != wantMerchants[i] {
			t.Errorf("installment %d merchant = %q, want %q", i+1, tx.Merchant, wantMerchants[i])
		}
		if tx.Installment == nil {
			t.Fatalf("installment %d has no link", i+1)
		}
		if tx.Installment.OriginalID != txs[0].Installment.OriginalID {
			t.Errorf("installment %d has a different original id", i+1)
		}
	}
	if txs[0].Status != StatusCompleted {
		t.Errorf("first installment status = %s, want completed", txs[0].Status)
	}
	for i := 1; i < 3; i++ {
		if txs[i].Status != StatusPending {
			t.Errorf("installment %d status = %s, want pending", i+1, txs[i].Status)
		}
	}

	// The card is debited once for the full amount, not per installment.
	if !card.Balance.Equal(M(-100)) {
		t.Errorf("card balance = %s, want -100", card.Balance)
	}
}

func TestLedger_PostExpense_QuickFixes(t *testing.T) {
	l, checking, _ := newTestLedger(t)

	// A signed amount and a zero date are normalized rather than rejected.
	txs, err := l.Post(ExpenseIntent{
		AccountID: checking.ID,
		Amount:    M(-80),
		Merchant:  "Uber",
		Category:  CategoryTransport,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !txs[0].Amount.Equal(M(-80)) {
		t.Errorf("amount = %s, want -80", txs[0].Amount)
	}
	if txs[0].Date.IsZero() {
		t.Error("date was not resolved to today")
	}
}

func TestLedger_PostExpense_Errors(t *testing.T) {
	l, checking, _ := newTestLedger(t)

	testCases := []struct {
		name   string
		intent ExpenseIntent
		want   error
	}{
		{
			name:   "unknown account",
			intent: ExpenseIntent{AccountID: "nope", Amount: M(10), Merchant: "x", Category: CategoryFood},
			want:   ErrAccountNotFound,
		},
		{
			name:   "zero amount",
			intent: ExpenseIntent{AccountID: checking.ID, Amount: M(0), Merchant: "x", Category: CategoryFood},
			want:   ErrAmountNotPositive,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.Post(tc.intent); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := l.Post(ExpenseIntent{AccountID: checking.ID, Amount: M(10), Merchant: "x", Category: "Fantasia"}); err == nil {
		t.Error("expected an error for an unknown category")
	}
	// Nothing was recorded by the failed posts.
	for range l.Transactions() {
		t.Fatal("failed posts must leave the ledger untouched")
	}
}

func TestLedger_PostTransfer(t *testing.T) {
	l, checking, _ := newTestLedger(t)
	savings := NewAccount("Poupança", Savings, "Nubank", OwnerMe, M(0))
	l.AddAccount(savings)

	txs, err := l.Post(TransferIntent{
		FromAccountID: checking.ID,
		ToAccountID:   savings.ID,
		Amount:        M(500),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d records, want a single source-leg record", len(txs))
	}
	if !txs[0].Amount.Equal(M(-500)) {
		t.Errorf("amount = %s, want -500", txs[0].Amount)
	}
	if txs[0].ToAccountID != savings.ID {
		t.Errorf("toAccountId = %q, want %q", txs[0].ToAccountID, savings.ID)
	}
	if !checking.Balance.Equal(M(2950.50)) {
		t.Errorf("source balance = %s, want R$2.950,50", checking.Balance)
	}
	if !savings.Balance.Equal(M(500)) {
		t.Errorf("destination balance = %s, want 500", savings.Balance)
	}
}

func TestLedger_PostTransfer_SelfRejected(t *testing.T) {
	l, checking, _ := newTestLedger(t)
	_, err := l.Post(TransferIntent{FromAccountID: checking.ID, ToAccountID: checking.ID, Amount: M(10)})
	if !errors.Is(err, ErrSelfTransfer) {
		t.Errorf("got %v, want ErrSelfTransfer", err)
	}
}

func TestLedger_Ordering(t *testing.T) {
	l, checking, _ := newTestLedger(t)

	for _, day := range []string{"2025-03-10", "2025-01-05", "2025-02-20"} {
		if _, err := l.Post(IncomeIntent{
			AccountID: checking.ID,
			Date:      MustParseDate(day),
			Amount:    M(100),
			Merchant:  "Salário",
			Category:  CategoryIncome,
		}); err != nil {
			t.Fatal(err)
		}
	}

	var dates []string
	for tx := range l.Transactions() {
		dates = append(dates, tx.Date.String())
	}
	want := []string{"2025-03-10", "2025-02-20", "2025-01-05"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want most recent first %v", dates, want)
		}
	}
}

func TestLedger_PayBill(t *testing.T) {
	l, checking, card := newTestLedger(t)
	card.SetBalance(M(-1840.30))

	tx, err := l.PayBill(card.ID)
	if err != nil {
		t.Fatal(err)
	}
	if tx == nil {
		t.Fatal("expected a payment record")
	}
	if !tx.Amount.Equal(M(-1840.30)) {
		t.Errorf("payment amount = %s, want -1840.30", tx.Amount)
	}
	if tx.Merchant != "Pagamento Fatura Itaú Card" {
		t.Errorf("merchant = %q", tx.Merchant)
	}
	if tx.Category != CategoryBills {
		t.Errorf("category = %s, want %s", tx.Category, CategoryBills)
	}
	if !card.Balance.IsZero() {
		t.Errorf("card balance = %s, want zero", card.Balance)
	}
	if !checking.Balance.Equal(M(1610.20)) {
		t.Errorf("checking balance = %s, want R$1.610,20", checking.Balance)
	}
}

func TestLedger_PayBill_NothingOwed(t *testing.T) {
	l, _, card := newTestLedger(t)
	tx, err := l.PayBill(card.ID)
	if err != nil || tx != nil {
		t.Errorf("got (%v, %v), want a silent no-op", tx, err)
	}
}

func TestLedger_PayBill_NoFundingAccount(t *testing.T) {
	l := NewLedger()
	card := NewAccount("Card", Credit, "Itaú", OwnerMe, M(-100))
	l.AddAccount(card)

	if _, err := l.PayBill(card.ID); !errors.Is(err, ErrNoFundingAccount) {
		t.Errorf("got %v, want ErrNoFundingAccount", err)
	}
}

func TestLedger_DefaultChecking(t *testing.T) {
	l := NewLedger()
	first := NewAccount("First", Checking, "Inter", OwnerMe, M(0))
	second := NewAccount("Second", Checking, "Itaú", OwnerMe, M(0))
	l.AddAccount(first)
	l.AddAccount(second)

	if !first.IsDefault {
		t.Error("first checking account should become the default")
	}
	if second.IsDefault {
		t.Error("second checking account must not take over the default")
	}
}

func TestOwnerView(t *testing.T) {
	mine := Transaction{Owner: OwnerMe}
	partners := Transaction{Owner: OwnerPartner}
	joint := Transaction{Owner: OwnerJoint}

	view := OwnerView(OwnerMe)
	if !view(mine) || !view(joint) {
		t.Error("me view must include own and joint records")
	}
	if view(partners) {
		t.Error("me view must not include the partner's records")
	}
	all := OwnerView(OwnerJoint)
	if !all(mine) || !all(partners) || !all(joint) {
		t.Error("joint view must include everything")
	}
}
