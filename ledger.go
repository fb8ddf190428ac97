package wealthwise

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/google/uuid"
)

// ErrNoFundingAccount is returned by PayBill when no checking account exists
// to draw the payment from.
var ErrNoFundingAccount = errors.New("no checking account available to fund the payment")

// Ledger holds the accounts and their transaction history.
//
// The transaction list is always sorted by date, most recent first; every
// operation that appends records restores that invariant over the whole list.
type Ledger struct {
	accounts     []*Account
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddAccount registers a new account. When the account is the first checking
// account of the ledger it becomes the default funding account.
func (l *Ledger) AddAccount(a *Account) {
	if a.Type == Checking && l.defaultChecking() == nil {
		a.IsDefault = true
	}
	l.accounts = append(l.accounts, a)
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for _, a := range l.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Accounts iterates over accounts matching every given filter.
func (l *Ledger) Accounts(filters ...func(*Account) bool) iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			ok := true
			for _, f := range filters {
				if !f(a) {
					ok = false
					break
				}
			}
			if ok && !yield(a) {
				return
			}
		}
	}
}

// AccountView selects the accounts visible to one member of the couple:
// their own plus the joint ones. OwnerJoint sees everything.
func AccountView(owner Owner) func(*Account) bool {
	return func(a *Account) bool {
		if owner == OwnerJoint {
			return true
		}
		return a.Owner == owner || a.Owner == OwnerJoint
	}
}

// defaultChecking returns the designated default checking account, or the
// first checking account when none is marked, or nil.
func (l *Ledger) defaultChecking() *Account {
	var first *Account
	for _, a := range l.accounts {
		if a.Type != Checking {
			continue
		}
		if a.IsDefault {
			return a
		}
		if first == nil {
			first = a
		}
	}
	return first
}

// Transactions iterates over transactions matching every given filter, in
// ledger order (most recent first).
func (l *Ledger) Transactions(filters ...TxFilter) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range l.transactions {
			ok := true
			for _, f := range filters {
				if !f(t) {
					ok = false
					break
				}
			}
			if ok && !yield(t) {
				return
			}
		}
	}
}

// Append adds records to the ledger and restores the whole-list ordering
// invariant.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.sortDescending()
}

// sortDescending stable-sorts the whole transaction list by date, most
// recent first. Stability keeps insertion order inside a day, so installment
// 1/N stays ahead of nothing and sibling records keep their relative order.
func (l *Ledger) sortDescending() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.After(l.transactions[j].Date)
	})
}

// Post validates an intent and expands it into ledger records and balance
// mutations. It is all-or-nothing: on a validation error the ledger is
// untouched and the error is returned.
func (l *Ledger) Post(intent Intent) ([]Transaction, error) {
	intent, err := intent.Validate(l)
	if err != nil {
		return nil, err
	}

	switch v := intent.(type) {
	case ExpenseIntent:
		return l.postExpense(v), nil
	case IncomeIntent:
		return l.postIncome(v), nil
	case TransferIntent:
		return l.postTransfer(v), nil
	default:
		return nil, fmt.Errorf("unsupported intent kind %q", intent.Kind())
	}
}

// postExpense expands an expense into its installment records.
//
// With N installments each record carries round(total/N, 2); the sum may
// fall short of the total by a cent, which is accepted rather than patched
// into the last installment. The account balance, however, is debited once
// for the full amount at posting time while future installments remain
// pending ledger entries: that is how card statements behave (debt now,
// itemized later).
func (l *Ledger) postExpense(in ExpenseIntent) []Transaction {
	total := in.Installments
	each := in.Amount.Div(Q(total)).Round2()
	originalID := uuid.NewString()

	txs := make([]Transaction, 0, total)
	for i := 0; i < total; i++ {
		t := Transaction{
			ID:          uuid.NewString(),
			AccountID:   in.AccountID,
			Date:        in.Date.AddMonth(i),
			Amount:      each.Neg(),
			Merchant:    in.Merchant,
			Category:    in.Category,
			Status:      StatusCompleted,
			Owner:       in.Owner,
			IsRecurring: in.Recurring,
		}
		if total > 1 {
			t.Merchant = fmt.Sprintf("%s (%d/%d)", in.Merchant, i+1, total)
			t.Installment = &Installment{Current: i + 1, Total: total, OriginalID: originalID}
			if i > 0 {
				t.Status = StatusPending
			}
		}
		txs = append(txs, t)
	}

	l.Account(in.AccountID).credit(in.Amount.Neg())
	l.Append(txs...)
	return txs
}

func (l *Ledger) postIncome(in IncomeIntent) []Transaction {
	t := Transaction{
		ID:          uuid.NewString(),
		AccountID:   in.AccountID,
		Date:        in.Date,
		Amount:      in.Amount,
		Merchant:    in.Merchant,
		Category:    in.Category,
		Status:      StatusCompleted,
		Owner:       in.Owner,
		IsRecurring: in.Recurring,
	}
	l.Account(in.AccountID).credit(in.Amount)
	l.Append(t)
	return []Transaction{t}
}

// postTransfer moves the amount between the two accounts and records a
// single negative entry on the source leg pointing at the destination.
func (l *Ledger) postTransfer(in TransferIntent) []Transaction {
	t := Transaction{
		ID:          uuid.NewString(),
		AccountID:   in.FromAccountID,
		ToAccountID: in.ToAccountID,
		Date:        in.Date,
		Amount:      in.Amount.Neg(),
		Merchant:    "Transferência",
		Category:    CategoryTransfer,
		Status:      StatusCompleted,
		Owner:       in.Owner,
	}
	l.Account(in.FromAccountID).credit(in.Amount.Neg())
	l.Account(in.ToAccountID).credit(in.Amount)
	l.Append(t)
	return []Transaction{t}
}

// PayBill settles a credit card statement in full from the default checking
// account (or the first checking account when none is marked default).
//
// A credit account with nothing owed is a no-op and returns (nil, nil).
// A missing funding account is a hard failure the caller must surface: it
// blocks an operation the user explicitly requested. The funding account is
// allowed to go negative; there is no overdraft check.
func (l *Ledger) PayBill(creditAccountID string) (*Transaction, error) {
	account := l.Account(creditAccountID)
	if account == nil {
		return nil, fmt.Errorf("pay bill: %w: %q", ErrAccountNotFound, creditAccountID)
	}
	if !account.Balance.IsNegative() {
		return nil, nil
	}

	funding := l.defaultChecking()
	if funding == nil {
		return nil, ErrNoFundingAccount
	}

	owed := account.Balance.Abs()
	t := Transaction{
		ID:        uuid.NewString(),
		AccountID: funding.ID,
		Date:      Today(),
		Amount:    owed.Neg(),
		Merchant:  fmt.Sprintf("Pagamento Fatura %s", account.Name),
		Category:  CategoryBills,
		Status:    StatusCompleted,
		Owner:     account.Owner,
	}

	account.SetBalance(Money{})
	funding.credit(owed.Neg())
	l.Append(t)
	return &t, nil
}
