package wealthwise

import (
	"errors"
	"fmt"
)

// IntentKind is a typed string identifying what the user meant to record.
type IntentKind string

const (
	KindExpense  IntentKind = "expense"
	KindIncome   IntentKind = "income"
	KindTransfer IntentKind = "transfer"
)

// Validation sentinels callers can test with errors.Is.
var (
	ErrSelfTransfer      = errors.New("transfer source and destination accounts must differ")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// Intent is a single user entry before it becomes ledger records. Each kind
// carries its own required fields and validates itself against the ledger,
// returning a copy with quick fixes applied (zero date resolved to today,
// amounts normalized to magnitudes) or an error. Nothing is mutated until a
// validated intent is posted.
type Intent interface {
	Kind() IntentKind
	When() Date
	Validate(l *Ledger) (Intent, error)
}

// ExpenseIntent records money leaving an account, optionally split into
// monthly installments (credit-card style).
type ExpenseIntent struct {
	AccountID    string
	Date         Date
	Amount       Money // magnitude; the sign is applied by the composer
	Merchant     string
	Category     Category
	Owner        Owner
	Installments int // 0 or 1 means no split
	Recurring    bool
}

func (i ExpenseIntent) Kind() IntentKind { return KindExpense }
func (i ExpenseIntent) When() Date       { return i.Date }

// Validate checks the expense fields and applies quick fixes: a zero date
// becomes today, a signed amount becomes its magnitude, zero installments
// become one.
func (i ExpenseIntent) Validate(l *Ledger) (Intent, error) {
	if i.Date.IsZero() {
		i.Date = Today()
	}
	if l.Account(i.AccountID) == nil {
		return i, fmt.Errorf("expense: %w: %q", ErrAccountNotFound, i.AccountID)
	}
	i.Amount = i.Amount.Abs()
	if !i.Amount.IsPositive() {
		return i, fmt.Errorf("expense: %w", ErrAmountNotPositive)
	}
	if i.Merchant == "" {
		return i, errors.New("expense: merchant is missing")
	}
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return i, fmt.Errorf("expense: %w", err)
	}
	if i.Installments < 0 {
		return i, fmt.Errorf("expense: installments must not be negative, got %d", i.Installments)
	}
	if i.Installments == 0 {
		i.Installments = 1
	}
	if i.Owner == "" {
		i.Owner = OwnerMe
	}
	return i, nil
}

// IncomeIntent records money entering an account.
type IncomeIntent struct {
	AccountID string
	Date      Date
	Amount    Money // magnitude
	Merchant  string
	Category  Category
	Owner     Owner
	Recurring bool
}

func (i IncomeIntent) Kind() IntentKind { return KindIncome }
func (i IncomeIntent) When() Date       { return i.Date }

// Validate checks the income fields, with the same quick fixes as expenses.
func (i IncomeIntent) Validate(l *Ledger) (Intent, error) {
	if i.Date.IsZero() {
		i.Date = Today()
	}
	if l.Account(i.AccountID) == nil {
		return i, fmt.Errorf("income: %w: %q", ErrAccountNotFound, i.AccountID)
	}
	i.Amount = i.Amount.Abs()
	if !i.Amount.IsPositive() {
		return i, fmt.Errorf("income: %w", ErrAmountNotPositive)
	}
	if i.Merchant == "" {
		return i, errors.New("income: merchant is missing")
	}
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return i, fmt.Errorf("income: %w", err)
	}
	if i.Owner == "" {
		i.Owner = OwnerMe
	}
	return i, nil
}

// TransferIntent moves money between two accounts of the same ledger. It
// produces a single record on the source leg; it is not double-entry.
type TransferIntent struct {
	FromAccountID string
	ToAccountID   string
	Date          Date
	Amount        Money // magnitude
	Owner         Owner
}

func (i TransferIntent) Kind() IntentKind { return KindTransfer }
func (i TransferIntent) When() Date       { return i.Date }

// Validate checks the transfer fields. Transfers to the same account are
// rejected with ErrSelfTransfer.
func (i TransferIntent) Validate(l *Ledger) (Intent, error) {
	if i.Date.IsZero() {
		i.Date = Today()
	}
	if i.FromAccountID == i.ToAccountID {
		return i, ErrSelfTransfer
	}
	if l.Account(i.FromAccountID) == nil {
		return i, fmt.Errorf("transfer: source %w: %q", ErrAccountNotFound, i.FromAccountID)
	}
	if l.Account(i.ToAccountID) == nil {
		return i, fmt.Errorf("transfer: destination %w: %q", ErrAccountNotFound, i.ToAccountID)
	}
	i.Amount = i.Amount.Abs()
	if !i.Amount.IsPositive() {
		return i, fmt.Errorf("transfer: %w", ErrAmountNotPositive)
	}
	if i.Owner == "" {
		i.Owner = OwnerMe
	}
	return i, nil
}
