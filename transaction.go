package wealthwise

import "fmt"

// Status is the settlement state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Installment links a transaction to the purchase it was split from.
// All records sharing an OriginalID run Current 1..Total, dated one month
// apart, each carrying the original amount divided by Total.
type Installment struct {
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	OriginalID string `json:"originalId"`
}

// Transaction is an immutable ledger entry. Edits happen only through new
// offsetting entries, never by mutating an existing record.
type Transaction struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"accountId"`
	ToAccountID string       `json:"toAccountId,omitempty"` // transfers only
	Date        Date         `json:"date"`
	Amount      Money        `json:"amount"` // negative for expense, positive for income
	Merchant    string       `json:"merchant"`
	Category    Category     `json:"category"`
	Status      Status       `json:"status"`
	Owner       Owner        `json:"owner"`
	Installment *Installment `json:"installments,omitempty"`
	IsRecurring bool         `json:"isRecurring,omitempty"`
}

// IsExpense reports whether the entry is an outflow.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// IsIncome reports whether the entry is an inflow.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s [%s]", t.Date, t.Merchant, t.Amount, t.Category)
}

// TxFilter selects transactions for queries and aggregates.
type TxFilter func(Transaction) bool

// AcceptAll matches every transaction.
func AcceptAll(Transaction) bool { return true }

// ByOwner matches transactions tagged with the given owner.
func ByOwner(owner Owner) TxFilter {
	return func(t Transaction) bool { return t.Owner == owner }
}

// ByCategory matches transactions of the given category.
func ByCategory(c Category) TxFilter {
	return func(t Transaction) bool { return t.Category == c }
}

// InPeriod matches transactions falling in the period anchored at on.
func InPeriod(p Period, on Date) TxFilter {
	return func(t Transaction) bool { return p.Contains(on, t.Date) }
}

// OwnerView selects the transactions visible to one member of the couple:
// their own plus the joint ones. OwnerJoint sees everything.
func OwnerView(owner Owner) TxFilter {
	return func(t Transaction) bool {
		if owner == OwnerJoint {
			return true
		}
		return t.Owner == owner || t.Owner == OwnerJoint
	}
}
