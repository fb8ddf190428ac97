package wealthwise

import "github.com/google/uuid"

// warningThreshold is the fraction of the limit at which a budget starts
// warning, before it is exceeded.
const warningThreshold = 0.80

// Budget is a per-category monthly spending ceiling. Budgets are created and
// deleted, never edited in place.
type Budget struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Limit    Money    `json:"limit"`
}

// NewBudget creates a budget for a category.
func NewBudget(category Category, limit Money) *Budget {
	return &Budget{ID: uuid.NewString(), Category: category, Limit: limit}
}

// BudgetStatus tiers a budget by how much of it is consumed.
type BudgetStatus int

const (
	BudgetOK BudgetStatus = iota
	BudgetWarning
	BudgetExceeded
)

func (s BudgetStatus) String() string {
	switch s {
	case BudgetOK:
		return "ok"
	case BudgetWarning:
		return "warning"
	case BudgetExceeded:
		return "exceeded"
	default:
		return "unknown"
	}
}

// BudgetReport is the evaluation of one budget against the current month.
type BudgetReport struct {
	Category  Category
	Limit     Money
	Spent     Money
	Remaining Money   // negative when exceeded
	Progress  float64 // capped at 1 even when exceeded
	Status    BudgetStatus
}

// CategorySpending sums the magnitude of this month's expenses in a
// category. Only negative amounts count; the month is the calendar month
// of on.
func CategorySpending(l *Ledger, category Category, on Date) Money {
	var spent Money
	for t := range l.Transactions(ByCategory(category), InPeriod(Monthly, on)) {
		if t.IsExpense() {
			spent = spent.Add(t.Amount.Abs())
		}
	}
	return spent
}

// EvaluateBudget maps a month's category spending against the budget limit.
//
// Tiers, in priority order: Exceeded when spent is strictly above the limit,
// Warning from 80% of the limit (spending exactly 80% warns, exceeding by a
// single centavo tips into Exceeded), OK otherwise.
func EvaluateBudget(l *Ledger, b *Budget, on Date) BudgetReport {
	spent := CategorySpending(l, b.Category, on)
	ratio := spent.Ratio(b.Limit)

	status := BudgetOK
	switch {
	case spent.GreaterThan(b.Limit):
		status = BudgetExceeded
	case ratio >= warningThreshold:
		status = BudgetWarning
	}

	progress := ratio
	if progress > 1 {
		progress = 1
	}

	return BudgetReport{
		Category:  b.Category,
		Limit:     b.Limit,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
		Progress:  progress,
		Status:    status,
	}
}
