package wealthwise

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvestmentNotFound = errors.New("investment not found")
	// ErrRedeemExceedsValue rejects redemptions above the position's current
	// value instead of silently clamping the position to zero.
	ErrRedeemExceedsValue = errors.New("redemption amount exceeds current value")
	ErrDuplicateBudget    = errors.New("a budget already exists for this category")
)

// Tracker is the root aggregate: the ledger plus the investment positions,
// budgets, goals and the user profile. It is single-writer, in-memory state;
// operations either fully apply or leave it untouched.
type Tracker struct {
	Ledger      *Ledger
	Investments []*Investment
	Budgets     []*Budget
	Goals       []*Goal
	Profile     *UserProfile
}

// NewTracker creates an empty tracker, gated in the onboarding state until a
// profile is set.
func NewTracker() *Tracker {
	return &Tracker{Ledger: NewLedger()}
}

// State reports whether the tracker is usable: without a profile everything
// is gated behind onboarding.
func (tr *Tracker) State() AppState {
	if tr.Profile == nil {
		return StateOnboarding
	}
	return StateActive
}

// CompleteOnboarding installs the profile and the wizard's starter goals,
// moving the tracker into the active state.
func (tr *Tracker) CompleteOnboarding(profile *UserProfile, goals ...*Goal) {
	tr.Profile = profile
	tr.Goals = append(tr.Goals, goals...)
}

// Investment returns the position with this id, or nil if unknown.
func (tr *Tracker) Investment(id string) *Investment {
	for _, inv := range tr.Investments {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

// AddInvestment registers a new position.
func (tr *Tracker) AddInvestment(inv *Investment) {
	tr.Investments = append(tr.Investments, inv)
}

// Contribution is the input of a Contribute operation. For quantity-bearing
// positions Quantity and UnitPrice drive a weighted-average recomputation;
// otherwise Amount is added as cash. A SourceAccountID additionally debits
// that account and leaves an audit expense in the ledger.
type Contribution struct {
	Amount          Money
	Quantity        Quantity
	UnitPrice       Money
	SourceAccountID string
	Date            Date
}

// cash returns the money leaving the user's pocket for this contribution.
func (c Contribution) cash() Money {
	if c.Amount.IsPositive() {
		return c.Amount
	}
	return c.UnitPrice.Mul(c.Quantity)
}

// Contribute applies a contribution to a position. The investment, account
// and transaction updates are atomic from the caller's point of view: every
// precondition is checked before the first mutation.
func (tr *Tracker) Contribute(investmentID string, c Contribution) error {
	inv := tr.Investment(investmentID)
	if inv == nil {
		return fmt.Errorf("contribute: %w: %q", ErrInvestmentNotFound, investmentID)
	}
	cash := c.cash()
	if !cash.IsPositive() {
		return fmt.Errorf("contribute: %w", ErrAmountNotPositive)
	}
	var source *Account
	if c.SourceAccountID != "" {
		if source = tr.Ledger.Account(c.SourceAccountID); source == nil {
			return fmt.Errorf("contribute: source %w: %q", ErrAccountNotFound, c.SourceAccountID)
		}
	}
	if c.Date.IsZero() {
		c.Date = Today()
	}

	inv.contribute(c.Amount, c.Quantity, c.UnitPrice)

	if source != nil {
		source.credit(cash.Neg())
		tr.Ledger.Append(Transaction{
			ID:        uuid.NewString(),
			AccountID: source.ID,
			Date:      c.Date,
			Amount:    cash.Neg(),
			Merchant:  "Aporte Investimento",
			Category:  CategoryInvestment,
			Status:    StatusCompleted,
			Owner:     source.Owner,
		})
	}
	return nil
}

// Redeem takes amount out of a position into a destination account, leaving
// an income record in the ledger. The cost basis shrinks proportionally so
// the position's yield stays meaningful.
//
// Redeeming more than the position's current value is rejected rather than
// clamped; callers wanting a full exit pass the current value itself.
func (tr *Tracker) Redeem(investmentID string, amount Money, destAccountID string, on Date) error {
	inv := tr.Investment(investmentID)
	if inv == nil {
		return fmt.Errorf("redeem: %w: %q", ErrInvestmentNotFound, investmentID)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("redeem: %w", ErrAmountNotPositive)
	}
	if amount.GreaterThan(inv.CurrentValue) {
		return fmt.Errorf("redeem: %w: %s > %s", ErrRedeemExceedsValue, amount, inv.CurrentValue)
	}
	dest := tr.Ledger.Account(destAccountID)
	if dest == nil {
		return fmt.Errorf("redeem: destination %w: %q", ErrAccountNotFound, destAccountID)
	}
	if on.IsZero() {
		on = Today()
	}

	inv.redeem(amount)
	dest.credit(amount)
	tr.Ledger.Append(Transaction{
		ID:        uuid.NewString(),
		AccountID: dest.ID,
		Date:      on,
		Amount:    amount,
		Merchant:  "Resgate Investimento",
		Category:  CategoryRedemption,
		Status:    StatusCompleted,
		Owner:     dest.Owner,
	})
	return nil
}

// Budget returns the budget for a category, or nil.
func (tr *Tracker) Budget(category Category) *Budget {
	for _, b := range tr.Budgets {
		if b.Category == category {
			return b
		}
	}
	return nil
}

// AddBudget creates a budget; categories are unique across the budget set.
func (tr *Tracker) AddBudget(category Category, limit Money) (*Budget, error) {
	if tr.Budget(category) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBudget, category)
	}
	b := NewBudget(category, limit)
	tr.Budgets = append(tr.Budgets, b)
	return b, nil
}

// DeleteBudget removes a budget by id; budgets change by delete and
// recreate, never in place.
func (tr *Tracker) DeleteBudget(id string) bool {
	for i, b := range tr.Budgets {
		if b.ID == id {
			tr.Budgets = append(tr.Budgets[:i], tr.Budgets[i+1:]...)
			return true
		}
	}
	return false
}

// AddGoal registers a goal.
func (tr *Tracker) AddGoal(g *Goal) {
	tr.Goals = append(tr.Goals, g)
}

// Goal returns the goal with this id, or nil.
func (tr *Tracker) Goal(id string) *Goal {
	for _, g := range tr.Goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Stats computes the dashboard aggregates for one view and period.
func (tr *Tracker) Stats(view Owner, period Period, on Date) *Stats {
	return NewStats(tr.Ledger, tr.Investments, view, period, on)
}
