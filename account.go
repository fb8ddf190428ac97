package wealthwise

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountType is a typed string for the kind of money container an account is.
type AccountType string

const (
	Checking          AccountType = "Checking"
	Savings           AccountType = "Savings"
	Credit            AccountType = "Credit Card"
	InvestmentAccount AccountType = "Investment"
	Loan              AccountType = "Loan"
)

// ParseAccountType parses an account type name.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Credit, InvestmentAccount, Loan:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// Owner tags who an account or transaction belongs to in a couple setup.
type Owner string

const (
	OwnerMe      Owner = "me"
	OwnerPartner Owner = "partner"
	OwnerJoint   Owner = "joint"
)

// ParseOwner parses an owner tag.
func ParseOwner(s string) (Owner, error) {
	switch Owner(s) {
	case OwnerMe, OwnerPartner, OwnerJoint:
		return Owner(s), nil
	default:
		return "", fmt.Errorf("unknown owner %q", s)
	}
}

// Account is a named money container.
//
// The balance sign convention is type-dependent: for Credit accounts a
// negative balance is money owed, a positive one a credit in the user's
// favor. Accounts are never hard-deleted.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Balance     Money       `json:"balance"`
	CreditLimit Money       `json:"creditLimit,omitempty"` // credit cards only
	Institution string      `json:"institution"`
	Owner       Owner       `json:"owner"`
	IsDefault   bool        `json:"isDefault,omitempty"` // at most one default checking account, by convention
	Color       string      `json:"color,omitempty"`     // display hint
	LastUpdated time.Time   `json:"lastUpdated"`
}

// NewAccount creates an account with an initial balance, as the user's
// "connect account" action does. Credit accounts get a placeholder limit.
func NewAccount(name string, typ AccountType, institution string, owner Owner, initial Money) *Account {
	if name == "" {
		name = institution
	}
	a := &Account{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        typ,
		Balance:     initial,
		Institution: institution,
		Owner:       owner,
		LastUpdated: time.Now(),
	}
	if typ == Credit {
		a.CreditLimit = M(5000)
	}
	return a
}

// Owed returns the debt carried by a credit account, zero when the balance
// is in the user's favor.
func (a *Account) Owed() Money {
	if a.Type != Credit || !a.Balance.IsNegative() {
		return Money{}
	}
	return a.Balance.Abs()
}

// Utilization returns how much of the credit limit is used. A zero or
// missing limit yields 0, never a division error.
func (a *Account) Utilization() Percent {
	if a.Type != Credit || a.CreditLimit.IsZero() {
		return 0
	}
	return Percent(a.Owed().Ratio(a.CreditLimit) * 100)
}

// SetBalance applies a manual balance edit.
func (a *Account) SetBalance(balance Money) {
	a.Balance = balance
	a.LastUpdated = time.Now()
}

// credit applies a signed delta to the balance.
func (a *Account) credit(delta Money) {
	a.Balance = a.Balance.Add(delta)
	a.LastUpdated = time.Now()
}
