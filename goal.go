package wealthwise

import (
	"fmt"

	"github.com/google/uuid"
)

// WithdrawalRate is the fixed monthly safe-withdrawal heuristic used to size
// retirement targets: 0.5% of principal per month, roughly a 6%/year rule.
const WithdrawalRate = 0.005

// emergencyFundMonths sizes the emergency reserve in months of cost of living.
const emergencyFundMonths = 6

// emergencyFundFallback is the default reserve target when no monthly cost
// of living is known.
var emergencyFundFallback = M(15000)

// GoalType is a typed string for the kind of financial goal.
type GoalType string

const (
	Purchase      GoalType = "PURCHASE"
	Retirement    GoalType = "RETIREMENT"
	EmergencyFund GoalType = "EMERGENCY_FUND"
	DebtPayoff    GoalType = "DEBT_PAYOFF"
)

// ParseGoalType parses a goal type name.
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(s) {
	case Purchase, Retirement, EmergencyFund, DebtPayoff:
		return GoalType(s), nil
	default:
		return "", fmt.Errorf("unknown goal type %q", s)
	}
}

// RetirementDetails records the inputs a retirement goal was sized from.
type RetirementDetails struct {
	CurrentAge           int   `json:"currentAge"`
	RetirementAge        int   `json:"retirementAge"`
	DesiredMonthlyIncome Money `json:"desiredMonthlyIncome"`
}

// Goal is a target amount to be reached over time. Progress is advanced only
// by explicit AddProgress calls; it is not derived from account balances.
type Goal struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Type                GoalType           `json:"type"`
	TargetAmount        Money              `json:"targetAmount"`
	CurrentAmount       Money              `json:"currentAmount"`
	Deadline            Date               `json:"deadline,omitempty"`
	MonthlyContribution Money              `json:"monthlyContribution,omitempty"`
	AIAnalysis          string             `json:"aiAnalysis,omitempty"` // stored strategy advice
	RetirementDetails   *RetirementDetails `json:"retirementDetails,omitempty"`
}

// NewPurchaseGoal sizes a purchase goal: the target is the purchase amount.
func NewPurchaseGoal(title string, amount Money) *Goal {
	return &Goal{
		ID:           uuid.NewString(),
		Title:        title,
		Type:         Purchase,
		TargetAmount: amount,
	}
}

// NewRetirementGoal sizes a retirement goal from the desired monthly income
// using the fixed withdrawal-rate heuristic: income / 0.005, i.e. R$5.000 a
// month requires a principal of R$1.000.000.
func NewRetirementGoal(title string, details RetirementDetails) *Goal {
	return &Goal{
		ID:                uuid.NewString(),
		Title:             title,
		Type:              Retirement,
		TargetAmount:      details.DesiredMonthlyIncome.MulFloat(1 / WithdrawalRate),
		RetirementDetails: &details,
	}
}

// NewEmergencyFundGoal sizes an emergency reserve as six months of cost of
// living, falling back to a fixed default when no monthly cost is known.
func NewEmergencyFundGoal(title string, monthlyCost Money) *Goal {
	target := emergencyFundFallback
	if monthlyCost.IsPositive() {
		target = monthlyCost.Mul(Q(emergencyFundMonths))
	}
	return &Goal{
		ID:           uuid.NewString(),
		Title:        title,
		Type:         EmergencyFund,
		TargetAmount: target,
	}
}

// AddProgress advances the saved amount towards the target.
func (g *Goal) AddProgress(amount Money) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
}

// Progress returns the completion fraction in [0,1].
func (g *Goal) Progress() float64 {
	p := g.CurrentAmount.Ratio(g.TargetAmount)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// SeedGoal builds the starter goal the onboarding wizard proposes for the
// focus the user picked, using generic targets the user refines later.
func SeedGoal(typ GoalType, profile *UserProfile) *Goal {
	g := &Goal{ID: uuid.NewString(), Type: typ}
	switch typ {
	case Retirement:
		g.Title = "Viver de Renda"
		g.TargetAmount = M(1000000)
	case Purchase:
		g.Title = "Realizar Sonho (Casa/Carro)"
		g.TargetAmount = M(50000)
	case DebtPayoff:
		g.Title = "Sair das Dívidas"
		g.TargetAmount = M(5000)
		if profile != nil && profile.TotalDebt.IsPositive() {
			g.TargetAmount = profile.TotalDebt
		}
	case EmergencyFund:
		g.Title = "Reserva de Emergência"
		g.TargetAmount = emergencyFundFallback
		if profile != nil {
			g.CurrentAmount = profile.LiquidAssets
		}
	}
	return g
}
