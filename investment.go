package wealthwise

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// CurrentCDIRate is the annual CDI benchmark rate used for fixed-income
// projections (11.25% per year).
const CurrentCDIRate = 0.1125

// MonthlyRate converts an annual compound rate into its monthly equivalent:
// (1+annual)^(1/12) - 1. This is a compound conversion, not annual/12.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// MonthlyCDIRate is the monthly equivalent of the current CDI rate.
func MonthlyCDIRate() float64 { return MonthlyRate(CurrentCDIRate) }

// InvestmentType is a typed string for the kind of position held.
type InvestmentType string

const (
	// FII is a listed real-estate fund: quantity, market price, monthly distributions.
	FII InvestmentType = "FII"
	// FixedIncome is a rate-indexed fund or bond tracked by cash amount.
	FixedIncome InvestmentType = "FIXED_INCOME"
	// Stock is an equity position tracked by quantity and average price.
	Stock InvestmentType = "STOCK"
	// Crypto is a crypto position; it pays no periodic income.
	Crypto InvestmentType = "CRYPTO"
)

// ParseInvestmentType parses an investment type name.
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch InvestmentType(s) {
	case FII, FixedIncome, Stock, Crypto:
		return InvestmentType(s), nil
	default:
		return "", fmt.Errorf("unknown investment type %q", s)
	}
}

// IndexBenchmark names the index a fixed-income position tracks.
type IndexBenchmark string

const (
	IndexCDI  IndexBenchmark = "CDI"
	IndexIPCA IndexBenchmark = "IPCA"
	IndexPre  IndexBenchmark = "PRE" // pre-fixed rate
)

// Liquidity classifies when a fixed-income position can be redeemed.
type Liquidity string

const (
	LiquidityDaily    Liquidity = "daily"
	LiquidityMaturity Liquidity = "maturity"
)

// Investment is a position in one of the four asset categories.
//
// For quantity-bearing types (FII, Stock, Crypto) the invariant
// AmountInvested == Quantity × AveragePrice is re-derived after every
// contribution; AveragePrice is never mutated independently.
type Investment struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           InvestmentType `json:"type"`
	AmountInvested Money          `json:"amountInvested"` // cumulative cost basis
	CurrentValue   Money          `json:"currentValue"`   // mark-to-model
	StartDate      Date           `json:"startDate"`

	// Quantity-bearing attributes.
	Ticker       string   `json:"ticker,omitempty"`
	Quantity     Quantity `json:"quantity,omitempty"`
	AveragePrice Money    `json:"averagePrice,omitempty"`
	LastDividend Money    `json:"lastDividend,omitempty"` // FII only, per unit

	// Fixed-income attributes.
	Index        IndexBenchmark `json:"index,omitempty"`
	Percentage   float64        `json:"percentage,omitempty"` // rate-of-index, e.g. 110 for 110% of CDI
	Liquidity    Liquidity      `json:"liquidity,omitempty"`
	MaturityDate Date           `json:"maturityDate,omitempty"`
}

// NewInvestment creates a position with its opening contribution as both
// cost basis and current value.
func NewInvestment(name string, typ InvestmentType, initial Money, start Date) *Investment {
	return &Investment{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           typ,
		AmountInvested: initial,
		CurrentValue:   initial,
		StartDate:      start,
	}
}

// QuantityBearing reports whether the position is tracked by unit count.
func (inv *Investment) QuantityBearing() bool {
	switch inv.Type {
	case FII, Stock, Crypto:
		return true
	default:
		return false
	}
}

// Yield returns the position's gain over its cost basis as a percentage.
// A zero cost basis yields 0, never a division error.
func (inv *Investment) Yield() Percent {
	if inv.AmountInvested.IsZero() {
		return 0
	}
	gain := inv.CurrentValue.Sub(inv.AmountInvested)
	return Percent(gain.Ratio(inv.AmountInvested) * 100)
}

// MonthlyIncome projects the position's income over one month.
//
// FIIs pay their last known distribution per unit. Fixed income accrues the
// monthly-equivalent CDI rate scaled by the contracted percentage. Stocks
// and crypto project no periodic income here.
func (inv *Investment) MonthlyIncome() Money {
	switch inv.Type {
	case FII:
		return inv.LastDividend.Mul(inv.Quantity)
	case FixedIncome:
		return inv.CurrentValue.MulFloat(MonthlyCDIRate() * inv.Percentage / 100)
	default:
		return Money{}
	}
}

// contribute applies a contribution to the position. With both a quantity
// and a unit price the cost basis is recomputed as a weighted average;
// otherwise the cash contributed is added to both basis and value. Quantity
// and unit price given to a position that does not track units still count
// as cash, so the position moves by exactly what left the source account.
// The current value is nudged by the cash contributed, not repriced to
// market.
func (inv *Investment) contribute(amount Money, quantity Quantity, unitPrice Money) {
	if inv.QuantityBearing() && quantity.IsPositive() && unitPrice.IsPositive() {
		added := unitPrice.Mul(quantity)
		inv.Quantity = inv.Quantity.Add(quantity)
		inv.AmountInvested = inv.AmountInvested.Add(added)
		inv.AveragePrice = inv.AmountInvested.Div(inv.Quantity)
		inv.CurrentValue = inv.CurrentValue.Add(added)
		return
	}
	cash := amount
	if !cash.IsPositive() {
		cash = unitPrice.Mul(quantity)
	}
	inv.AmountInvested = inv.AmountInvested.Add(cash)
	inv.CurrentValue = inv.CurrentValue.Add(cash)
}

// redeem removes amount from the position, shrinking the cost basis
// proportionally so the yield percentage stays meaningful afterwards. A
// zero current value makes the ratio 0: the value clamps but the basis is
// left untouched rather than propagating a division error.
func (inv *Investment) redeem(amount Money) {
	ratio := amount.Ratio(inv.CurrentValue)
	newValue := inv.CurrentValue.Sub(amount)
	if newValue.IsNegative() {
		newValue = Money{}
	}
	inv.CurrentValue = newValue
	inv.AmountInvested = inv.AmountInvested.Sub(inv.AmountInvested.MulFloat(ratio))
}
