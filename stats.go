package wealthwise

// Stats is the dashboard snapshot derived from the ledger and the investment
// positions for one ownership view and period. It is a pure function of its
// inputs; computing it mutates nothing.
type Stats struct {
	Date   Date
	Period Period
	View   Owner

	BankBalance       Money // all non-investment accounts in the view
	InvestmentBalance Money // current value of all positions
	NetWorth          Money // bank + investment balance

	PeriodIncome   Money // positive amounts, redemptions and contributions excluded
	PeriodExpense  Money // negative amounts, investment outflows excluded
	PeriodInvested Money // investment outflows, not partitioned by owner

	TotalInvested Money   // aggregate cost basis
	TotalValue    Money   // aggregate current value
	YieldPercent  Percent // aggregate gain over cost basis
}

// NewStats computes the dashboard aggregates.
//
// Income and expense are taken over the view's transactions; the invested
// total deliberately spans every owner, so a couple's dashboard counts both
// partners' contributions. Transaction order never affects any total.
func NewStats(l *Ledger, investments []*Investment, view Owner, period Period, on Date) *Stats {
	s := &Stats{Date: on, Period: period, View: view}

	for a := range l.Accounts(AccountView(view)) {
		if a.Type != InvestmentAccount {
			s.BankBalance = s.BankBalance.Add(a.Balance)
		}
	}

	for _, inv := range investments {
		s.InvestmentBalance = s.InvestmentBalance.Add(inv.CurrentValue)
		s.TotalInvested = s.TotalInvested.Add(inv.AmountInvested)
		s.TotalValue = s.TotalValue.Add(inv.CurrentValue)
	}
	s.NetWorth = s.BankBalance.Add(s.InvestmentBalance)

	inPeriod := InPeriod(period, on)
	for t := range l.Transactions(OwnerView(view), inPeriod) {
		switch {
		case t.IsIncome() && t.Category != CategoryInvestment && t.Category != CategoryRedemption:
			s.PeriodIncome = s.PeriodIncome.Add(t.Amount)
		case t.IsExpense() && t.Category != CategoryInvestment:
			s.PeriodExpense = s.PeriodExpense.Add(t.Amount.Abs())
		}
	}

	for t := range l.Transactions(ByCategory(CategoryInvestment), inPeriod) {
		if t.IsExpense() {
			s.PeriodInvested = s.PeriodInvested.Add(t.Amount.Abs())
		}
	}

	if !s.TotalInvested.IsZero() {
		gain := s.TotalValue.Sub(s.TotalInvested)
		s.YieldPercent = Percent(gain.Ratio(s.TotalInvested) * 100)
	}
	return s
}
