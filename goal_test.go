package wealthwise

import "testing"

func TestNewRetirementGoal_WithdrawalRate(t *testing.T) {
	// Living on R$5.000 a month at a 0.5% monthly withdrawal rate requires
	// a principal of R$1.000.000.
	g := NewRetirementGoal("Viver de Renda", RetirementDetails{
		CurrentAge:           30,
		RetirementAge:        55,
		DesiredMonthlyIncome: M(5000),
	})
	if !g.TargetAmount.Equal(M(1000000)) {
		t.Errorf("target = %s, want 1.000.000", g.TargetAmount)
	}
	if g.RetirementDetails == nil || g.RetirementDetails.RetirementAge != 55 {
		t.Error("retirement details were not kept")
	}
}

func TestNewEmergencyFundGoal(t *testing.T) {
	g := NewEmergencyFundGoal("Reserva", M(4000))
	if !g.TargetAmount.Equal(M(24000)) {
		t.Errorf("target = %s, want six months of 4000", g.TargetAmount)
	}

	fallback := NewEmergencyFundGoal("Reserva", Money{})
	if !fallback.TargetAmount.Equal(M(15000)) {
		t.Errorf("fallback target = %s, want 15000", fallback.TargetAmount)
	}
}

func TestGoal_Progress(t *testing.T) {
	g := NewPurchaseGoal("Carro", M(50000))

	if g.Progress() != 0 {
		t.Errorf("fresh goal progress = %v, want 0", g.Progress())
	}
	g.AddProgress(M(12500))
	if g.Progress() != 0.25 {
		t.Errorf("progress = %v, want 0.25", g.Progress())
	}
	g.AddProgress(M(100000))
	if g.Progress() != 1 {
		t.Errorf("overshoot progress = %v, want capped at 1", g.Progress())
	}
}

func TestSeedGoal(t *testing.T) {
	profile := &UserProfile{
		Name:         "Ana",
		TotalDebt:    M(12000),
		LiquidAssets: M(7000),
	}

	testCases := []struct {
		typ         GoalType
		wantTitle   string
		wantTarget  Money
		wantCurrent Money
	}{
		{typ: Retirement, wantTitle: "Viver de Renda", wantTarget: M(1000000)},
		{typ: Purchase, wantTitle: "Realizar Sonho (Casa/Carro)", wantTarget: M(50000)},
		{typ: DebtPayoff, wantTitle: "Sair das Dívidas", wantTarget: M(12000)},
		{typ: EmergencyFund, wantTitle: "Reserva de Emergência", wantTarget: M(15000), wantCurrent: M(7000)},
	}

	for _, tc := range testCases {
		t.Run(string(tc.typ), func(t *testing.T) {
			g := SeedGoal(tc.typ, profile)
			if g.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", g.Title, tc.wantTitle)
			}
			if !g.TargetAmount.Equal(tc.wantTarget) {
				t.Errorf("target = %s, want %s", g.TargetAmount, tc.wantTarget)
			}
			if !g.CurrentAmount.Equal(tc.wantCurrent) {
				t.Errorf("current = %s, want %s", g.CurrentAmount, tc.wantCurrent)
			}
		})
	}

	// Without a recorded debt the payoff goal falls back to a generic target.
	g := SeedGoal(DebtPayoff, &UserProfile{})
	if !g.TargetAmount.Equal(M(5000)) {
		t.Errorf("debt payoff fallback target = %s, want 5000", g.TargetAmount)
	}
}
