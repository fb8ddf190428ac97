package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wealthwise/wealthwise"
)

func newTestTracker(t *testing.T) *wealthwise.Tracker {
	t.Helper()
	tr := wealthwise.NewTracker()
	tr.CompleteOnboarding(&wealthwise.UserProfile{
		Name:           "Ana",
		KnowledgeLevel: wealthwise.Advanced,
		TotalDebt:      wealthwise.M(2000),
		LiquidAssets:   wealthwise.M(30000),
	})
	checking := wealthwise.NewAccount("Nubank", wealthwise.Checking, "Nubank", wealthwise.OwnerMe, wealthwise.M(5000))
	tr.Ledger.AddAccount(checking)

	fii := wealthwise.NewInvestment("Maxi Renda", wealthwise.FII, wealthwise.Money{}, wealthwise.MustParseDate("2025-01-02"))
	fii.Ticker = "MXRF11"
	fii.Quantity = wealthwise.Q(100)
	fii.LastDividend = wealthwise.M(0.11)
	fii.CurrentValue = wealthwise.M(1045)
	tr.AddInvestment(fii)
	return tr
}

func TestOfflineFallbacks(t *testing.T) {
	tr := newTestTracker(t)
	a := New(nil, zerolog.Nop())

	if !a.Offline() {
		t.Fatal("an advisor without a client must report offline")
	}
	if got := a.MonthlyInsight(context.Background(), tr); got != offlineInsight {
		t.Errorf("insight = %q, want the offline message", got)
	}
	goal := wealthwise.NewPurchaseGoal("Carro", wealthwise.M(50000))
	if got := a.AnalyzeGoal(context.Background(), goal, tr.Profile); got != offlineAnalysis {
		t.Errorf("analysis = %q, want the offline message", got)
	}
	if goal.AIAnalysis != "" {
		t.Error("offline analysis must not be stored on the goal")
	}
	if got := a.Chat(context.Background(), tr, "devo investir?"); got != offlineAnalysis {
		t.Errorf("chat = %q, want the offline message", got)
	}
	if _, err := a.ExtractStatement(context.Background(), "extrato"); err != ErrOffline {
		t.Errorf("extract err = %v, want ErrOffline", err)
	}
}

func TestNews_Fallbacks(t *testing.T) {
	a := New(nil, zerolog.Nop())

	// An empty portfolio gets the starter headlines even before reaching
	// the model.
	got := a.News(context.Background(), nil)
	if len(got) != 2 || got[0].Title != "Comece a investir" {
		t.Errorf("empty portfolio news = %+v", got)
	}

	tr := newTestTracker(t)
	got = a.News(context.Background(), tr.Investments)
	if len(got) != 2 || got[1].Title != "Mercado Financeiro" {
		t.Errorf("offline news = %+v", got)
	}
}

func TestBuildSystemInstruction(t *testing.T) {
	tr := newTestTracker(t)
	got := BuildSystemInstruction(tr)

	for _, want := range []string{
		"User Level: ADVANCED",
		"User Debt: R$ 2000.00",
		"CDI: 11.25%",
		"FII MXRF11",
		"Brazilian tax laws",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system instruction is missing %q:\n%s", want, got)
		}
	}
}

func TestBuildGoalPrompt_Retirement(t *testing.T) {
	goal := wealthwise.NewRetirementGoal("Viver de Renda", wealthwise.RetirementDetails{
		CurrentAge:           30,
		RetirementAge:        55,
		DesiredMonthlyIncome: wealthwise.M(5000),
	})
	got := buildGoalPrompt(goal, &wealthwise.UserProfile{Name: "Ana", KnowledgeLevel: wealthwise.Beginner})

	for _, want := range []string{
		"RETIREMENT SPECIFICS",
		"Retirement Age: 55",
		"Target: R$ 1000000.00",
		"Deadline: Undefined",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("goal prompt is missing %q", want)
		}
	}
}

func TestBuildStatementPrompt_ListsCategories(t *testing.T) {
	got := buildStatementPrompt("01/06 PIX Mercado -90,00")
	if !strings.Contains(got, string(wealthwise.CategoryFood)) {
		t.Error("statement prompt must list the closed category set")
	}
	if !strings.Contains(got, "01/06 PIX Mercado") {
		t.Error("statement prompt must embed the statement")
	}
}

func TestCleanModelJSON(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `[{"a":1}]`, want: `[{"a":1}]`},
		{name: "fenced", raw: "```json\n[{\"a\":1}]\n```", want: `[{"a":1}]`},
		{name: "bare fence", raw: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "prose around", raw: "Here you go:\n[1,2]\nHope it helps!", want: `[1,2]`},
		{name: "whitespace", raw: "  [1]  ", want: `[1]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanModelJSON(tc.raw); got != tc.want {
				t.Errorf("cleanModelJSON(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
