package cmd

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wealthwise/wealthwise"
)

func newTestTracker(t *testing.T) *wealthwise.Tracker {
	t.Helper()
	tr := wealthwise.NewTracker()
	tr.CompleteOnboarding(&wealthwise.UserProfile{Name: "Ana", KnowledgeLevel: wealthwise.Beginner})
	tr.Ledger.AddAccount(wealthwise.NewAccount("Nubank", wealthwise.Checking, "Nubank", wealthwise.OwnerMe, wealthwise.M(3000)))
	return tr
}

func TestAccountsMarkdown(t *testing.T) {
	tr := newTestTracker(t)
	got := accountsMarkdown(tr)

	for _, want := range []string{"Nubank (default)", "Checking", "R$3.000,00"} {
		if !strings.Contains(got, want) {
			t.Errorf("accounts markdown is missing %q:\n%s", want, got)
		}
	}

	empty := wealthwise.NewTracker()
	if !strings.Contains(accountsMarkdown(empty), "No accounts yet") {
		t.Error("empty tracker should render a hint, not an empty table")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	tr := newTestTracker(t)
	if _, err := tr.AddBudget(wealthwise.CategoryFood, wealthwise.M(800)); err != nil {
		t.Fatal(err)
	}
	on := wealthwise.Today()
	got := summaryMarkdown(tr, wealthwise.OwnerJoint, wealthwise.Monthly, on)

	for _, want := range []string{"Net Worth", "R$3.000,00", "## Budgets", string(wealthwise.CategoryFood)} {
		if !strings.Contains(got, want) {
			t.Errorf("summary markdown is missing %q:\n%s", want, got)
		}
	}
}

func TestBillsMarkdown(t *testing.T) {
	tr := newTestTracker(t)
	var account *wealthwise.Account
	for a := range tr.Ledger.Accounts() {
		account = a
	}
	on := wealthwise.MustParseDate("2025-06-15")
	if _, err := tr.Ledger.Post(wealthwise.ExpenseIntent{
		AccountID: account.ID,
		Date:      wealthwise.MustParseDate("2025-06-05"),
		Amount:    wealthwise.M(55.90),
		Merchant:  "Netflix",
		Category:  wealthwise.CategoryBills,
		Recurring: true,
	}); err != nil {
		t.Fatal(err)
	}

	got := billsMarkdown(tr, on)
	if !strings.Contains(got, "Netflix") || !strings.Contains(got, "paid") {
		t.Errorf("bills markdown:\n%s", got)
	}
	if !strings.Contains(got, "Total fixed cost") {
		t.Error("bills markdown is missing the total")
	}
}

func TestFindAccount(t *testing.T) {
	tr := newTestTracker(t)
	var account *wealthwise.Account
	for a := range tr.Ledger.Accounts() {
		account = a
	}

	if findAccount(tr, account.ID) != account {
		t.Error("lookup by id failed")
	}
	if findAccount(tr, "nubank") != account {
		t.Error("lookup by case-insensitive name failed")
	}
	if findAccount(tr, "Banco Fantasma") != nil {
		t.Error("unknown names must not resolve")
	}
}

func TestLogger(t *testing.T) {
	log := Logger()
	if got := log.GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("default level = %s, want warn", got)
	}

	*verbose = true
	defer func() { *verbose = false }()
	log = Logger()
	if got := log.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("verbose level = %s, want debug", got)
	}
	log.Debug().Msg("verbose logging enabled")
}
