package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/wealthwise/wealthwise"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	period string
	owner  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard aggregates" }
func (*summaryCmd) Usage() string {
	return `ww summary [-d <date>] [-p <period>] [-o <owner>]

  Displays net worth, the period's income, expenses and contributions, the
  portfolio totals, and the budget status.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Date anchoring the period")
	f.StringVar(&c.period, "p", "month", "Aggregation period (month, year)")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerJoint), "Ownership view (me, partner, joint)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	on, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := wealthwise.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	owner, err := wealthwise.ParseOwner(c.owner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(summaryMarkdown(tr, owner, period, on))
	return subcommands.ExitSuccess
}

// summaryMarkdown renders the dashboard for one view and period.
func summaryMarkdown(tr *wealthwise.Tracker, owner wealthwise.Owner, period wealthwise.Period, on wealthwise.Date) string {
	stats := tr.Stats(owner, period, on)

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary %s (%s, %s view)\n\n", on, period, owner)
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Net Worth | %s |\n", stats.NetWorth)
	fmt.Fprintf(&b, "| Bank Balance | %s |\n", stats.BankBalance)
	fmt.Fprintf(&b, "| Invested | %s |\n", stats.InvestmentBalance)
	fmt.Fprintf(&b, "| Income | %s |\n", stats.PeriodIncome)
	fmt.Fprintf(&b, "| Expenses | %s |\n", stats.PeriodExpense)
	fmt.Fprintf(&b, "| Contributions | %s |\n", stats.PeriodInvested)
	if !stats.TotalInvested.IsZero() {
		fmt.Fprintf(&b, "| Portfolio Yield | %s |\n", stats.YieldPercent.SignedString())
	}

	if len(tr.Budgets) > 0 {
		b.WriteString("\n## Budgets\n\n")
		b.WriteString("| Category | Spent | Limit | Status |\n|---|---:|---:|---|\n")
		for _, budget := range tr.Budgets {
			r := wealthwise.EvaluateBudget(tr.Ledger, budget, on)
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Category, r.Spent, r.Limit, r.Status)
		}
	}

	if len(tr.Goals) > 0 {
		b.WriteString("\n## Goals\n\n")
		b.WriteString("| Goal | Saved | Target | Progress |\n|---|---:|---:|---:|\n")
		for _, g := range tr.Goals {
			fmt.Fprintf(&b, "| %s | %s | %s | %.0f%% |\n", g.Title, g.CurrentAmount, g.TargetAmount, g.Progress()*100)
		}
	}
	return b.String()
}
