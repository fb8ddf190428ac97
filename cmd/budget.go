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

// budgetCmd sets a ceiling with -c and -v, deletes one with -del, and
// reports otherwise.
type budgetCmd struct {
	category string
	limit    float64
	del      string
	date     string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set monthly spending ceilings per category" }
func (*budgetCmd) Usage() string {
	return `ww budget [-c <category> -v <limit>] [-del <category>] [-d <date>]

  With -c and -v, creates a monthly ceiling for the category; one budget per
  category. With -del, removes it. Without flags, reports this month's
  spending against each ceiling. Warnings start at 80% of the limit.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to budget")
	f.Float64Var(&c.limit, "v", 0, "Monthly limit in reais")
	f.StringVar(&c.del, "del", "", "Category whose budget to delete")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Date anchoring the month")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.del != "":
		category, err := wealthwise.ParseCategory(c.del)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		b := tr.Budget(category)
		if b == nil || !tr.DeleteBudget(b.ID) {
			fmt.Fprintf(os.Stderr, "Error: no budget for %s\n", category)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted budget for %s\n", category)

	case c.category != "":
		category, err := wealthwise.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if c.limit <= 0 {
			fmt.Fprintln(os.Stderr, "Error: -v must be a positive limit")
			return subcommands.ExitUsageError
		}
		b, err := tr.AddBudget(category, wealthwise.M(c.limit))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Budget for %s set to %s per month\n", b.Category, b.Limit)

	default:
		on, err := wealthwise.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(budgetsMarkdown(tr, on))
		return subcommands.ExitSuccess
	}

	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// budgetsMarkdown renders the month's budget reports.
func budgetsMarkdown(tr *wealthwise.Tracker, on wealthwise.Date) string {
	if len(tr.Budgets) == 0 {
		return "# Budgets\n\nNo budgets yet. Set one with `ww budget -c <category> -v <limit>`.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets for %d-%02d\n\n", on.Year(), on.Month())
	b.WriteString("| Category | Spent | Limit | Remaining | Status |\n|---|---:|---:|---:|---|\n")
	for _, budget := range tr.Budgets {
		r := wealthwise.EvaluateBudget(tr.Ledger, budget, on)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", r.Category, r.Spent, r.Limit, r.Remaining, r.Status)
	}
	return b.String()
}
