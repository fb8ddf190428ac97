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

// findGoal resolves a goal by id or case-insensitive title.
func findGoal(tr *wealthwise.Tracker, key string) *wealthwise.Goal {
	if g := tr.Goal(key); g != nil {
		return g
	}
	for _, g := range tr.Goals {
		if strings.EqualFold(g.Title, key) {
			return g
		}
	}
	return nil
}

// goalCmd creates a goal with -t and -title, records progress with
// -progress, and lists goals otherwise.
type goalCmd struct {
	typ         string
	title       string
	amount      float64
	income      float64
	age         int
	retireAge   int
	monthlyCost float64
	progress    string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create financial goals and track their progress" }
func (*goalCmd) Usage() string {
	return `ww goal [-t <type> -title <title> ...] [-progress <goal> -v <amount>]

  With -t and -title, creates a goal. Retirement goals are sized from the
  desired monthly income at a 0.5% monthly withdrawal rate; emergency funds
  at six months of cost of living. With -progress, moves a goal forward.
  Without flags, lists the goals.

Usage Examples:
# Needing R$5.000/month forever requires a R$1.000.000 principal.
$ ww goal -t RETIREMENT -title "Viver de Renda" -income 5000 -age 30 -retire-age 55

$ ww goal -progress "Viver de Renda" -v 1500
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Goal type (PURCHASE, RETIREMENT, EMERGENCY_FUND, DEBT_PAYOFF)")
	f.StringVar(&c.title, "title", "", "Goal title")
	f.Float64Var(&c.amount, "v", 0, "Target amount (purchase), or progress amount with -progress")
	f.Float64Var(&c.income, "income", 0, "Desired monthly income in retirement")
	f.IntVar(&c.age, "age", 0, "Current age (retirement goals)")
	f.IntVar(&c.retireAge, "retire-age", 0, "Intended retirement age")
	f.Float64Var(&c.monthlyCost, "monthly-cost", 0, "Monthly cost of living (emergency fund goals)")
	f.StringVar(&c.progress, "progress", "", "Goal id or title to add progress to")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.progress != "":
		g := findGoal(tr, c.progress)
		if g == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown goal %q\n", c.progress)
			return subcommands.ExitUsageError
		}
		if c.amount <= 0 {
			fmt.Fprintln(os.Stderr, "Error: -v must be a positive amount")
			return subcommands.ExitUsageError
		}
		g.AddProgress(wealthwise.M(c.amount))
		fmt.Printf("%s: %s of %s (%.0f%%)\n", g.Title, g.CurrentAmount, g.TargetAmount, g.Progress()*100)

	case c.typ != "":
		typ, err := wealthwise.ParseGoalType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		g, err := c.buildGoal(typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		tr.AddGoal(g)
		fmt.Printf("Created goal %q with target %s\n", g.Title, g.TargetAmount)

	default:
		printMarkdown(goalsMarkdown(tr))
		return subcommands.ExitSuccess
	}

	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *goalCmd) buildGoal(typ wealthwise.GoalType) (*wealthwise.Goal, error) {
	if c.title == "" {
		return nil, fmt.Errorf("-title is required")
	}
	switch typ {
	case wealthwise.Retirement:
		if c.income <= 0 {
			return nil, fmt.Errorf("retirement goals need -income")
		}
		return wealthwise.NewRetirementGoal(c.title, wealthwise.RetirementDetails{
			CurrentAge:           c.age,
			RetirementAge:        c.retireAge,
			DesiredMonthlyIncome: wealthwise.M(c.income),
		}), nil
	case wealthwise.EmergencyFund:
		return wealthwise.NewEmergencyFundGoal(c.title, wealthwise.M(c.monthlyCost)), nil
	case wealthwise.Purchase, wealthwise.DebtPayoff:
		if c.amount <= 0 {
			return nil, fmt.Errorf("%s goals need -v", typ)
		}
		g := wealthwise.NewPurchaseGoal(c.title, wealthwise.M(c.amount))
		g.Type = typ
		return g, nil
	default:
		return nil, fmt.Errorf("unknown goal type %q", typ)
	}
}

// goalsMarkdown renders the goal list with progress bars.
func goalsMarkdown(tr *wealthwise.Tracker) string {
	if len(tr.Goals) == 0 {
		return "# Goals\n\nNo goals yet. Create one with `ww goal -t <type> -title <title>`.\n"
	}
	var b strings.Builder
	b.WriteString("# Goals\n\n")
	b.WriteString("| Goal | Type | Saved | Target | Progress |\n|---|---|---:|---:|---:|\n")
	for _, g := range tr.Goals {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %.0f%% |\n",
			g.Title, g.Type, g.CurrentAmount, g.TargetAmount, g.Progress()*100)
	}
	return b.String()
}
