package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthwise/wealthwise"
)

// onboardCmd creates the user profile, gating every other command until it
// has run once.
type onboardCmd struct {
	name   string
	level  string
	debt   float64
	assets float64
	focus  string
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "create the user profile and a starter goal" }
func (*onboardCmd) Usage() string {
	return `ww onboard -name <name> [-level <level>] [-debt <amount>] [-assets <amount>] [-focus <goal_type>]

  Creates the user profile. Every other command refuses to run before this.
  The focus picks a starter goal: RETIREMENT, PURCHASE, DEBT_PAYOFF or
  EMERGENCY_FUND.
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name")
	f.StringVar(&c.level, "level", string(wealthwise.Beginner), "Knowledge level (BEGINNER, INTERMEDIATE, ADVANCED)")
	f.Float64Var(&c.debt, "debt", 0, "Total outstanding debt in reais")
	f.Float64Var(&c.assets, "assets", 0, "Total liquid assets in reais")
	f.StringVar(&c.focus, "focus", "", "Main financial focus, creates a starter goal")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tr, err := LoadTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if tr.State() == wealthwise.StateActive {
		fmt.Fprintf(os.Stderr, "Error: profile already exists for %s\n", tr.Profile.Name)
		return subcommands.ExitFailure
	}
	level, err := wealthwise.ParseKnowledgeLevel(c.level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	profile := &wealthwise.UserProfile{
		Name:           c.name,
		KnowledgeLevel: level,
		TotalDebt:      wealthwise.M(c.debt),
		LiquidAssets:   wealthwise.M(c.assets),
	}

	var goals []*wealthwise.Goal
	if c.focus != "" {
		typ, err := wealthwise.ParseGoalType(c.focus)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		goals = append(goals, wealthwise.SeedGoal(typ, profile))
	}

	tr.CompleteOnboarding(profile, goals...)
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Welcome, %s!\n", profile.Name)
	for _, g := range goals {
		fmt.Printf("Starter goal: %s (target %s)\n", g.Title, g.TargetAmount)
	}
	return subcommands.ExitSuccess
}

// connectCmd links a partner to the profile for couple mode.
type connectCmd struct {
	partner      string
	netWorth     bool
	transactions bool
	goals        bool
}

func (*connectCmd) Name() string     { return "connect" }
func (*connectCmd) Synopsis() string { return "link a partner for couple mode" }
func (*connectCmd) Usage() string {
	return `ww connect -partner <name> [-share-networth] [-share-transactions] [-share-goals]

  Connects a partner to the profile and records what they may see. After
  connecting, accounts and transactions can be tagged with -o partner or
  -o joint.
`
}

func (c *connectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.partner, "partner", "", "Partner's name")
	f.BoolVar(&c.netWorth, "share-networth", true, "Share net worth with the partner")
	f.BoolVar(&c.transactions, "share-transactions", true, "Share transactions with the partner")
	f.BoolVar(&c.goals, "share-goals", true, "Share goals with the partner")
}

func (c *connectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.partner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tr.Profile.ConnectPartner(wealthwise.PartnerConfig{
		IsConnected: true,
		PartnerName: c.partner,
		Permissions: wealthwise.PartnerPermissions{
			ShareNetWorth:     c.netWorth,
			ShareTransactions: c.transactions,
			ShareGoals:        c.goals,
		},
	})
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Connected with %s.\n", c.partner)
	return subcommands.ExitSuccess
}
