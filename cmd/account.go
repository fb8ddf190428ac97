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

// accountCmd adds an account when -i is given, lists them otherwise.
type accountCmd struct {
	name        string
	typ         string
	institution string
	owner       string
	balance     float64
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "add a manual account or list them" }
func (*accountCmd) Usage() string {
	return `ww account [-i <institution> [-t <type>] [-name <name>] [-o <owner>] [-b <balance>]]

  With -i, connects a manual account at the given institution and an opening
  balance. Without flags, lists the accounts. The first checking account
  becomes the default funding account for bill payments.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name, defaults to the institution")
	f.StringVar(&c.typ, "t", string(wealthwise.Checking), "Account type (Checking, Savings, Credit Card, Investment, Loan)")
	f.StringVar(&c.institution, "i", "", "Institution, e.g. Nubank")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerMe), "Owner (me, partner, joint)")
	f.Float64Var(&c.balance, "b", 0, "Opening balance in reais; negative for money owed on a card")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.institution == "" {
		printMarkdown(accountsMarkdown(tr))
		return subcommands.ExitSuccess
	}

	typ, err := wealthwise.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	owner, err := wealthwise.ParseOwner(c.owner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	a := wealthwise.NewAccount(c.name, typ, c.institution, owner, wealthwise.M(c.balance))
	tr.Ledger.AddAccount(a)
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s account %q at %s (%s)\n", a.Type, a.Name, a.Institution, a.Balance)
	return subcommands.ExitSuccess
}

// accountsMarkdown renders the account list as a markdown table.
func accountsMarkdown(tr *wealthwise.Tracker) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Name | Type | Institution | Owner | Balance |\n")
	b.WriteString("|---|---|---|---|---:|\n")
	empty := true
	for a := range tr.Ledger.Accounts() {
		empty = false
		name := a.Name
		if a.IsDefault {
			name += " (default)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", name, a.Type, a.Institution, a.Owner, a.Balance)
		if a.Type == wealthwise.Credit && !a.Owed().IsZero() {
			fmt.Fprintf(&b, "| | | | owed %s (%s of limit) | |\n", a.Owed(), a.Utilization())
		}
	}
	if empty {
		return "# Accounts\n\nNo accounts yet. Add one with `ww account -i <institution>`.\n"
	}
	return b.String()
}
