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

// billsCmd lists the detected fixed bills, or settles a card statement with
// -pay.
type billsCmd struct {
	date string
	pay  string
}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "list fixed monthly bills or pay a card statement" }
func (*billsCmd) Usage() string {
	return `ww bills [-d <date>] [-pay <credit account>]

  Lists the fixed monthly obligations inferred from recurring-flagged
  expenses and whether each is already paid this month. With -pay, settles
  the credit card's statement in full from the default checking account.
`
}

func (c *billsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Date anchoring the month")
	f.StringVar(&c.pay, "pay", "", "Credit account id or name to settle")
}

func (c *billsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.pay != "" {
		account := findAccount(tr, c.pay)
		if account == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.pay)
			return subcommands.ExitUsageError
		}
		t, err := tr.Ledger.PayBill(account.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if t == nil {
			fmt.Printf("Nothing owed on %s.\n", account.Name)
			return subcommands.ExitSuccess
		}
		if err := SaveTracker(tr); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(t)
		return subcommands.ExitSuccess
	}

	on, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(billsMarkdown(tr, on))
	return subcommands.ExitSuccess
}

// billsMarkdown renders the fixed bills and the total fixed cost.
func billsMarkdown(tr *wealthwise.Tracker, on wealthwise.Date) string {
	bills := wealthwise.DetectBills(tr.Ledger, on)
	if len(bills) == 0 {
		return "# Fixed Bills\n\nNo recurring bills found. Record expenses with -r to track them here.\n"
	}
	var b strings.Builder
	b.WriteString("# Fixed Bills\n\n")
	b.WriteString("| Bill | Category | Amount | This Month |\n|---|---|---:|---|\n")
	for _, bill := range bills {
		paid := "open"
		if bill.Paid {
			paid = "paid"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", bill.Merchant, bill.Category, bill.Amount, paid)
	}
	fmt.Fprintf(&b, "\nTotal fixed cost: %s per month\n", wealthwise.TotalFixedCost(bills))
	return b.String()
}
