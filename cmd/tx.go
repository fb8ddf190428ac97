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

type txCmd struct {
	date     string
	period   string
	owner    string
	category string
	head     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `ww tx [-p <period>] [-d <date>] [-o <owner>] [-c <category>] [-head <n>]

  Lists transactions, most recent first, with options for filtering and
  limiting the output. Without -p the whole history is shown.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Date anchoring the period")
	f.StringVar(&c.period, "p", "", "Restrict to a period (month, year)")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerJoint), "Ownership view (me, partner, joint)")
	f.StringVar(&c.category, "c", "", "Restrict to a category")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	owner, err := wealthwise.ParseOwner(c.owner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	filters := []wealthwise.TxFilter{wealthwise.OwnerView(owner)}
	if c.period != "" {
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
		filters = append(filters, wealthwise.InPeriod(period, on))
	}
	if c.category != "" {
		category, err := wealthwise.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, wealthwise.ByCategory(category))
	}

	var b strings.Builder
	b.WriteString("| Date | Merchant | Category | Status | Amount |\n|---|---|---|---|---:|\n")
	n := 0
	for t := range tr.Ledger.Transactions(filters...) {
		if c.head > 0 && n == c.head {
			break
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t.Date, t.Merchant, t.Category, t.Status, t.Amount.SignedString())
		n++
	}
	if n == 0 {
		fmt.Println("No transactions.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
