package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/wealthwise/wealthwise"
	"github.com/wealthwise/wealthwise/advisor"
)

// adviseCmd is the gateway to the AI strategist. Without arguments it prints
// the monthly insight; everything else is a free-form question. Without a
// GEMINI_API_KEY every mode degrades to an offline answer.
type adviseCmd struct {
	news bool
	goal string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI strategist about your finances" }
func (*adviseCmd) Usage() string {
	return `ww advise [-news] [-goal <goal>] [question...]

  Asks the AI strategist. Without arguments, prints a short monthly insight.
  With -news, generates headlines for the held positions. With -goal,
  analyzes the strategy for one goal and stores the advice on it. Any other
  arguments are sent as a free-form question with the full financial context.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.news, "news", false, "Generate headlines for the held positions")
	f.StringVar(&c.goal, "goal", "", "Goal id or title to analyze")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	LoadEnv()
	client, err := advisor.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	a := advisor.New(client, Logger())

	switch {
	case c.news:
		var b strings.Builder
		b.WriteString("# Market News\n\n")
		for _, h := range a.News(ctx, tr.Investments) {
			fmt.Fprintf(&b, "**%s**: %s\n\n", h.Title, h.Summary)
		}
		printMarkdown(b.String())

	case c.goal != "":
		g := findGoal(tr, c.goal)
		if g == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown goal %q\n", c.goal)
			return subcommands.ExitUsageError
		}
		printMarkdown(a.AnalyzeGoal(ctx, g, tr.Profile))
		if !a.Offline() {
			if err := SaveTracker(tr); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
				return subcommands.ExitFailure
			}
		}

	case f.NArg() > 0:
		question := strings.Join(f.Args(), " ")
		printMarkdown(a.Chat(ctx, tr, question))

	default:
		printMarkdown(a.MonthlyInsight(ctx, tr))
	}
	return subcommands.ExitSuccess
}

// importCmd extracts transactions from a pasted bank statement.
type importCmd struct {
	account string
	file    string
	owner   string
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "extract transactions from a bank statement" }
func (*importCmd) Usage() string {
	return `ww import -a <account> [-f <file>] [-dry-run]

  Reads a bank statement as plain text (from -f or stdin), extracts its
  transactions with the AI parser, and posts them into the account.
  Unrecognized categories fall back to Outros. Requires GEMINI_API_KEY.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id or name to post into")
	f.StringVar(&c.file, "f", "", "Statement text file; stdin when omitted")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerMe), "Owner (me, partner, joint)")
	f.BoolVar(&c.dryRun, "dry-run", false, "Print the extracted entries without posting them")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account := findAccount(tr, c.account)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
		return subcommands.ExitUsageError
	}

	statement, err := c.readStatement()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading statement:", err)
		return subcommands.ExitFailure
	}

	LoadEnv()
	client, err := advisor.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	a := advisor.New(client, Logger())

	entries, err := a.ExtractStatement(ctx, statement)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error extracting statement:", err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		for _, e := range entries {
			fmt.Printf("%s %s %.2f [%s]\n", e.Date, e.Merchant, e.Amount, e.Category)
		}
		return subcommands.ExitSuccess
	}

	owner := wealthwise.Owner(c.owner)
	log := Logger()
	posted := 0
	for _, e := range entries {
		var intent wealthwise.Intent
		if e.Amount < 0 {
			intent = wealthwise.ExpenseIntent{
				AccountID: account.ID,
				Date:      e.Date,
				Amount:    wealthwise.M(-e.Amount),
				Merchant:  e.Merchant,
				Category:  e.Category,
				Owner:     owner,
			}
		} else {
			intent = wealthwise.IncomeIntent{
				AccountID: account.ID,
				Date:      e.Date,
				Amount:    wealthwise.M(e.Amount),
				Merchant:  e.Merchant,
				Category:  e.Category,
				Owner:     owner,
			}
		}
		if _, err := tr.Ledger.Post(intent); err != nil {
			log.Warn().Err(err).Str("merchant", e.Merchant).Msg("skipping entry")
			continue
		}
		posted++
	}

	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d of %d transactions into %s\n", posted, len(entries), account.Name)
	return subcommands.ExitSuccess
}

func (c *importCmd) readStatement() (string, error) {
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}
