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

// findAccount resolves an account by id or by case-insensitive name, so the
// user can type "Nubank" instead of a UUID.
func findAccount(tr *wealthwise.Tracker, key string) *wealthwise.Account {
	if a := tr.Ledger.Account(key); a != nil {
		return a
	}
	for a := range tr.Ledger.Accounts() {
		if strings.EqualFold(a.Name, key) {
			return a
		}
	}
	return nil
}

// postAndSave posts an intent, saves the tracker and reports the records
// created.
func postAndSave(tr *wealthwise.Tracker, intent wealthwise.Intent) subcommands.ExitStatus {
	txs, err := tr.Ledger.Post(intent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", intent.Kind(), err)
		return subcommands.ExitFailure
	}
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, t := range txs {
		fmt.Println(t)
	}
	return subcommands.ExitSuccess
}

// --- Expense Command ---

type expenseCmd struct {
	account      string
	date         string
	amount       float64
	merchant     string
	category     string
	owner        string
	installments int
	recurring    bool
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money leaving an account" }
func (*expenseCmd) Usage() string {
	return `ww expense -a <account> -v <amount> -m <merchant> -c <category> [-d <date>] [-n <installments>] [-r]

  Records an expense. With -n the amount is split into equal monthly
  installments; the account is debited for the full amount immediately.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id or name")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "v", 0, "Amount in reais")
	f.StringVar(&c.merchant, "m", "", "Merchant or description")
	f.StringVar(&c.category, "c", string(wealthwise.CategoryOther), "Category")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerMe), "Owner (me, partner, joint)")
	f.IntVar(&c.installments, "n", 1, "Number of monthly installments")
	f.BoolVar(&c.recurring, "r", false, "Mark as a recurring fixed bill")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	day, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return postAndSave(tr, wealthwise.ExpenseIntent{
		AccountID:    account.ID,
		Date:         day,
		Amount:       wealthwise.M(c.amount),
		Merchant:     c.merchant,
		Category:     wealthwise.Category(c.category),
		Owner:        wealthwise.Owner(c.owner),
		Installments: c.installments,
		Recurring:    c.recurring,
	})
}

// --- Income Command ---

type incomeCmd struct {
	account   string
	date      string
	amount    float64
	merchant  string
	category  string
	owner     string
	recurring bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money entering an account" }
func (*incomeCmd) Usage() string {
	return `ww income -a <account> -v <amount> -m <source> [-c <category>] [-d <date>]

  Records an income, e.g. a salary payment.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id or name")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "v", 0, "Amount in reais")
	f.StringVar(&c.merchant, "m", "", "Source or description")
	f.StringVar(&c.category, "c", string(wealthwise.CategoryIncome), "Category")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerMe), "Owner (me, partner, joint)")
	f.BoolVar(&c.recurring, "r", false, "Mark as recurring")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	day, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return postAndSave(tr, wealthwise.IncomeIntent{
		AccountID: account.ID,
		Date:      day,
		Amount:    wealthwise.M(c.amount),
		Merchant:  c.merchant,
		Category:  wealthwise.Category(c.category),
		Owner:     wealthwise.Owner(c.owner),
		Recurring: c.recurring,
	})
}

// --- Transfer Command ---

type transferCmd struct {
	from   string
	to     string
	date   string
	amount float64
	owner  string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `ww transfer -from <account> -to <account> -v <amount> [-d <date>]

  Moves money between two accounts. Both balances change; the ledger keeps a
  single record on the source account.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account id or name")
	f.StringVar(&c.to, "to", "", "Destination account id or name")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "v", 0, "Amount in reais")
	f.StringVar(&c.owner, "o", string(wealthwise.OwnerMe), "Owner (me, partner, joint)")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	from := findAccount(tr, c.from)
	to := findAccount(tr, c.to)
	if from == nil || to == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown account (%q or %q)\n", c.from, c.to)
		return subcommands.ExitUsageError
	}
	day, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return postAndSave(tr, wealthwise.TransferIntent{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Date:          day,
		Amount:        wealthwise.M(c.amount),
		Owner:         wealthwise.Owner(c.owner),
	})
}
