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

// findInvestment resolves a position by id, ticker or case-insensitive name.
func findInvestment(tr *wealthwise.Tracker, key string) *wealthwise.Investment {
	if inv := tr.Investment(key); inv != nil {
		return inv
	}
	for _, inv := range tr.Investments {
		if strings.EqualFold(inv.Ticker, key) || strings.EqualFold(inv.Name, key) {
			return inv
		}
	}
	return nil
}

// --- Invest Command ---

// investCmd opens a position when -name or -ticker is given, lists the
// portfolio otherwise.
type investCmd struct {
	name      string
	typ       string
	amount    float64
	date      string
	ticker    string
	quantity  float64
	price     float64
	index     string
	pct       float64
	liquidity string
	maturity  string
	from      string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "open an investment position or list them" }
func (*investCmd) Usage() string {
	return `ww invest [-t <type> (-name <name> | -ticker <ticker>) ...]

  With -name or -ticker, opens a position. A known ticker auto-fills the
  name, price and last dividend from the reference quotes. Without flags,
  lists the portfolio.

Usage Examples:
# 100 quotas of a real-estate fund, paid from the Nubank account.
$ ww invest -t FII -ticker MXRF11 -q 100 -from Nubank

# A CDB yielding 110% of CDI.
$ ww invest -t FIXED_INCOME -name "CDB Inter" -v 10000 -index CDI -pct 110 -liquidity daily
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Position name")
	f.StringVar(&c.typ, "t", string(wealthwise.FixedIncome), "Type (FII, FIXED_INCOME, STOCK, CRYPTO)")
	f.Float64Var(&c.amount, "v", 0, "Amount invested in reais (non quantity-bearing types)")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Start date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "ticker", "", "Ticker, e.g. MXRF11")
	f.Float64Var(&c.quantity, "q", 0, "Number of units")
	f.Float64Var(&c.price, "p", 0, "Price per unit; defaults to the reference quote")
	f.StringVar(&c.index, "index", string(wealthwise.IndexCDI), "Benchmark index (CDI, IPCA, PRE)")
	f.Float64Var(&c.pct, "pct", 100, "Percentage of the index, e.g. 110 for 110% of CDI")
	f.StringVar(&c.liquidity, "liquidity", string(wealthwise.LiquidityDaily), "Liquidity (daily, maturity)")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date for fixed income (YYYY-MM-DD)")
	f.StringVar(&c.from, "from", "", "Account to debit for the opening contribution")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.name == "" && c.ticker == "" {
		printMarkdown(portfolioMarkdown(tr))
		return subcommands.ExitSuccess
	}

	typ, err := wealthwise.ParseInvestmentType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	start, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	name := c.name
	price := wealthwise.M(c.price)
	var lastDividend wealthwise.Money
	if quote, ok := wealthwise.LookupQuote(c.ticker); ok {
		if name == "" {
			name = quote.Name
		}
		if price.IsZero() {
			price = quote.Price
		}
		lastDividend = quote.LastDividend
	}
	if name == "" {
		name = c.ticker
	}

	inv := wealthwise.NewInvestment(name, typ, wealthwise.Money{}, start)
	contribution := wealthwise.Contribution{Date: start}

	if inv.QuantityBearing() {
		if c.quantity <= 0 || !price.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: quantity-bearing positions need -q and a price")
			return subcommands.ExitUsageError
		}
		inv.Ticker = strings.ToUpper(c.ticker)
		inv.LastDividend = lastDividend
		contribution.Quantity = wealthwise.Q(c.quantity)
		contribution.UnitPrice = price
	} else {
		if c.amount <= 0 {
			fmt.Fprintln(os.Stderr, "Error: fixed income positions need -v")
			return subcommands.ExitUsageError
		}
		inv.Index = wealthwise.IndexBenchmark(c.index)
		inv.Percentage = c.pct
		inv.Liquidity = wealthwise.Liquidity(c.liquidity)
		if c.maturity != "" {
			if inv.MaturityDate, err = wealthwise.ParseDate(c.maturity); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing maturity: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		contribution.Amount = wealthwise.M(c.amount)
	}

	if c.from != "" {
		source := findAccount(tr, c.from)
		if source == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.from)
			return subcommands.ExitUsageError
		}
		contribution.SourceAccountID = source.ID
	}

	tr.AddInvestment(inv)
	if err := tr.Contribute(inv.ID, contribution); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened %s position %q: %s\n", inv.Type, inv.Name, inv.CurrentValue)
	return subcommands.ExitSuccess
}

// portfolioMarkdown renders the positions as a markdown table.
func portfolioMarkdown(tr *wealthwise.Tracker) string {
	if len(tr.Investments) == 0 {
		return "# Portfolio\n\nNo positions yet. Open one with `ww invest`.\n"
	}
	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	b.WriteString("| Position | Type | Invested | Value | Yield | Monthly Income |\n|---|---|---:|---:|---:|---:|\n")
	var monthly wealthwise.Money
	for _, inv := range tr.Investments {
		name := inv.Name
		if inv.Ticker != "" {
			name = fmt.Sprintf("%s (%s)", inv.Name, inv.Ticker)
		}
		income := inv.MonthlyIncome()
		monthly = monthly.Add(income)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			name, inv.Type, inv.AmountInvested.Round2(), inv.CurrentValue.Round2(), inv.Yield().SignedString(), income.Round2())
	}
	fmt.Fprintf(&b, "\nProjected monthly income: %s\n", monthly.Round2())
	return b.String()
}

// --- Contribute Command ---

type contributeCmd struct {
	id       string
	amount   float64
	quantity float64
	price    float64
	from     string
	date     string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add money or units to a position" }
func (*contributeCmd) Usage() string {
	return `ww contribute -id <position> (-v <amount> | -q <quantity> -p <price>) [-from <account>] [-d <date>]

  Adds to a position. With -q and -p the average price is recomputed as a
  weighted average. With -from the account is debited and the ledger keeps
  an audit record.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Position id, ticker or name")
	f.Float64Var(&c.amount, "v", 0, "Cash amount in reais")
	f.Float64Var(&c.quantity, "q", 0, "Number of units")
	f.Float64Var(&c.price, "p", 0, "Price per unit")
	f.StringVar(&c.from, "from", "", "Account to debit")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Contribution date (YYYY-MM-DD)")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv := findInvestment(tr, c.id)
	if inv == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown position %q\n", c.id)
		return subcommands.ExitUsageError
	}
	day, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	contribution := wealthwise.Contribution{
		Amount:    wealthwise.M(c.amount),
		Quantity:  wealthwise.Q(c.quantity),
		UnitPrice: wealthwise.M(c.price),
		Date:      day,
	}
	if c.from != "" {
		source := findAccount(tr, c.from)
		if source == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.from)
			return subcommands.ExitUsageError
		}
		contribution.SourceAccountID = source.ID
	}

	if err := tr.Contribute(inv.ID, contribution); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s now holds %s (avg price %s)\n", inv.Name, inv.CurrentValue.Round2(), inv.AveragePrice.Round2())
	return subcommands.ExitSuccess
}

// --- Redeem Command ---

type redeemCmd struct {
	id     string
	amount float64
	to     string
	date   string
	all    bool
}

func (*redeemCmd) Name() string     { return "redeem" }
func (*redeemCmd) Synopsis() string { return "take money out of a position" }
func (*redeemCmd) Usage() string {
	return `ww redeem -id <position> (-v <amount> | -all) -to <account> [-d <date>]

  Redeems part of a position into an account. The cost basis shrinks
  proportionally. Redeeming more than the current value is an error; use
  -all for a full exit.
`
}

func (c *redeemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Position id, ticker or name")
	f.Float64Var(&c.amount, "v", 0, "Amount in reais")
	f.StringVar(&c.to, "to", "", "Destination account id or name")
	f.StringVar(&c.date, "d", wealthwise.Today().String(), "Redemption date (YYYY-MM-DD)")
	f.BoolVar(&c.all, "all", false, "Redeem the whole position")
}

func (c *redeemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, err := requireActive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv := findInvestment(tr, c.id)
	if inv == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown position %q\n", c.id)
		return subcommands.ExitUsageError
	}
	dest := findAccount(tr, c.to)
	if dest == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.to)
		return subcommands.ExitUsageError
	}
	day, err := wealthwise.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	amount := wealthwise.M(c.amount)
	if c.all {
		amount = inv.CurrentValue
	}
	if err := tr.Redeem(inv.ID, amount, dest.ID, day); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveTracker(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Redeemed %s from %s into %s\n", amount.Round2(), inv.Name, dest.Name)
	return subcommands.ExitSuccess
}
