package advisor

import (
	"fmt"
	"strings"

	"github.com/wealthwise/wealthwise"
)

// recentTxnLimit caps how much transaction history goes into the context.
const recentTxnLimit = 30

// BuildSystemInstruction serializes the user's financial context into the
// advisor chat's system instruction. Pure string building; the caller owns
// what goes over the wire.
func BuildSystemInstruction(tr *wealthwise.Tracker) string {
	var b strings.Builder

	level := wealthwise.Beginner
	debt, assets := wealthwise.M(0), wealthwise.M(0)
	if tr.Profile != nil {
		level = tr.Profile.KnowledgeLevel
		debt = tr.Profile.TotalDebt
		assets = tr.Profile.LiquidAssets
	}

	stats := tr.Stats(wealthwise.OwnerJoint, wealthwise.Monthly, wealthwise.Today())

	fmt.Fprintf(&b, "You are WealthWise AI, an advanced financial planner for Brazil.\n")
	fmt.Fprintf(&b, "User Level: %s\n", level)
	fmt.Fprintf(&b, "User Debt: R$ %.2f\n", debt.InexactFloat64())
	fmt.Fprintf(&b, "User Assets: R$ %.2f\n\n", assets.InexactFloat64())
	fmt.Fprintf(&b, "Context (BRL):\n")
	fmt.Fprintf(&b, "- Total Net Worth: R$ %.2f\n", stats.NetWorth.InexactFloat64())
	fmt.Fprintf(&b, "- CDI: %.2f%%\n\n", wealthwise.CurrentCDIRate*100)

	fmt.Fprintf(&b, "Investments:\n%s\n\n", investmentSummary(tr.Investments))

	fmt.Fprintf(&b, "Recent Txns:\n")
	n := 0
	for t := range tr.Ledger.Transactions() {
		if n == recentTxnLimit {
			break
		}
		fmt.Fprintf(&b, "- %s: %s (R$ %.2f) [%s]\n", t.Date, t.Merchant, t.Amount.InexactFloat64(), t.Category)
		n++
	}

	b.WriteString(`
Tasks:
1. Answer questions based on their specific context.
2. If they are beginner, explain simple concepts. If advanced, go deep into technicals.
3. Always respect Brazilian tax laws (IR, IOF).
`)
	return b.String()
}

// investmentSummary renders one line per position, the way the advisor
// context expects them.
func investmentSummary(investments []*wealthwise.Investment) string {
	if len(investments) == 0 {
		return "No specific investments tracked yet."
	}
	lines := make([]string, 0, len(investments))
	for _, inv := range investments {
		if inv.Type == wealthwise.FII {
			lines = append(lines, fmt.Sprintf("- FII %s (%s cotas): R$ %.2f (Div: %s) - Início: %s",
				inv.Ticker, inv.Quantity, inv.CurrentValue.InexactFloat64(), inv.LastDividend, inv.StartDate))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s %s (%.0f%% %s): R$ %.2f - Início: %s",
			inv.Type, inv.Name, inv.Percentage, inv.Index, inv.CurrentValue.InexactFloat64(), inv.StartDate))
	}
	return strings.Join(lines, "\n")
}

// buildInsightPrompt asks for one short tip grounded in the user's balance.
func buildInsightPrompt(tr *wealthwise.Tracker) string {
	level := wealthwise.Beginner
	if tr.Profile != nil {
		level = tr.Profile.KnowledgeLevel
	}
	stats := tr.Stats(wealthwise.OwnerJoint, wealthwise.Monthly, wealthwise.Today())
	return fmt.Sprintf(
		"Context: User level is %s.\nBased on balance R$ %.2f and recent activity, give 1 short financial tip in Portuguese.",
		level, stats.BankBalance.InexactFloat64())
}

// buildGoalPrompt asks for a markdown strategy for one goal.
func buildGoalPrompt(goal *wealthwise.Goal, profile *wealthwise.UserProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I am %s, my knowledge level is %s.\n", profile.Name, profile.KnowledgeLevel)
	fmt.Fprintf(&b, "I have a goal: %q\n", goal.Title)
	fmt.Fprintf(&b, "Target: R$ %.2f\n", goal.TargetAmount.InexactFloat64())
	fmt.Fprintf(&b, "Current Saved: R$ %.2f\n", goal.CurrentAmount.InexactFloat64())
	fmt.Fprintf(&b, "Type: %s\n", goal.Type)
	deadline := "Undefined"
	if !goal.Deadline.IsZero() {
		deadline = goal.Deadline.String()
	}
	fmt.Fprintf(&b, "Deadline: %s\n", deadline)

	if goal.Type == wealthwise.Retirement && goal.RetirementDetails != nil {
		d := goal.RetirementDetails
		fmt.Fprintf(&b, "\nRETIREMENT SPECIFICS:\nCurrent Age: %d\nRetirement Age: %d\nDesired Monthly Income: R$ %.2f\n",
			d.CurrentAge, d.RetirementAge, d.DesiredMonthlyIncome.InexactFloat64())
	}

	fmt.Fprintf(&b, "\nMy Total Liquid Assets: R$ %.2f\n", profile.LiquidAssets.InexactFloat64())
	fmt.Fprintf(&b, "My Total Debt: R$ %.2f\n\n", profile.TotalDebt.InexactFloat64())
	fmt.Fprintf(&b, "Current Brazil Market: CDI is %.2f%%.\n", wealthwise.CurrentCDIRate*100)

	b.WriteString(`
Task:
Analyze the best strategy for this goal.
If it's a purchase (e.g., car/house), compare paying cash vs financing and keeping money invested.
If it's retirement, calculate if the current pace is enough, suggest asset allocation (e.g., % in IPCA+ bonds vs Stocks) based on the time horizon.

Return a concise, markdown formatted strategy advice (max 200 words). Use bullet points.
`)
	return b.String()
}

// buildNewsPrompt asks for headlines relevant to the held tickers.
func buildNewsPrompt(investments []*wealthwise.Investment) string {
	tickers := make([]string, 0, len(investments))
	for _, inv := range investments {
		if inv.Ticker != "" {
			tickers = append(tickers, inv.Ticker)
		} else {
			tickers = append(tickers, inv.Name)
		}
	}
	return fmt.Sprintf(`Generate 3 fictional but realistic financial news headlines and one-sentence summaries relevant to these assets: %s.
Context: Brazil Market, recent trends.
Format: JSON Array [{ "title": "...", "summary": "..." }]`, strings.Join(tickers, ", "))
}

// buildStatementPrompt asks for a strict JSON extraction of a pasted bank
// statement.
func buildStatementPrompt(statement string) string {
	categories := make([]string, 0, len(wealthwise.Categories))
	for _, c := range wealthwise.Categories {
		categories = append(categories, string(c))
	}
	return fmt.Sprintf(`You are a financial statement parser for Brazilian bank statements.

Task:
- Parse ALL transactions in the statement below.
- Output STRICT JSON only (no comments, no trailing commas, no extra text).
- Output a JSON array of objects.

Each object must have these fields:
- "date": string, ISO format "YYYY-MM-DD"
- "merchant": string
- "amount": number (positive for money IN, negative for money OUT)
- "category": string, one of: %s

Return ONLY valid raw JSON. Do NOT wrap the response in code fences.
Output must begin with "[" and end with "]".

Statement:
%s`, strings.Join(categories, ", "), statement)
}
