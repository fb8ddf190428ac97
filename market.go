package wealthwise

// Quote is a reference data point for a listed asset, used to auto-fill new
// positions. Institution connection is a manual placeholder in this product,
// so the quote table is static rather than fetched.
type Quote struct {
	Name         string
	Price        Money
	LastDividend Money
}

// Institutions lists the Brazilian institutions offered by the connect
// account flow.
var Institutions = []string{
	"Nubank", "Itaú", "Bradesco", "Banco do Brasil", "Santander",
	"Inter", "C6 Bank", "XP Investimentos", "BTG Pactual", "PagBank",
	"Mercado Pago", "Banco Pan", "Nomad", "Wise", "Caixa",
}

// marketData maps tickers to their reference quotes.
var marketData = map[string]Quote{
	"MXRF11": {Name: "Maxi Renda", Price: M(10.45), LastDividend: M(0.11)},
	"HGLG11": {Name: "CSHG Logística", Price: M(162.30), LastDividend: M(1.10)},
	"XPML11": {Name: "XP Malls", Price: M(115.50), LastDividend: M(0.92)},
	"KNRI11": {Name: "Kinea Renda", Price: M(158.20), LastDividend: M(1.00)},
	"VISC11": {Name: "Vinci Shopping", Price: M(118.90), LastDividend: M(0.85)},
	"BTLG11": {Name: "BTG Logística", Price: M(101.15), LastDividend: M(0.76)},
	"PETR4":  {Name: "Petrobras PN", Price: M(36.50)},
	"VALE3":  {Name: "Vale ON", Price: M(60.20)},
	"BBAS3":  {Name: "Banco do Brasil ON", Price: M(27.10)},
}

// LookupQuote returns the reference quote for a ticker, if known.
func LookupQuote(ticker string) (Quote, bool) {
	q, ok := marketData[ticker]
	return q, ok
}
