package wealthwise

import "fmt"

// Category classifies a transaction. It is a closed enumeration: budgets and
// the recurring-bill detector key on it, so free-form strings would turn a
// typo into a silently empty budget.
type Category string

const (
	CategoryFood       Category = "Alimentação"
	CategoryShopping   Category = "Compras"
	CategoryHousing    Category = "Moradia"
	CategoryTransport  Category = "Transporte"
	CategoryLeisure    Category = "Lazer"
	CategoryHealth     Category = "Saúde"
	CategoryIncome     Category = "Renda"
	CategoryInvestment Category = "Investimentos"
	CategoryBills      Category = "Contas"
	CategoryEducation  Category = "Educação"
	CategoryTransfer   Category = "Transferência"
	CategoryOther      Category = "Outros"

	// CategoryRedemption marks investment redemption proceeds so that the
	// income aggregate can exclude them and avoid double counting against
	// yield metrics.
	CategoryRedemption Category = "Resgate de Investimento"
)

// Categories lists every valid category, in the order the original product
// presents them.
var Categories = []Category{
	CategoryFood,
	CategoryShopping,
	CategoryHousing,
	CategoryTransport,
	CategoryLeisure,
	CategoryHealth,
	CategoryIncome,
	CategoryInvestment,
	CategoryBills,
	CategoryEducation,
	CategoryTransfer,
	CategoryOther,
	CategoryRedemption,
}

func (c Category) String() string { return string(c) }

// ParseCategory validates a category name against the closed list.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
