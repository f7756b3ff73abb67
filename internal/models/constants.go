package models

// Transaction classes. Class is always consistent with the sign of the
// amount: Earnings iff amount > 0.
const (
	ClassEarnings = "Earnings"
	ClassExpenses = "Expenses"
)

// Fallback labels used when no strategy resolves a category.
const (
	CategoryIncome     = "Income"
	CategoryOthers     = "Others"
	SubCategoryGeneral = "General"
	SubCategoryOthers  = "Others"
)

// Account labels the normalizer infers when the source does not carry an
// explicit account column.
const (
	AccountChequing   = "chequing"
	AccountSavings    = "savings"
	AccountCreditCard = "credit card"
	AccountTFSA       = "tfsa"
)

// Label is a category/sub-category pair. Classification always assigns both
// fields together; a Label is never half-populated.
type Label struct {
	Category    string `yaml:"category"`
	SubCategory string `yaml:"sub_category"`
}

// DefaultLabel returns the class-based fallback mapping: (Income, General)
// for earnings, (Others, Others) for everything else.
func DefaultLabel(class string) Label {
	if class == ClassEarnings {
		return Label{Category: CategoryIncome, SubCategory: SubCategoryGeneral}
	}
	return Label{Category: CategoryOthers, SubCategory: SubCategoryOthers}
}
