package models

// TransactionType is the canonical two-valued category of a record.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultTypeSynonyms maps lower-cased raw labels onto canonical types.
func DefaultTypeSynonyms() map[string]TransactionType {
	return map[string]TransactionType{
		"income":      TransactionTypeIncome,
		"收入":          TransactionTypeIncome,
		"expense":     TransactionTypeExpense,
		"expenditure": TransactionTypeExpense,
		"支出":          TransactionTypeExpense,
	}
}

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Ptr returns a pointer to a copy of t.
func (t TransactionType) Ptr() *TransactionType {
	return &t
}
