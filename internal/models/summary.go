package models

import (
	"github.com/shopspring/decimal"
)

// SummaryResult is the aggregate for one window. TransactionCount is the number of
// records returned by the store, including records whose type fell in neither bucket.
type SummaryResult struct {
	Intent            string           `json:"intent"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	NetBalance        decimal.Decimal  `json:"net_balance"`
	TransactionCount  int              `json:"transaction_count"`
	IncomeCount       int              `json:"income_count"`
	ExpenseCount      int              `json:"expense_count"`
	UnclassifiedCount int              `json:"unclassified_count"`
	Currency          string           `json:"currency"`
	Window            TimeWindow       `json:"date_range"`
	TypeFilter        *TransactionType `json:"type_filter,omitempty"`
}

const IntentSummary = "summary"
