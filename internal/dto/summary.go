package dto

import (
	"ledger-agent/internal/models"
)

// SummaryQuery carries the query parameters of GET /summary
type SummaryQuery struct {
	Range string `query:"range" validate:"omitempty,range_token"`
	Type  string `query:"type" validate:"omitempty,max=32,type_label"`
}

// SummaryResponse renders a SummaryResult with fixed two-decimal amounts
type SummaryResponse struct {
	Intent            string            `json:"intent"`
	TotalIncome       string            `json:"total_income"`
	TotalExpense      string            `json:"total_expense"`
	NetBalance        string            `json:"net_balance"`
	TransactionCount  int               `json:"transaction_count"`
	IncomeCount       int               `json:"income_count"`
	ExpenseCount      int               `json:"expense_count"`
	UnclassifiedCount int               `json:"unclassified_count"`
	Currency          string            `json:"currency"`
	DateRange         models.TimeWindow `json:"date_range"`
	Type              string            `json:"type,omitempty"`
}

func NewSummaryResponse(result *models.SummaryResult) SummaryResponse {
	response := SummaryResponse{
		Intent:            result.Intent,
		TotalIncome:       result.TotalIncome.StringFixed(2),
		TotalExpense:      result.TotalExpense.StringFixed(2),
		NetBalance:        result.NetBalance.StringFixed(2),
		TransactionCount:  result.TransactionCount,
		IncomeCount:       result.IncomeCount,
		ExpenseCount:      result.ExpenseCount,
		UnclassifiedCount: result.UnclassifiedCount,
		Currency:          result.Currency,
		DateRange:         result.Window,
	}
	if result.TypeFilter != nil {
		response.Type = string(*result.TypeFilter)
	}
	return response
}

// CurrentMonthDebug is returned by GET /debug/current-month
type CurrentMonthDebug struct {
	Now       string            `json:"now"`
	Timezone  string            `json:"timezone"`
	DateRange models.TimeWindow `json:"date_range"`
}
