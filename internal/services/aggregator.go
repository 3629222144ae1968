package services

import (
	"ledger-agent/internal/models"

	"github.com/shopspring/decimal"
)

type aggregator struct {
	normalizer TypeNormalizerInterface
	currency   string
}

// NewAggregator creates the transaction aggregator. Sums use NormalizedAmount only and are
// rounded half-up to two places once, after every record has been added.
func NewAggregator(normalizer TypeNormalizerInterface, reportingCurrency string) AggregatorInterface {
	return &aggregator{
		normalizer: normalizer,
		currency:   reportingCurrency,
	}
}

func (a *aggregator) Aggregate(records []models.Transaction) *models.SummaryResult {
	result := &models.SummaryResult{
		Intent:           models.IntentSummary,
		Currency:         a.currency,
		TransactionCount: len(records),
	}

	income := decimal.Zero
	expense := decimal.Zero

	for _, record := range records {
		t, ok := a.normalizer.Classify(record.Type)
		switch {
		case ok && t == models.TransactionTypeIncome:
			income = income.Add(record.NormalizedAmount)
			result.IncomeCount++
		case ok && t == models.TransactionTypeExpense:
			expense = expense.Add(record.NormalizedAmount)
			result.ExpenseCount++
		default:
			result.UnclassifiedCount++
		}
	}

	result.TotalIncome = income.Round(2)
	result.TotalExpense = expense.Round(2)
	result.NetBalance = result.TotalIncome.Sub(result.TotalExpense)

	return result
}
