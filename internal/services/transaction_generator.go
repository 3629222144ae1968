package services

import (
	"time"

	"ledger-agent/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	hoursInDay         = 24
	biWeeklyDays       = 14
	salaryHour         = 9
	billDayOfMonth     = 5
	businessHoursStart = 7
	businessHoursEnd   = 23
	foreignShare       = 0.1
)

type merchant struct {
	name     string
	category string
	lo, hi   float64
}

// rates convert one unit of a foreign currency into the reporting currency
var sampleRates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("7.10"),
	"EUR": decimal.RequireFromString("7.75"),
	"JPY": decimal.RequireFromString("0.048"),
}

var (
	incomeLabels  = []string{"income", "收入", "Income"}
	expenseLabels = []string{"expense", "支出", "expenditure", "Expense"}
)

type transactionGenerator struct {
	faker     *gofakeit.Faker
	currency  string
	merchants []merchant
	bills     []merchant
}

// NewTransactionGenerator creates a sample ledger generator. A zero seed picks a random one.
func NewTransactionGenerator(reportingCurrency string, seed uint64) TransactionGeneratorInterface {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &transactionGenerator{
		faker:    gofakeit.New(seed),
		currency: reportingCurrency,
		merchants: []merchant{
			{"盒马鲜生", models.CategoryGroceries, 30, 400},
			{"Walmart", models.CategoryGroceries, 20, 350},
			{"瑞幸咖啡", models.CategoryDining, 9, 40},
			{"Starbucks", models.CategoryDining, 25, 60},
			{"美团外卖", models.CategoryDining, 20, 120},
			{"滴滴出行", models.CategoryTransportation, 12, 90},
			{"Metro", models.CategoryTransportation, 3, 10},
			{"京东", models.CategoryShopping, 50, 1500},
			{"Amazon", models.CategoryShopping, 40, 900},
			{"万达影城", models.CategoryEntertainment, 40, 150},
		},
		bills: []merchant{
			{"房租", models.CategoryHousing, 2500, 6000},
			{"国家电网", models.CategoryUtilities, 80, 400},
			{"中国移动", models.CategoryUtilities, 39, 199},
			{"Netflix", models.CategoryEntertainment, 45, 90},
		},
	}
}

func (g *transactionGenerator) GenerateLedger(start, end time.Time) []models.Transaction {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return nil
	}

	transactions := g.generateSalaries(start, end)
	transactions = append(transactions, g.generateBills(start, end)...)
	transactions = append(transactions, g.generateDailyPurchases(start, end)...)

	return transactions
}

func (g *transactionGenerator) generateSalaries(start, end time.Time) []models.Transaction {
	base := float64(g.faker.IntRange(8, 30) * 1000)

	var transactions []models.Transaction
	for day := startOfDay(start).Add(salaryHour * time.Hour); !day.After(end); day = day.AddDate(0, 0, biWeeklyDays) {
		if day.Before(start) {
			continue
		}
		transactions = append(transactions, models.Transaction{
			Amount:           decimal.NewFromFloat(base),
			Currency:         g.currency,
			NormalizedAmount: decimal.NewFromFloat(base),
			Type:             g.pick(incomeLabels),
			Category:         models.CategorySalary,
			Description:      "Salary deposit",
			TransactionDate:  day,
		})
	}
	return transactions
}

func (g *transactionGenerator) generateBills(start, end time.Time) []models.Transaction {
	var transactions []models.Transaction
	for month := startOfMonth(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		due := month.AddDate(0, 0, billDayOfMonth-1).Add(14 * time.Hour)
		if due.Before(start) || due.After(end) {
			continue
		}
		for _, bill := range g.bills {
			amount := g.amount(bill.lo, bill.hi)
			transactions = append(transactions, models.Transaction{
				Amount:           amount,
				Currency:         g.currency,
				NormalizedAmount: amount,
				Type:             g.pick(expenseLabels),
				Category:         bill.category,
				Description:      bill.name,
				TransactionDate:  due,
			})
		}
	}
	return transactions
}

func (g *transactionGenerator) generateDailyPurchases(start, end time.Time) []models.Transaction {
	var transactions []models.Transaction
	for day := startOfDay(start); day.Before(end); day = day.Add(hoursInDay * time.Hour) {
		purchases := g.faker.IntRange(1, 4)
		for i := 0; i < purchases; i++ {
			timestamp := g.timestamp(day)
			if timestamp.Before(start) || timestamp.After(end) {
				continue
			}

			m := g.merchants[g.faker.IntRange(0, len(g.merchants)-1)]
			normalized := g.amount(m.lo, m.hi)
			amount, currency := normalized, g.currency
			if g.faker.Float64() < foreignShare {
				amount, currency = g.foreign(normalized)
			}

			transactions = append(transactions, models.Transaction{
				Amount:           amount,
				Currency:         currency,
				NormalizedAmount: normalized,
				Type:             g.pick(expenseLabels),
				Category:         m.category,
				Description:      m.name,
				TransactionDate:  timestamp,
			})
		}
	}
	return transactions
}

// foreign re-expresses a reporting-currency amount in a random foreign currency
func (g *transactionGenerator) foreign(normalized decimal.Decimal) (decimal.Decimal, string) {
	codes := []string{"USD", "EUR", "JPY"}
	code := codes[g.faker.IntRange(0, len(codes)-1)]
	return normalized.Div(sampleRates[code]).Round(2), code
}

func (g *transactionGenerator) amount(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(lo, hi)).Round(2)
}

func (g *transactionGenerator) timestamp(day time.Time) time.Time {
	hour := g.faker.IntRange(businessHoursStart, businessHoursEnd-1)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.faker.IntRange(0, 59), g.faker.IntRange(0, 59), 0, time.UTC)
}

func (g *transactionGenerator) pick(labels []string) string {
	return labels[g.faker.IntRange(0, len(labels)-1)]
}
