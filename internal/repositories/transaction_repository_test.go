package repositories

import (
	"context"
	"testing"
	"time"

	"ledger-agent/internal/database"
	"ledger-agent/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	ctx  context.Context
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func march2024() models.TimeWindow {
	return models.TimeWindow{Start: "2024-03-01", End: "2024-03-31"}
}

func (s *TransactionRepositorySuite) seedMarch() {
	database.CreateTestTransaction(s.T(), s.db, "income", "1000.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "expense", "400.00", time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, " 支出 ", "100.00", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "Expenditure", "50.00", time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "transfer", "70.00", time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC))
	// outside the window on both sides
	database.CreateTestTransaction(s.T(), s.db, "income", "9999.00", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "income", "8888.00", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
}

func (s *TransactionRepositorySuite) TestCreate() {
	transaction := &models.Transaction{
		Amount:           decimal.RequireFromString("12.50"),
		Currency:         "usd",
		NormalizedAmount: decimal.RequireFromString("90.10"),
		Type:             "expense",
		TransactionDate:  time.Date(2024, 3, 2, 9, 0, 0, 0, time.FixedZone("CST", 8*3600)),
	}

	err := s.repo.Create(s.ctx, transaction)

	s.NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.Equal("USD", transaction.Currency)
	s.Equal(time.UTC, transaction.TransactionDate.Location())

	found, err := s.repo.GetByID(s.ctx, transaction.ID)
	s.NoError(err)
	s.True(found.NormalizedAmount.Equal(decimal.RequireFromString("90.10")))
}

func (s *TransactionRepositorySuite) TestCreate_ValidationFails() {
	transaction := &models.Transaction{
		Amount:           decimal.NewFromInt(-1),
		Currency:         "CNY",
		NormalizedAmount: decimal.NewFromInt(-1),
		Type:             "expense",
		TransactionDate:  time.Now(),
	}

	err := s.repo.Create(s.ctx, transaction)

	s.ErrorIs(err, models.ErrNegativeAmount)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	date := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(1), Currency: "CNY", NormalizedAmount: decimal.NewFromInt(1), Type: "income", TransactionDate: date},
		{Amount: decimal.NewFromInt(2), Currency: "CNY", NormalizedAmount: decimal.NewFromInt(2), Type: "expense", TransactionDate: date},
	}

	s.NoError(s.repo.CreateBatch(s.ctx, transactions))
	s.NoError(s.repo.CreateBatch(s.ctx, nil))

	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{Window: march2024()})
	s.NoError(err)
	s.Len(found, 2)
}

func (s *TransactionRepositorySuite) TestCreateBatch_RandomLedgerRoundTrips() {
	gofakeit.Seed(2024)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	transactions := make([]models.Transaction, 50)
	total := decimal.Zero
	for i := range transactions {
		amount := decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2)
		total = total.Add(amount)
		transactions[i] = models.Transaction{
			Amount:           amount,
			Currency:         "CNY",
			NormalizedAmount: amount,
			Type:             gofakeit.RandomString([]string{"income", "收入", "expense", "支出", "expenditure"}),
			Description:      gofakeit.Company(),
			TransactionDate:  gofakeit.DateRange(start, end),
		}
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, transactions))

	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{Window: march2024()})
	s.Require().NoError(err)
	s.Len(found, 50)

	stored := decimal.Zero
	for _, txn := range found {
		stored = stored.Add(txn.NormalizedAmount)
	}
	s.True(total.Equal(stored), "expected %s, got %s", total, stored)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestFindByWindow_InclusiveDayBounds() {
	s.seedMarch()

	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{Window: march2024()})

	s.NoError(err)
	s.Len(found, 5)
	s.Equal("income", found[0].Type)
	s.Equal(" 支出 ", found[len(found)-1].Type)
	for i := 1; i < len(found); i++ {
		s.False(found[i].TransactionDate.Before(found[i-1].TransactionDate))
	}
}

func (s *TransactionRepositorySuite) TestFindByWindow_TypeFilterMatchesSynonyms() {
	s.seedMarch()

	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{
		Window:     march2024(),
		Type:       models.TransactionTypeExpense.Ptr(),
		TypeLabels: []string{"expenditure", "expense", "支出"},
	})

	s.NoError(err)
	s.Len(found, 3)
	for _, transaction := range found {
		s.NotEqual("income", transaction.Type)
		s.NotEqual("transfer", transaction.Type)
	}
}

func (s *TransactionRepositorySuite) TestFindByWindow_TypeFilterWithoutLabels() {
	s.seedMarch()

	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{
		Window: march2024(),
		Type:   models.TransactionTypeIncome.Ptr(),
	})

	s.NoError(err)
	s.Len(found, 1)
	s.True(found[0].NormalizedAmount.Equal(decimal.NewFromInt(1000)))
}

func (s *TransactionRepositorySuite) TestFindByWindow_Empty() {
	found, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{Window: march2024()})

	s.NoError(err)
	s.Empty(found)
}

func (s *TransactionRepositorySuite) TestFindByWindow_InvalidWindow() {
	_, err := s.repo.FindByWindow(s.ctx, models.TransactionFilters{
		Window: models.TimeWindow{Start: "2024-03-31", End: "2024-03-01"},
	})

	s.ErrorIs(err, ErrInvalidWindow)
}

func (s *TransactionRepositorySuite) TestFindByWindow_StoreUnavailable() {
	sqlDB, err := s.db.DB.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	_, err = s.repo.FindByWindow(s.ctx, models.TransactionFilters{Window: march2024()})

	s.Error(err)
	s.Contains(err.Error(), "failed to get transactions by window")
}
