package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-agent/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidWindow       = errors.New("invalid query window")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

func (r *transactionRepository) FindByWindow(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	start, end, err := filters.Window.DayBounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}

	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("transaction_date BETWEEN ? AND ?", start, end)

	if filters.HasTypeFilter() {
		labels := filters.TypeLabels
		if len(labels) == 0 {
			labels = []string{string(*filters.Type)}
		}
		query = query.Where("LOWER(TRIM(type)) IN ?", labels)
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by window: %w", err)
	}
	return transactions, nil
}
