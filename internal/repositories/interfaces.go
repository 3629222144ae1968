package repositories

import (
	"context"

	"ledger-agent/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for the ledger record store
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// FindByWindow returns records dated inside the inclusive window, oldest first.
	FindByWindow(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
}
