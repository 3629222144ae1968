package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeAmount     = errors.New("transaction amounts must not be negative")
	ErrMissingType        = errors.New("transaction type label is required")
	ErrMissingDate        = errors.New("transaction date is required")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter code")
	ErrDescriptionTooLong = errors.New("description is too long")
)

// Transaction is one ledger record. Amount is in the record's own currency and is
// informational; NormalizedAmount is the reporting-currency value used for arithmetic.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3);not null" json:"currency"`
	NormalizedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"normalized_amount"`
	Type             string          `gorm:"type:varchar(32);not null;index" json:"type"`
	Category         string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	TransactionDate  time.Time       `gorm:"not null;index" json:"transaction_date"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Currency = strings.ToUpper(t.Currency)
	t.TransactionDate = t.TransactionDate.UTC()

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() || t.NormalizedAmount.IsNegative() {
		return ErrNegativeAmount
	}

	if strings.TrimSpace(t.Type) == "" {
		return ErrMissingType
	}

	if t.TransactionDate.IsZero() {
		return ErrMissingDate
	}

	if len(t.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if len(t.Description) > 500 {
		return ErrDescriptionTooLong
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
