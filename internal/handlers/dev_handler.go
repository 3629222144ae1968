package handlers

import (
	"net/http"
	"time"

	"ledger-agent/internal/models"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultGenerateDays = 30
	maxGenerateDays     = 365
)

// DevHandler handles development-only endpoints
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		now:             time.Now,
	}
}

// GenerateTestData fills the ledger with a plausible sample history ending now
//
// Method: POST /debug/generate-transactions
// Environment: non-production only
//
// Query parameters:
//   - days: Number of days of history to generate (default: 30, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
//   - date_range: the generated window
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	days := getIntQueryParam(c, "days", defaultGenerateDays, 1, maxGenerateDays)

	endDate := h.now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.generator.GenerateLedger(startDate, endDate)
	if len(transactions) > 0 {
		if err := h.transactionRepo.CreateBatch(c.Request().Context(), transactions); err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": len(transactions),
		"date_range":           models.NewTimeWindow(startDate, endDate),
	})
}
