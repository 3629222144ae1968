package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"ledger-agent/internal/dto"
	"ledger-agent/internal/errors"
	"ledger-agent/internal/models"
	"ledger-agent/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// QueryHandler serves the ledger question endpoints
type QueryHandler struct {
	queryService services.QueryServiceInterface
	resolver     services.WindowResolverInterface
	now          func() time.Time
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService services.QueryServiceInterface, resolver services.WindowResolverInterface) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
		resolver:     resolver,
		now:          time.Now,
	}
}

// Ask answers a free-form ledger question
//
// Method: POST /ask
//
// Request body:
//   - query: the question, in Chinese or English
//
// Success Response: 200 OK
//   - response: the composed reply, verbatim
//   - status: "success"
//
// Error Responses:
//   - 400: QUERY_005 empty question, VALIDATION_001 malformed body
//   - 422: QUERY_001 unsupported range, QUERY_002 unknown type label
//   - 502: QUERY_003 intent extraction, QUERY_004 reply composition
//   - 500: SYSTEM_002 ledger store unavailable
//   - 503: SYSTEM_003 language model circuit open
func (h *QueryHandler) Ask(c echo.Context) error {
	var req dto.AskRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if strings.TrimSpace(req.Query) == "" {
		return SendError(c, errors.QueryEmptyQuestion)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	reply, err := h.queryService.Answer(c.Request().Context(), req.Query)
	if err != nil {
		return sendQueryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AskResponse{
		Response: reply,
		Status:   dto.StatusSuccess,
	})
}

// Summary returns the aggregate for a window without calling the language model
//
// Method: GET /summary
//
// Query parameters:
//   - range: current_month (default), previous_month, last_7_days, last_30_days
//   - type: optional income/expense label, localized synonyms accepted
func (h *QueryHandler) Summary(c echo.Context) error {
	var req dto.SummaryQuery
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		if hasFailedTag(err, "range_token") {
			return SendError(c, errors.QueryInvalidRangeToken,
				errors.WithDetails("range must be one of: current_month, previous_month, last_7_days, last_30_days"))
		}
		if hasFailedTag(err, "type_label") {
			return SendError(c, errors.QueryUnrecognizedTypeLabel,
				errors.WithDetails("type must be a label such as income, expense, 收入 or 支出"))
		}
		return err
	}

	result, err := h.queryService.Summarize(c.Request().Context(), models.IntentParams{
		DateRange: models.RangeToken(req.Range),
		Type:      req.Type,
	})
	if err != nil {
		return sendQueryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(result))
}

// CurrentMonth shows the server clock and the window current_month resolves to
//
// Method: GET /debug/current-month
// Environment: non-production only
func (h *QueryHandler) CurrentMonth(c echo.Context) error {
	now := h.now().UTC()

	window, err := h.resolver.Resolve(models.RangeCurrentMonth, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CurrentMonthDebug{
		Now:       now.Format(time.RFC3339),
		Timezone:  "UTC",
		DateRange: window,
	})
}

func hasFailedTag(err error, tag string) bool {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return false
	}
	for _, fieldErr := range validationErrs {
		if fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}
