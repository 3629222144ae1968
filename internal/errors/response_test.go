package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(QueryInvalidRangeToken, s.traceID)

	s.Equal("QUERY_001", response.Error.Code)
	s.Equal("Unsupported time range", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		QueryUnrecognizedTypeLabel,
		s.traceID,
		WithMessage("first"),
		WithMessage("second"),
		WithDetails("a", "b"),
		WithDetails("type: transfer"),
	)

	s.Equal("second", response.Error.Message)
	s.Equal([]string{"type: transfer"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{
		"query": "is required",
		"range": "must be one of: current_month previous_month last_7_days last_30_days",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.ElementsMatch([]string{
		"query: is required",
		"range: must be one of: current_month previous_month last_7_days last_30_days",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("pq: relation \"transactions\" does not exist")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "transactions")
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapStoreError() {
	storeErr := errors.New("connection refused")

	response, originalErr := WrapStoreError(storeErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
	s.Equal(storeErr, originalErr)
}

func (s *ResponseTestSuite) TestToJSON_Structure() {
	response := NewErrorResponse(QueryEmptyQuestion, s.traceID, WithDetails("query: is required"))

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Equal("QUERY_005", errorObj["code"])
	s.Equal("query is required", errorObj["message"])
	s.Equal(s.traceID, errorObj["trace_id"])
	s.Equal([]interface{}{"query: is required"}, errorObj["details"])
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetailsOmitted() {
	jsonBytes, err := NewErrorResponse(SystemInternalError, s.traceID).ToJSON()
	s.NoError(err)

	var jsonMap map[string]map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	_, hasDetails := jsonMap["error"]["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{QueryEmptyQuestion, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{SystemNotFound, http.StatusNotFound},
		{QueryInvalidRangeToken, http.StatusUnprocessableEntity},
		{QueryUnrecognizedTypeLabel, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{QueryIntentExtraction, http.StatusBadGateway},
		{QueryReplyComposition, http.StatusBadGateway},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	s.True(NewErrorResponse(QueryInvalidRangeToken, s.traceID).IsClientError())
	s.False(NewErrorResponse(QueryInvalidRangeToken, s.traceID).IsServerError())
	s.True(NewErrorResponse(QueryIntentExtraction, s.traceID).IsServerError())
	s.False(NewErrorResponse(QueryIntentExtraction, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(QueryReplyComposition, s.traceID).String()

	s.Contains(str, "QUERY_004")
	s.Contains(str, "Could not compose a reply")
	s.Contains(str, s.traceID)
}
