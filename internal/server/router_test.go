package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledger-agent/internal/config"
	"ledger-agent/internal/models"
	"ledger-agent/internal/services"
	"ledger-agent/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type healthyStore struct{}

func (healthyStore) HealthCheck(context.Context) error { return nil }

type RouterTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockQueryService *service_mocks.MockQueryServiceInterface
	cfg              *config.Config
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockQueryService = service_mocks.NewMockQueryServiceInterface(s.ctrl)
	s.cfg = &config.Config{
		Server:   config.ServerConfig{Environment: "development"},
		Security: config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100, JWTIssuer: "ledger-agent"},
	}
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) router() *echo.Echo {
	return NewRouter(Dependencies{
		Config:       s.cfg,
		QueryService: s.mockQueryService,
		Resolver:     services.NewWindowResolver(),
		Store:        healthyStore{},
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		}),
	})
}

func (s *RouterTestSuite) do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHealthAndMetrics() {
	e := s.router()

	rec := s.do(e, http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))

	rec = s.do(e, http.MethodGet, "/metrics", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "# metrics")
}

func (s *RouterTestSuite) TestAsk_PropagatesTraceID() {
	e := s.router()

	s.mockQueryService.EXPECT().
		Answer(gomock.Any(), "本月收入多少？").
		DoAndReturn(func(ctx context.Context, question string) (string, error) {
			s.NotEmpty(services.TraceIDFromContext(ctx))
			return "本月总收入 1000.00 元。", nil
		})

	rec := s.do(e, http.MethodPost, "/ask", `{"query":"本月收入多少？"}`, "")

	s.Equal(http.StatusOK, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("本月总收入 1000.00 元。", body["response"])
	s.Equal("success", body["status"])
}

func (s *RouterTestSuite) TestAsk_ValidationGoesThroughErrorHandler() {
	e := s.router()

	rec := s.do(e, http.MethodPost, "/ask", `{"query":"`+strings.Repeat("x", 1001)+`"}`, "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *RouterTestSuite) TestDebugRoutes_NotMountedInProduction() {
	s.cfg.Server.Environment = "production"
	e := s.router()

	rec := s.do(e, http.MethodGet, "/debug/current-month", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *RouterTestSuite) TestDebugRoutes_MountedInDevelopment() {
	e := s.router()

	rec := s.do(e, http.MethodGet, "/debug/current-month", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"timezone":"UTC"`)
}

func (s *RouterTestSuite) TestAuthEnabled() {
	s.cfg.Security.JWTSecret = "router-secret"
	e := s.router()

	rec := s.do(e, http.MethodGet, "/summary", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(e, http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "cli",
		Issuer:    "ledger-agent",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("router-secret"))
	s.Require().NoError(err)

	s.mockQueryService.EXPECT().
		Summarize(gomock.Any(), models.IntentParams{}).
		Return(&models.SummaryResult{Intent: models.IntentSummary, Currency: "CNY"}, nil)

	rec = s.do(e, http.MethodGet, "/summary", "", token)
	s.Equal(http.StatusOK, rec.Code)
}
