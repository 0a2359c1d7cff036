package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
	"github.com/SscSPs/couples_finance_bff/internal/handlers"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/SscSPs/couples_finance_bff/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock InstallmentService ---
type MockInstallmentService struct {
	mock.Mock
}

func (m *MockInstallmentService) ListInstallmentGroups(ctx context.Context, filter domain.TransactionFilter) ([]domain.InstallmentGroup, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstallmentGroup), args.Error(1)
}

func (m *MockInstallmentService) GetInstallmentGroup(ctx context.Context, groupID string) (*domain.InstallmentGroup, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstallmentGroup), args.Error(1)
}

func (m *MockInstallmentService) GetInstallmentSummary(ctx context.Context, filter domain.TransactionFilter) (*domain.InstallmentSummary, []domain.InstallmentGroup, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.InstallmentSummary), args.Get(1).([]domain.InstallmentGroup), args.Error(2)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.InstallmentReaderSvc = (*MockInstallmentService)(nil)
	_ portssvc.TransactionReaderSvc = (*MockTransactionService)(nil)
	_ portssvc.AccountReaderSvc     = (*MockAccountService)(nil)
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testAPIKey    = "service-key-123"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockInstallmentService *MockInstallmentService
	mockTransactionService *MockTransactionService
	mockAccountService     *MockAccountService
}

// generateTestToken creates a JWT for testing.
func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-api",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockInstallmentService = new(MockInstallmentService)
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockAccountService = new(MockAccountService)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	suite.Require().NoError(err)

	cfg := &config.Config{
		IsProduction: true,
		JWTSecret:    testJWTSecret,
		JWTIssuer:    "finance-api",
		APIKeyHashes: []string{string(hash)},
	}
	container := &portssvc.ServiceContainer{
		Installment: suite.mockInstallmentService,
		Transaction: suite.mockTransactionService,
		Account:     suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.RouteDeps{})
}

func (suite *HandlersTestSuite) get(url string, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleGroup() domain.InstallmentGroup {
	next := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	desc := "Sofa"
	return domain.InstallmentGroup{
		GroupID:               "grp_1",
		Description:           &desc,
		TransactionType:       domain.Expense,
		TotalAmount:           decimal.RequireFromString("300"),
		InstallmentAmount:     decimal.RequireFromString("100"),
		TotalInstallments:     3,
		PaidInstallments:      3,
		NextInstallmentNumber: 3,
		NextInstallmentDate:   &next,
		Transactions:          []domain.Transaction{{TransactionID: "t1"}},
	}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.get("/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListInstallments_Success() {
	suite.mockInstallmentService.On("ListInstallmentGroups",
		mock.Anything,
		domain.TransactionFilter{AccountID: "acc_1", TransactionType: domain.Expense},
	).Return([]domain.InstallmentGroup{sampleGroup()}, nil).Once()

	w := suite.get("/api/v1/installments?accountID=acc_1&type=EXPENSE", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListInstallmentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Groups, 1)
	suite.Equal("grp_1", body.Groups[0].GroupID)
	suite.Equal(3, body.Groups[0].NextInstallmentNumber)
	suite.True(decimal.RequireFromString("300").Equal(body.Groups[0].TotalAmount))
	suite.mockInstallmentService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListInstallments_CallerInContext() {
	suite.mockInstallmentService.On("ListInstallmentGroups",
		mock.MatchedBy(func(ctx context.Context) bool {
			userID, ok := middleware.GetUserIDFromCtx(ctx)
			token, hasToken := middleware.GetBearerTokenFromCtx(ctx)
			return ok && userID == "user_42" && hasToken && token != ""
		}),
		domain.TransactionFilter{},
	).Return([]domain.InstallmentGroup{}, nil).Once()

	w := suite.get("/api/v1/installments", "user_42")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"groups": []}`, w.Body.String())
	suite.mockInstallmentService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListInstallments_InvalidType() {
	w := suite.get("/api/v1/installments?type=TRANSFER", "user_1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInstallmentService.AssertNotCalled(suite.T(), "ListInstallmentGroups", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListInstallments_RequiresAuth() {
	w := suite.get("/api/v1/installments", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authorization header required")
}

func (suite *HandlersTestSuite) TestListInstallments_APIKey() {
	suite.mockInstallmentService.On("ListInstallmentGroups",
		mock.MatchedBy(func(ctx context.Context) bool {
			userID, _ := middleware.GetUserIDFromCtx(ctx)
			return userID == "service"
		}),
		domain.TransactionFilter{},
	).Return([]domain.InstallmentGroup{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/installments", nil)
	req.Header.Set("x-api-key", testAPIKey)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockInstallmentService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListInstallments_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"upstream", apperrors.NewAppError(502, "finance api down", apperrors.ErrUpstream), http.StatusBadGateway},
		{"unauthorized", apperrors.NewAppError(401, "rejected", apperrors.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"bad cursor", apperrors.NewAppError(400, "invalid nextToken", nil), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockInstallmentService.On("ListInstallmentGroups", mock.Anything, mock.Anything).
				Return(nil, tt.err).Once()

			w := suite.get("/api/v1/installments", "user_1")

			suite.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (suite *HandlersTestSuite) TestGetInstallmentSummary() {
	nextDue := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	groupID := "grp_1"
	summary := &domain.InstallmentSummary{
		GroupCount:       1,
		ActiveGroupCount: 1,
		TotalAmount:      decimal.RequireFromString("300"),
		UpcomingAmount:   decimal.RequireFromString("100"),
		NextDueDate:      &nextDue,
		NextDueGroupID:   &groupID,
	}
	suite.mockInstallmentService.On("GetInstallmentSummary", mock.Anything, domain.TransactionFilter{}).
		Return(summary, []domain.InstallmentGroup{sampleGroup()}, nil).Once()

	w := suite.get("/api/v1/installments/summary", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.GetInstallmentSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(1, body.Summary.ActiveGroupCount)
	suite.Require().NotNil(body.Summary.NextDueGroupID)
	suite.Equal("grp_1", *body.Summary.NextDueGroupID)
	suite.Len(body.Groups, 1)
	suite.mockInstallmentService.AssertNotCalled(suite.T(), "GetInstallmentGroup", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetInstallmentGroup() {
	group := sampleGroup()
	suite.mockInstallmentService.On("GetInstallmentGroup", mock.Anything, "grp_1").Return(&group, nil).Once()

	w := suite.get("/api/v1/installments/grp_1", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.InstallmentGroupResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("grp_1", body.GroupID)
	suite.Len(body.Transactions, 1)
}

func (suite *HandlersTestSuite) TestGetInstallmentGroup_NotFound() {
	suite.mockInstallmentService.On("GetInstallmentGroup", mock.Anything, "nope").
		Return(nil, apperrors.NewAppError(404, "installment group nope not found", apperrors.ErrNotFound)).Once()

	w := suite.get("/api/v1/installments/nope", "user_1")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListTransactions() {
	next := "cursor-2"
	suite.mockTransactionService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 10 && p.NextToken != nil && *p.NextToken == "cursor-1" && p.AccountID == "acc_1"
		}),
	).Return(&dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{{TransactionID: "t1"}},
		NextToken:    &next,
	}, nil).Once()

	w := suite.get("/api/v1/transactions?limit=10&nextToken=cursor-1&accountID=acc_1", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal("cursor-2", *body.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockTransactionService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Limit == 20 && p.NextToken == nil }),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.get("/api/v1/transactions", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.get("/api/v1/transactions?limit=500", "user_1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListAccounts() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).
		Return([]domain.Account{{AccountID: "acc_1", Name: "Joint", IsShared: true}}, nil).Once()

	w := suite.get("/api/v1/accounts", "user_1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Accounts, 1)
	suite.True(body.Accounts[0].IsShared)
}

func (suite *HandlersTestSuite) TestListAccounts_NotImplemented() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusNotImplemented, "accounts are not available from the configured transaction source", nil)).Once()

	w := suite.get("/api/v1/accounts", "user_1")

	suite.Equal(http.StatusNotImplemented, w.Code)
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.get("/swagger/index.html", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
