package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	"github.com/mugishaeric/finance_tracker_app/internal/dto"
)

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, id domain.EntityID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByIDOrFail(ctx context.Context, id domain.EntityID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, transaction domain.Transaction) (domain.EntityID, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(domain.EntityID), args.Error(1)
}

// --- Test Suite Setup ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	mockService *MockTransactionService
	router      *gin.Engine
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockTransactionService)
	suite.router = newTestRouter(new(MockAccountService), suite.mockService)
}

func (suite *TransactionHandlerTestSuite) amount(v float64) domain.Amount {
	amount, err := domain.NewAmountFromFloat(v)
	suite.Require().NoError(err)
	return amount
}

func (suite *TransactionHandlerTestSuite) storedTransaction(id domain.EntityID) *domain.Transaction {
	opening := suite.amount(100)
	closing := suite.amount(70)
	return &domain.Transaction{
		ID:              id,
		Account:         domain.AccountRefByID("1"),
		TransactionType: domain.Expense,
		Amount:          suite.amount(30),
		Fee:             domain.ZeroAmount(),
		OpeningBalance:  &opening,
		ClosingBalance:  &closing,
		Currency:        domain.RWF,
		Date:            time.Now().UTC(),
		Status:          domain.Pending,
	}
}

func (suite *TransactionHandlerTestSuite) postTransaction(body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := suite.storedTransaction("10")

	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		id, ok := txn.Account.ResolveID()
		return ok && id == "1" && txn.TransactionType == domain.Expense &&
			txn.ID.IsZero() && txn.OpeningBalance == nil && txn.ClosingBalance == nil
	})).Return(domain.EntityID("10"), nil).Once()
	suite.mockService.On("GetTransactionByIDOrFail", mock.Anything, domain.EntityID("10")).Return(created, nil).Once()

	w := suite.postTransaction(`{"accountId":"1","transactionType":"expense","amount":30}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("10", resp.ID)
	suite.Equal("1", resp.AccountID)
	suite.Require().NotNil(resp.OpeningBalance)
	suite.Require().NotNil(resp.ClosingBalance)
	suite.Equal("100", resp.OpeningBalance.String())
	suite.Equal("70", resp.ClosingBalance.String())

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InsufficientFunds() {
	cause := fmt.Errorf("%w: balance 10, requested 30", domain.ErrInsufficientFunds)
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Return(domain.EntityID(""), &apperrors.InvalidAccountRefError{AccountID: "1", Cause: cause}).Once()

	w := suite.postTransaction(`{"accountId":"1","transactionType":"expense","amount":30}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Return(domain.EntityID(""), &apperrors.InvalidAccountRefError{
			AccountID: "404",
			Cause:     &apperrors.NotFoundError{EntityID: "404"},
		}).Once()

	w := suite.postTransaction(`{"accountId":"404","transactionType":"expense","amount":30}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	w := suite.postTransaction(`{"accountId":"1","transactionType":"transfer","amount":30}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_AmountOverCeiling() {
	w := suite.postTransaction(`{"accountId":"1","transactionType":"income","amount":1000001}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	transaction := suite.storedTransaction("10")
	suite.mockService.On("GetTransactionByIDOrFail", mock.Anything, domain.EntityID("10")).Return(transaction, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/10", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("10", resp.ID)
	suite.Equal("expense", resp.TransactionType)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockService.On("GetTransactionByIDOrFail", mock.Anything, domain.EntityID("404")).
		Return(nil, &apperrors.NotFoundError{EntityID: "404"}).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/404", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	transactions := []domain.Transaction{*suite.storedTransaction("1"), *suite.storedTransaction("2")}
	suite.mockService.On("ListTransactions", mock.Anything).Return(transactions, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
