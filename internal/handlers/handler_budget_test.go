package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/eventops/event_finance_app/internal/handlers"
	"github.com/eventops/event_finance_app/internal/platform/config"
	"github.com/eventops/event_finance_app/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest) (*domain.BudgetLineItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetService) UpdateBudgetItem(ctx context.Context, itemID string, req dto.UpdateBudgetItemRequest) (*domain.BudgetLineItem, error) {
	args := m.Called(ctx, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetService) DeleteBudgetItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockBudgetService) GetBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetLineItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetService) ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetLineItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetLineItem), args.Error(1)
}

func (m *MockBudgetService) SummarizeBudget(ctx context.Context, eventID string) (*domain.BudgetSummary, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock SponsorshipService ---
type MockSponsorshipService struct {
	mock.Mock
}

func (m *MockSponsorshipService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*domain.SponsorshipPackage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SponsorshipPackage), args.Error(1)
}

func (m *MockSponsorshipService) ListPackages(ctx context.Context, eventID string) ([]domain.SponsorshipPackage, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SponsorshipPackage), args.Error(1)
}

func (m *MockSponsorshipService) CreateSponsor(ctx context.Context, req dto.CreateSponsorRequest) (*domain.Sponsor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sponsor), args.Error(1)
}

func (m *MockSponsorshipService) ListSponsors(ctx context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sponsor), args.Error(1)
}

func (m *MockSponsorshipService) UpdateSponsorStatus(ctx context.Context, sponsorID string, req dto.UpdateSponsorStatusRequest) (*domain.Sponsor, error) {
	args := m.Called(ctx, sponsorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sponsor), args.Error(1)
}

var _ portssvc.SponsorshipSvcFacade = (*MockSponsorshipService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

func (m *MockReportService) GetReportByID(ctx context.Context, reportID string) (*domain.FinancialReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context, eventID string) ([]domain.FinancialReport, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialReport), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ResetAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.AdminSvc = (*MockAdminService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockBudgetService *MockBudgetService
	mockAdminService  *MockAdminService
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterDecimalType()
	suite.router = gin.New()

	suite.mockBudgetService = new(MockBudgetService)
	suite.mockAdminService = new(MockAdminService)

	container := &portssvc.ServiceContainer{
		Budget:      suite.mockBudgetService,
		Sponsorship: new(MockSponsorshipService),
		Report:      new(MockReportService),
		Transaction: new(MockTransactionService),
		Admin:       suite.mockAdminService,
	}
	cfg := &config.Config{Port: "8080", IsProduction: true}

	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestCreateBudgetItem_Success() {
	eventID := uuid.NewString()
	created := &domain.BudgetLineItem{
		ItemID:          uuid.NewString(),
		EventID:         eventID,
		Category:        domain.CategoryVenue,
		Name:            "Main hall rental",
		UnitCost:        decimal.NewFromInt(100),
		Quantity:        decimal.NewFromInt(3),
		ProjectedAmount: decimal.NewFromInt(300),
		ActualAmount:    decimal.Zero,
		Status:          domain.BudgetDraft,
		Currency:        domain.USD,
	}

	suite.mockBudgetService.On("CreateBudgetItem",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateBudgetItemRequest) bool {
			return req.EventID == eventID && req.Category == domain.CategoryVenue
		}),
	).Return(created, nil).Once()

	body := map[string]any{
		"eventID":  eventID,
		"category": "venue",
		"name":     "Main hall rental",
		"unitCost": 100,
		"quantity": 3,
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/budget-items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.BudgetItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ItemID, resp.ItemID)
	suite.True(resp.ProjectedAmount.Equal(decimal.NewFromInt(300)))
	suite.True(resp.Variance.Equal(decimal.NewFromInt(300)), "Variance is derived in the response")
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestCreateBudgetItem_InvalidCategory() {
	body := map[string]any{
		"eventID":  uuid.NewString(),
		"category": "fireworks",
		"name":     "Invalid",
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/budget-items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "CreateBudgetItem")
}

func (suite *BudgetHandlerTestSuite) TestGetBudgetItem_NotFound() {
	itemID := uuid.NewString()
	notFoundErr := fmt.Errorf("budget item %s: %w", itemID, apperrors.ErrNotFound)

	suite.mockBudgetService.On("GetBudgetItemByID", mock.Anything, itemID).Return(nil, notFoundErr).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/budget-items/"+itemID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestListBudgetItems_FilterPassthrough() {
	eventID := uuid.NewString()

	suite.mockBudgetService.On("ListBudgetItems",
		mock.Anything,
		domain.BudgetItemFilter{EventID: eventID, Status: domain.BudgetApproved},
	).Return([]domain.BudgetLineItem{}, nil).Once()

	url := fmt.Sprintf("/api/v1/finance/budget-items?event_id=%s&status=approved", eventID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListBudgetItemsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Items)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetBudgetSummary() {
	eventID := uuid.NewString()
	summary := &domain.BudgetSummary{
		TotalItems:     2,
		TotalProjected: decimal.NewFromInt(1500),
		TotalActual:    decimal.NewFromInt(900),
		TotalVariance:  decimal.NewFromInt(600),
		ByCategory: map[domain.BudgetCategory]domain.CategoryBreakdown{
			domain.CategoryVenue: {Projected: 1000, Actual: 900, Count: 1},
		},
		ByStatus: map[domain.BudgetStatus]int{domain.BudgetApproved: 2},
	}

	suite.mockBudgetService.On("SummarizeBudget", mock.Anything, eventID).Return(summary, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/budget-items/summary/"+eventID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BudgetSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(eventID, resp.EventID)
	suite.Equal(2, resp.TotalItems)
	suite.True(resp.TotalVariance.Equal(decimal.NewFromInt(600)))
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestDeleteBudgetItem_Success() {
	itemID := uuid.NewString()

	suite.mockBudgetService.On("DeleteBudgetItem", mock.Anything, itemID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/finance/budget-items/"+itemID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestResetAll() {
	suite.mockAdminService.On("ResetAll", mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/finance/reset", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAdminService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
