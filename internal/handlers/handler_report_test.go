package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockReportService *MockReportService
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterDecimalType()
	suite.router = gin.New()

	suite.mockReportService = new(MockReportService)

	container := &portssvc.ServiceContainer{
		Budget:      new(MockBudgetService),
		Sponsorship: new(MockSponsorshipService),
		Report:      suite.mockReportService,
		Transaction: new(MockTransactionService),
		Admin:       new(MockAdminService),
	}
	cfg := &config.Config{Port: "8080", IsProduction: true}

	handlers.RegisterRoutes(suite.router, cfg, container)
}

func generateReportBody(eventID string) []byte {
	payload, _ := json.Marshal(map[string]any{
		"eventID":        eventID,
		"periodStart":    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		"periodEnd":      time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"totalAttendees": 300,
		"paidAttendees":  250,
	})
	return payload
}

// --- Test Cases ---

func (suite *ReportHandlerTestSuite) TestGenerateReport_Success() {
	eventID := uuid.NewString()
	generated := &domain.FinancialReport{
		ReportID:                uuid.NewString(),
		EventID:                 eventID,
		ReportName:              "Financial Summary Report",
		ReportDate:              time.Now().UTC(),
		TotalSponsorshipRevenue: decimal.NewFromInt(30000),
		TotalBudget:             decimal.NewFromInt(15000),
		TotalActual:             decimal.NewFromInt(15000),
		TotalAttendees:          300,
		PaidAttendees:           250,
		Currency:                domain.USD,
	}

	suite.mockReportService.On("GenerateReport",
		mock.Anything,
		mock.MatchedBy(func(req dto.GenerateReportRequest) bool {
			return req.EventID == eventID && req.TotalAttendees == 300
		}),
	).Return(generated, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/reports/generate", bytes.NewReader(generateReportBody(eventID)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(generated.ReportID, resp.ReportID)
	suite.Equal("Financial Summary Report", resp.ReportName)
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(15000)))
	suite.mockReportService.AssertExpectations(suite.T())
}

// Generation lives at /reports/generate; the collection path only lists.
func (suite *ReportHandlerTestSuite) TestGenerateReport_CollectionPathRejectsPost() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/reports", bytes.NewReader(generateReportBody(uuid.NewString())))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "GenerateReport")
}

func (suite *ReportHandlerTestSuite) TestGenerateReport_InvalidBody() {
	payload, _ := json.Marshal(map[string]any{"eventID": "not-a-uuid"})

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/reports/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "GenerateReport")
}

func (suite *ReportHandlerTestSuite) TestGetReport_NotFound() {
	reportID := uuid.NewString()
	notFoundErr := fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)

	suite.mockReportService.On("GetReportByID", mock.Anything, reportID).Return(nil, notFoundErr).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/reports/"+reportID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestListReports() {
	suite.mockReportService.On("ListReports", mock.Anything, "").Return([]domain.FinancialReport{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/reports", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListReportsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Reports)
	suite.mockReportService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
