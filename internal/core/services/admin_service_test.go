package services_test

import (
	"context"
	"fmt"
	"testing"

	portsrepo "github.com/eventops/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AdminServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo      *MockBudgetItemRepository
	mockPackageRepo     *MockPackageRepository
	mockSponsorRepo     *MockSponsorRepository
	mockReportRepo      *MockReportRepository
	mockTransactionRepo *MockTransactionRepository
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetItemRepository)
	suite.mockPackageRepo = new(MockPackageRepository)
	suite.mockSponsorRepo = new(MockSponsorRepository)
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
}

func (suite *AdminServiceTestSuite) newService() portssvc.AdminSvc {
	provider := portsrepo.RepositoryProvider{
		BudgetItemRepo:  suite.mockBudgetRepo,
		PackageRepo:     suite.mockPackageRepo,
		SponsorRepo:     suite.mockSponsorRepo,
		ReportRepo:      suite.mockReportRepo,
		TransactionRepo: suite.mockTransactionRepo,
	}
	return services.NewAdminService(provider)
}

// --- Test Cases ---

func (suite *AdminServiceTestSuite) TestResetAll_ClearsEveryStore() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("Clear", ctx).Return(nil).Once()
	suite.mockPackageRepo.On("Clear", ctx).Return(nil).Once()
	suite.mockSponsorRepo.On("Clear", ctx).Return(nil).Once()
	suite.mockReportRepo.On("Clear", ctx).Return(nil).Once()
	suite.mockTransactionRepo.On("Clear", ctx).Return(nil).Once()

	err := suite.newService().ResetAll(ctx)

	suite.Require().NoError(err)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockPackageRepo.AssertExpectations(suite.T())
	suite.mockSponsorRepo.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestResetAll_PropagatesClearError() {
	ctx := context.Background()
	expectedErr := fmt.Errorf("clear failed")

	suite.mockBudgetRepo.On("Clear", ctx).Return(nil).Once()
	suite.mockPackageRepo.On("Clear", ctx).Return(expectedErr).Once()

	err := suite.newService().ResetAll(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	// Clearing stops at the first failure
	suite.mockSponsorRepo.AssertNotCalled(suite.T(), "Clear")
}

// --- Run Test Suite ---
func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
