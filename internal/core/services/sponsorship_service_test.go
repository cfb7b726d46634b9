package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/core/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.SponsorshipPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context, eventID string) ([]domain.SponsorshipPackage, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SponsorshipPackage), args.Error(1)
}

func (m *MockPackageRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock SponsorRepository ---
type MockSponsorRepository struct {
	mock.Mock
}

func (m *MockSponsorRepository) SaveSponsor(ctx context.Context, sponsor domain.Sponsor) error {
	args := m.Called(ctx, sponsor)
	return args.Error(0)
}

func (m *MockSponsorRepository) FindSponsorByID(ctx context.Context, sponsorID string) (*domain.Sponsor, error) {
	args := m.Called(ctx, sponsorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) ListSponsors(ctx context.Context, status domain.SponsorshipStatus) ([]domain.Sponsor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) error {
	args := m.Called(ctx, sponsor)
	return args.Error(0)
}

func (m *MockSponsorRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type SponsorshipServiceTestSuite struct {
	suite.Suite
	mockPackageRepo *MockPackageRepository
	mockSponsorRepo *MockSponsorRepository
	service         portssvc.SponsorshipSvcFacade
}

func (suite *SponsorshipServiceTestSuite) SetupTest() {
	suite.mockPackageRepo = new(MockPackageRepository)
	suite.mockSponsorRepo = new(MockSponsorRepository)
	suite.service = services.NewSponsorshipService(suite.mockPackageRepo, suite.mockSponsorRepo)
}

// --- Test Cases ---

func (suite *SponsorshipServiceTestSuite) TestCreatePackage_Success() {
	ctx := context.Background()
	eventID := uuid.NewString()
	req := dto.CreatePackageRequest{
		EventID:  eventID,
		Tier:     domain.TierGold,
		TierName: "Gold Partner",
		Amount:   decimal.NewFromInt(25000),
		Benefits: []dto.SponsorBenefitRequest{
			{Name: "Logo on stage", Value: decimal.NewFromInt(5000), CostToProvide: decimal.NewFromInt(200)},
		},
	}

	suite.mockPackageRepo.On("SavePackage", ctx, mock.AnythingOfType("domain.SponsorshipPackage")).Return(nil).Once()

	pkg, err := suite.service.CreatePackage(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(pkg)
	suite.NotEmpty(pkg.PackageID)
	suite.True(pkg.IsActive, "New packages start active")
	suite.Equal(1, pkg.MaxSponsors, "MaxSponsors defaults to 1")
	suite.Equal(0, pkg.SoldCount)
	suite.Equal(domain.USD, pkg.Currency)
	suite.Require().Len(pkg.Benefits, 1)
	suite.Equal(1, pkg.Benefits[0].Quantity, "Benefit quantity defaults to 1")
	suite.mockPackageRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestCreateSponsor_Defaults() {
	ctx := context.Background()
	req := dto.CreateSponsorRequest{
		CompanyName:  "Acme Corp",
		Industry:     "Technology",
		ContactName:  "Jordan Lee",
		ContactEmail: "jordan@acme.example",
	}

	suite.mockSponsorRepo.On("SaveSponsor", ctx, mock.MatchedBy(func(s domain.Sponsor) bool {
		return s.Status == domain.SponsorProspect && s.CommittedAmount.IsZero() && s.ContractSignedAt == nil
	})).Return(nil).Once()

	sponsor, err := suite.service.CreateSponsor(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorProspect, sponsor.Status)
	suite.True(sponsor.CommittedAmount.IsZero())
	suite.True(sponsor.FulfillmentRate.IsZero())
	suite.Nil(sponsor.ContractSignedAt)
	suite.mockSponsorRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorStatus_ContractedStampsDate() {
	ctx := context.Background()
	sponsorID := uuid.NewString()
	packageID := uuid.NewString()
	existing := &domain.Sponsor{
		SponsorID: sponsorID,
		Status:    domain.SponsorCommitted,
	}

	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).Return(existing, nil).Once()
	suite.mockSponsorRepo.On("UpdateSponsor", ctx, mock.MatchedBy(func(s domain.Sponsor) bool {
		return s.Status == domain.SponsorContracted && s.ContractSignedAt != nil
	})).Return(nil).Once()

	before := time.Now().UTC()
	req := dto.UpdateSponsorStatusRequest{
		Status:          domain.SponsorContracted,
		CommittedAmount: decimalPtr(decimal.NewFromInt(30000)),
		PackageID:       &packageID,
	}
	sponsor, err := suite.service.UpdateSponsorStatus(ctx, sponsorID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorContracted, sponsor.Status)
	suite.True(sponsor.CommittedAmount.Equal(decimal.NewFromInt(30000)))
	suite.Equal(packageID, sponsor.PackageID)
	suite.Require().NotNil(sponsor.ContractSignedAt)
	suite.False(sponsor.ContractSignedAt.Before(before))
	suite.mockSponsorRepo.AssertExpectations(suite.T())
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorStatus_RestampsOnRepeatContract() {
	ctx := context.Background()
	sponsorID := uuid.NewString()
	oldSigned := time.Now().UTC().Add(-48 * time.Hour)
	existing := &domain.Sponsor{
		SponsorID:        sponsorID,
		Status:           domain.SponsorContracted,
		ContractSignedAt: &oldSigned,
	}

	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).Return(existing, nil).Once()
	suite.mockSponsorRepo.On("UpdateSponsor", ctx, mock.AnythingOfType("domain.Sponsor")).Return(nil).Once()

	sponsor, err := suite.service.UpdateSponsorStatus(ctx, sponsorID, dto.UpdateSponsorStatusRequest{Status: domain.SponsorContracted})

	suite.Require().NoError(err)
	suite.Require().NotNil(sponsor.ContractSignedAt)
	suite.True(sponsor.ContractSignedAt.After(oldSigned), "Re-contracting refreshes the signing date")
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorStatus_AnyTransitionAllowed() {
	ctx := context.Background()
	sponsorID := uuid.NewString()
	existing := &domain.Sponsor{
		SponsorID: sponsorID,
		Status:    domain.SponsorFulfilled,
	}

	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).Return(existing, nil).Once()
	suite.mockSponsorRepo.On("UpdateSponsor", ctx, mock.AnythingOfType("domain.Sponsor")).Return(nil).Once()

	// There is no transition graph; even a backwards move succeeds.
	sponsor, err := suite.service.UpdateSponsorStatus(ctx, sponsorID, dto.UpdateSponsorStatusRequest{Status: domain.SponsorProspect})

	suite.Require().NoError(err)
	suite.Equal(domain.SponsorProspect, sponsor.Status)
	suite.Nil(sponsor.ContractSignedAt, "Non-contracted statuses do not stamp the date")
}

func (suite *SponsorshipServiceTestSuite) TestUpdateSponsorStatus_NotFound() {
	ctx := context.Background()
	sponsorID := uuid.NewString()
	notFoundErr := fmt.Errorf("sponsor %s: %w", sponsorID, apperrors.ErrNotFound)

	suite.mockSponsorRepo.On("FindSponsorByID", ctx, sponsorID).Return(nil, notFoundErr).Once()

	sponsor, err := suite.service.UpdateSponsorStatus(ctx, sponsorID, dto.UpdateSponsorStatusRequest{Status: domain.SponsorContacted})

	suite.Require().Error(err)
	suite.Nil(sponsor)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSponsorRepo.AssertNotCalled(suite.T(), "UpdateSponsor")
}

func (suite *SponsorshipServiceTestSuite) TestListPackages_NilBecomesEmpty() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockPackageRepo.On("ListPackages", ctx, eventID).Return([]domain.SponsorshipPackage(nil), nil).Once()

	pkgs, err := suite.service.ListPackages(ctx, eventID)

	suite.Require().NoError(err)
	suite.NotNil(pkgs)
	suite.Empty(pkgs)
}

// --- Run Test Suite ---
func TestSponsorshipService(t *testing.T) {
	suite.Run(t, new(SponsorshipServiceTestSuite))
}
