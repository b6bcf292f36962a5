package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/core/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) ListCompaniesByUser(ctx context.Context, userID string, includeDisabled bool) ([]domain.Company, error) {
	args := m.Called(ctx, userID, includeDisabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveUserCompany(ctx context.Context, membership domain.UserCompany) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCompany), args.Error(1)
}

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade

	companyID string
	userID    string
}

func (s *CompanyServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCompanyRepository)
	s.service = services.NewCompanyService(s.mockRepo)
	s.companyID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *CompanyServiceTestSuite) membership(role domain.UserCompanyRole) *domain.UserCompany {
	return &domain.UserCompany{
		UserID:    s.userID,
		CompanyID: s.companyID,
		Role:      role,
	}
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserActionAllowsSufficientRole() {
	ctx := context.Background()
	s.mockRepo.On("FindUserCompanyRole", ctx, s.userID, s.companyID).Return(s.membership(domain.RoleAdmin), nil).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.companyID, domain.RoleMember)

	s.Require().NoError(err)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserActionDeniesInsufficientRole() {
	ctx := context.Background()
	s.mockRepo.On("FindUserCompanyRole", ctx, s.userID, s.companyID).Return(s.membership(domain.RoleReadOnly), nil).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.companyID, domain.RoleMember)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserActionDeniesNonMember() {
	ctx := context.Background()
	s.mockRepo.On("FindUserCompanyRole", ctx, s.userID, s.companyID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.companyID, domain.RoleReadOnly)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserActionDeniesRemovedUser() {
	ctx := context.Background()
	s.mockRepo.On("FindUserCompanyRole", ctx, s.userID, s.companyID).Return(s.membership(domain.RoleRemoved), nil).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.companyID, domain.RoleReadOnly)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserActionDeniesOnLookupFailure() {
	ctx := context.Background()
	s.mockRepo.On("FindUserCompanyRole", ctx, s.userID, s.companyID).Return(nil, errors.New("connection reset")).Once()

	err := s.service.AuthorizeUserAction(ctx, s.userID, s.companyID, domain.RoleReadOnly)

	s.Require().Error(err, "a failed lookup must deny, never allow")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestCreateCompanyMakesCreatorAdmin() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{
		Name:                "Al Noor Trading",
		NameAr:              "شركة النور التجارية",
		DefaultCurrencyCode: "SAR",
	}

	s.mockRepo.On("SaveCompany", ctx, mock.AnythingOfType("domain.Company")).Return(nil).Once()
	s.mockRepo.On("SaveUserCompany", ctx, mock.MatchedBy(func(membership domain.UserCompany) bool {
		return membership.UserID == s.userID && membership.Role == domain.RoleAdmin
	})).Return(nil).Once()

	company, err := s.service.CreateCompany(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(company)
	s.NotEmpty(company.CompanyID)
	s.Equal(req.Name, company.Name)
	s.Equal(req.NameAr, company.NameAr)
	s.Require().NotNil(company.DefaultCurrencyCode)
	s.Equal("SAR", *company.DefaultCurrencyCode)
	s.True(company.IsActive)

	s.mockRepo.AssertExpectations(s.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
