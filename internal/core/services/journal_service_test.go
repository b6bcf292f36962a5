package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/core/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) PostEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, lines, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) ReverseEntry(ctx context.Context, original domain.JournalEntry, mirror domain.JournalEntry, mirrorLines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, original, mirror, mirrorLines, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) SetEntryActive(ctx context.Context, entryID string, isActive bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, isActive, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListLinesByAccountID(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	args := m.Called(ctx, companyID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalLine), returnedNextToken, args.Error(2)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID, accountID, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID, userID string, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error {
	args := m.Called(ctx, companyID, accountID, userID)
	return args.Error(0)
}

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) UpdateSettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) AddMember(ctx context.Context, addingUserID, targetUserID, companyID string, role domain.UserCompanyRole) error {
	args := m.Called(ctx, addingUserID, targetUserID, companyID, role)
	return args.Error(0)
}

func (m *MockCompanyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.UserCompanyRole) error {
	args := m.Called(ctx, userID, companyID, required)
	return args.Error(0)
}

// --- Mock NumberingService ---
type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingSvcFacade = (*MockNumberingService)(nil)

func (m *MockNumberingService) NextNumber(ctx context.Context, companyID string, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, companyID, kind)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockAccountSvc   *MockAccountService
	mockCompanySvc   *MockCompanyService
	mockNumberingSvc *MockNumberingService
	service          portssvc.JournalSvcFacade

	companyID string
	userID    string

	bankAccount    domain.Account
	revenueAccount domain.Account
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockAccountSvc = new(MockAccountService)
	s.mockCompanySvc = new(MockCompanyService)
	s.mockNumberingSvc = new(MockNumberingService)
	s.service = services.NewJournalService(s.mockJournalRepo, s.mockAccountSvc, s.mockCompanySvc, s.mockNumberingSvc)

	s.companyID = uuid.NewString()
	s.userID = uuid.NewString()

	s.bankAccount = domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    s.companyID,
		AccountType:  domain.AccountTypeAsset,
		CurrencyCode: "SAR",
		IsActive:     true,
	}
	s.revenueAccount = domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    s.companyID,
		AccountType:  domain.AccountTypeRevenue,
		CurrencyCode: "SAR",
		IsActive:     true,
	}
}

func (s *JournalServiceTestSuite) saveRequest() dto.SaveJournalEntryRequest {
	return dto.SaveJournalEntryRequest{
		EntryDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Cash sale",
		CurrencyCode: "SAR",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: s.bankAccount.AccountID, DebitAmount: decimal.NewFromInt(100)},
			{AccountID: s.revenueAccount.AccountID, CreditAmount: decimal.NewFromInt(100)},
		},
	}
}

func (s *JournalServiceTestSuite) TestSaveDraftNewSuccess() {
	ctx := context.Background()
	req := s.saveRequest()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0001", nil).Once()
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, result, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().Nil(result)
	s.Require().NotNil(entry)
	s.NotEmpty(entry.EntryID)
	s.Equal("JE-2025-0001", entry.EntryNumber)
	s.Equal(domain.Draft, entry.Status)
	s.True(entry.IsActive)
	s.Equal(s.userID, entry.CreatedBy)
	s.True(entry.TotalDebit.Equal(decimal.NewFromInt(100)))
	s.True(entry.TotalCredit.Equal(decimal.NewFromInt(100)))
	s.Len(entry.Lines, 2)

	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockNumberingSvc.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestSaveDraftNumbersLinesInRequestOrder() {
	ctx := context.Background()
	req := s.saveRequest()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0001", nil).Once()

	var saved []domain.JournalLine
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	_, result, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().Nil(result)
	s.Require().Len(saved, 2)
	// Positions follow the request's line order, not creation timestamps.
	s.Equal(0, saved[0].LineNumber)
	s.Equal(s.bankAccount.AccountID, saved[0].AccountID)
	s.Equal(1, saved[1].LineNumber)
	s.Equal(s.revenueAccount.AccountID, saved[1].AccountID)
}

func (s *JournalServiceTestSuite) TestSaveDraftAllowsUnbalancedLines() {
	ctx := context.Background()
	req := s.saveRequest()
	req.Lines = req.Lines[:1] // debit only, no matching credit

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0002", nil).Once()
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, result, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().Nil(result)
	s.Require().NotNil(entry)
	s.True(entry.TotalCredit.IsZero())
}

func (s *JournalServiceTestSuite) TestSaveDraftValidationFailure() {
	ctx := context.Background()
	req := s.saveRequest()
	req.Description = ""
	req.Lines[0].AccountID = ""

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0003", nil).Once()

	entry, result, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().Nil(entry)
	s.Require().NotNil(result)
	s.Contains(result.Errors, "description")
	s.Contains(result.Errors, "line_0_accountId")

	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveDraftEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestSaveDraftAuthFailure() {
	ctx := context.Background()
	req := s.saveRequest()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(apperrors.ErrForbidden).Once()

	_, _, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockNumberingSvc.AssertNotCalled(s.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestSaveDraftRetriesOnNumberCollision() {
	ctx := context.Background()
	req := s.saveRequest()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0004", nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0005", nil).Once()
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(apperrors.ErrNumberCollision).Once()
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entry, result, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().Nil(result)
	s.Equal("JE-2025-0005", entry.EntryNumber)
	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockNumberingSvc.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestSaveDraftRejectsEditingPostedEntry() {
	ctx := context.Background()
	req := s.saveRequest()
	req.EntryID = uuid.NewString()

	posted := &domain.JournalEntry{
		EntryID:   req.EntryID,
		CompanyID: s.companyID,
		Status:    domain.Posted,
	}

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, req.EntryID).Return(posted, nil).Once()

	_, _, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *JournalServiceTestSuite) TestSaveDraftSurfacesLostRaceAgainstPost() {
	ctx := context.Background()
	req := s.saveRequest()
	req.EntryID = uuid.NewString()

	// The entry read as DRAFT here is posted by someone else before our
	// write lands; the repository reports the state conflict.
	draft := &domain.JournalEntry{
		EntryID:     req.EntryID,
		CompanyID:   s.companyID,
		EntryNumber: "JE-2025-0006",
		Status:      domain.Draft,
	}

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, req.EntryID).Return(draft, nil).Once()
	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(apperrors.ErrInvalidState).Once()

	_, _, err := s.service.SaveDraft(ctx, s.companyID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	// Collision retry applies to number clashes on new entries only.
	s.mockNumberingSvc.AssertNotCalled(s.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) postableEntry() (*domain.JournalEntry, []domain.JournalLine) {
	entry := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		CompanyID:    s.companyID,
		EntryNumber:  "JE-2025-0010",
		EntryDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Cash sale",
		Status:       domain.Draft,
		CurrencyCode: "SAR",
		IsActive:     true,
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entry.EntryID, LineNumber: 0, AccountID: s.bankAccount.AccountID, DebitAmount: decimal.NewFromInt(100)},
		{LineID: uuid.NewString(), EntryID: entry.EntryID, LineNumber: 1, AccountID: s.revenueAccount.AccountID, CreditAmount: decimal.NewFromInt(100)},
	}
	return entry, lines
}

func (s *JournalServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		s.bankAccount.AccountID:    s.bankAccount,
		s.revenueAccount.AccountID: s.revenueAccount,
	}
}

func (s *JournalServiceTestSuite) TestPostSuccess() {
	ctx := context.Background()
	entry, lines := s.postableEntry()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	s.mockAccountSvc.On("GetAccountByIDs", ctx, s.companyID, []string{s.bankAccount.AccountID, s.revenueAccount.AccountID}, s.userID).Return(s.accountsMap(), nil).Once()

	// Debit of 100 to an asset and credit of 100 to revenue both increase.
	s.mockJournalRepo.On("PostEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), lines, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[s.bankAccount.AccountID].Equal(decimal.NewFromInt(100)) &&
			changes[s.revenueAccount.AccountID].Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	posted, err := s.service.Post(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(posted)
	s.Equal(domain.Posted, posted.Status)
	s.Require().NotNil(posted.PostedAt)
	s.Require().NotNil(posted.PostedBy)
	s.Equal(s.userID, *posted.PostedBy)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestPostUnbalancedEntry() {
	ctx := context.Background()
	entry, lines := s.postableEntry()
	lines[1].CreditAmount = decimal.NewFromInt(60)

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()

	_, err := s.service.Post(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	s.mockJournalRepo.AssertNotCalled(s.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostAlreadyPosted() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.Status = domain.Posted

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := s.service.Post(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *JournalServiceTestSuite) TestPostCurrencyMismatch() {
	ctx := context.Background()
	entry, lines := s.postableEntry()

	mismatched := s.accountsMap()
	acc := mismatched[s.revenueAccount.AccountID]
	acc.CurrencyCode = "USD"
	mismatched[s.revenueAccount.AccountID] = acc

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	s.mockAccountSvc.On("GetAccountByIDs", ctx, s.companyID, mock.AnythingOfType("[]string"), s.userID).Return(mismatched, nil).Once()

	_, err := s.service.Post(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, services.ErrCurrencyMismatch)
}

func (s *JournalServiceTestSuite) TestPostEntryFromAnotherCompany() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.CompanyID = uuid.NewString()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := s.service.Post(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *JournalServiceTestSuite) TestReverseSuccess() {
	ctx := context.Background()
	entry, lines := s.postableEntry()
	entry.Status = domain.Posted
	entry.TotalDebit = decimal.NewFromInt(100)
	entry.TotalCredit = decimal.NewFromInt(100)

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	s.mockNumberingSvc.On("NextNumber", ctx, s.companyID, domain.KindJournalEntry).Return("JE-2025-0011", nil).Once()
	s.mockAccountSvc.On("GetAccountByIDs", ctx, s.companyID, mock.AnythingOfType("[]string"), s.userID).Return(s.accountsMap(), nil).Once()

	s.mockJournalRepo.On("ReverseEntry", ctx,
		mock.MatchedBy(func(original domain.JournalEntry) bool {
			return original.Status == domain.Reversed &&
				original.ReversalReason == "duplicate entry" &&
				original.ReversingEntryID != nil
		}),
		mock.AnythingOfType("domain.JournalEntry"),
		mock.AnythingOfType("[]domain.JournalLine"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			// Mirror undoes the original: both balances swing back down.
			return changes[s.bankAccount.AccountID].Equal(decimal.NewFromInt(-100)) &&
				changes[s.revenueAccount.AccountID].Equal(decimal.NewFromInt(-100))
		}),
	).Return(nil).Once()

	mirror, err := s.service.Reverse(ctx, s.companyID, entry.EntryID, s.userID, "duplicate entry")

	s.Require().NoError(err)
	s.Require().NotNil(mirror)
	s.Equal(domain.Posted, mirror.Status)
	s.Equal("JE-2025-0011", mirror.EntryNumber)
	s.Require().NotNil(mirror.OriginalEntryID)
	s.Equal(entry.EntryID, *mirror.OriginalEntryID)

	s.Require().Len(mirror.Lines, 2)
	s.True(mirror.Lines[0].CreditAmount.Equal(decimal.NewFromInt(100)), "debit line should come back as a credit")
	s.True(mirror.Lines[1].DebitAmount.Equal(decimal.NewFromInt(100)), "credit line should come back as a debit")
	s.Equal(0, mirror.Lines[0].LineNumber, "mirror lines keep the original positions")
	s.Equal(1, mirror.Lines[1].LineNumber)

	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestReverseMissingReason() {
	ctx := context.Background()

	_, err := s.service.Reverse(ctx, s.companyID, uuid.NewString(), s.userID, "   ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrMissingReason)
	s.mockCompanySvc.AssertNotCalled(s.T(), "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestReverseDraftEntry() {
	ctx := context.Background()
	entry, _ := s.postableEntry() // still a draft

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := s.service.Reverse(ctx, s.companyID, entry.EntryID, s.userID, "entered twice")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *JournalServiceTestSuite) TestReverseAlreadyReversedEntry() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.Status = domain.Reversed

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := s.service.Reverse(ctx, s.companyID, entry.EntryID, s.userID, "undo the undo")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.mockJournalRepo.AssertNotCalled(s.T(), "ReverseEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestDeleteDraft() {
	ctx := context.Background()
	entry, _ := s.postableEntry()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID).Return(nil).Once()

	err := s.service.Delete(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().NoError(err)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestDeletePostedEntryFails() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.Status = domain.Posted

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	err := s.service.Delete(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrCannotDeletePosted)
	s.mockJournalRepo.AssertNotCalled(s.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestToggleActive() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.Status = domain.Posted

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleMember).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	s.mockJournalRepo.On("SetEntryActive", ctx, entry.EntryID, false, s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := s.service.ToggleActive(ctx, s.companyID, entry.EntryID, s.userID, false)

	s.Require().NoError(err)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestGetEntryByIDHidesOtherCompanies() {
	ctx := context.Background()
	entry, _ := s.postableEntry()
	entry.CompanyID = uuid.NewString()

	s.mockCompanySvc.On("AuthorizeUserAction", ctx, s.userID, s.companyID, domain.RoleReadOnly).Return(nil).Once()
	s.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()

	_, err := s.service.GetEntryByID(ctx, s.companyID, entry.EntryID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockJournalRepo.AssertNotCalled(s.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
