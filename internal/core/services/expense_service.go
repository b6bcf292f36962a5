package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/internal/utils/accounting"
)

type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	companySvc   portssvc.CompanySvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, companySvc portssvc.CompanySvcFacade, numberingSvc portssvc.NumberingSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		companySvc:   companySvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, companyID string, req dto.SaveExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	number, err := s.numberingSvc.NextNumber(ctx, companyID, domain.KindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate expense number: %w", err)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		CompanyID:     companyID,
		ExpenseNumber: number,
		Status:        domain.ExpensePending,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: userID,
		},
	}
	s.applyExpenseRequest(&expense, req, userID, now)

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("expense_number", expense.ExpenseNumber))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, companyID, expenseID, userID string) (*domain.Expense, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, companyID, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filters := domain.ExpenseFilters{Category: params.Category}
	if params.Status != "" {
		status := domain.ExpenseStatus(params.Status)
		filters.Status = &status
	}

	expenses, next, err := s.expenseRepo.ListExpensesByCompany(ctx, companyID, filters, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	responses := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = dto.ToExpenseResponse(&expenses[i])
	}
	return &dto.ListExpensesResponse{Expenses: responses, NextToken: next}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, companyID, expenseID string, req dto.SaveExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: expense status is %s, only pending expenses can be edited", apperrors.ErrInvalidState, expense.Status)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	s.applyExpenseRequest(expense, req, userID, time.Now().UTC())

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, companyID, expenseID, userID string) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if expense.Status == domain.ExpenseApproved {
		return fmt.Errorf("%w: approved expenses cannot be deleted", apperrors.ErrInvalidState)
	}
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}

func (s *expenseService) applyExpenseRequest(expense *domain.Expense, req dto.SaveExpenseRequest, userID string, now time.Time) {
	expense.ExpenseDate = req.ExpenseDate
	expense.Category = req.Category
	expense.Description = req.Description
	expense.SupplierID = req.SupplierID
	expense.CurrencyCode = req.CurrencyCode
	expense.Amount = req.Amount
	expense.TaxRate = req.TaxRate
	expense.TaxInclusive = req.TaxInclusive
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	totals := accounting.RecomputeExpenseAmount(req.Amount, req.TaxRate, req.TaxInclusive)
	expense.NetAmount = totals.NetAmount
	expense.TaxAmount = totals.TaxAmount
	expense.GrossAmount = totals.GrossAmount
}
