package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes database transaction control to repositories
// that need multi-statement atomicity (save header+lines, reverse entries).
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx)
}

// RepositoryProvider bundles the concrete repositories for service wiring.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	CompanyRepo    CompanyRepositoryFacade
	CurrencyRepo   CurrencyRepositoryFacade
	UserRepo       UserRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	SequenceRepo   SequenceRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	VoucherRepo    VoucherRepositoryFacade
	CheckRepo      CheckRepositoryFacade
	PartyRepo      PartyRepositoryFacade
	AttachmentRepo AttachmentRepositoryFacade
	ReportingRepo  ReportingRepositoryFacade
}
