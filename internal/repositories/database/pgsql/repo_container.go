package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the concrete pgx repositories into the bundle
// consumed by the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	checkRepo := newPgxCheckRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	attachmentRepo := newPgxAttachmentRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:    accountRepo,
		CompanyRepo:    companyRepo,
		CurrencyRepo:   currencyRepo,
		UserRepo:       userRepo,
		JournalRepo:    journalRepo,
		SequenceRepo:   sequenceRepo,
		InvoiceRepo:    invoiceRepo,
		ExpenseRepo:    expenseRepo,
		VoucherRepo:    voucherRepo,
		CheckRepo:      checkRepo,
		PartyRepo:      partyRepo,
		AttachmentRepo: attachmentRepo,
		ReportingRepo:  reportingRepo,
	}
}
