package services

import (
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/pkg/config"
)

// NewServiceContainer wires repositories into services. The company service
// comes first because every other service authorizes through it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Numbering = NewNumberingService(repos.SequenceRepo)

	container.Account = NewAccountService(repos.AccountRepo, container.Company, container.Currency)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.Company, container.Numbering)

	container.Party = NewPartyService(repos.PartyRepo, container.Company)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Party, container.Company, container.Numbering)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.Company, container.Numbering)
	container.Voucher = NewVoucherService(repos.VoucherRepo, container.Party, container.Account, container.Company, container.Numbering)
	container.Check = NewCheckService(repos.CheckRepo, container.Party, container.Company, container.Numbering)
	container.Attachment = NewAttachmentService(repos.AttachmentRepo, container.Company)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Company)

	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleOAuthService(cfg)

	return container
}
