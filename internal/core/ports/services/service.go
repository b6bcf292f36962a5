package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this container and pull the facades they need from it.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Company    CompanySvcFacade
	Currency   CurrencySvcFacade
	User       UserSvcFacade
	Journal    JournalSvcFacade
	Numbering  NumberingSvcFacade
	Invoice    InvoiceSvcFacade
	Expense    ExpenseSvcFacade
	Voucher    VoucherSvcFacade
	Check      CheckSvcFacade
	Party      PartySvcFacade
	Attachment AttachmentSvcFacade
	Reporting  ReportingSvcFacade
	Token      TokenSvcFacade
	GoogleAuth GoogleOAuthSvcFacade
}
