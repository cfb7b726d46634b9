package services

import "context"

// AdminSvc defines maintenance operations on the in-memory stores.
type AdminSvc interface {
	// ResetAll clears every repository unconditionally. Development use
	// only; irreversible within the process.
	ResetAll(ctx context.Context) error
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Budget      BudgetSvcFacade
	Sponsorship SponsorshipSvcFacade
	Report      ReportSvcFacade
	Transaction TransactionSvcFacade
	Admin       AdminSvc
}
