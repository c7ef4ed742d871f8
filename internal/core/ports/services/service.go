package services

// ServiceContainer holds the application services for handler wiring.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
}
