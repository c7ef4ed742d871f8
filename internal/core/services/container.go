package services

import (
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mugishaeric/finance_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. The account service is built first since transaction
// creation depends on it.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Account)

	return container
}
