package repositories

// RepositoryProvider bundles the repositories a storage backend exposes.
// Each adapter (memory, pgsql) builds one of these for service wiring.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
}
