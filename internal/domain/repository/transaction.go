package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Transient serialization failures are retried a bounded number of times before surfacing.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// BusinessRepo returns a BusinessRepository bound to the current transaction.
	BusinessRepo() BusinessRepository

	// ProgramRepo returns a ProgramRepository bound to the current transaction.
	ProgramRepo() ProgramRepository

	// EnrollmentRepo returns an EnrollmentRepository bound to the current transaction.
	EnrollmentRepo() EnrollmentRepository

	// CardRepo returns a CardRepository bound to the current transaction.
	CardRepo() CardRepository

	// LedgerRepo returns a LedgerRepository bound to the current transaction.
	LedgerRepo() LedgerRepository

	// ApprovalRepo returns an ApprovalRepository bound to the current transaction.
	ApprovalRepo() ApprovalRepository

	// RelationRepo returns a RelationRepository bound to the current transaction.
	RelationRepo() RelationRepository

	// NotificationRepo returns a NotificationRepository bound to the current transaction.
	NotificationRepo() NotificationRepository
}
