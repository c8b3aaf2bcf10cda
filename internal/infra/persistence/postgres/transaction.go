// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"perk/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	// txMaxAttempts bounds how many times a transaction hit by a
	// serialization failure or deadlock is retried before surfacing.
	txMaxAttempts = 3

	// txRetryBaseDelay is the backoff unit between attempts; attempt n
	// waits n times this long.
	txRetryBaseDelay = 10 * time.Millisecond
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// AccountRepo returns an account repository bound to the transaction.
func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// CustomerRepo returns a customer repository bound to the transaction.
func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

// BusinessRepo returns a business repository bound to the transaction.
func (f *gormRepositoryFactory) BusinessRepo() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

// ProgramRepo returns a program repository bound to the transaction.
func (f *gormRepositoryFactory) ProgramRepo() repository.ProgramRepository {
	return NewProgramRepository(f.tx)
}

// EnrollmentRepo returns an enrollment repository bound to the transaction.
func (f *gormRepositoryFactory) EnrollmentRepo() repository.EnrollmentRepository {
	return NewEnrollmentRepository(f.tx)
}

// CardRepo returns a card repository bound to the transaction.
func (f *gormRepositoryFactory) CardRepo() repository.CardRepository {
	return NewCardRepository(f.tx)
}

// LedgerRepo returns a ledger repository bound to the transaction.
func (f *gormRepositoryFactory) LedgerRepo() repository.LedgerRepository {
	return NewLedgerRepository(f.tx)
}

// ApprovalRepo returns an approval repository bound to the transaction.
func (f *gormRepositoryFactory) ApprovalRepo() repository.ApprovalRepository {
	return NewApprovalRepository(f.tx)
}

// RelationRepo returns a relation repository bound to the transaction.
func (f *gormRepositoryFactory) RelationRepo() repository.RelationRepository {
	return NewRelationRepository(f.tx)
}

// NotificationRepo returns a notification repository bound to the transaction.
func (f *gormRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Transient serialization failures and deadlocks restart the whole
// transaction up to txMaxAttempts times; business errors surface immediately.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var lastErr error

	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err := tm.executeOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !isSerializationFailure(err) {
			return err
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryBaseDelay):
		}
	}

	return fmt.Errorf("transaction failed after %d attempts: %w", txMaxAttempts, lastErr)
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
