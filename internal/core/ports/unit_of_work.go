package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every operation
// that performs multiple writes (status update plus event append, for
// example) runs inside one UnitOfWork so partial application can never be
// observed by another reader.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// MerchantRepository returns a MerchantRepository bound to the current
	// transaction started by Begin().
	MerchantRepository() MerchantRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// ShipmentEventRepository returns a ShipmentEventRepository bound to the
	// current transaction started by Begin().
	ShipmentEventRepository() ShipmentEventRepository
}
