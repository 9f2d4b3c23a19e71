package ports

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/merchant"
)

// MerchantRepository defines the persistence contract for merchant
// aggregates. Merchant names are unique; the store's constraint is the
// race-correctness mechanism, not an application-level lock.
type MerchantRepository interface {
	// Add persists a new merchant. Returns *errs.ObjectAlreadyExistsError
	// when the store reports a uniqueness violation on the name.
	Add(ctx context.Context, aggregate *merchant.Merchant) error

	// Get retrieves a merchant by its unique identifier.
	// Returns *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)

	// GetByName retrieves a merchant by its unique name.
	// Returns *errs.ObjectNotFoundError when absent.
	GetByName(ctx context.Context, name string) (*merchant.Merchant, error)
}
