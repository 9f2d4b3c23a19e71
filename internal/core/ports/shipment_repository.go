package ports

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The pair (merchant_id, external_reference) is unique; Add
// surfaces the store's constraint violation so the creation flow can
// resolve concurrent duplicate requests deterministically.
type ShipmentRepository interface {
	// Add persists a new shipment. Returns *errs.ObjectAlreadyExistsError
	// when the store reports a uniqueness violation on
	// (merchant_id, external_reference).
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes (the status) of an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	// Returns *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByMerchantAndReference retrieves the at-most-one shipment owned by
	// the merchant with the given external reference.
	// Returns *errs.ObjectNotFoundError when absent.
	GetByMerchantAndReference(ctx context.Context, merchantID kernel.UUID, externalReference string) (*shipment.Shipment, error)
}
