// Package queries contains read operations for retrieving gateway state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized models straight from
// the store.
package queries

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by its identifier.
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentResponse is the shipment read model. The status is the canonical
// lowercase string as stored; timestamps come straight from the store.
type ShipmentResponse struct {
	ID                kernel.UUID
	MerchantID        kernel.UUID
	Name              string
	ExternalReference string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
