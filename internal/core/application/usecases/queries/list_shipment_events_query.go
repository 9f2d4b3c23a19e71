package queries

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/guard"
)

var ErrListShipmentEventsQueryIsNotConstructed = errors.New(
	"ListShipmentEventsQuery must be created via NewListShipmentEventsQuery constructor",
)

// ListShipmentEventsQuery retrieves the event log of one shipment.
type ListShipmentEventsQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListShipmentEventsQuery creates a query to retrieve a shipment's
// events.
func NewListShipmentEventsQuery(shipmentID kernel.UUID) (ListShipmentEventsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return ListShipmentEventsQuery{}, err
	}

	return ListShipmentEventsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentEventsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentEventsQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment whose events are
// requested.
func (q ListShipmentEventsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentEventResponse is the tracking-event read model.
type ShipmentEventResponse struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	Type       string
	Source     string
	Reason     *string
	OccurredAt time.Time
	CreatedAt  time.Time
}
