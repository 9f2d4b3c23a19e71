package ports

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"
)

// ShipmentEventRepository defines the persistence contract for the
// append-only shipment event log.
type ShipmentEventRepository interface {
	// Add appends a tracking event. Events are never updated or deleted.
	Add(ctx context.Context, event *trackingevent.TrackingEvent) error

	// ListByShipment returns all events of a shipment ordered ascending by
	// occurrence time, ties broken by insertion order.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*trackingevent.TrackingEvent, error)
}
