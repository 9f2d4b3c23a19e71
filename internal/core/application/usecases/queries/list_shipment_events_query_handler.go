package queries

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentEventsQueryHandler retrieves a shipment's event log from the
// database.
type ListShipmentEventsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentEventsQueryHandler creates a handler for event-log
// queries.
func NewListShipmentEventsQueryHandler(db *gorm.DB) ListShipmentEventsQueryHandler {
	return ListShipmentEventsQueryHandler{db: db}
}

// Handle executes the query. The shipment must exist; a shipment with no
// events yields an empty slice, while an unknown shipment yields
// *errs.ObjectNotFoundError. Events are ordered ascending by occurrence
// time, ties broken by insertion order.
func (h ListShipmentEventsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentEventsQuery,
) ([]ShipmentEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM shipments WHERE id = ?)",
		query.ShipmentID().String(),
	).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			type,
			source,
			reason,
			occurred_at,
			created_at
		FROM shipment_events
		WHERE shipment_id = ?
		ORDER BY occurred_at ASC, created_at ASC
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]ShipmentEventResponse, 0)
	for rows.Next() {
		var response ShipmentEventResponse
		var id, shipmentID uuid.UUID

		err = rows.Scan(
			&id,
			&shipmentID,
			&response.Type,
			&response.Source,
			&response.Reason,
			&response.OccurredAt,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = eventID

		ownerID, idErr := kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ShipmentID = ownerID

		events = append(events, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
