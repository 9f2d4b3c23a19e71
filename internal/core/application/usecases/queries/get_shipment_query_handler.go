package queries

import (
	"context"
	"database/sql"
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment from the database.
// Uses direct SQL for read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns *errs.ObjectNotFoundError when no
// shipment has the requested identifier.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			merchant_id,
			name,
			external_reference,
			status,
			created_at,
			updated_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Row()

	shipmentRow, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
		}
		return ShipmentResponse{}, err
	}

	return shipmentRow, nil
}

// scanShipmentRow converts one shipments row into the read model. The scan
// callback abstracts over sql.Row and sql.Rows.
func scanShipmentRow(scan func(dest ...any) error) (ShipmentResponse, error) {
	var response ShipmentResponse
	var id, merchantID uuid.UUID

	err := scan(
		&id,
		&merchantID,
		&response.Name,
		&response.ExternalReference,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return ShipmentResponse{}, idErr
	}
	response.ID = shipmentID

	ownerID, idErr := kernel.UUIDFromBytes(merchantID[:])
	if idErr != nil {
		return ShipmentResponse{}, idErr
	}
	response.MerchantID = ownerID

	return response, nil
}
