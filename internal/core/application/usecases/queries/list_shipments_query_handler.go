package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of shipments from the database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing
// queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice, not nil, when nothing
// matches. Results are ordered by creation time, newest first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			merchant_id,
			name,
			external_reference,
			status,
			created_at,
			updated_at
		FROM shipments
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if merchantID := query.MerchantID(); merchantID != nil {
		sql += " AND merchant_id = ?"
		args = append(args, merchantID.String())
	}
	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, status.String())
	}

	sql += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		shipmentRow, scanErr := scanShipmentRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, shipmentRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
