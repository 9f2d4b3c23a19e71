package queries

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMerchantsQueryHandler retrieves all merchants from the database.
type ListMerchantsQueryHandler struct {
	db *gorm.DB
}

// NewListMerchantsQueryHandler creates a handler for merchant listing
// queries.
func NewListMerchantsQueryHandler(db *gorm.DB) ListMerchantsQueryHandler {
	return ListMerchantsQueryHandler{db: db}
}

// Handle executes the query. Merchants are ordered by name.
func (h ListMerchantsQueryHandler) Handle(
	ctx context.Context,
	query ListMerchantsQuery,
) ([]MerchantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			created_at
		FROM merchants
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merchants := make([]MerchantResponse, 0)
	for rows.Next() {
		var response MerchantResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.Name, &response.CreatedAt); err != nil {
			return nil, err
		}

		merchantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = merchantID

		merchants = append(merchants, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return merchants, nil
}
