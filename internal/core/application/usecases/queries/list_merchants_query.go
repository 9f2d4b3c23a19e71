package queries

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/guard"
)

var ErrListMerchantsQueryIsNotConstructed = errors.New(
	"ListMerchantsQuery must be created via NewListMerchantsQuery constructor",
)

// ListMerchantsQuery retrieves all registered merchants.
type ListMerchantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMerchantsQuery creates a query to retrieve all merchants.
// This is a parameterless query that fetches the complete merchant list.
func NewListMerchantsQuery() ListMerchantsQuery {
	return ListMerchantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMerchantsQuery) Validate() error {
	return q.guard.Validate(ErrListMerchantsQueryIsNotConstructed)
}

// MerchantResponse is the merchant read model.
type MerchantResponse struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}
