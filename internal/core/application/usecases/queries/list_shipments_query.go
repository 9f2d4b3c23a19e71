package queries

import (
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/pkg/errs"
	"trackgate/internal/pkg/guard"
)

const (
	// DefaultListLimit applies when the caller does not request a page size.
	DefaultListLimit = 50

	// MaxListLimit bounds a single page of results.
	MaxListLimit = 200
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves a page of shipments, optionally filtered by
// owning merchant and by status. Results are ordered newest first.
type ListShipmentsQuery struct {
	merchantID *kernel.UUID
	status     *shipment.Status
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a shipment listing query. Both filters are
// optional; a zero limit falls back to DefaultListLimit.
func NewListShipmentsQuery(merchantID *kernel.UUID, status *shipment.Status, limit, offset int) (ListShipmentsQuery, error) {
	if merchantID != nil {
		if err := merchantID.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return ListShipmentsQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return ListShipmentsQuery{
		merchantID: merchantID,
		status:     status,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// MerchantID returns the merchant filter, nil when unfiltered.
func (q ListShipmentsQuery) MerchantID() *kernel.UUID {
	return q.merchantID
}

// Status returns the status filter, nil when unfiltered.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q ListShipmentsQuery) Offset() int {
	return q.offset
}
