// Package merchant contains the Merchant aggregate. Merchants register once
// with a unique human-readable name and are immutable afterwards; name
// uniqueness is enforced by the store's constraint at creation time.
package merchant

import (
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/errs"
)

// ErrMerchantIsNotConstructed is returned when a Merchant instance was not
// created through NewMerchant or RestoreMerchant.
var ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant or RestoreMerchant")

// Merchant is the owner of shipments. It carries an opaque unique identifier
// and a unique name, and is never mutated after creation.
type Merchant struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewMerchant creates a Merchant with validation: the identifier must be a
// constructed UUID and the name must not be empty.
func NewMerchant(id kernel.UUID, name string) (*Merchant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Merchant{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreMerchant reconstructs a Merchant from persistence. The same
// validation rules apply as in NewMerchant.
func RestoreMerchant(id kernel.UUID, name string) (*Merchant, error) {
	return NewMerchant(id, name)
}

// Validate ensures the Merchant was created through a constructor.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}
	return nil
}

// IsEqual compares two merchants by identifier.
func (m *Merchant) IsEqual(other *Merchant) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Name returns the merchant's unique human-readable name.
func (m *Merchant) Name() string {
	return m.name
}
