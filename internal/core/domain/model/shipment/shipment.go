// Package shipment contains the Shipment aggregate and its status state
// machine. A shipment belongs to exactly one merchant and is identified
// externally by the carrier-assigned reference; the pair
// (merchant_id, external_reference) is unique, which makes creation
// idempotent under concurrent duplicate requests.
package shipment

import (
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root of the tracking gateway. Its status is
// mutated only through the transition table in status.go; shipments are
// never deleted in normal operation.
//
// Invariants:
//   - Must have a constructed unique identifier
//   - Must reference an owning merchant
//   - Must carry a non-empty carrier-assigned external reference
//   - Status transitions follow the allowed-transition table
type Shipment struct {
	id                kernel.UUID
	merchantID        kernel.UUID
	name              string
	externalReference string
	status            Status

	isConstructed bool
}

// NewShipment creates a Shipment in the initial Created status.
// All identifiers are validated; name and external reference are required.
func NewShipment(id, merchantID kernel.UUID, name, externalReference string) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setMerchantID(merchantID),
		s.setName(name),
		s.setExternalReference(externalReference),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence with an
// arbitrary (but valid) status.
func RestoreShipment(id, merchantID kernel.UUID, name, externalReference string, status Status) (*Shipment, error) {
	s, err := NewShipment(id, merchantID, name, externalReference)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
// Called when reconstructing shipments from persistence.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// MerchantID returns the identifier of the owning merchant.
func (s *Shipment) MerchantID() kernel.UUID {
	return s.merchantID
}

// Name returns the free-text shipment name.
func (s *Shipment) Name() string {
	return s.name
}

// ExternalReference returns the carrier-assigned identifier.
func (s *Shipment) ExternalReference() string {
	return s.externalReference
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// TransitionTo moves the shipment to the target status if the transition
// table allows it. A self-transition succeeds and leaves the shipment
// unchanged; a disallowed transition returns *InvalidTransitionError and
// mutates nothing.
func (s *Shipment) TransitionTo(target Status) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	s.merchantID = merchantID
	return nil
}

func (s *Shipment) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Shipment) setExternalReference(externalReference string) error {
	if externalReference == "" {
		return errs.NewValueIsRequiredError("externalReference")
	}
	s.externalReference = externalReference
	return nil
}
