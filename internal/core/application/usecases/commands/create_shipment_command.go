package commands

import (
	"errors"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrShipmentNameIsRequired     = errors.New("shipment name is required")
	ErrExternalReferenceIsRequired = errors.New("external reference is required")
)

// CreateShipmentCommand represents a request to create a shipment for a
// merchant under a carrier-assigned external reference. Creation is
// idempotent per (merchant, external reference) pair: repeating the request
// returns the existing shipment instead of creating a duplicate.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	merchantID        kernel.UUID
	name              string
	externalReference string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// Validates that the merchant id is constructed and that name and external
// reference are not empty.
func NewCreateShipmentCommand(merchantID kernel.UUID, name, externalReference string) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setMerchantID(merchantID),
		shipmentCommand.setName(name),
		shipmentCommand.setExternalReference(externalReference),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// MerchantID returns the identifier of the owning merchant.
func (c CreateShipmentCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Name returns the free-text shipment name.
func (c CreateShipmentCommand) Name() string {
	return c.name
}

// ExternalReference returns the carrier-assigned identifier.
func (c CreateShipmentCommand) ExternalReference() string {
	return c.externalReference
}

func (c *CreateShipmentCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateShipmentCommand) setName(name string) error {
	if name == "" {
		return ErrShipmentNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShipmentCommand) setExternalReference(externalReference string) error {
	if externalReference == "" {
		return ErrExternalReferenceIsRequired
	}

	c.externalReference = externalReference
	return nil
}
