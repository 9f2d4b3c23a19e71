package commands

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/errs"
	"trackgate/internal/pkg/guard"
)

var ErrProcessCarrierEventCommandIsNotConstructed = errors.New(
	"ProcessCarrierEventCommand must be created via NewProcessCarrierEventCommand constructor",
)

// ProcessCarrierEventCommand carries a carrier notification after adapter
// translation: the shipment is addressed by merchant and external
// reference, and the translated outcome is an event plus an optional
// target status. The status and the event are applied atomically.
type ProcessCarrierEventCommand struct { //nolint:recvcheck //using for validation
	merchantID        kernel.UUID
	externalReference string
	eventType         trackingevent.EventType
	targetStatus      *shipment.Status
	reason            *string
	occurredAt        time.Time

	guard guard.ConstructorGuard
}

// NewProcessCarrierEventCommand creates a command for a translated carrier
// notification. targetStatus is nil for purely informational events; when
// present it must be a valid status value.
func NewProcessCarrierEventCommand(
	merchantID kernel.UUID,
	externalReference string,
	eventType trackingevent.EventType,
	targetStatus *shipment.Status,
	reason *string,
	occurredAt time.Time,
) (ProcessCarrierEventCommand, error) {
	carrierCommand := ProcessCarrierEventCommand{
		reason:     reason,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrierCommand.setMerchantID(merchantID),
		carrierCommand.setExternalReference(externalReference),
		carrierCommand.setEventType(eventType),
		carrierCommand.setTargetStatus(targetStatus),
	); err != nil {
		return ProcessCarrierEventCommand{}, err
	}

	return carrierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessCarrierEventCommand) Validate() error {
	return c.guard.Validate(ErrProcessCarrierEventCommandIsNotConstructed)
}

// MerchantID returns the owning merchant's identifier.
func (c ProcessCarrierEventCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// ExternalReference returns the merchant-scoped shipment reference.
func (c ProcessCarrierEventCommand) ExternalReference() string {
	return c.externalReference
}

// EventType returns the translated event classification.
func (c ProcessCarrierEventCommand) EventType() trackingevent.EventType {
	return c.eventType
}

// TargetStatus returns the status the shipment should move to, nil when
// the notification carries no status change.
func (c ProcessCarrierEventCommand) TargetStatus() *shipment.Status {
	return c.targetStatus
}

// Reason returns the optional free-text reason, nil when absent.
func (c ProcessCarrierEventCommand) Reason() *string {
	return c.reason
}

// OccurredAt returns the carrier-reported occurrence time; the zero value
// defers to ingestion time.
func (c ProcessCarrierEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ProcessCarrierEventCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *ProcessCarrierEventCommand) setExternalReference(externalReference string) error {
	if externalReference == "" {
		return errs.NewValueIsRequiredError("externalReference")
	}

	c.externalReference = externalReference
	return nil
}

func (c *ProcessCarrierEventCommand) setEventType(eventType trackingevent.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}

func (c *ProcessCarrierEventCommand) setTargetStatus(targetStatus *shipment.Status) error {
	if targetStatus == nil {
		return nil
	}

	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
