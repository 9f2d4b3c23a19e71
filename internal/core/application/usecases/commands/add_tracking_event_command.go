package commands

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/guard"
)

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

// AddTrackingEventCommand represents a request to append an event to a
// shipment's log. The occurrence time is optional; a zero value means
// "default to ingestion time".
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	eventType  trackingevent.EventType
	source     trackingevent.Source
	reason     *string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand creates a command to append a tracking event.
// Event type and source must be valid enum values; reason and occurredAt
// are optional.
func NewAddTrackingEventCommand(
	shipmentID kernel.UUID,
	eventType trackingevent.EventType,
	source trackingevent.Source,
	reason *string,
	occurredAt time.Time,
) (AddTrackingEventCommand, error) {
	eventCommand := AddTrackingEventCommand{
		reason:     reason,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eventCommand.setShipmentID(shipmentID),
		eventCommand.setEventType(eventType),
		eventCommand.setSource(source),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}

	return eventCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to append to.
func (c AddTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EventType returns the event classification.
func (c AddTrackingEventCommand) EventType() trackingevent.EventType {
	return c.eventType
}

// Source returns the actor that produced the event.
func (c AddTrackingEventCommand) Source() trackingevent.Source {
	return c.source
}

// Reason returns the optional free-text reason, nil when absent.
func (c AddTrackingEventCommand) Reason() *string {
	return c.reason
}

// OccurredAt returns the caller-supplied occurrence time; the zero value
// defers to ingestion time.
func (c AddTrackingEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *AddTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AddTrackingEventCommand) setEventType(eventType trackingevent.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}

func (c *AddTrackingEventCommand) setSource(source trackingevent.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
