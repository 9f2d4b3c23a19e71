// Package trackingevent contains the append-only tracking event entity and
// its type/source enums. Events are created once, never mutated or deleted,
// and are listed per shipment in ascending occurred_at order.
package trackingevent

import (
	"errors"
	"fmt"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/pkg/errs"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New("TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

// EventType classifies what happened to the shipment.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	EventTypeLabelCreated
	EventTypePickedUp
	EventTypeOutForDelivery
	EventTypeDelivered
	EventTypeDeliveryFailed
)

// getEventTypeStrings returns the canonical lowercase value of every event
// type. These literals are the wire and storage representation.
func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown:        "unknown",
		EventTypeLabelCreated:   "label_created",
		EventTypePickedUp:       "picked_up",
		EventTypeOutForDelivery: "out_for_delivery",
		EventTypeDelivered:      "delivered",
		EventTypeDeliveryFailed: "delivery_failed",
	}
}

func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // EventTypeUnknown is intentionally excluded
	return map[EventType]string{
		EventTypeLabelCreated:   "label_created",
		EventTypePickedUp:       "picked_up",
		EventTypeOutForDelivery: "out_for_delivery",
		EventTypeDelivered:      "delivered",
		EventTypeDeliveryFailed: "delivery_failed",
	}
}

// EventTypeFromString parses a canonical lowercase event type value.
func EventTypeFromString(s string) (EventType, error) {
	for et, str := range getValidEventTypeStrings() {
		if str == s {
			return et, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid event type", s))
}

// Validate checks that the EventType is one of the five valid values.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the canonical lowercase name of the event type.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Source records which actor produced the event.
type Source int

const (
	// SourceUnknown represents an invalid or undefined source.
	SourceUnknown Source = iota

	// SourceCarrier marks events reported directly by a carrier.
	SourceCarrier

	// SourceSystem marks events produced by the gateway itself, including
	// every event appended by carrier-webhook processing.
	SourceSystem

	// SourceManual marks events entered by an operator.
	SourceManual
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown: "unknown",
		SourceCarrier: "carrier",
		SourceSystem:  "system",
		SourceManual:  "manual",
	}
}

func getValidSourceStrings() map[Source]string {
	//nolint:exhaustive // SourceUnknown is intentionally excluded
	return map[Source]string{
		SourceCarrier: "carrier",
		SourceSystem:  "system",
		SourceManual:  "manual",
	}
}

// SourceFromString parses a canonical lowercase source value.
func SourceFromString(s string) (Source, error) {
	for src, str := range getValidSourceStrings() {
		if str == s {
			return src, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not a valid event source", s))
}

// Validate checks that the Source is one of the three valid values.
func (s Source) Validate() error {
	if _, ok := getValidSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%d is not a valid event source", s))
	}
	return nil
}

// String returns the canonical lowercase name of the source.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TrackingEvent is one immutable entry in a shipment's event log.
type TrackingEvent struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	eventType  EventType
	source     Source
	reason     *string
	occurredAt time.Time

	isConstructed bool
}

// NewTrackingEvent creates a TrackingEvent. When occurredAt is the zero
// time it defaults to the current UTC time, which implements the
// caller-supplied-or-ingestion-time contract of the event log.
func NewTrackingEvent(
	id, shipmentID kernel.UUID,
	eventType EventType,
	source Source,
	reason *string,
	occurredAt time.Time,
) (*TrackingEvent, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		eventType.Validate(),
		source.Validate(),
	); err != nil {
		return nil, err
	}

	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return &TrackingEvent{
		id:            id,
		shipmentID:    shipmentID,
		eventType:     eventType,
		source:        source,
		reason:        reason,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// RestoreTrackingEvent reconstructs a TrackingEvent from persistence.
// Unlike NewTrackingEvent, the occurrence time must already be set.
func RestoreTrackingEvent(
	id, shipmentID kernel.UUID,
	eventType EventType,
	source Source,
	reason *string,
	occurredAt time.Time,
) (*TrackingEvent, error) {
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}
	return NewTrackingEvent(id, shipmentID, eventType, source, reason, occurredAt)
}

// Validate ensures the TrackingEvent was created through a constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the identifier of the owning shipment.
func (e *TrackingEvent) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Type returns the event classification.
func (e *TrackingEvent) Type() EventType {
	return e.eventType
}

// Source returns the actor that produced the event.
func (e *TrackingEvent) Source() Source {
	return e.source
}

// Reason returns the optional free-text reason, nil when absent.
func (e *TrackingEvent) Reason() *string {
	return e.reason
}

// OccurredAt returns when the event happened.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}
