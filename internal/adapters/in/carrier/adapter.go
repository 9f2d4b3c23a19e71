// Package carrier contains the translation boundary between external
// carrier event formats and the shipment lifecycle engine. One adapter per
// carrier converts that carrier's payload into a normalized AdapterResult;
// carrier-specific quirks never reach the engine. Adding a carrier means
// registering another adapter, never touching the engine.
package carrier

import (
	"errors"
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"
)

var (
	// ErrUnsupportedCarrier is returned by the registry for carrier names
	// with no registered adapter.
	ErrUnsupportedCarrier = errors.New("unsupported carrier")

	// ErrUnsupportedEventCode is returned by adapters for external event
	// codes they do not recognize.
	ErrUnsupportedEventCode = errors.New("unsupported event code")
)

// ExternalEvent is the raw inbound carrier notification before
// translation. EventCode is carrier-specific; everything else passes
// through verbatim.
type ExternalEvent struct {
	MerchantID        kernel.UUID
	ExternalReference string
	EventCode         string
	EventTime         time.Time
	Reason            *string
}

// AdapterResult is the normalized output of adapter translation and the
// sole contract between a carrier format and the lifecycle engine. It is
// transient, never persisted. TargetStatus is nil for purely informational
// events.
type AdapterResult struct {
	MerchantID        kernel.UUID
	ExternalReference string
	EventType         trackingevent.EventType
	TargetStatus      *shipment.Status
	Reason            *string
	OccurredAt        time.Time
}

// Adapter translates one carrier's event format. Implementations map the
// external event code to an internal event type, optionally to a target
// status, and fail with ErrUnsupportedEventCode for unrecognized codes.
type Adapter interface {
	IngestEvent(payload ExternalEvent) (AdapterResult, error)
}
