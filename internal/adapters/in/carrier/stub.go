package carrier

import (
	"fmt"

	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"
)

// StubCarrierName is the registry key of the built-in test carrier.
const StubCarrierName = "stub"

// stubMapping relates one external event code to its internal translation.
type stubMapping struct {
	eventType    trackingevent.EventType
	targetStatus shipment.Status
}

// stubMappings is the fixed code table of the stub carrier. Every code it
// knows implies a status change.
var stubMappings = map[string]stubMapping{
	"IN_TRANSIT": {eventType: trackingevent.EventTypeOutForDelivery, targetStatus: shipment.InTransit},
	"DELIVERED":  {eventType: trackingevent.EventTypeDelivered, targetStatus: shipment.Delivered},
	"FAILED":     {eventType: trackingevent.EventTypeDeliveryFailed, targetStatus: shipment.Failed},
}

// StubAdapter translates events of a fictional carrier used in tests and
// local development.
type StubAdapter struct{}

// NewStubAdapter creates the stub carrier adapter.
func NewStubAdapter() StubAdapter {
	return StubAdapter{}
}

// IngestEvent maps the stub carrier's upper-case event codes to internal
// event types and target statuses. Unknown codes fail with
// ErrUnsupportedEventCode.
func (StubAdapter) IngestEvent(payload ExternalEvent) (AdapterResult, error) {
	mapping, ok := stubMappings[payload.EventCode]
	if !ok {
		return AdapterResult{}, fmt.Errorf("%w: %q", ErrUnsupportedEventCode, payload.EventCode)
	}

	targetStatus := mapping.targetStatus
	return AdapterResult{
		MerchantID:        payload.MerchantID,
		ExternalReference: payload.ExternalReference,
		EventType:         mapping.eventType,
		TargetStatus:      &targetStatus,
		Reason:            payload.Reason,
		OccurredAt:        payload.EventTime,
	}, nil
}
