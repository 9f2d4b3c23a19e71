package http

import (
	"time"

	"trackgate/internal/core/application/usecases/queries"
)

// Request bodies.

// CreateMerchantRequest is the body of POST /api/v1/merchants.
type CreateMerchantRequest struct {
	Name string `json:"name"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	MerchantID        string `json:"merchant_id"`
	Name              string `json:"name"`
	ExternalReference string `json:"external_reference"`
}

// UpdateShipmentStatusRequest is the body of
// PATCH /api/v1/shipments/:id/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// AddShipmentEventRequest is the body of
// POST /api/v1/shipments/:id/events. OccurredAt is optional and defaults
// to ingestion time.
type AddShipmentEventRequest struct {
	Type       string     `json:"type"`
	Source     string     `json:"source"`
	Reason     *string    `json:"reason,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// CarrierEventRequest is the body of POST /api/v1/carriers/events, the
// inbound webhook. The carrier name selects the adapter; the event code is
// carrier-specific.
type CarrierEventRequest struct {
	Carrier           string     `json:"carrier"`
	MerchantID        string     `json:"merchant_id"`
	ExternalReference string     `json:"external_reference"`
	EventCode         string     `json:"event_code"`
	EventTime         *time.Time `json:"event_time,omitempty"`
	Reason            *string    `json:"reason,omitempty"`
}

// Response bodies.

// MerchantResponse represents a merchant in API responses.
type MerchantResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ShipmentResponse represents a shipment in API responses.
type ShipmentResponse struct {
	ID                string     `json:"id"`
	MerchantID        string     `json:"merchant_id"`
	Name              string     `json:"name"`
	ExternalReference string     `json:"external_reference"`
	Status            string     `json:"status"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// ShipmentEventResponse represents a tracking event in API responses.
type ShipmentEventResponse struct {
	ID         string     `json:"id"`
	ShipmentID string     `json:"shipment_id"`
	Type       string     `json:"type"`
	Source     string     `json:"source"`
	Reason     *string    `json:"reason,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// CarrierEventResponse is the webhook acknowledgement: the shipment after
// processing and the appended event.
type CarrierEventResponse struct {
	Shipment ShipmentResponse      `json:"shipment"`
	Event    ShipmentEventResponse `json:"event"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func shipmentResponseFromReadModel(model queries.ShipmentResponse) ShipmentResponse {
	createdAt := model.CreatedAt
	updatedAt := model.UpdatedAt
	return ShipmentResponse{
		ID:                model.ID.String(),
		MerchantID:        model.MerchantID.String(),
		Name:              model.Name,
		ExternalReference: model.ExternalReference,
		Status:            model.Status,
		CreatedAt:         &createdAt,
		UpdatedAt:         &updatedAt,
	}
}

func shipmentEventResponseFromReadModel(model queries.ShipmentEventResponse) ShipmentEventResponse {
	createdAt := model.CreatedAt
	return ShipmentEventResponse{
		ID:         model.ID.String(),
		ShipmentID: model.ShipmentID.String(),
		Type:       model.Type,
		Source:     model.Source,
		Reason:     model.Reason,
		OccurredAt: model.OccurredAt,
		CreatedAt:  &createdAt,
	}
}
