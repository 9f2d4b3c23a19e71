// Package eventrepo provides data transfer objects and mapping functions
// for the append-only shipment event log. Events are inserted once and
// never updated or deleted.
package eventrepo

import (
	"time"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"

	"github.com/google/uuid"
)

// ShipmentEventDTO represents the database structure for persisting
// tracking events. created_at records insertion order and breaks ties
// between events that share an occurrence time.
type ShipmentEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Source     string    `gorm:"type:varchar(16);not null"`
	Reason     *string   `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for tracking events.
func (ShipmentEventDTO) TableName() string {
	return "shipment_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *trackingevent.TrackingEvent) ShipmentEventDTO {
	return ShipmentEventDTO{
		ID:         event.ID().Bytes(),
		ShipmentID: event.ShipmentID().Bytes(),
		Type:       event.Type().String(),
		Source:     event.Source().String(),
		Reason:     event.Reason(),
		OccurredAt: event.OccurredAt(),
	}
}

// toDomain converts a database DTO to a tracking event.
func toDomain(dto ShipmentEventDTO) (*trackingevent.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	eventType, err := trackingevent.EventTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	source, err := trackingevent.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}

	return trackingevent.RestoreTrackingEvent(id, shipmentID, eventType, source, dto.Reason, dto.OccurredAt)
}
