// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The composite unique index on
// (merchant_id, external_reference) is the identity-resolution mechanism
// for idempotent creation.
package shipmentrepo

import (
	"time"

	"trackgate/internal/adapters/out/postgres/eventrepo"
	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The status is stored as its canonical lowercase string so
// rows stay readable and stable across enum reordering. Deleting a
// shipment cascades to its tracking events.
type ShipmentDTO struct {
	ID                uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	MerchantID        uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex:idx_shipments_merchant_reference"`
	Name              string                       `gorm:"type:varchar(255);not null"`
	ExternalReference string                       `gorm:"type:varchar(255);not null;uniqueIndex:idx_shipments_merchant_reference"`
	Status            string                       `gorm:"type:varchar(32);not null;index"`
	CreatedAt         time.Time                    `gorm:"autoCreateTime"`
	UpdatedAt         time.Time                    `gorm:"autoUpdateTime"`
	Events            []eventrepo.ShipmentEventDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		MerchantID:        aggregate.MerchantID().Bytes(),
		Name:              aggregate.Name(),
		ExternalReference: aggregate.ExternalReference(),
		Status:            aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, merchantID, dto.Name, dto.ExternalReference, status)
}
