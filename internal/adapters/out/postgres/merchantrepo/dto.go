// Package merchantrepo provides data transfer objects and mapping functions
// for merchant persistence. It implements the repository pattern for the
// merchant aggregate, handling conversion between domain entities and
// database rows.
package merchantrepo

import (
	"time"

	"trackgate/internal/adapters/out/postgres/shipmentrepo"
	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for persisting merchants.
// The name carries a unique index; the database constraint, not application
// locking, is what makes concurrent duplicate registration safe. Deleting
// a merchant cascades to its shipments (and through them to events), so no
// orphaned rows can remain.
type MerchantDTO struct {
	ID        uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Name      string                     `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time                  `gorm:"autoCreateTime"`
	Shipments []shipmentrepo.ShipmentDTO `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for merchant entities.
func (MerchantDTO) TableName() string {
	return "merchants"
}

// fromDomain converts a merchant aggregate to its database representation.
func fromDomain(aggregate *merchant.Merchant) MerchantDTO {
	return MerchantDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a merchant aggregate.
func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreMerchant(id, dto.Name)
}
