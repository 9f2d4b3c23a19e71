package eventrepo

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"

	"gorm.io/gorm"
)

// GormShipmentEventRepository implements ShipmentEventRepository using GORM.
type GormShipmentEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentEventRepository creates a new GORM tracking-event
// repository.
func NewGormShipmentEventRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentEventRepository {
	return &GormShipmentEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a tracking event. The log is append-only; there is no update
// or delete counterpart.
func (r *GormShipmentEventRepository) Add(ctx context.Context, event *trackingevent.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// ListByShipment returns all events of a shipment ordered ascending by
// occurrence time, ties broken by insertion order.
func (r *GormShipmentEventRepository) ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*trackingevent.TrackingEvent, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentEventDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at ASC, created_at ASC").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	events := make([]*trackingevent.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}
