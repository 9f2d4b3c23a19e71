package commands

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/errs"
)

// AddTrackingEventCommandHandler appends events to a shipment's log after
// verifying the shipment exists. No event-type/status coherence is checked
// here; only the carrier-event flow coordinates the two.
type AddTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewAddTrackingEventCommandHandler creates a handler for event appends.
// The event-log unit of work is a required collaborator: constructing the
// handler without it is a configuration fault of the composition, reported
// immediately rather than surfacing later as a domain error.
func NewAddTrackingEventCommandHandler(uowFactory TrackingUoWFactory) (AddTrackingEventCommandHandler, error) {
	if uowFactory == nil {
		return AddTrackingEventCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle verifies the shipment exists (*errs.ObjectNotFoundError
// otherwise), then appends and returns the created event. A zero
// occurrence time defaults to the current time.
func (h AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) (*trackingevent.TrackingEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return nil, err
	}

	event, err := trackingevent.NewTrackingEvent(
		kernel.NewUUID(),
		cmd.ShipmentID(),
		cmd.EventType(),
		cmd.Source(),
		cmd.Reason(),
		cmd.OccurredAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
