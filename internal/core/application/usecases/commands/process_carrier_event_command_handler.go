package commands

import (
	"context"

	"trackgate/internal/core/domain/model/kernel"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/core/domain/model/trackingevent"
	"trackgate/internal/pkg/errs"
)

// ProcessCarrierEventResult is the outcome of a processed carrier
// notification: the shipment after any status change and the appended
// event.
type ProcessCarrierEventResult struct {
	Shipment *shipment.Shipment
	Event    *trackingevent.TrackingEvent
}

// ProcessCarrierEventCommandHandler applies a translated carrier
// notification in a single transaction: the status transition (when the
// notification implies one) and the event append either both persist or
// neither does.
type ProcessCarrierEventCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewProcessCarrierEventCommandHandler creates a handler for carrier
// notifications. The unit-of-work factory is a required collaborator;
// a nil factory is a configuration fault reported at construction.
func NewProcessCarrierEventCommandHandler(uowFactory TrackingUoWFactory) (ProcessCarrierEventCommandHandler, error) {
	if uowFactory == nil {
		return ProcessCarrierEventCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return ProcessCarrierEventCommandHandler{
		uowFactory: uowFactory,
	}, nil
}

// Handle resolves the shipment by merchant and external reference
// (*errs.ObjectNotFoundError if absent), applies the implied transition if
// any, appends the event and commits. A disallowed transition aborts the
// whole operation: no status change and no event are persisted.
func (h ProcessCarrierEventCommandHandler) Handle(ctx context.Context, cmd ProcessCarrierEventCommand) (ProcessCarrierEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessCarrierEventResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessCarrierEventResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.GetByMerchantAndReference(ctx, cmd.MerchantID(), cmd.ExternalReference())
	if err != nil {
		return ProcessCarrierEventResult{}, err
	}

	if target := cmd.TargetStatus(); target != nil {
		if err = aggregate.TransitionTo(*target); err != nil {
			return ProcessCarrierEventResult{}, err
		}

		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return ProcessCarrierEventResult{}, err
		}
	}

	event, err := trackingevent.NewTrackingEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.EventType(),
		trackingevent.SourceSystem,
		cmd.Reason(),
		cmd.OccurredAt(),
	)
	if err != nil {
		return ProcessCarrierEventResult{}, err
	}

	if err = uow.ShipmentEventRepository().Add(ctx, event); err != nil {
		return ProcessCarrierEventResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessCarrierEventResult{}, err
	}

	return ProcessCarrierEventResult{Shipment: aggregate, Event: event}, nil
}
